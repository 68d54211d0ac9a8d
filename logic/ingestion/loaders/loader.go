package loaders

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"dei-dashboard/logic/ingestion/transform"
	"dei-dashboard/types"
)

// 必需列（snake_case 后匹配表头），缺任何一列视为文件格式错误
var requiredColumns = []string{
	"award_id",
	"recipient_name",
	"awarding_agency_name",
	"award_amount",
	"action_date",
}

// 日期列按顺序尝试这些格式（原始数据混有多种写法）
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// LoadFile 从 CSV 文件加载数据集，启动时调用一次，定时任务重载时复用
// 文件打不开/表头非法 => 返回 error（致命）；脏行 => 跳过并记入 LoadReport
func LoadFile(path string) ([]types.ContractRecord, *types.LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset failed: %w", err)
	}
	defer f.Close()
	return Load(f, filepath.Base(path))
}

// Load 解析 CSV 流。每行先做类型校验（显式 schema），通过后交给 transform 清洗
func Load(r io.Reader, name string) ([]types.ContractRecord, *types.LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv headers failed: %w", err)
	}

	// 表头 snake_case 后建立 列名 -> 下标 映射，没映射上的列直接忽略
	colIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		colIdx[toSnakeCase(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, nil, fmt.Errorf("dataset missing required column %q", col)
		}
	}

	report := &types.LoadReport{
		SnapshotID: uuid.NewString(),
		FileName:   name,
		LoadedAt:   time.Now(),
	}

	var records []types.ContractRecord
	lineNo := 1 // 表头占第 1 行
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			report.SkippedRows = append(report.SkippedRows, types.SkippedRow{
				Line:   lineNo,
				Reason: fmt.Sprintf("malformed csv row: %v", err),
			})
			continue
		}
		report.TotalRows++

		rec, reason := parseRow(row, colIdx)
		if reason != "" {
			report.SkippedRows = append(report.SkippedRows, types.SkippedRow{
				Line:   lineNo,
				Reason: reason,
				Raw:    strings.Join(row, ","),
			})
			continue
		}

		transform.Normalize(&rec)
		records = append(records, rec)
	}

	report.LoadedRows = len(records)
	return records, report, nil
}

// parseRow 单行的类型校验。reason 非空表示该行被剔除
func parseRow(row []string, colIdx map[string]int) (types.ContractRecord, string) {
	var rec types.ContractRecord

	rec.AwardID = field(row, colIdx, "award_id")
	rec.RecipientName = field(row, colIdx, "recipient_name")
	rec.AwardingAgencyName = field(row, colIdx, "awarding_agency_name")
	rec.AwardDescription = field(row, colIdx, "award_description")
	rec.DEIThemes = transform.SplitThemes(field(row, colIdx, "dei_themes"))

	amount, err := parseAmount(field(row, colIdx, "award_amount"))
	if err != nil {
		return rec, fmt.Sprintf("invalid award_amount: %v", err)
	}
	if amount < 0 {
		return rec, fmt.Sprintf("negative award_amount: %.2f", amount)
	}
	rec.AwardAmount = amount

	actionDate, err := parseDate(field(row, colIdx, "action_date"))
	if err != nil {
		return rec, fmt.Sprintf("invalid action_date: %v", err)
	}
	rec.ActionDate = actionDate

	// 起止日期属于可选列，解析失败只置空，不剔除整行
	if t, err := parseDate(field(row, colIdx, "contract_start_date")); err == nil {
		rec.ContractStartDate = &t
	}
	if t, err := parseDate(field(row, colIdx, "contract_end_date")); err == nil {
		rec.ContractEndDate = &t
	}

	return rec, ""
}

func field(row []string, colIdx map[string]int, key string) string {
	i, ok := colIdx[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount 金额允许带 "$" 和千分位逗号，如 "$1,234.56"
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// toSnakeCase 把 "Award Amount" 归一化成 "award_amount"
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
