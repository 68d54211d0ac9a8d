package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"dei-dashboard/logic/analytics"
	"dei-dashboard/logic/ingestion/loaders"
	"dei-dashboard/storage/dataset"
	"dei-dashboard/storage/postgres"
	"dei-dashboard/types"
	"dei-dashboard/vars"
)

// DashboardService 看板业务层：持有数据集快照仓库，负责把 wire 层的过滤条件
// 转成强类型后调用纯函数管道（"Service 层负责转为" 的约定）
type DashboardService struct {
	store   *dataset.Store
	archive *postgres.ArchiveRepo // 可为 nil（PG 未接入时归档关闭）
	csvPath string
	logger  *zap.Logger
}

func NewDashboardService(store *dataset.Store, archive *postgres.ArchiveRepo, csvPath string, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:   store,
		archive: archive,
		csvPath: csvPath,
		logger:  logger,
	}
}

// Query 一次看板交互：过滤 -> 汇总 -> 表格行。
// 每次调用从头重算，过程中不碰任何共享可变状态
func (s *DashboardService) Query(ctx context.Context, criteria types.FilterCriteria) (*types.QueryResult, error) {
	snap := s.store.Current()

	resolved, err := analytics.Resolve(criteria, snap.Span)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	subset := analytics.ApplyFilters(snap.Records, resolved)
	aggregates := analytics.ComputeAggregates(subset)

	// 表格按 action_date 倒序展示；排序在拷贝上做，子集本身保持数据集原始顺序
	rows := make([]types.ContractRecord, len(subset))
	copy(rows, subset)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ActionDate.After(rows[j].ActionDate)
	})

	s.logger.Debug("dashboard query computed",
		zap.String("snapshot_id", snap.ID),
		zap.Int("matched", len(subset)),
		zap.Duration("cost", time.Since(start)))

	return &types.QueryResult{
		Aggregates: aggregates,
		Records:    rows,
	}, nil
}

// Options 侧边栏控件的可选项，全部由当前快照推导
func (s *DashboardService) Options() types.FilterOptions {
	snap := s.store.Current()
	opts := types.FilterOptions{
		Agencies:       snap.Agencies,
		Themes:         snap.Themes,
		SizeCategories: snap.SizeCategories,
		AmountMax:      snap.Span.AmountMax,
	}
	if len(snap.Records) > 0 {
		opts.DateMin = snap.Span.DateMin.Format("2006-01-02")
		opts.DateMax = snap.Span.DateMax.Format("2006-01-02")
	}
	return opts
}

// Featured 随机抽 n 条做底部滚动展示，描述超过 500 词截断
func (s *DashboardService) Featured(n int) []types.FeaturedAward {
	snap := s.store.Current()
	if n <= 0 {
		n = vars.FeaturedDefaultCount
	}
	if n > len(snap.Records) {
		n = len(snap.Records)
	}

	awards := make([]types.FeaturedAward, 0, n)
	for _, idx := range rand.Perm(len(snap.Records))[:n] {
		rec := snap.Records[idx]
		awards = append(awards, types.FeaturedAward{
			AwardAmount:   rec.AwardAmount,
			AmountLabel:   analytics.FormatCurrency(rec.AwardAmount),
			RecipientName: rec.RecipientName,
			ActionDate:    rec.ActionDate.Format("January 02, 2006"),
			Description:   truncateWords(rec.AwardDescription, vars.FeaturedMaxWords),
		})
	}
	return awards
}

// Reload 定时任务入口：重新加载 CSV 换入新快照，旧快照在重载失败时保持不动。
// 归档开启时顺带落库本次报告并清理过期归档
func (s *DashboardService) Reload(ctx context.Context) error {
	records, report, err := loaders.LoadFile(s.csvPath)
	if err != nil {
		return fmt.Errorf("reload dataset failed: %w", err)
	}

	s.store.Replace(dataset.NewSnapshot(records, report))

	if s.archive == nil {
		return nil
	}
	if err := s.archive.ArchiveLoad(ctx, report); err != nil {
		s.logger.Warn("archive load report failed", zap.Error(err))
	}

	retentionDays, err := strconv.Atoi(vars.RETENTIONDAYS)
	if err != nil || retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	purged, err := s.archive.PurgeBefore(ctx, cutoff)
	if err != nil {
		s.logger.Warn("purge archived loads failed", zap.Error(err))
	} else if purged > 0 {
		s.logger.Info("purged archived loads", zap.Int64("purged", purged))
	}
	return nil
}

// LoadHistory 最近的加载归档记录（PG 未接入时返回明确错误，不算致命）
func (s *DashboardService) LoadHistory(ctx context.Context, limit int) ([]postgres.LoadRecord, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("archive storage not enabled")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.archive.RecentLoads(ctx, limit)
}

// truncateWords 按词数截断，截断后补 "..."
func truncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ") + "..."
}
