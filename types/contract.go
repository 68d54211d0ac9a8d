package types

import (
	"strings"
	"time"
)

// 合同规模分类（按奖励金额分档，区间右闭）
const (
	SizeMicro  = "Micro (< $10K)"
	SizeSmall  = "Small ($10K - $100K)"
	SizeMedium = "Medium ($100K - $1M)"
	SizeLarge  = "Large ($1M - $10M)"
	SizeMajor  = "Major (> $10M)"
)

// ContractRecord 一条联邦合同记录（数据集的一行，加载后只读）
type ContractRecord struct {
	AwardID            string    `json:"award_id"`
	RecipientName      string    `json:"recipient_name"`
	AwardingAgencyName string    `json:"awarding_agency_name"`
	AwardAmount        float64   `json:"award_amount"`
	ActionDate         time.Time `json:"action_date"`
	AwardDescription   string    `json:"award_description"`
	DEIThemes          []string  `json:"dei_themes"`

	// 加载时派生的字段
	ContractStartDate    *time.Time `json:"contract_start_date,omitempty"`
	ContractEndDate      *time.Time `json:"contract_end_date,omitempty"`
	ContractDurationDays int        `json:"contract_duration_days,omitempty"`
	AwardSizeCategory    string     `json:"award_size_category"`
}

// HasTheme 判断记录是否带某个主题标签（大小写不敏感）
func (r *ContractRecord) HasTheme(theme string) bool {
	for _, t := range r.DEIThemes {
		if strings.EqualFold(t, theme) {
			return true
		}
	}
	return false
}
