package dataset

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"dei-dashboard/logic/analytics"
	"dei-dashboard/types"
)

// Snapshot 一次加载产生的只读数据集快照。
// 记录本身加载后不再改动；跨度和侧边栏选项在构造时算好，查询路径零拷贝
type Snapshot struct {
	ID       string
	Records  []types.ContractRecord
	Report   *types.LoadReport
	LoadedAt time.Time

	Span           analytics.Span
	Agencies       []string // 去重 + 升序，供侧边栏多选
	Themes         []string
	SizeCategories []string
}

// NewSnapshot 构造快照并预计算派生信息
func NewSnapshot(records []types.ContractRecord, report *types.LoadReport) *Snapshot {
	snap := &Snapshot{
		ID:       report.SnapshotID,
		Records:  records,
		Report:   report,
		LoadedAt: report.LoadedAt,
	}

	agencySet := make(map[string]bool)
	themeSet := make(map[string]bool)
	sizeSet := make(map[string]bool)

	for i, rec := range records {
		if i == 0 || rec.ActionDate.Before(snap.Span.DateMin) {
			snap.Span.DateMin = rec.ActionDate
		}
		if i == 0 || rec.ActionDate.After(snap.Span.DateMax) {
			snap.Span.DateMax = rec.ActionDate
		}
		if rec.AwardAmount > snap.Span.AmountMax {
			snap.Span.AmountMax = rec.AwardAmount
		}
		agencySet[rec.AwardingAgencyName] = true
		sizeSet[rec.AwardSizeCategory] = true
		for _, t := range rec.DEIThemes {
			themeSet[t] = true
		}
	}

	snap.Agencies = sortedKeys(agencySet)
	snap.Themes = sortedKeys(themeSet)
	snap.SizeCategories = sortedKeys(sizeSet)
	return snap
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Store 进程内唯一的数据集持有者。
// 读多写少：查询走 RLock，只有定时重载会换快照
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	logger  *zap.Logger
}

func NewStore(snap *Snapshot, logger *zap.Logger) *Store {
	return &Store{current: snap, logger: logger}
}

// Current 返回当前快照；调用方只读，不做拷贝
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace 原子换入新快照（定时重载用），旧快照等在途查询结束后自然回收
func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	old := s.current
	s.current = snap
	s.mu.Unlock()

	s.logger.Info("dataset snapshot replaced",
		zap.String("snapshot_id", snap.ID),
		zap.Int("records", len(snap.Records)),
		zap.Int("previous_records", len(old.Records)))
}
