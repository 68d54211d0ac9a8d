package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dei-dashboard/types"
)

// ArchiveRepo 封装对加载归档表的所有操作
type ArchiveRepo struct {
	db *gorm.DB
}

// NewArchiveRepo 构造函数
func NewArchiveRepo(db *gorm.DB) *ArchiveRepo {
	return &ArchiveRepo{db: db}
}

// ArchiveLoad 把一次加载报告落库：主记录 + 脏行明细放在同一个事务里
func (r *ArchiveRepo) ArchiveLoad(ctx context.Context, report *types.LoadReport) error {
	record := &LoadRecord{
		ID:          uuid.NewString(),
		SnapshotID:  report.SnapshotID,
		FileName:    report.FileName,
		TotalRows:   report.TotalRows,
		LoadedRows:  report.LoadedRows,
		SkippedRows: len(report.SkippedRows),
		LoadedAt:    report.LoadedAt,
	}

	// WithContext 允许在超时的时候取消数据库操作
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		for _, skipped := range report.SkippedRows {
			row := &SkippedRowRecord{
				ID:      uuid.NewString(),
				LoadID:  record.ID,
				LineNo:  skipped.Line,
				Reason:  skipped.Reason,
				RawLine: skipped.Raw,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RecentLoads 最近的加载记录，loaded_at 倒序
func (r *ArchiveRepo) RecentLoads(ctx context.Context, limit int) ([]LoadRecord, error) {
	var records []LoadRecord
	err := r.db.WithContext(ctx).
		Order("loaded_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// SkippedRowsForLoad 某次加载的脏行明细
func (r *ArchiveRepo) SkippedRowsForLoad(ctx context.Context, loadID string) ([]SkippedRowRecord, error) {
	var rows []SkippedRowRecord
	err := r.db.WithContext(ctx).
		Where("load_id = ?", loadID).
		Order("line_no ASC").
		Find(&rows).Error
	return rows, err
}

// PurgeBefore 定时任务批量清理过期归档，返回删掉的加载记录数
func (r *ArchiveRepo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&LoadRecord{}).
		Where("loaded_at < ?", cutoff).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var purged int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("load_id IN ?", ids).Delete(&SkippedRowRecord{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&LoadRecord{})
		purged = result.RowsAffected
		return result.Error
	})
	return purged, err
}
