package postgres

import "time"

// LoadRecord 对应数据库里的 dataset_loads 表：每次数据集加载归档一行
type LoadRecord struct {
	// ID 不用自增，直接用加载时生成的 UUID
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	SnapshotID  string    `gorm:"column:snapshot_id;type:uuid;index" json:"snapshot_id"`
	FileName    string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	TotalRows   int       `gorm:"column:total_rows" json:"total_rows"`
	LoadedRows  int       `gorm:"column:loaded_rows" json:"loaded_rows"`
	SkippedRows int       `gorm:"column:skipped_rows" json:"skipped_rows"`
	LoadedAt    time.Time `gorm:"column:loaded_at;index" json:"loaded_at"`

	CreatedAt time.Time `json:"-"`
}

// TableName 强制指定表名
func (LoadRecord) TableName() string {
	return "dataset_loads"
}

// SkippedRowRecord 对应 dataset_skipped_rows 表：被剔除的脏行明细，方便排查数据质量
type SkippedRowRecord struct {
	ID      string `gorm:"column:id;primaryKey;type:uuid"`
	LoadID  string `gorm:"column:load_id;type:uuid;index"`
	LineNo  int    `gorm:"column:line_no"`
	Reason  string `gorm:"column:reason;type:text"`
	RawLine string `gorm:"column:raw_line;type:text"`

	CreatedAt time.Time
}

func (SkippedRowRecord) TableName() string {
	return "dataset_skipped_rows"
}
