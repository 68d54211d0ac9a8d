package vars

import (
	"os"
)

// GetEnv 获取环境变量，如果不存在则返回默认值
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

const (
	// DEI 主题列的分隔符（一条记录可带多个主题标签）
	ThemeDelimiter = ";"

	// 机构金额分布只保留前 10 名
	TopAgencyCount = 10

	// Featured Awards 默认抽样条数 & 描述截断的最大词数
	FeaturedDefaultCount = 5
	FeaturedMaxWords     = 500
)

// 环境变量配置（支持 Docker 部署）
var (
	// 数据集 CSV，相对工作目录
	CSVPATH = GetEnv("CSV_PATH", "dei_contracts_master.csv")

	// HTTP 监听地址
	ADDR = GetEnv("ADDR", ":8081")

	// PG（加载记录归档用，连不上不影响看板本身）
	PGUSER = GetEnv("PGUSER", "root")
	PGPWD  = GetEnv("PGPWD", "root")
	PGDB   = GetEnv("PGDB", "deiDB")
	PGHOST = GetEnv("PGHOST", "localhost")
	PGPORT = GetEnv("PGPORT", "5432")

	// 定时任务：每天凌晨 3 点重新加载数据集
	RELOADCRON = GetEnv("RELOAD_CRON", "0 3 * * *")

	// 归档保留天数
	RETENTIONDAYS = GetEnv("RETENTION_DAYS", "30")
)
