package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dei-dashboard/api/handler"
	"dei-dashboard/api/router"
	"dei-dashboard/job"
	"dei-dashboard/logic/ingestion/loaders"
	"dei-dashboard/service"
	"dei-dashboard/storage/dataset"
	"dei-dashboard/storage/postgres"
	"dei-dashboard/vars"
)

func main() {
	ctx := context.Background()

	// 0. 初始化日志
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Sync()

	// 1. 加载数据集（文件缺失是唯一的致命启动错误）
	records, report, err := loaders.LoadFile(vars.CSVPATH)
	if err != nil {
		log.Fatalf("数据集加载失败: %v", err)
	}
	log.Printf("数据集加载完成: %d 行有效, %d 行被跳过\n", report.LoadedRows, len(report.SkippedRows))

	// 2. 初始化内存快照仓库（加载后只读，重载时整体换入）
	store := dataset.NewStore(dataset.NewSnapshot(records, report), logger)

	// 3. 初始化 PG 归档（可选：连不上只关掉归档，不影响看板）
	var archiveRepo *postgres.ArchiveRepo
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		vars.PGHOST, vars.PGUSER, vars.PGPWD, vars.PGDB, vars.PGPORT)
	if db, err := postgres.InitDB(dsn); err != nil {
		log.Println("PostgreSQL 连接失败，归档功能关闭:", err)
	} else {
		archiveRepo = postgres.NewArchiveRepo(db)
		if err := archiveRepo.ArchiveLoad(ctx, report); err != nil {
			logger.Warn("archive startup load failed", zap.Error(err))
		}
	}

	// 4. 初始化 Service (业务层)
	dashboardSvc := service.NewDashboardService(store, archiveRepo, vars.CSVPATH, logger)

	// 5. 启动定时重载任务
	job.StartCronJob(dashboardSvc, logger)

	// 6. 初始化 Handler (API 层) 并启动 Web Server
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	r := gin.Default()
	router.RegisterRoutes(r, dashboardHandler)

	log.Println("Server running on", vars.ADDR)
	if err := r.Run(vars.ADDR); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
