package job

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dei-dashboard/service"
	"dei-dashboard/vars"
)

// StartCronJob 启动定时重载：每天凌晨重新读一遍 CSV 换入新快照，
// 重载失败保留旧快照，只记日志不中断服务
func StartCronJob(dashboardSvc *service.DashboardService, logger *zap.Logger) {
	c := cron.New()

	_, err := c.AddFunc(vars.RELOADCRON, func() {
		ctx := context.Background()
		if err := dashboardSvc.Reload(ctx); err != nil {
			logger.Error("[Cron] dataset reload failed", zap.Error(err))
			return
		}
		logger.Info("[Cron] dataset reloaded")
	})
	if err != nil {
		logger.Error("[Cron] invalid reload spec", zap.String("spec", vars.RELOADCRON), zap.Error(err))
		return
	}

	c.Start()
}
