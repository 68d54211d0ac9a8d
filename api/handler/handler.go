package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"dei-dashboard/api/response"
	"dei-dashboard/service"
	"dei-dashboard/types"
	"dei-dashboard/vars"
)

type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// Query 看板查询接口：body 里带过滤条件，空 body 等价于不加任何过滤
func (h *DashboardHandler) Query(c *gin.Context) {
	var req types.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.dashboardSvc.Query(c.Request.Context(), req.Filters)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Options 侧边栏控件可选项
func (h *DashboardHandler) Options(c *gin.Context) {
	response.Success(c, h.dashboardSvc.Options())
}

// Featured 随机抽样展示，?n= 控制条数
func (h *DashboardHandler) Featured(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(vars.FeaturedDefaultCount)))
	if err != nil || n < 0 {
		response.BadRequest(c, "参数错误: n 必须是非负整数")
		return
	}
	response.Success(c, h.dashboardSvc.Featured(n))
}

// LoadHistory 最近的数据集加载归档记录
func (h *DashboardHandler) LoadHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		response.BadRequest(c, "参数错误: limit 必须是非负整数")
		return
	}

	records, err := h.dashboardSvc.LoadHistory(c.Request.Context(), limit)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, records)
}
