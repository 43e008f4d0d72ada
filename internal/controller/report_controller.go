package controller

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/service"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
	ExportService *service.ExportService
}

func NewReportController(reportService *service.ReportService, exportService *service.ExportService) *ReportController {
	return &ReportController{ReportService: reportService, ExportService: exportService}
}

// @Summary 获取公司合规报表
// @Description 汇总员工课程进度、完成率与逾期情况，管理员需传 companyId
// @Tags 报表
// @Produce json
// @Security ApiKeyAuth
// @Param startDate query string false "开始日期 YYYY-MM-DD 或 RFC3339"
// @Param endDate query string false "结束日期 YYYY-MM-DD 或 RFC3339"
// @Param department query string false "部门"
// @Param courseId query string false "课程ID"
// @Param companyId query string false "公司ID（管理员）"
// @Success 200 {object} util.Response{data=model.ReportData}
// @Failure 502 {object} util.Response
// @Router /company/reports [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	report, _, ok := c.generate(ctx)
	if !ok {
		return
	}

	util.Success(ctx, report)
}

// @Summary 下载合规报表 CSV
// @Tags 报表
// @Produce text/csv
// @Security ApiKeyAuth
// @Param startDate query string false "开始日期"
// @Param endDate query string false "结束日期"
// @Param department query string false "部门"
// @Param courseId query string false "课程ID"
// @Success 200 {file} file
// @Router /company/reports/export [get]
func (c *ReportController) DownloadCSV(ctx *gin.Context) {
	report, _, ok := c.generate(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := c.ExportService.WriteCSV(&buf, report); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.ExportsArchived.WithLabelValues("download").Inc()
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.ExportService.Filename()))
	ctx.Data(http.StatusOK, util.MimeCSV+"; charset=utf-8", buf.Bytes())
}

// @Summary 归档合规报表 CSV
// @Description 将报表写入对象存储并返回下载地址
// @Tags 报表
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.ExportResult}
// @Router /company/reports/export [post]
func (c *ReportController) ArchiveCSV(ctx *gin.Context) {
	report, scope, ok := c.generate(ctx)
	if !ok {
		return
	}

	result, err := c.ExportService.Archive(ctx.Request.Context(), scope, report)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

func (c *ReportController) generate(ctx *gin.Context) (*model.ReportData, model.TenantScope, bool) {
	_, scope, ok := scopeFromContext(ctx)
	if !ok {
		return nil, scope, false
	}

	var query model.ReportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ValidationFailed(ctx, err)
		return nil, scope, false
	}

	report, err := c.ReportService.GenerateReport(ctx.Request.Context(), scope, query)
	if err != nil {
		respondError(ctx, err)
		return nil, scope, false
	}

	return report, scope, true
}
