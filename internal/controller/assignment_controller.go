package controller

import (
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/service"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// @Summary 分配课程
// @Description 为员工分配课程，已分配的员工会被跳过
// @Tags 作业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.AssignCourseRequest true "分配信息"
// @Success 201 {object} util.Response{data=model.AssignCourseResult}
// @Router /company/assignments [post]
func (c *AssignmentController) AssignCourse(ctx *gin.Context) {
	_, scope, ok := scopeFromContext(ctx)
	if !ok {
		return
	}

	var req model.AssignCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, err)
		return
	}

	result, err := c.AssignmentService.AssignCourse(ctx.Request.Context(), scope, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary 员工作业列表
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Param employeeId path string true "员工ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /company/employees/{employeeId}/assignments [get]
func (c *AssignmentController) ListEmployeeAssignments(ctx *gin.Context) {
	_, scope, ok := scopeFromContext(ctx)
	if !ok {
		return
	}

	assignments, err := c.AssignmentService.ListEmployeeAssignments(ctx.Request.Context(), scope, ctx.Param("employeeId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, assignments)
}

// @Summary 我的作业
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /assignments/mine [get]
func (c *AssignmentController) ListMyAssignments(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	// 管理员令牌不属于任何公司
	if user.CompanyID == "" {
		respondError(ctx, util.ErrCompanyRequired)
		return
	}

	scope := model.TenantScope{CompanyID: user.CompanyID}
	assignments, err := c.AssignmentService.ListEmployeeAssignments(ctx.Request.Context(), scope, user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, assignments)
}

// @Summary 更新课时进度
// @Description 员工只能更新自己的作业，公司账号可更新本公司作业
// @Tags 作业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "作业ID"
// @Param lessonId path string true "课时ID"
// @Param body body model.LessonProgressRequest true "课时状态"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /assignments/{id}/lessons/{lessonId} [patch]
func (c *AssignmentController) UpdateLessonProgress(ctx *gin.Context) {
	user, scope, ok := scopeFromContext(ctx)
	if !ok {
		return
	}

	var req model.LessonProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, err)
		return
	}

	employeeID := ""
	if user.Role == model.Employee {
		employeeID = user.UserID
	}

	assignment, err := c.AssignmentService.RecordLessonProgress(
		ctx.Request.Context(),
		scope,
		employeeID,
		ctx.Param("id"),
		ctx.Param("lessonId"),
		req.Status,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, assignment)
}
