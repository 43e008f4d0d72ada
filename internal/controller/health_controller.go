package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/repository"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	AssignmentRepo repository.AssignmentRepository
}

func NewHealthController(assignmentRepo repository.AssignmentRepository) *HealthController {
	return &HealthController{AssignmentRepo: assignmentRepo}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := c.AssignmentRepo.Ping(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
