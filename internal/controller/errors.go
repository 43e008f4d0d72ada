package controller

import (
	"errors"
	"net/http"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 将业务错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCompanyRequired):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAssignmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrLessonOutOfRange):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, util.ErrUpstreamFetch):
		util.UpstreamUnavailable(ctx, err)
	default:
		util.LogInternalError(ctx, err)
	}
}
