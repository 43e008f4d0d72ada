package controller

import (
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

// resolveScope 管理员通过 companyId 参数指定公司；其他角色固定为令牌中的公司，
// 传入其他公司的 companyId 视为越权
func resolveScope(ctx *gin.Context, user *util.Claims) (model.TenantScope, error) {
	requested := ctx.Query("companyId")

	if user.Role == model.Admin {
		if requested == "" {
			return model.TenantScope{}, util.ErrCompanyRequired
		}
		return model.TenantScope{CompanyID: requested}, nil
	}

	if requested != "" && requested != user.CompanyID {
		return model.TenantScope{}, util.ErrPermissionDenied
	}
	return model.TenantScope{CompanyID: user.CompanyID}, nil
}

// scopeFromContext 读取用户并解析租户，失败时已写入响应
func scopeFromContext(ctx *gin.Context) (*util.Claims, model.TenantScope, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, model.TenantScope{}, false
	}

	scope, err := resolveScope(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return nil, model.TenantScope{}, false
	}
	return user, scope, true
}
