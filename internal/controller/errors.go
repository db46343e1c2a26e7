package controller

import (
	"errors"
	"net/http"
	"stepwise_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为 HTTP 响应
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProblemNotFound):
		util.ProblemNotFound(ctx)
	case errors.Is(err, util.ErrStepNotFound),
		errors.Is(err, util.ErrConditionRequired),
		errors.Is(err, util.ErrInvalidSteps),
		errors.Is(err, util.ErrInvalidHintMode):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrStorageUnavailable):
		util.ServiceUnavailable(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// parseID 解析路径中的题目 ID
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.Error(ctx, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
