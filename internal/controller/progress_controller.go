package controller

import (
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/service"
	"stepwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// StepsRevealedRequest 本次揭示的步骤数
// swagger:model StepsRevealedRequest
type StepsRevealedRequest struct {
	Count *int `json:"count" binding:"required,min=0"`
}

func (c *ProgressController) record(ctx *gin.Context, event model.ProgressEvent, count int) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.ProgressService.Record(ctx.Request.Context(), util.GetUserFromContext(ctx), id, event, count); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// @Summary 记录查看题目
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=object} "{success}"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/problems/{id}/progress/view [post]
func (c *ProgressController) RecordView(ctx *gin.Context) {
	c.record(ctx, model.EventView, 0)
}

// @Summary 记录请求提示
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=object} "{success}"
// @Router /api/problems/{id}/progress/hint [post]
func (c *ProgressController) RecordHint(ctx *gin.Context) {
	c.record(ctx, model.EventHint, 0)
}

// @Summary 记录点击已知条件
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=object} "{success}"
// @Router /api/problems/{id}/progress/condition-click [post]
func (c *ProgressController) RecordConditionClick(ctx *gin.Context) {
	c.record(ctx, model.EventConditionClick, 0)
}

// @Summary 记录已揭示步骤数
// @Description 只保留历史最大值
// @Tags 学习进度
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param body body StepsRevealedRequest true "揭示步骤数"
// @Success 200 {object} util.Response{data=object} "{success}"
// @Router /api/problems/{id}/progress/steps-revealed [post]
func (c *ProgressController) RecordStepsRevealed(ctx *gin.Context) {
	var req StepsRevealedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.record(ctx, model.EventStepsRevealed, *req.Count)
}

// @Summary 记录查看完整解答
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=object} "{success}"
// @Router /api/problems/{id}/progress/solution-view [post]
func (c *ProgressController) RecordSolutionView(ctx *gin.Context) {
	c.record(ctx, model.EventSolutionView, 0)
}

// @Summary 获取个人学习统计
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ProgressStats}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	stats, err := c.ProgressService.Stats(ctx.Request.Context(), util.GetUserFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 获取单题学习进度
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Router /api/problems/{id}/progress [get]
func (c *ProgressController) ProblemProgress(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	progress, err := c.ProgressService.ForProblem(ctx.Request.Context(), util.GetUserFromContext(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
