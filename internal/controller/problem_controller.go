package controller

import (
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/service"
	"stepwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService    *service.ProblemService
	ExtractionService *service.ExtractionService
	HintService       *service.HintService
	GuidingService    *service.GuidingService
}

func NewProblemController(
	problemService *service.ProblemService,
	extractionService *service.ExtractionService,
	hintService *service.HintService,
	guidingService *service.GuidingService,
) *ProblemController {
	return &ProblemController{
		ProblemService:    problemService,
		ExtractionService: extractionService,
		HintService:       hintService,
		GuidingService:    guidingService,
	}
}

// CreateProblemRequest 创建题目
// swagger:model CreateProblemRequest
type CreateProblemRequest struct {
	Title            string       `json:"title"`
	ProblemText      string       `json:"problemText"`
	ProblemTextEn    string       `json:"problemTextEn"`
	ProblemImageURL  string       `json:"problemImageUrl"`
	ProblemImageKey  string       `json:"problemImageKey"`
	SolutionImageURL string       `json:"solutionImageUrl"`
	SolutionImageKey string       `json:"solutionImageKey"`
	Steps            []model.Step `json:"steps" binding:"required"`
	Conditions       []string     `json:"conditions"`
}

// @Summary 创建题目（管理员）
// @Description 保存上传并抽取好的题目、步骤与已知条件
// @Tags 题目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateProblemRequest true "题目内容"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "非管理员"
// @Failure 503 {object} util.Response "数据库不可用"
// @Router /api/problems [post]
func (c *ProblemController) Create(ctx *gin.Context) {
	var req CreateProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.ProblemService.Create(ctx.Request.Context(), util.GetUserFromContext(ctx), service.CreateProblemInput{
		Title:            req.Title,
		ProblemText:      req.ProblemText,
		ProblemTextEn:    req.ProblemTextEn,
		ProblemImageURL:  req.ProblemImageURL,
		ProblemImageKey:  req.ProblemImageKey,
		SolutionImageURL: req.SolutionImageURL,
		SolutionImageKey: req.SolutionImageKey,
		Steps:            req.Steps,
		Conditions:       req.Conditions,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

// @Summary 题目列表
// @Tags 题目
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Problem}
// @Router /api/problems [get]
func (c *ProblemController) List(ctx *gin.Context) {
	problems, err := c.ProblemService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if problems == nil {
		problems = []model.Problem{}
	}
	util.Success(ctx, problems)
}

// @Summary 题目详情
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Problem}
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/problems/{id} [get]
func (c *ProblemController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	problem, err := c.ProblemService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, problem)
}

// @Summary 从图片抽取解题步骤
// @Description 识别题目与解答图片，返回题目文字、已知条件与 step-1..n 步骤
// @Tags 题目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ExtractInput true "图片地址"
// @Success 200 {object} util.Response{data=service.ExtractionResult}
// @Failure 500 {object} util.Response "模型返回无效内容"
// @Router /api/problems/extract-steps [post]
func (c *ProblemController) ExtractSteps(ctx *gin.Context) {
	var req service.ExtractInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ExtractionService.Extract(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// HintRequest 提示请求，mode 决定使用哪些字段
// swagger:model HintRequest
type HintRequest struct {
	ProblemImageURL   string       `json:"problemImageUrl"`
	SolutionImageURL  string       `json:"solutionImageUrl"`
	Steps             []model.Step `json:"steps"`
	Conditions        []string     `json:"conditions"`
	Mode              string       `json:"mode" binding:"required"`
	SelectedStepID    string       `json:"selectedStepId"`
	SelectedText      string       `json:"selectedText"`
	SelectedCondition string       `json:"selectedCondition"`
}

// @Summary 获取 AI 提示
// @Description mode=why 解释当前步骤，mode=next 提示下一步，mode=explainCondition 解释已知条件
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body HintRequest true "提示请求"
// @Success 200 {object} util.Response{data=object} "{hint}"
// @Failure 400 {object} util.Response "未找到选中的步骤 / 未选中条件"
// @Router /api/problems/hint [post]
func (c *ProblemController) Hint(ctx *gin.Context) {
	var req HintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	selection, err := service.NewHintSelection(req.Mode, req.SelectedStepID, req.SelectedText, req.SelectedCondition)
	if err != nil {
		respondError(ctx, err)
		return
	}

	hint, err := c.HintService.Hint(ctx.Request.Context(), service.HintRequest{
		Steps:      req.Steps,
		Conditions: req.Conditions,
		Selection:  selection,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"hint": hint})
}

// GuidingQuestionsRequest 生成引导问题
// swagger:model GuidingQuestionsRequest
type GuidingQuestionsRequest struct {
	ProblemImageURL  string       `json:"problemImageUrl"`
	SolutionImageURL string       `json:"solutionImageUrl"`
	ProblemText      string       `json:"problemText"`
	Steps            []model.Step `json:"steps"`
	Conditions       []string     `json:"conditions"`
}

// @Summary 生成苏格拉底式引导问题
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body GuidingQuestionsRequest true "题目上下文"
// @Success 200 {object} util.Response{data=object} "{questions}"
// @Router /api/problems/guiding-questions [post]
func (c *ProblemController) GuidingQuestions(ctx *gin.Context) {
	var req GuidingQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.GuidingService.Generate(ctx.Request.Context(), service.GuidingInput{
		ProblemImageURL:  req.ProblemImageURL,
		SolutionImageURL: req.SolutionImageURL,
		ProblemText:      req.ProblemText,
		Steps:            req.Steps,
		Conditions:       req.Conditions,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": questions})
}
