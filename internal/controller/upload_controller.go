package controller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"stepwise_backend/internal/service"
	"stepwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	UploadService *service.UploadService
}

func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{UploadService: uploadService}
}

// @Summary 上传题目与解答图片
// @Description 两个字段均可选，返回可公开访问的地址与存储 key
// @Tags 上传
// @Accept multipart/form-data
// @Produce json
// @Param problemImage formData file false "题目图片"
// @Param solutionImage formData file false "解答图片"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/upload-images [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	problemImage, err := optionalFile(ctx, util.UploadFieldProblem)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	solutionImage, err := optionalFile(ctx, util.UploadFieldSolution)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.UploadService.UploadImages(ctx.Request.Context(), problemImage, solutionImage)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// optionalFile 字段缺失返回 nil，表单无法解析时返回错误
func optionalFile(ctx *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile(field)
	if err == nil {
		return fh, nil
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return nil, err
}
