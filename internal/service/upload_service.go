package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// Uploader 对象存储写入
type Uploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}

// UploadResult 未上传的字段保持为空
type UploadResult struct {
	ProblemImageURL  string `json:"problemImageUrl,omitempty"`
	ProblemImageKey  string `json:"problemImageKey,omitempty"`
	SolutionImageURL string `json:"solutionImageUrl,omitempty"`
	SolutionImageKey string `json:"solutionImageKey,omitempty"`
}

type UploadService struct {
	Storage Uploader
	now     func() time.Time
}

func NewUploadService(storage Uploader) *UploadService {
	return &UploadService{Storage: storage, now: time.Now}
}

// UploadImages 两个文件都可为空，只处理提供的部分
func (s *UploadService) UploadImages(ctx context.Context, problemImage, solutionImage *multipart.FileHeader) (*UploadResult, error) {
	result := &UploadResult{}

	if problemImage != nil {
		url, key, err := s.UploadImage(ctx, "problem", problemImage)
		if err != nil {
			return nil, fmt.Errorf("upload problem image: %w", err)
		}
		result.ProblemImageURL, result.ProblemImageKey = url, key
	}

	if solutionImage != nil {
		url, key, err := s.UploadImage(ctx, "solution", solutionImage)
		if err != nil {
			return nil, fmt.Errorf("upload solution image: %w", err)
		}
		result.SolutionImageURL, result.SolutionImageKey = url, key
	}

	return result, nil
}

func (s *UploadService) UploadImage(ctx context.Context, kind string, fh *multipart.FileHeader) (string, string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == util.MimeOctetStream {
		detected, err := util.DetectMimeType(file)
		if err != nil {
			return "", "", err
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return "", "", err
		}
		contentType = detected
	}

	if !util.IsImage(contentType) {
		logger.Log.Warn("Non-image upload",
			zap.String("kind", kind),
			zap.String("filename", fh.Filename),
			zap.String("content_type", contentType),
		)
	}

	key := util.GenerateStorageKey(kind, util.ExtensionFor(contentType, fh.Filename), s.now())
	url, err := s.Storage.Upload(ctx, key, file, fh.Size, contentType)
	if err != nil {
		return "", "", err
	}

	logger.Log.Info("Image uploaded",
		zap.String("kind", kind),
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", fh.Size),
	)
	return url, key, nil
}
