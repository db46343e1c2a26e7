package cmd

import (
	"context"
	"fmt"
	"io"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/service"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var refreshTextsCmd = &cobra.Command{
	Use:   "refresh-texts",
	Short: "根据题目图片重新识别中英文题目文本",
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		onlyID, _ := cmd.Flags().GetUint("id")

		application, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer application.Close()

		report, err := refreshTexts(cmd.Context(), application.Services.Problem, application.Services.Extraction,
			refreshOptions{DryRun: dryRun, OnlyID: onlyID}, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "updated=%d skipped=%d failed=%d\n", report.Updated, report.Skipped, report.Failed)
		if report.Failed > 0 {
			return fmt.Errorf("%d problems failed", report.Failed)
		}
		return nil
	},
}

func init() {
	refreshTextsCmd.Flags().Bool("dry-run", false, "只打印识别结果，不写入数据库")
	refreshTextsCmd.Flags().Uint("id", 0, "只处理指定题目")
}

type problemTextStore interface {
	List(ctx context.Context) ([]model.Problem, error)
	UpdateTexts(ctx context.Context, id uint, texts *service.ProblemTexts) error
}

type textExtractor interface {
	ExtractTexts(ctx context.Context, problemImageURL string) (*service.ProblemTexts, error)
}

type refreshOptions struct {
	DryRun bool
	OnlyID uint
}

type refreshReport struct {
	Updated int
	Skipped int
	Failed  int
}

// refreshTexts 没有题目图片的题目记为 skipped；dry-run 只打印，不计入 updated
func refreshTexts(ctx context.Context, store problemTextStore, extractor textExtractor, opts refreshOptions, out io.Writer) (*refreshReport, error) {
	problems, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}

	report := &refreshReport{}
	for _, p := range problems {
		if opts.OnlyID != 0 && p.ID != opts.OnlyID {
			continue
		}
		imageURL := util.StringValue(p.ProblemImageURL)
		if imageURL == "" {
			report.Skipped++
			continue
		}

		texts, err := extractor.ExtractTexts(ctx, imageURL)
		if err != nil {
			report.Failed++
			logger.Log.Error("Refresh problem texts failed", zap.Uint("problem_id", p.ID), zap.Error(err))
			continue
		}

		if opts.DryRun {
			fmt.Fprintf(out, "#%d\n  zh: %s\n  en: %s\n", p.ID, texts.ProblemText, texts.ProblemTextEn)
			continue
		}
		if err := store.UpdateTexts(ctx, p.ID, texts); err != nil {
			report.Failed++
			logger.Log.Error("Update problem texts failed", zap.Uint("problem_id", p.ID), zap.Error(err))
			continue
		}
		report.Updated++
	}
	return report, nil
}
