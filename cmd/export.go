package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"stepwise_backend/internal/service"
	"stepwise_backend/pkg/logger"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	problemsFile     = "problems.json"
	imageURLsFile    = "image-urls.txt"
	imagesDir        = "images"
	imageMappingFile = "url-filename-mapping.json"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "导出全部题目与图片地址列表",
	Long:  "导出 problems.json 与 image-urls.txt；加 --download-images 时把图片下载到 <out>/images/ 并生成 url-filename-mapping.json。",
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		download, _ := cmd.Flags().GetBool("download-images")
		timeout, _ := cmd.Flags().GetDuration("download-timeout")

		application, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer application.Close()

		bundle, err := application.Services.Problem.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export problems: %w", err)
		}
		if err := writeExport(outDir, bundle); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d problems, %d images to %s\n",
			len(bundle.Problems), len(bundle.ImageURLs), outDir)

		if !download {
			return nil
		}
		report, err := downloadImages(cmd.Context(), &http.Client{Timeout: timeout}, bundle.ImageURLs, outDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "downloaded=%d failed=%d\n", report.Downloaded, report.Failed)
		if report.Failed > 0 {
			return fmt.Errorf("%d images failed to download", report.Failed)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "export", "输出目录")
	exportCmd.Flags().Bool("download-images", false, "同时下载全部图片到 <out>/images/")
	exportCmd.Flags().Duration("download-timeout", 30*time.Second, "单张图片的下载超时")
}

// writeExport 写出题目 JSON 与每行一个地址的图片列表
func writeExport(outDir string, bundle *service.ExportBundle) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(bundle.Problems, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, problemsFile), data); err != nil {
		return err
	}

	urls := strings.Join(bundle.ImageURLs, "\n")
	if urls != "" {
		urls += "\n"
	}
	return writeFile(filepath.Join(outDir, imageURLsFile), []byte(urls))
}

func writeFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

type downloadReport struct {
	Downloaded int
	Failed     int
	// 地址 → images/ 下的文件名，下载失败的地址也会列出
	Files map[string]string
}

// downloadImages 逐个下载，单张失败只计数不中断
func downloadImages(ctx context.Context, client *http.Client, urls []string, outDir string) (*downloadReport, error) {
	dir := filepath.Join(outDir, imagesDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	report := &downloadReport{Files: make(map[string]string, len(urls))}
	used := make(map[string]bool, len(urls))
	for i, rawURL := range urls {
		name := imageFileName(rawURL, i)
		if used[name] {
			name = fmt.Sprintf("%d-%s", i+1, name)
		}
		used[name] = true
		report.Files[rawURL] = name

		if err := fetchImage(ctx, client, rawURL, filepath.Join(dir, name)); err != nil {
			report.Failed++
			logger.Log.Error("Download image failed", zap.String("url", rawURL), zap.Error(err))
			continue
		}
		report.Downloaded++
	}

	mapping, err := json.MarshalIndent(report.Files, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(outDir, imageMappingFile), mapping); err != nil {
		return nil, err
	}
	return report, nil
}

// imageFileName 取地址路径的最后一段，取不到时用 image-<序号>.bin
func imageFileName(rawURL string, index int) string {
	fallback := fmt.Sprintf("image-%d.bin", index+1)
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `\`) {
		return fallback
	}
	return name
}

func fetchImage(ctx context.Context, client *http.Client, rawURL, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
