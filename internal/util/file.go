package util

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxExtensionLen = 10

// DetectMimeType 嗅探前 512 字节，客户端未声明 Content-Type 时使用
func DetectMimeType(reader io.Reader) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}

// ExtensionFor 由 MIME 子类型推断扩展名，其次取文件名后缀，最后退回 bin。
// 结果只含 [a-z0-9]，不会出现路径分隔符或点
func ExtensionFor(mimeType, filename string) string {
	if mimeType != "" && mimeType != MimeOctetStream {
		if i := strings.Index(mimeType, "/"); i >= 0 {
			sub := mimeType[i+1:]
			if j := strings.IndexAny(sub, ";+ /"); j >= 0 {
				sub = sub[:j]
			}
			if ext := sanitizeExtension(sub); ext != "" {
				return ext
			}
		}
	}
	if ext := sanitizeExtension(strings.TrimPrefix(filepath.Ext(filename), ".")); ext != "" {
		return ext
	}
	return "bin"
}

func sanitizeExtension(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	ext := b.String()
	if len(ext) > maxExtensionLen {
		ext = ext[:maxExtensionLen]
	}
	return ext
}

// GenerateStorageKey 生成 problems/<kind>-<毫秒时间戳>-<16位十六进制>.<ext>
func GenerateStorageKey(kind, ext string, now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("%s/%s-%d-%s.%s", ProblemKeyPrefix, kind, now.UnixMilli(), hex.EncodeToString(id[:8]), ext)
}
