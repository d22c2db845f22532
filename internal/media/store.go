package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"campus-events/internal/metrics"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

type Store interface {
	// 上傳：只接受 png/jpeg/gif/webp，回傳公開 URL
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// 只收點陣圖；SVG 可內嵌 script，不接受
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

type FileStoreImpl struct {
	dir      string
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

func NewFileStore(dir, baseURL string, maxBytes int64) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &FileStoreImpl{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
		now:      time.Now,
	}, nil
}

// sanitizeName 只保留安全字元，避免路徑穿越
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "upload"
	}
	return out
}

func (s *FileStoreImpl) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperrors.ErrMediaTooLarge
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		return "", apperrors.ErrUnsupportedMediaType
	}

	// 副檔名一律依實際內容決定，避免 .svg/.html 被當成可執行內容回傳
	fileName := sanitizeName(name)
	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName)) + mt.Extension()
	fileName = fmt.Sprintf("%d_%s", s.now().UnixNano(), fileName)

	pendingFile, err := renameio.NewPendingFile(filepath.Join(s.dir, fileName), renameio.WithPermissions(0o644))
	if err != nil {
		return "", fmt.Errorf("create pending media file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.WithComponent("media").Debug("cleanup pending media file", zap.Error(err))
		}
	}()

	if _, err := io.Copy(pendingFile, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("write media data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("atomically replace media file: %w", err)
	}

	metrics.MediaUploadBytes.Add(float64(len(data)))
	logger.WithComponent("media").Info("media stored",
		zap.String("file", fileName),
		zap.String("content_type", mt.String()),
		zap.Int("bytes", len(data)))

	return s.baseURL + "/" + fileName, nil
}
