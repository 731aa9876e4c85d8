package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"autoactas/pkg/contracts/domain"
)

// FileUploader writes generated documents into a local directory. The CLI
// uses it in place of Drive.
type FileUploader struct {
	Dir string
}

func (u FileUploader) Upload(_ context.Context, fileName string, content []byte) (*domain.UploadResult, error) {
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", u.Dir, err)
	}
	path := filepath.Join(u.Dir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return &domain.UploadResult{FileID: path, FileName: fileName}, nil
}
