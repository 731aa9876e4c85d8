// Package storage provides the document upload adapters: Google Drive for
// the service deployment and the local file system for the CLI.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"autoactas/internal/infrastructure"
	"autoactas/pkg/contracts/domain"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DriveUploader stores generated documents in a Google Drive folder.
type DriveUploader struct {
	svc      *drive.Service
	folderID string
	logger   *slog.Logger
}

// NewDriveUploader builds the uploader from service-account credentials JSON.
// folderID may be empty, in which case files land in the account root.
func NewDriveUploader(ctx context.Context, credentialsJSON []byte, folderID string, logger *slog.Logger) (*DriveUploader, error) {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(drive.DriveFileScope))
	if err != nil {
		return nil, fmt.Errorf("creating drive client: %w", err)
	}
	return &DriveUploader{svc: svc, folderID: folderID, logger: logger}, nil
}

// Upload creates the file and returns its Drive identity and links.
func (u *DriveUploader) Upload(ctx context.Context, fileName string, content []byte) (*domain.UploadResult, error) {
	meta := &drive.File{
		Name:     fileName,
		MimeType: docxMIME,
	}
	if u.folderID != "" {
		meta.Parents = []string{u.folderID}
	}

	f, err := u.svc.Files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(content)).
		Fields("id", "name", "webViewLink", "webContentLink").
		Do()
	if err != nil {
		return nil, fmt.Errorf("uploading %s to drive: %w", fileName, err)
	}

	u.logger.InfoContext(ctx, "file uploaded to drive",
		slog.String("file_id", f.Id),
		slog.String("file_name", f.Name))
	return &domain.UploadResult{
		FileID:         f.Id,
		FileName:       f.Name,
		WebViewLink:    f.WebViewLink,
		WebContentLink: f.WebContentLink,
	}, nil
}
