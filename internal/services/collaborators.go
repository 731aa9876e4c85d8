package services

import (
	"context"
	"io"

	"autoactas/pkg/contracts/domain"
)

// Collaborator boundaries. The service only depends on these interfaces; the
// concrete Drive, file-system and Resend adapters live in internal/storage
// and internal/notify, and tests supply stubs.

// ClaimStore fetches the claim register of a proceeding.
type ClaimStore interface {
	Claims(ctx context.Context, procesoID string) ([]domain.Acreencia, error)
}

// AttendanceStore fetches the recorded hearing attendees.
type AttendanceStore interface {
	Attendees(ctx context.Context, procesoID string) ([]domain.Asistente, error)
}

// SpreadsheetSource resolves and downloads the proceeding's payment workbook.
type SpreadsheetSource interface {
	// Latest returns the most recent workbook reference for the proceeding,
	// or nil when none has been uploaded.
	Latest(ctx context.Context, procesoID string) (*domain.SpreadsheetRef, error)
	Download(ctx context.Context, ref domain.SpreadsheetRef) (io.ReadCloser, error)
}

// Uploader stores the generated document and reports where it landed.
type Uploader interface {
	Upload(ctx context.Context, fileName string, content []byte) (*domain.UploadResult, error)
}

// Notifier sends the generated-document notification email.
type Notifier interface {
	Notify(ctx context.Context, to []string, subject, body string) error
}

// UserDirectory resolves the operator record that signs the document.
type UserDirectory interface {
	Operator(ctx context.Context, email string) (*domain.Operador, error)
}
