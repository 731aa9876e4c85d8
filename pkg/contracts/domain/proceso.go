package domain

// Proceso identifies the insolvency proceeding a document is generated for.
type Proceso struct {
	ID                   string `json:"id" validate:"required"`
	NumeroProceso        string `json:"numero_proceso,omitempty"`
	Ciudad               string `json:"ciudad,omitempty"`
	DeudorNombre         string `json:"deudor_nombre,omitempty"`
	DeudorIdentificacion string `json:"deudor_identificacion,omitempty"`
}

// Operador is the conciliator who signs the generated document.
type Operador struct {
	Nombre             string `json:"nombre"`
	Identificacion     string `json:"identificacion"`
	TarjetaProfesional string `json:"tarjeta_profesional,omitempty"`
	Email              string `json:"email,omitempty"`
	// FirmaDataURL holds the signature image as a data URL (png/jpg/gif/bmp),
	// or empty when the operator has not uploaded one.
	FirmaDataURL string `json:"firma_data_url,omitempty"`
}

// SpreadsheetRef points at a stored workbook for a proceeding. The engine only
// needs the identifier and display name; fetching the bytes is the
// SpreadsheetSource collaborator's job.
type SpreadsheetRef struct {
	FileID         string `json:"file_id" validate:"required"`
	FileName       string `json:"file_name,omitempty"`
	WebViewLink    string `json:"web_view_link,omitempty"`
	WebContentLink string `json:"web_content_link,omitempty"`
}

// UploadResult is what the upload collaborator reports back after storing the
// generated document.
type UploadResult struct {
	FileID         string `json:"file_id"`
	FileName       string `json:"file_name"`
	WebViewLink    string `json:"web_view_link,omitempty"`
	WebContentLink string `json:"web_content_link,omitempty"`
}
