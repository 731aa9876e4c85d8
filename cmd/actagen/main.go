// actagen generates an insolvency document from local inputs: a claims JSON
// file, an optional attendance JSON file and an optional payment workbook.
// The rendered .docx is written to the output directory.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"autoactas/internal/config"
	"autoactas/internal/infrastructure"
	"autoactas/internal/services"
	"autoactas/internal/storage"
	"autoactas/pkg/contracts/domain"
)

func main() {
	var (
		excelPath  = flag.String("excel", "", "payment projection workbook (.xlsx), optional")
		claimsPath = flag.String("claims", "", "claims JSON file, optional")
		attendPath = flag.String("asistentes", "", "attendance JSON file, optional")
		tipo       = flag.String("tipo", "audiencia", "document type identifier")
		procesoID  = flag.String("proceso", "", "proceeding id (required)")
		numero     = flag.String("numero", "", "case number shown in the document")
		deudor     = flag.String("deudor", "", "debtor name")
		fecha      = flag.String("fecha", "", "hearing date YYYY-MM-DD (defaults to today)")
		hora       = flag.String("hora", "", "hearing time HH:MM in 24h form, optional")
		titulo     = flag.String("titulo", "", "document title override")
		ciudad     = flag.String("ciudad", "", "hearing city")
		outDir     = flag.String("out", "", "output directory (defaults to config output.dir)")
		configPath = flag.String("config", "", "config file path")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *procesoID == "" {
		logger.Error("missing required flag -proceso")
		os.Exit(1)
	}

	hearingDate := time.Now()
	if *fecha != "" {
		hearingDate, err = time.Parse("2006-01-02", *fecha)
		if err != nil {
			logger.Error("invalid -fecha, expected YYYY-MM-DD", "error", err)
			os.Exit(1)
		}
	}

	dir := *outDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	city := *ciudad
	if city == "" {
		city = cfg.Locale.Ciudad
	}

	svc := services.NewActaService(services.Deps{
		Claims:          jsonClaims{path: *claimsPath},
		Attendance:      jsonAttendance{path: *attendPath},
		Sheets:          localSheets{path: *excelPath},
		Uploader:        storage.FileUploader{Dir: dir},
		DefaultOperador: operadorFromConfig(cfg.Operador, logger),
	}, logger)

	res, err := svc.Generar(context.Background(), services.Request{
		ProcesoID: *procesoID,
		Tipo:      *tipo,
		Fecha:     hearingDate,
		Hora:      *hora,
		Proceso: domain.Proceso{
			ID:            *procesoID,
			NumeroProceso: *numero,
			DeudorNombre:  *deudor,
		},
		Titulo: *titulo,
		Ciudad: city,
	})
	if err != nil {
		logger.Error("Document generation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(res.Upload.FileID)
}

// operadorFromConfig builds the signing operator, inlining the signature
// image file as a data URL when configured.
func operadorFromConfig(cfg config.OperadorConfig, logger *slog.Logger) domain.Operador {
	op := domain.Operador{
		Nombre:             cfg.Nombre,
		Identificacion:     cfg.Identificacion,
		TarjetaProfesional: cfg.TarjetaProfesional,
	}
	if cfg.FirmaFile == "" {
		return op
	}
	data, err := os.ReadFile(cfg.FirmaFile)
	if err != nil {
		logger.Warn("signature image unreadable, documents will carry a blank signature line",
			"path", cfg.FirmaFile, "error", err)
		return op
	}
	mime := map[string]string{
		".png": "image/png", ".jpg": "image/jpeg", ".jpeg": "image/jpeg",
		".gif": "image/gif", ".bmp": "image/bmp",
	}[strings.ToLower(filepath.Ext(cfg.FirmaFile))]
	if mime == "" {
		logger.Warn("unsupported signature image format", "path", cfg.FirmaFile)
		return op
	}
	op.FirmaDataURL = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return op
}

// jsonClaims reads the claim register from a local JSON file.
type jsonClaims struct{ path string }

func (c jsonClaims) Claims(context.Context, string) ([]domain.Acreencia, error) {
	if c.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading claims file: %w", err)
	}
	var claims []domain.Acreencia
	if err := json.Unmarshal(data, &claims); err != nil {
		return nil, fmt.Errorf("parsing claims file: %w", err)
	}
	return claims, nil
}

// jsonAttendance reads the attendee list from a local JSON file.
type jsonAttendance struct{ path string }

func (a jsonAttendance) Attendees(context.Context, string) ([]domain.Asistente, error) {
	if a.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("reading attendance file: %w", err)
	}
	var attendees []domain.Asistente
	if err := json.Unmarshal(data, &attendees); err != nil {
		return nil, fmt.Errorf("parsing attendance file: %w", err)
	}
	return attendees, nil
}

// localSheets serves a workbook from the local file system.
type localSheets struct{ path string }

func (s localSheets) Latest(context.Context, string) (*domain.SpreadsheetRef, error) {
	if s.path == "" {
		return nil, nil
	}
	return &domain.SpreadsheetRef{
		FileID:   s.path,
		FileName: filepath.Base(s.path),
	}, nil
}

func (s localSheets) Download(_ context.Context, ref domain.SpreadsheetRef) (io.ReadCloser, error) {
	return os.Open(ref.FileID)
}
