package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"autoactas/internal/docbuild"
	"autoactas/internal/finance"
	"autoactas/internal/infrastructure"
	"autoactas/internal/plan"
	"autoactas/internal/sheetscan"
	"autoactas/pkg/contracts/domain"
)

// defaultOperadorNombre signs documents when no operator record can be
// resolved for the request.
const defaultOperadorNombre = "JUAN CAMILO ROMERO BURGOS"

// Request is one document-generation order.
type Request struct {
	ProcesoID string `validate:"required"`
	// Tipo is the caller's document-type string; unknown values fall back to
	// the general hearing minutes.
	Tipo  string
	Fecha time.Time
	// Hora is the hearing time as "HH:MM" in 24h form, optional.
	Hora string

	// Proceso carries display metadata (case number, debtor). ID is filled
	// from ProcesoID when empty.
	Proceso domain.Proceso

	Titulo string
	Ciudad string

	// Operador, when set, overrides the directory lookup entirely.
	Operador      *domain.Operador
	OperadorEmail string `validate:"omitempty,email"`

	// Spreadsheet pins a specific workbook; nil means latest for the case.
	Spreadsheet *domain.SpreadsheetRef

	Overrides plan.Overrides

	// Notificar lists recipients of the generated-document email.
	Notificar []string `validate:"omitempty,dive,email"`
}

// Resultado reports what was generated and where it went.
type Resultado struct {
	RequestID string
	Tipo      domain.TipoActa
	Archivo   string
	Contenido []byte
	Upload    *domain.UploadResult
}

// Deps are the service collaborators. Any of them may be nil; the service
// degrades around missing ones.
type Deps struct {
	Claims          ClaimStore
	Attendance      AttendanceStore
	Sheets          SpreadsheetSource
	Uploader        Uploader
	Notifier        Notifier
	Directory       UserDirectory
	DefaultOperador domain.Operador
}

// ActaService orchestrates document generation: concurrent upstream fetches,
// table location, aggregation, plan building and rendering.
type ActaService struct {
	deps     Deps
	logger   *slog.Logger
	validate *validator.Validate
}

// NewActaService creates the service with the given collaborators.
func NewActaService(deps Deps, logger *slog.Logger) *ActaService {
	if logger == nil {
		logger = slog.Default()
	}
	if deps.DefaultOperador.Nombre == "" {
		deps.DefaultOperador = domain.Operador{Nombre: defaultOperadorNombre}
	}
	return &ActaService{
		deps:     deps,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Generar runs the full pipeline for one request. Only the two identity
// preconditions are fatal up front; upstream fetch failures degrade to a
// document with placeholder gaps, each one logged and counted.
func (s *ActaService) Generar(ctx context.Context, req Request) (*Resultado, error) {
	if strings.TrimSpace(req.ProcesoID) == "" {
		return nil, ErrMissingProcessID
	}
	if req.Fecha.IsZero() {
		return nil, ErrMissingDate
	}
	if err := s.validate.Struct(req); err != nil {
		actasFailed.WithLabelValues("validate").Inc()
		return nil, fmt.Errorf("validating request: %w", err)
	}

	reqID := uuid.NewString()
	// The id also travels in the context, so collaborators logging through
	// the context-aware global handler tag their records with it.
	ctx = infrastructure.WithRequestID(ctx, reqID)
	log := s.logger.With(
		slog.String("request_id", reqID),
		slog.String("proceso_id", req.ProcesoID))

	tipo := domain.ParseTipoActa(req.Tipo)
	log.Info("generating document", slog.String("tipo", string(tipo)))

	var (
		claims    []domain.Acreencia
		attendees []domain.Asistente
		sheets    []sheetscan.Sheet
		operador  domain.Operador
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		claims = s.fetchClaims(gctx, log, req.ProcesoID)
		return nil
	})
	g.Go(func() error {
		attendees = s.fetchAttendees(gctx, log, req.ProcesoID)
		return nil
	})
	g.Go(func() error {
		sheets = s.fetchWorkbook(gctx, log, req)
		return nil
	})
	g.Go(func() error {
		operador = s.resolveOperador(gctx, log, req)
		return nil
	})
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		actasFailed.WithLabelValues("canceled").Inc()
		return nil, err
	}

	located := sheetscan.LocateAll(sheets, creditorNames(claims), log)
	if len(sheets) > 0 {
		if located.Projection == nil {
			extractionMisses.WithLabelValues("projection").Inc()
		}
		if located.Voting == nil {
			extractionMisses.WithLabelValues("voting").Inc()
		}
	}

	proceso := req.Proceso
	if proceso.ID == "" {
		proceso.ID = req.ProcesoID
	}

	in := plan.Input{
		Tipo:       tipo,
		Proceso:    proceso,
		Fecha:      req.Fecha,
		Hora:       req.Hora,
		Titulo:     req.Titulo,
		Ciudad:     firstNonEmpty(req.Ciudad, proceso.Ciudad),
		Operador:   operador,
		Asistentes: attendees,
		Acreencias: claims,
		Tally:      finance.Tally(claims),
		Proyeccion: located.Projection,
		Votacion:   located.Voting,
		Overrides:  req.Overrides,
	}

	content, err := docbuild.Render(docbuild.Document{Plan: plan.Build(in)})
	if err != nil {
		actasFailed.WithLabelValues("render").Inc()
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	res := &Resultado{
		RequestID: reqID,
		Tipo:      tipo,
		Archivo:   fileName(proceso, req.Fecha, firstNonEmpty(req.Titulo, tituloPorTipo[tipo])),
		Contenido: content,
	}

	if s.deps.Uploader != nil {
		up, err := s.deps.Uploader.Upload(ctx, res.Archivo, content)
		if err != nil {
			actasFailed.WithLabelValues("upload").Inc()
			return nil, fmt.Errorf("uploading %s: %w", res.Archivo, err)
		}
		res.Upload = up
		log.Info("document uploaded",
			slog.String("file_id", up.FileID),
			slog.String("file_name", up.FileName))
	}

	s.notify(ctx, log, req, res)

	actasGenerated.WithLabelValues(string(tipo)).Inc()
	log.Info("document generated",
		slog.String("file_name", res.Archivo),
		slog.Int("bytes", len(content)))
	return res, nil
}

func (s *ActaService) fetchClaims(ctx context.Context, log *slog.Logger, procesoID string) []domain.Acreencia {
	if s.deps.Claims == nil {
		return nil
	}
	out, err := s.deps.Claims.Claims(ctx, procesoID)
	if err != nil {
		fetchDegraded.WithLabelValues("claims").Inc()
		log.Warn("claims fetch failed, generating without claim register", slog.String("error", err.Error()))
		return nil
	}
	return out
}

func (s *ActaService) fetchAttendees(ctx context.Context, log *slog.Logger, procesoID string) []domain.Asistente {
	if s.deps.Attendance == nil {
		return nil
	}
	out, err := s.deps.Attendance.Attendees(ctx, procesoID)
	if err != nil {
		fetchDegraded.WithLabelValues("attendance").Inc()
		log.Warn("attendance fetch failed, generating without roster", slog.String("error", err.Error()))
		return nil
	}
	return out
}

// fetchWorkbook resolves the workbook reference, downloads it and parses the
// grids. Any failure along the chain degrades to no workbook at all.
func (s *ActaService) fetchWorkbook(ctx context.Context, log *slog.Logger, req Request) []sheetscan.Sheet {
	if s.deps.Sheets == nil {
		return nil
	}
	ref := req.Spreadsheet
	if ref == nil {
		latest, err := s.deps.Sheets.Latest(ctx, req.ProcesoID)
		if err != nil {
			fetchDegraded.WithLabelValues("spreadsheet").Inc()
			log.Warn("workbook lookup failed", slog.String("error", err.Error()))
			return nil
		}
		ref = latest
	}
	if ref == nil {
		log.Info("no workbook on file, projection and voting tables will be placeholders")
		return nil
	}

	rc, err := s.deps.Sheets.Download(ctx, *ref)
	if err != nil {
		fetchDegraded.WithLabelValues("spreadsheet").Inc()
		log.Warn("workbook download failed",
			slog.String("file_id", ref.FileID),
			slog.String("error", err.Error()))
		return nil
	}
	defer rc.Close()

	sheets, err := sheetscan.LoadWorkbook(rc)
	if err != nil {
		fetchDegraded.WithLabelValues("spreadsheet").Inc()
		log.Warn("workbook parse failed",
			slog.String("file_id", ref.FileID),
			slog.String("error", err.Error()))
		return nil
	}
	return sheets
}

// resolveOperador picks the signing operator: explicit override, then the
// directory record for the request email, then the configured default.
func (s *ActaService) resolveOperador(ctx context.Context, log *slog.Logger, req Request) domain.Operador {
	if req.Operador != nil {
		return *req.Operador
	}
	if s.deps.Directory != nil && req.OperadorEmail != "" {
		op, err := s.deps.Directory.Operator(ctx, req.OperadorEmail)
		if err != nil {
			fetchDegraded.WithLabelValues("operator").Inc()
			log.Warn("operator lookup failed, using default",
				slog.String("email", req.OperadorEmail),
				slog.String("error", err.Error()))
		} else if op != nil {
			return *op
		}
	}
	return s.deps.DefaultOperador
}

func (s *ActaService) notify(ctx context.Context, log *slog.Logger, req Request, res *Resultado) {
	if s.deps.Notifier == nil || len(req.Notificar) == 0 {
		return
	}
	subject := fmt.Sprintf("Documento generado: %s", res.Archivo)
	body := fmt.Sprintf("Se generó el documento %q para el proceso %s.", res.Archivo, req.ProcesoID)
	if res.Upload != nil && res.Upload.WebViewLink != "" {
		body += "\n\nDisponible en: " + res.Upload.WebViewLink
	}
	if err := s.deps.Notifier.Notify(ctx, req.Notificar, subject, body); err != nil {
		fetchDegraded.WithLabelValues("notify").Inc()
		log.Warn("notification failed", slog.String("error", err.Error()))
	}
}

func creditorNames(claims []domain.Acreencia) []string {
	names := make([]string, 0, len(claims))
	for _, c := range claims {
		if c.Acreedor != "" {
			names = append(names, c.Acreedor)
		}
	}
	return names
}

var tituloPorTipo = map[domain.TipoActa]string{
	domain.TipoActaGeneral:          "Acta de Audiencia de Negociación de Deudas",
	domain.TipoActaSuspension:       "Acta de Suspensión de Audiencia",
	domain.TipoActaAcuerdo:          "Acta de Acuerdo de Pago",
	domain.TipoActaAcuerdoBilateral: "Acta de Acuerdo de Pago Bilateral",
	domain.TipoActaFracaso:          "Acta de Fracaso de la Negociación",
	domain.TipoActaAutoRechazo:      "Auto de Rechazo de la Solicitud",
	domain.TipoActaAutoNulidad:      "Auto de Nulidad",
}

// fileName builds "<numero> - <fecha> - <titulo>.docx", cleaned of characters
// file systems and Drive dislike.
func fileName(p domain.Proceso, fecha time.Time, titulo string) string {
	numero := p.NumeroProceso
	if numero == "" {
		numero = p.ID
	}
	raw := fmt.Sprintf("%s - %s - %s.docx", numero, fecha.Format("2006-01-02"), titulo)
	return sanitizeFileName(raw)
}

var fileNameReplacer = strings.NewReplacer(
	"/", "-", `\`, "-", ":", "-", "*", "", "?", "",
	`"`, "", "<", "", ">", "", "|", "-",
)

func sanitizeFileName(name string) string {
	name = fileNameReplacer.Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
