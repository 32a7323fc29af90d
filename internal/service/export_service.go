package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/timesheet/internal/clock"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/alexanderramin/timesheet/internal/timecalc"
	"github.com/alexanderramin/timesheet/internal/validate"
	"github.com/google/uuid"
)

// ExportResult describes a successfully written report.
type ExportResult struct {
	ReportID string
	Path     string
	Filename string
	Bytes    int
	Document report.Document
}

// ValidationError carries the failed validation behind an export refusal.
// It unwraps to the individual failure sentinels.
type ValidationError struct {
	Result domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return "form is incomplete: " + strings.Join(e.Result.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Result.Err()
}

// ExportService renders and stores reports. A busy flag admits one export
// at a time; the flag is released on every exit path, panics included.
type ExportService struct {
	renderer report.Renderer
	sink     report.Sink
	clock    clock.Clock
	rules    domain.WeekRules
	observer UseCaseObserver
	newID    func() string

	busy atomic.Bool
}

func NewExportService(renderer report.Renderer, sink report.Sink, clk clock.Clock, rules domain.WeekRules, observers ...UseCaseObserver) *ExportService {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &ExportService{
		renderer: renderer,
		sink:     sink,
		clock:    clk,
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
		newID:    uuid.NewString,
	}
}

// Busy reports whether an export is currently running.
func (s *ExportService) Busy() bool {
	return s.busy.Load()
}

// Export validates form and, when it passes, renders and writes the report.
// It returns ErrExportInProgress without side effects while another export
// is running. Rendering and storage failures wrap ErrReportGenerationFailed.
func (s *ExportService) Export(ctx context.Context, form domain.Form) (result *ExportResult, err error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrExportInProgress
	}
	defer s.busy.Store(false)

	startedAt := time.Now().UTC()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", domain.ErrReportGenerationFailed, r)
		}
		fields := map[string]any{"format": s.renderer.Extension()}
		if result != nil {
			fields["report_id"] = result.ReportID
			fields["path"] = result.Path
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export_report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return s.export(ctx, form.Clone())
}

func (s *ExportService) export(ctx context.Context, form domain.Form) (*ExportResult, error) {
	check := validate.ValidateForm(form.RequiredFields(), form.Days[:])
	if !check.IsValid {
		return nil, &ValidationError{Result: check}
	}

	summary := timecalc.ComputeWeekSummary(form.DailyMinutes(), s.rules.ThresholdMinutes)
	doc := report.Build(form, summary, s.clock.Now(), s.newID())

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: rendering %s: %w", domain.ErrReportGenerationFailed, s.renderer.Extension(), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReportGenerationFailed, err)
	}

	name := report.Filename(doc, s.renderer.Extension())
	path, err := s.sink.Write(ctx, name, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReportGenerationFailed, err)
	}

	return &ExportResult{
		ReportID: doc.ID,
		Path:     path,
		Filename: name,
		Bytes:    buf.Len(),
		Document: doc,
	}, nil
}
