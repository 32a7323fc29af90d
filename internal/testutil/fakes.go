package testutil

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/alexanderramin/timesheet/internal/report"
)

// ErrInjected is the default error returned by failing fakes.
var ErrInjected = errors.New("injected failure")

// FailingRenderer fails every Render call with Err (ErrInjected when nil).
type FailingRenderer struct {
	Err error
}

func (r *FailingRenderer) Extension() string { return "pdf" }

func (r *FailingRenderer) Render(io.Writer, report.Document) error {
	if r.Err != nil {
		return r.Err
	}
	return ErrInjected
}

// PanickingRenderer panics inside Render, as a broken document library might.
type PanickingRenderer struct{}

func (PanickingRenderer) Extension() string { return "pdf" }

func (PanickingRenderer) Render(io.Writer, report.Document) error {
	panic("font table corrupted")
}

// BlockingRenderer signals Started when Render begins and waits for
// Release before writing a small payload.
type BlockingRenderer struct {
	Started chan struct{}
	Release chan struct{}
}

func NewBlockingRenderer() *BlockingRenderer {
	return &BlockingRenderer{Started: make(chan struct{}, 1), Release: make(chan struct{})}
}

func (r *BlockingRenderer) Extension() string { return "pdf" }

func (r *BlockingRenderer) Render(w io.Writer, doc report.Document) error {
	r.Started <- struct{}{}
	<-r.Release
	_, err := io.WriteString(w, "%PDF-blocked "+doc.ID)
	return err
}

// MemorySink keeps written reports in memory.
type MemorySink struct {
	mu    sync.Mutex
	Files map[string][]byte
	Err   error
}

func NewMemorySink() *MemorySink {
	return &MemorySink{Files: make(map[string][]byte)}
}

func (s *MemorySink) Write(_ context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.Files[name] = append([]byte(nil), data...)
	return "mem://" + name, nil
}

// Count returns the number of stored reports.
func (s *MemorySink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Files)
}
