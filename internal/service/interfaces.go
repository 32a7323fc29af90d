package service

import (
	"context"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// Exporter generates a report for a form. Only one export runs at a time.
type Exporter interface {
	Export(ctx context.Context, form domain.Form) (*ExportResult, error)
	Busy() bool
}

// Confirmer decides whether a destructive action may proceed.
type Confirmer func() bool

// Confirmed always approves. Use it where the caller already asked.
func Confirmed() bool { return true }
