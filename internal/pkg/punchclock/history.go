package punchclock

import (
	"context"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/history"
)

type HistoryEndpoint struct {
	transport *Transport
}

// List implements history.HistoryRepository.
func (h *HistoryEndpoint) List(ctx context.Context) ([]history.Record, error) {
	const path = "/history"

	body, err := h.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var records []history.Record
	if err := decode(path, body, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []history.Record{}
	}
	return records, nil
}

var _ history.HistoryRepository = (*HistoryEndpoint)(nil)
