package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{fmt.Errorf("%w: %w", domain.ErrDocumentUnavailable, errors.New("timeout")), "document"},
		{fmt.Errorf("zone %q: %w", "Nantucket Sound", domain.ErrRegionNotFound), "region"},
		{domain.ErrNoPeriodsParsed, "periods"},
		{fmt.Errorf("%w: %q", domain.ErrUnknownPeriod, "WED"), "period"},
		{domain.ErrInvalidRequest, "request"},
		{errors.New("surprise"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, errorKind(tt.err))
		})
	}
}
