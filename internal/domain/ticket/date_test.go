package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "plain", in: "25-12-2025", want: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: "  25-12-2025 ", want: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "iso layout", in: "2025-12-25", wantErr: true},
		{name: "impossible day", in: "31-02-2025", wantErr: true},
		{name: "inner space", in: "25 -12-2025", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDueDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, "25-12-2025", *FormatDueDate(&got))
		})
	}
}
