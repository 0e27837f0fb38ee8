package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/Sahindou/ifrit-ticket/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticket_types:\n  - incident\n  - amélioration\n"), 0o600))

	var seed tickettype.SeedFile
	require.NoError(t, LoadYAMLFile(path, &seed))
	assert.Equal(t, []string{"incident", "amélioration"}, seed.TicketTypes)

	assert.Error(t, LoadYAMLFile(filepath.Join(dir, "missing.yaml"), &seed))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ticket_types: [unclosed"), 0o600))
	assert.Error(t, LoadYAMLFile(bad, &seed))
}

func TestParseUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "valid", value: "3F1C2A9E-8D4B-4C8E-9A51-0F6B2D7C1E44", want: "3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44"},
		{name: "malformed", value: "42", wantErr: ErrInvalidUUID},
		{name: "empty", value: "", wantErr: ErrEmptyParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}
			got, err := ParseUUIDParam(c, "id")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetUserIDFromContext(c)
	assert.ErrorIs(t, err, ErrNoClaims)

	c.Set("claims", &types.Claims{UserID: "u-1"})
	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestValidationMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	bind := func(body string) error {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var in ticket.CreateTicketInput
		return c.ShouldBindJSON(&in)
	}

	err := bind(`{"title":"   ","description":"ok","type_id":"nope","due_date":"31-02-2025","priority":"URGENT"}`)
	fields, ok := ValidationMessages(err)
	require.True(t, ok)
	assert.Equal(t, "title must not be blank", fields["title"])
	assert.Equal(t, "type_id must be a valid UUID", fields["type_id"])
	assert.Equal(t, "due_date must be a valid date in DD-MM-YYYY format", fields["due_date"])
	assert.Contains(t, fields["priority"], "must be one of")
	assert.NotContains(t, fields, "description")

	_, ok = ValidationMessages(bind(`{"title":`))
	assert.False(t, ok)

	assert.NoError(t, bind(`{"title":"Printer","description":"Smoke","type_id":"3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44","due_date":"25-12-2025"}`))
	assert.NoError(t, bind(`{"title":"Printer","description":"Smoke","type_id":"3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44","due_date":" 25-12-2025 "}`))
}

func TestJoinMessages(t *testing.T) {
	got := JoinMessages(map[string]string{"title": "title is required", "description": "description is required"})
	assert.Equal(t, "description is required; title is required", got)
}
