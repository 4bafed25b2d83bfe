package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

type staticSource bool

func (s staticSource) Configured() bool { return bool(s) }

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
		gateway    string
		wantHint   string
	}{
		{"sample data", false, "sample", domain.ConfigurationHint},
		{"live data", true, "data_api", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(staticSource(tt.configured), tt.gateway).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp StatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.configured, resp.Configured)
			assert.Equal(t, tt.gateway, resp.Gateway)
			assert.Equal(t, tt.wantHint, resp.Hint)
		})
	}
}
