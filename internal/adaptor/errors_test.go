package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-parking/internal/usecase"
	"campus-parking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		override    int
		wantCode    int
		wantMessage string
	}{
		{name: "not found", err: fmt.Errorf("slot Z9: %w", usecase.ErrNotFound), wantCode: http.StatusNotFound, wantMessage: "slot Z9: not found"},
		{name: "not found overridden", err: usecase.ErrNotFound, override: http.StatusBadRequest, wantCode: http.StatusBadRequest},
		{name: "already booked", err: fmt.Errorf("slot A1 is %w", usecase.ErrAlreadyBooked), wantCode: http.StatusBadRequest, wantMessage: "slot A1 is already booked"},
		{name: "conflict", err: usecase.ErrConflict, wantCode: http.StatusBadRequest},
		{name: "invalid", err: usecase.ErrInvalidRequest, wantCode: http.StatusBadRequest},
		{name: "validation", err: &usecase.ValidationError{Fields: map[string]string{"DurationHours": "Minimum value is 1"}}, wantCode: http.StatusBadRequest, wantMessage: "Validation failed"},
		{name: "payment initiation", err: fmt.Errorf("%w: declined", usecase.ErrPaymentInitiationFailed), wantCode: http.StatusInternalServerError, wantMessage: "Payment initiation failed. Please try again."},
		{name: "store failure is not leaked", err: errors.New("pq: connection refused"), wantCode: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, zap.NewNop(), tt.err, "test", tt.override)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Status)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}
