package adaptor

import (
	"errors"
	"net/http"

	"campus-parking/internal/usecase"
	"campus-parking/pkg/utils"

	"go.uber.org/zap"
)

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrAlreadyBooked),
		errors.Is(err, usecase.ErrInvalidRequest),
		errors.Is(err, usecase.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the status statusFor picks, or with override when non-zero.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, override int) {
	code := statusFor(err)
	if override != 0 {
		code = override
	}

	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", ve.Fields)

	case errors.Is(err, usecase.ErrPaymentInitiationFailed):
		log.Warn(operation+" failed - payment initiation", zap.Error(err))
		utils.ResponseInternalError(w, "Payment initiation failed. Please try again.")

	case code == http.StatusInternalServerError:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	default:
		log.Warn(operation+" failed", zap.Error(err), zap.Int("status", code))
		utils.ResponseError(w, code, err.Error(), nil)
	}
}
