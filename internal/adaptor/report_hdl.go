package adaptor

import (
	"net/http"

	"campus-parking/internal/usecase"
	"campus-parking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// Report handles GET /api/parking/admin/report
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "build report", 0)
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// Transactions handles GET /api/parking/admin/transactions
func (h *ReportHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.service.TransactionHistory(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list transactions", 0)
		return
	}

	utils.ResponseSuccess(w, "success", txns)
}
