package wire

import (
	"campus-parking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	r.Get("/admin/report", reportHandler.Report)
	r.Get("/admin/transactions", reportHandler.Transactions)
}
