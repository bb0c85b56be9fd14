package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/fidelity"
	"github.com/vfg2006/dcommercial-report-api/pkg/apiErrors"
	"github.com/vfg2006/dcommercial-report-api/pkg/middleware"
)

// FidelityReport gera o relatório de consumo dos planos de fidelidade da
// janela móvel de 30 dias.
func FidelityReport(service fidelity.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		report, err := service.GenerateReport(session)
		if err != nil {
			handleReportError(w, r, err, "Erro ao gerar o relatório de fidelidade")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao enviar o relatório de fidelidade")
		}
	}
}
