package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/pkg/apiErrors"
	"github.com/vfg2006/dcommercial-report-api/pkg/middleware"
	"github.com/vfg2006/dcommercial-report-api/pkg/utils"

	"github.com/vfg2006/dcommercial-report-api/internal/usecases/reporting"
)

type AvailableMonthsResponse struct {
	Months []string `json:"months"`
}

// AvailableMonths lista os meses de competência selecionáveis no dashboard.
func AvailableMonths(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AvailableMonthsResponse{
			Months: service.AvailableMonths(),
		}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar lista de meses")
		}
	}
}

// GenerateDRE gera o relatório DRE dos meses de competência informados em
// ?months=AAAA-MM,AAAA-MM.
func GenerateDRE(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		rawMonths := r.URL.Query().Get("months")
		if rawMonths == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos um mês de competência em ?months", nil)
			return
		}

		var months []time.Time
		for _, raw := range strings.Split(rawMonths, ",") {
			month, err := utils.ParseMonth(strings.TrimSpace(raw))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês de competência inválido, esperado AAAA-MM: "+raw, nil)
				return
			}
			months = append(months, month)
		}

		report, err := service.GenerateDRE(session, months)
		if err != nil {
			handleReportError(w, r, err, "Erro ao gerar o relatório DRE")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao enviar o relatório DRE")
		}
	}
}

// handleReportError mapeia a expiração da sessão no back-office para o
// código que manda o cliente refazer o login; qualquer outro erro aborta o
// relatório sem agregação parcial.
func handleReportError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logrus.WithFields(logrus.Fields{
		"correlation_id": middleware.CorrelationIDFromContext(r.Context()),
	}).WithError(err).Error(message)

	if errors.Is(err, duzzclient.ErrSessionExpired) {
		apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Sessão expirada no back-office, faça login novamente", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrExternalService, message, nil)
}
