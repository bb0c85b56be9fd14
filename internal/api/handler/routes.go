package handler

import (
	"net/http"

	"github.com/vfg2006/dcommercial-report-api/internal/api/handler/router"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/fidelity"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/months",
			Method:  http.MethodGet,
			Handler: AvailableMonths(service),
		},
		{
			Path:    "/v1/reports/dre",
			Method:  http.MethodGet,
			Handler: GenerateDRE(service),
		},
	}
}

func Fidelity(service fidelity.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/fidelity",
			Method:  http.MethodGet,
			Handler: FidelityReport(service),
		},
	}
}
