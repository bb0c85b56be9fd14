package duzzclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client expõe uma operação de busca por recurso da API do DUZZ
// Commercial. Toda operação de dados recebe a sessão explicitamente e a
// envia nos cabeçalhos company/sessionToken.
type Client interface {
	Authenticate(username, password, company string) (*domain.Session, error)
	GetStocks(session domain.Session) ([]domain.Stock, error)
	GetSales(session domain.Session, filter SalesFilter) ([]domain.Sale, error)
	GetPayments(session domain.Session, startRange, endRange time.Time) ([]domain.Payment, error)
	GetBillsToPay(session domain.Session) ([]domain.Bill, error)
	GetProduct(session domain.Session, productID string) (*domain.Product, error)
	GetService(session domain.Session, serviceID string) (*domain.Service, error)
	GetCustomer(session domain.Session, customerID int) (*domain.Customer, error)
	GetFidelityPlans(session domain.Session) ([]domain.Plan, error)
}

type DuzzClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &DuzzClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Duzz.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// getJSON executa um GET autenticado e decodifica a resposta JSON em out.
// Retorna found=false (sem erro) para HTTP 404, que o vendor usa como
// "sem dados". HTTP 401 sinaliza sessão expirada; qualquer outro status
// fora de 2xx aborta a operação.
func (c *DuzzClient) getJSON(resource string, query url.Values, session *domain.Session, out any) (found bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Duzz.BaseURL)
	if err != nil {
		return false, errors.Wrap(err, "erro ao analisar a URL base do vendor")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return false, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if session != nil {
		req.Header.Set("company", session.Company)
		req.Header.Set("sessionToken", session.SessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao executar a requisição para %s", resource)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// 404 é uma resposta válida de "sem dados", nunca um erro
		return false, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return false, ErrSessionExpired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"status":   resp.Status,
		}).Error("Requisição ao vendor falhou")
		return false, errors.Errorf("requisição para %s falhou com status: %s", resource, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, errors.Wrapf(err, "erro ao decodificar a resposta de %s", resource)
	}

	return true, nil
}
