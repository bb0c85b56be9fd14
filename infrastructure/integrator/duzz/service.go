package duzz

import (
	"time"

	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// Integrator é a porta de entrada dos casos de uso para a API do DUZZ
// Commercial. A sessão é um parâmetro explícito de cada operação.
type Integrator interface {
	Authenticate(username, password, company string) (*domain.Session, error)
	GetStocks(session domain.Session) ([]domain.Stock, error)
	GetSales(session domain.Session, filter duzzclient.SalesFilter) ([]domain.Sale, error)
	GetPayments(session domain.Session, startRange, endRange time.Time) ([]domain.Payment, error)
	GetBillsToPay(session domain.Session) ([]domain.Bill, error)
	GetProduct(session domain.Session, productID string) (*domain.Product, error)
	GetService(session domain.Session, serviceID string) (*domain.Service, error)
	GetCustomer(session domain.Session, customerID int) (*domain.Customer, error)
	GetFidelityPlans(session domain.Session) ([]domain.Plan, error)
}

type DuzzService struct {
	cfg    *config.Config
	Client duzzclient.Client
}

func New(cfg *config.Config, client duzzclient.Client) Integrator {
	return &DuzzService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DuzzService) Authenticate(username, password, company string) (*domain.Session, error) {
	return s.Client.Authenticate(username, password, company)
}

func (s *DuzzService) GetStocks(session domain.Session) ([]domain.Stock, error) {
	return s.Client.GetStocks(session)
}

func (s *DuzzService) GetSales(session domain.Session, filter duzzclient.SalesFilter) ([]domain.Sale, error) {
	return s.Client.GetSales(session, filter)
}

func (s *DuzzService) GetPayments(session domain.Session, startRange, endRange time.Time) ([]domain.Payment, error) {
	return s.Client.GetPayments(session, startRange, endRange)
}

func (s *DuzzService) GetBillsToPay(session domain.Session) ([]domain.Bill, error) {
	return s.Client.GetBillsToPay(session)
}

func (s *DuzzService) GetProduct(session domain.Session, productID string) (*domain.Product, error) {
	return s.Client.GetProduct(session, productID)
}

func (s *DuzzService) GetService(session domain.Session, serviceID string) (*domain.Service, error) {
	return s.Client.GetService(session, serviceID)
}

func (s *DuzzService) GetCustomer(session domain.Session, customerID int) (*domain.Customer, error) {
	return s.Client.GetCustomer(session, customerID)
}

func (s *DuzzService) GetFidelityPlans(session domain.Session) ([]domain.Plan, error) {
	return s.Client.GetFidelityPlans(session)
}
