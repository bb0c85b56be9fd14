package duzz

import (
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// CachedService memoiza as operações de busca do Integrator: chamadas
// idênticas (endpoint, parâmetros e sessão) dentro da janela de validade
// retornam o resultado anterior sem nova chamada de rede. Cada operação
// tem o próprio LRU limitado; entradas são substituídas por inteiro na
// expiração, nunca alteradas no lugar. Otimização neutra de correção: um
// cache miss produz exatamente o resultado de uma busca nova.
type CachedService struct {
	next Integrator

	stocks    *expirable.LRU[string, []domain.Stock]
	sales     *expirable.LRU[string, []domain.Sale]
	payments  *expirable.LRU[string, []domain.Payment]
	bills     *expirable.LRU[string, []domain.Bill]
	products  *expirable.LRU[string, *domain.Product]
	services  *expirable.LRU[string, *domain.Service]
	customers *expirable.LRU[string, *domain.Customer]
	plans     *expirable.LRU[string, []domain.Plan]
}

// WithCache decora o integrator com a camada de memoização configurada
// (referência: 128 entradas por operação, 10 minutos de validade).
func WithCache(cfg *config.Config, next Integrator) Integrator {
	size := cfg.Cache.MaxEntries
	ttl := cfg.Cache.TTL()

	return &CachedService{
		next:      next,
		stocks:    expirable.NewLRU[string, []domain.Stock](size, nil, ttl),
		sales:     expirable.NewLRU[string, []domain.Sale](size, nil, ttl),
		payments:  expirable.NewLRU[string, []domain.Payment](size, nil, ttl),
		bills:     expirable.NewLRU[string, []domain.Bill](size, nil, ttl),
		products:  expirable.NewLRU[string, *domain.Product](size, nil, ttl),
		services:  expirable.NewLRU[string, *domain.Service](size, nil, ttl),
		customers: expirable.NewLRU[string, *domain.Customer](size, nil, ttl),
		plans:     expirable.NewLRU[string, []domain.Plan](size, nil, ttl),
	}
}

// cacheKey canonicaliza a chave de memoização: url.Values.Encode ordena
// os parâmetros por nome, e o par de autenticação entra na chave para
// que sessões diferentes nunca compartilhem dados em cache.
func cacheKey(resource string, query url.Values, session domain.Session) string {
	return resource + "?" + query.Encode() + "|" + session.Company + "|" + session.SessionToken
}

// Authenticate nunca é memoizado: falha de credencial não deve ser
// reaproveitada e o login estabelece uma sessão nova a cada chamada.
func (s *CachedService) Authenticate(username, password, company string) (*domain.Session, error) {
	return s.next.Authenticate(username, password, company)
}

func (s *CachedService) GetStocks(session domain.Session) ([]domain.Stock, error) {
	query := url.Values{}
	query.Set("withMoves", "true")
	key := cacheKey("/stock", query, session)

	if cached, ok := s.stocks.Get(key); ok {
		return cached, nil
	}

	stocks, err := s.next.GetStocks(session)
	if err != nil {
		return nil, err
	}

	s.stocks.Add(key, stocks)
	return stocks, nil
}

func (s *CachedService) GetSales(session domain.Session, filter duzzclient.SalesFilter) ([]domain.Sale, error) {
	key := cacheKey("/sales", filter.Values(), session)

	if cached, ok := s.sales.Get(key); ok {
		return cached, nil
	}

	sales, err := s.next.GetSales(session, filter)
	if err != nil {
		return nil, err
	}

	s.sales.Add(key, sales)
	return sales, nil
}

func (s *CachedService) GetPayments(session domain.Session, startRange, endRange time.Time) ([]domain.Payment, error) {
	query := url.Values{}
	query.Set("startRange", startRange.Format(domain.DateTimeLayout))
	query.Set("endRange", endRange.Format(domain.DateTimeLayout))
	key := cacheKey("/payments", query, session)

	if cached, ok := s.payments.Get(key); ok {
		return cached, nil
	}

	payments, err := s.next.GetPayments(session, startRange, endRange)
	if err != nil {
		return nil, err
	}

	s.payments.Add(key, payments)
	return payments, nil
}

func (s *CachedService) GetBillsToPay(session domain.Session) ([]domain.Bill, error) {
	key := cacheKey("/bills-to-pay", url.Values{}, session)

	if cached, ok := s.bills.Get(key); ok {
		return cached, nil
	}

	bills, err := s.next.GetBillsToPay(session)
	if err != nil {
		return nil, err
	}

	s.bills.Add(key, bills)
	return bills, nil
}

func (s *CachedService) GetProduct(session domain.Session, productID string) (*domain.Product, error) {
	query := url.Values{}
	query.Set("id", productID)
	key := cacheKey("/products", query, session)

	if cached, ok := s.products.Get(key); ok {
		return cached, nil
	}

	product, err := s.next.GetProduct(session, productID)
	if err != nil {
		return nil, err
	}

	s.products.Add(key, product)
	return product, nil
}

func (s *CachedService) GetService(session domain.Session, serviceID string) (*domain.Service, error) {
	query := url.Values{}
	query.Set("id", serviceID)
	key := cacheKey("/services", query, session)

	if cached, ok := s.services.Get(key); ok {
		return cached, nil
	}

	service, err := s.next.GetService(session, serviceID)
	if err != nil {
		return nil, err
	}

	s.services.Add(key, service)
	return service, nil
}

func (s *CachedService) GetCustomer(session domain.Session, customerID int) (*domain.Customer, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(customerID))
	key := cacheKey("/customers", query, session)

	if cached, ok := s.customers.Get(key); ok {
		return cached, nil
	}

	customer, err := s.next.GetCustomer(session, customerID)
	if err != nil {
		return nil, err
	}

	s.customers.Add(key, customer)
	return customer, nil
}

func (s *CachedService) GetFidelityPlans(session domain.Session) ([]domain.Plan, error) {
	query := url.Values{}
	query.Set("name", "Plano")
	key := cacheKey("/services", query, session)

	if cached, ok := s.plans.Get(key); ok {
		return cached, nil
	}

	plans, err := s.next.GetFidelityPlans(session)
	if err != nil {
		return nil, err
	}

	s.plans.Add(key, plans)
	return plans, nil
}
