package duzzclient

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	duzzdomain "github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/domain"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// GetProduct busca um produto por id. O vendor responde um array de um
// elemento; o tamanho unitário vem de particulars.tamanho e o preço do
// campo value. 404 vira nil sem erro.
func (c *DuzzClient) GetProduct(session domain.Session, productID string) (*domain.Product, error) {
	query := url.Values{}
	query.Set("id", productID)

	var items []duzzdomain.CatalogItem

	found, err := c.getJSON("/products", query, &session, &items)
	if err != nil {
		return nil, err
	}
	if !found || len(items) == 0 {
		return nil, nil
	}

	item := items[0]

	size, err := item.ParticularFloat("tamanho")
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ID:    item.ID,
		Name:  item.Name,
		Size:  size,
		Price: item.Value,
	}, nil
}

// GetService busca um serviço por id.
func (c *DuzzClient) GetService(session domain.Session, serviceID string) (*domain.Service, error) {
	query := url.Values{}
	query.Set("id", serviceID)

	var items []duzzdomain.CatalogItem

	found, err := c.getJSON("/services", query, &session, &items)
	if err != nil {
		return nil, err
	}
	if !found || len(items) == 0 {
		return nil, nil
	}

	item := items[0]

	var name string
	if item.Name != nil {
		name = *item.Name
	}

	return &domain.Service{
		ID:    item.ID,
		Name:  name,
		Price: item.Value,
	}, nil
}

// GetCustomer busca um cliente por id.
func (c *DuzzClient) GetCustomer(session domain.Session, customerID int) (*domain.Customer, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(customerID))

	var customers []domain.Customer

	found, err := c.getJSON("/customers", query, &session, &customers)
	if err != nil {
		return nil, err
	}
	if !found || len(customers) == 0 {
		return nil, nil
	}

	return &customers[0], nil
}

// GetFidelityPlans lista os serviços de plano de fidelidade
// (/services?name=Plano) já com a promoção resolvida pelo nome exato e o
// limite de consumo derivado de particulars.limite. Um nome de plano sem
// promoção mapeada é um erro fatal de lookup.
func (c *DuzzClient) GetFidelityPlans(session domain.Session) ([]domain.Plan, error) {
	query := url.Values{}
	query.Set("name", "Plano")

	var items []duzzdomain.CatalogItem

	found, err := c.getJSON("/services", query, &session, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Plan{}, nil
	}

	plans := make([]domain.Plan, 0, len(items))
	for _, item := range items {
		var name string
		if item.Name != nil {
			name = *item.Name
		}

		promotion, err := domain.FindPromotion(name)
		if err != nil {
			return nil, err
		}

		rawLimit, err := item.ParticularString("limite")
		if err != nil {
			return nil, err
		}

		limit, err := domain.ParsePlanLimit(rawLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "limite inválido no plano %d", item.ID)
		}

		var value float64
		if item.Value != nil {
			value = *item.Value
		}

		plans = append(plans, domain.Plan{
			ID:          item.ID,
			Name:        name,
			Category:    item.Category,
			Particulars: stringParticulars(item),
			Value:       value,
			BarCode:     item.BarCode,
			IsActive:    item.IsActive,
			Limit:       limit,
			Promotion:   promotion,
		})
	}

	return plans, nil
}

func stringParticulars(item duzzdomain.CatalogItem) map[string]string {
	particulars := make(map[string]string, len(item.Particulars))
	for key := range item.Particulars {
		if value, err := item.ParticularString(key); err == nil {
			particulars[key] = value
		}
	}
	return particulars
}
