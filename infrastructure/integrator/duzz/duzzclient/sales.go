package duzzclient

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// SalesFilter são os filtros aceitos pelo endpoint /sales. StartRange e
// EndRange são obrigatórios; os demais restringem a consulta para o
// rastreio de fidelidade.
type SalesFilter struct {
	StartRange time.Time
	EndRange   time.Time
	ServiceID  int
	Promotion  domain.PlanPromotion
	CustomerID int
}

// Values monta os parâmetros de consulta na forma canônica esperada pelo
// vendor (datas no formato fixo DD-MM-YYYY HH:MM:SS).
func (f SalesFilter) Values() url.Values {
	query := url.Values{}
	query.Set("startRange", f.StartRange.Format(domain.DateTimeLayout))
	query.Set("endRange", f.EndRange.Format(domain.DateTimeLayout))

	if f.ServiceID != 0 {
		query.Set("services", fmt.Sprintf("[%d]", f.ServiceID))
	}
	if f.Promotion != "" {
		query.Set("promotion", string(f.Promotion))
	}
	if f.CustomerID != 0 {
		query.Set("customer", strconv.Itoa(f.CustomerID))
	}

	return query
}

// GetSales busca as vendas que satisfazem o filtro. 404 vira lista vazia.
func (c *DuzzClient) GetSales(session domain.Session, filter SalesFilter) ([]domain.Sale, error) {
	var sales []domain.Sale

	found, err := c.getJSON("/sales", filter.Values(), &session, &sales)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Sale{}, nil
	}

	return sales, nil
}
