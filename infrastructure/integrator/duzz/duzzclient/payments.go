package duzzclient

import (
	"net/url"
	"time"

	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// GetPayments busca os pagamentos com data de transação dentro do
// intervalo inclusivo informado.
func (c *DuzzClient) GetPayments(session domain.Session, startRange, endRange time.Time) ([]domain.Payment, error) {
	query := url.Values{}
	query.Set("startRange", startRange.Format(domain.DateTimeLayout))
	query.Set("endRange", endRange.Format(domain.DateTimeLayout))

	var payments []domain.Payment

	found, err := c.getJSON("/payments", query, &session, &payments)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Payment{}, nil
	}

	return payments, nil
}
