package duzzclient

import (
	"net/url"

	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// GetBillsToPay busca todas as contas a pagar da empresa.
func (c *DuzzClient) GetBillsToPay(session domain.Session) ([]domain.Bill, error) {
	var bills []domain.Bill

	found, err := c.getJSON("/bills-to-pay", url.Values{}, &session, &bills)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Bill{}, nil
	}

	return bills, nil
}
