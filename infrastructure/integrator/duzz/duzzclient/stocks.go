package duzzclient

import (
	"net/url"

	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

// GetStocks busca todos os lotes de estoque com as listas de movimentos
// de entrada e saída aninhadas.
func (c *DuzzClient) GetStocks(session domain.Session) ([]domain.Stock, error) {
	query := url.Values{}
	query.Set("withMoves", "true")

	var stocks []domain.Stock

	found, err := c.getJSON("/stock", query, &session, &stocks)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Stock{}, nil
	}

	return stocks, nil
}
