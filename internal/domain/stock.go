package domain

import "time"

// StockMove é um movimento individual de entrada ou saída de estoque. A
// classificação em entries/outs vem pronta da API, nunca é re-derivada aqui.
type StockMove struct {
	ID        int      `json:"id"`
	ProductID string   `json:"productId"`
	StockID   int      `json:"stockId"`
	Moment    DateTime `json:"moment"`
	Amount    float64  `json:"amount"`
	Value     float64  `json:"value"`
	UserID    string   `json:"userId"`
}

// StockMoveList agrupa os movimentos de um lote com o total informado
// pelo vendor.
type StockMoveList struct {
	Moves []StockMove `json:"moves"`
	Total float64     `json:"total"`
}

// Stock é um lote de estoque com janela de validade e movimentos. Um lote
// sem dueDate é considerado perpetuamente ativo.
type Stock struct {
	ID        int           `json:"id"`
	Value     float64       `json:"value"`
	StartDate DateTime      `json:"startDate"`
	DueDate   *DateTime     `json:"dueDate"`
	CMV       float64       `json:"cmv"`
	Entries   StockMoveList `json:"entries"`
	Outs      StockMoveList `json:"outs"`
}

// InPeriod informa se o lote está no escopo de um mês de competência:
// com dueDate, quando startDate >= início do mês ou dueDate <= fim do mês;
// sem dueDate, sempre.
func (s *Stock) InPeriod(monthStart, monthEnd time.Time) bool {
	if s.DueDate == nil {
		return true
	}
	return !s.StartDate.Before(monthStart) || !s.DueDate.After(monthEnd)
}
