package domain

// Bill é uma conta a pagar. Contas cuja origem é STOCK_ENTRIES são
// excluídas das despesas administrativas para não duplicar o CMV já
// capturado pelos movimentos de estoque.
type Bill struct {
	ID             int            `json:"id"`
	ReferenceTable ReferenceTable `json:"referenceTable"`
	ReferenceID    int            `json:"referenceId"`
	Value          float64        `json:"value"`
	ValuePaid      float64        `json:"valuePaid"`
	Paid           bool           `json:"paid"`
	CreatedAt      DateTime       `json:"createdAt"`
	ClosedAt       *DateTime      `json:"closedAt"`
	DueDate        *DateTime      `json:"dueDate"`
}
