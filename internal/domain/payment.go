package domain

// Payment é um lançamento de pagamento do caixa. ReferenceTable e
// ReferenceID juntos identificam a transação de origem; o agregador só
// ramifica em SALES e BILLS_TO_PAY.
type Payment struct {
	ID             int            `json:"id"`
	ReferenceTable ReferenceTable `json:"referenceTable"`
	ReferenceID    int            `json:"referenceId"`
	Value          float64        `json:"value"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	CashRegister   int            `json:"cashRegister"`
	Done           DateTime       `json:"done"`
	UserID         int            `json:"userId"`
}
