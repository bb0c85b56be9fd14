package domain

import "strconv"

// Sale é uma venda registrada no caixa. Os produtos vêm como um mapa de
// id do produto para a quantidade em string decimal; os serviços como um
// mapa de id do serviço para o valor consumido.
type Sale struct {
	ID          int                `json:"id"`
	Customer    int                `json:"customer"`
	Products    map[string]string  `json:"products"`
	Services    map[string]float64 `json:"services"`
	Value       float64            `json:"value"`
	AmountPaid  float64            `json:"amountPaid"`
	Increase    float64            `json:"increase"`
	IsClosed    bool               `json:"isClosed"`
	Promotion   string             `json:"promotion"`
	Discount    float64            `json:"discount"`
	UserID      int                `json:"userId"`
	Moment      DateTime           `json:"moment"`
	Observation string             `json:"observation"`
}

// ProductQuantity converte a quantidade em string decimal de um produto
// da venda. Produto ausente na venda retorna zero.
func (s *Sale) ProductQuantity(productID string) (float64, error) {
	raw, ok := s.Products[productID]
	if !ok {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// Product é um produto do catálogo. O tamanho (volume unitário) vem de
// particulars.tamanho na resposta do vendor.
type Product struct {
	ID    int      `json:"id"`
	Name  *string  `json:"name"`
	Size  float64  `json:"size"`
	Price *float64 `json:"price"`
}

// Service é um serviço do catálogo.
type Service struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Size  *float64 `json:"size"`
	Price *float64 `json:"price"`
}
