package domain

import (
	"strconv"
	"strings"
	"time"
)

// SubscriberValidityDays é a janela de vigência de uma assinatura de
// plano de fidelidade, contada a partir do momento da venda do plano.
const SubscriberValidityDays = 30

// Plan é um plano de fidelidade: um serviço com promoção mapeada pelo
// nome e um limite de consumo derivado de particulars.limite.
type Plan struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Category    int               `json:"category"`
	Particulars map[string]string `json:"particulars"`
	Value       float64           `json:"value"`
	BarCode     string            `json:"barCode"`
	IsActive    bool              `json:"isActive"`
	Limit       float64           `json:"limit"`
	Promotion   PlanPromotion     `json:"promotion"`
}

// ParsePlanLimit converte o limite de consumo do plano de uma string como
// "20L" para o valor numérico em mililitros (o sufixo L vira 000).
func ParsePlanLimit(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, "L", "000"), 64)
}

// Subscriber vincula um cliente a um plano através da venda do plano. A
// vigência termina 30 dias após o momento da venda.
type Subscriber struct {
	SaleID    int           `json:"saleId"`
	Customer  Customer      `json:"customer"`
	Moment    DateTime      `json:"moment"`
	DueDate   time.Time     `json:"dueDate"`
	Promotion PlanPromotion `json:"promotion"`
}

// NewSubscriber deriva o assinante de uma venda do serviço do plano.
func NewSubscriber(sale *Sale, customer Customer, promotion PlanPromotion) Subscriber {
	return Subscriber{
		SaleID:    sale.ID,
		Customer:  customer,
		Moment:    sale.Moment,
		DueDate:   sale.Moment.AddDate(0, 0, SubscriberValidityDays),
		Promotion: promotion,
	}
}
