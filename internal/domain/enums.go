package domain

import "fmt"

// ReferenceTable identifica a tabela de origem de um pagamento ou conta a
// pagar. Os valores numéricos em string são os valores de fio do vendor.
type ReferenceTable string

const (
	ReferenceTransfers    ReferenceTable = "1"
	ReferencePayments     ReferenceTable = "2"
	ReferenceSales        ReferenceTable = "3"
	ReferenceStockEntries ReferenceTable = "4"
	ReferenceCosts        ReferenceTable = "5"
	ReferenceBillsToPay   ReferenceTable = "6"
	ReferenceServices     ReferenceTable = "7"
)

// PaymentMethod é a forma de pagamento registrada no caixa.
type PaymentMethod string

const (
	MethodCartaoCredito PaymentMethod = "1"
	MethodCartaoDebito  PaymentMethod = "2"
	MethodPix           PaymentMethod = "3"
	MethodDinheiro      PaymentMethod = "4"
	MethodSangria       PaymentMethod = "5"
	MethodBoleto        PaymentMethod = "6"
	MethodCarne         PaymentMethod = "7"
	MethodVale          PaymentMethod = "8"
	MethodDesconto      PaymentMethod = "9"
)

// PlanPromotion é a tag de promoção associada a um plano de fidelidade.
type PlanPromotion string

const (
	PromotionDuplinha     PlanPromotion = "DUPLINHA"
	PromotionDugole       PlanPromotion = "DUGOLE"
	PromotionComercial    PlanPromotion = "COMERCIAL"
	PromotionCabecaBranca PlanPromotion = "CABECA_BRANCA"
)

// promotionsByPlanName mapeia o nome exato do plano para a promoção.
var promotionsByPlanName = map[string]PlanPromotion{
	"Plano Duplinha":      PromotionDuplinha,
	"Plano Dugole":        PromotionDugole,
	"Plano Comercial":     PromotionComercial,
	"Plano Cabeça Branca": PromotionCabecaBranca,
}

// FindPromotion resolve a promoção pelo nome exato do plano. Nomes
// desconhecidos são rejeitados em vez de propagar uma falha de lookup.
func FindPromotion(planName string) (PlanPromotion, error) {
	promotion, ok := promotionsByPlanName[planName]
	if !ok {
		return "", fmt.Errorf("plano sem promoção mapeada: %q", planName)
	}
	return promotion, nil
}
