package domain

// VigencyBucket classifica quantos dias restam de vigência de uma
// assinatura, para exibição no dashboard.
type VigencyBucket string

const (
	VigencyUpTo5Days  VigencyBucket = "ate_5_dias"
	VigencyUpTo15Days VigencyBucket = "ate_15_dias"
	VigencyOver15Days VigencyBucket = "mais_de_15_dias"
)

// RemainingVolume é o consumo restante de um assinante convertido para os
// recipientes vendidos pela casa.
type RemainingVolume struct {
	ML               int `json:"ml"`
	Litros           int `json:"litros"`
	Garrafa          int `json:"garrafa"`
	Piriguete        int `json:"piriguete"`
	Latao            int `json:"latao"`
	Latinha          int `json:"latinha"`
	Refri2L          int `json:"refri2l"`
	RefriPitchulinha int `json:"refriPitchulinha"`
	Redbull          int `json:"redbull"`
}

// SubscriberConsumption é o consumo acumulado de um assinante contra o
// limite do plano dentro da janela de vigência.
type SubscriberConsumption struct {
	Subscriber    Subscriber      `json:"subscriber"`
	Consumido     float64         `json:"consumido"`
	Limite        float64         `json:"limite"`
	Restante      RemainingVolume `json:"restante"`
	DiasRestantes int             `json:"diasRestantes"`
	Vigencia      VigencyBucket   `json:"vigencia"`
}

// PlanReport agrupa os assinantes de um plano de fidelidade.
type PlanReport struct {
	Plan       Plan                     `json:"plan"`
	Assinantes []*SubscriberConsumption `json:"assinantes"`
}

// FidelityReport é o relatório de consumo dos planos de fidelidade.
type FidelityReport struct {
	Planos []*PlanReport `json:"planos"`
}
