package domain

// AccumulatedKey é o rótulo da linha/coluna "acumulado" adicionada a cada
// tabela do relatório: a soma exata de cada coluna numérica sobre todos os
// meses selecionados.
const AccumulatedKey = "acumulado"

// MonthKeyLayout formata um mês de competência como rótulo (MM/YY).
const MonthKeyLayout = "01/06"

// MonthlyTotals são os totais de faturamento de um mês de competência.
type MonthlyTotals struct {
	Receitas  float64 `json:"receitas"`
	Despesas  float64 `json:"despesas"`
	Descontos float64 `json:"descontos"`
	CMV       float64 `json:"cmv"`
	Vendas    int     `json:"vendas"`
}

// Add acumula os totais de outro mês neste.
func (m *MonthlyTotals) Add(other MonthlyTotals) {
	m.Receitas += other.Receitas
	m.Despesas += other.Despesas
	m.Descontos += other.Descontos
	m.CMV += other.CMV
	m.Vendas += other.Vendas
}

// DRESummary são as métricas derivadas calculadas uma única vez sobre os
// totais acumulados. Todo denominador zero é tratado como 1, de modo que
// o percentual de desconto com receita zero é definido como 100.
type DRESummary struct {
	ReceitaBruta            float64 `json:"receitaBruta"`
	ReceitaLiquida          float64 `json:"receitaLiquida"`
	DespesasAdministrativas float64 `json:"despesasAdministrativas"`
	DescontosTotais         float64 `json:"descontosTotais"`
	CMVTotal                float64 `json:"cmvTotal"`
	TotalVendas             int     `json:"totalVendas"`
	LucroLiquido            float64 `json:"lucroLiquido"`
	ReceitasMenosDespesas   float64 `json:"receitasMenosDespesas"`
	DescontoPercentual      float64 `json:"descontoPercentual"`
	MargemCMVPercentual     float64 `json:"margemCmvPercentual"`
	TicketMedio             float64 `json:"ticketMedio"`
}

// DREReport é o relatório de demonstração de resultados agregado por mês
// de competência. Todos os mapas externos são indexados pelo rótulo do
// mês (MM/YY) mais a chave "acumulado".
type DREReport struct {
	Pseudonym string `json:"pseudonym"`
	// Months são os rótulos dos meses selecionados, ordenados ascendente.
	Months []string `json:"months"`
	// Faturamento traz receitas/despesas/descontos/cmv/vendas por mês.
	Faturamento map[string]MonthlyTotals `json:"faturamento"`
	// Daily traz o total vendido por dia da semana (rótulos de segunda a
	// domingo) por mês.
	Daily map[string]map[string]float64 `json:"daily"`
	// ByPeriod traz o total vendido por período do dia por mês.
	ByPeriod map[string]map[string]float64 `json:"byPeriod"`
	// Clientes traz a receita por nome completo do cliente por mês.
	Clientes map[string]map[string]float64 `json:"clientes"`
	// Produtos traz a quantidade consumida por produto (movimentos de
	// saída de estoque) por mês.
	Produtos map[string]map[string]float64 `json:"produtos"`
	// CustosProdutos traz o custo consumido por produto por mês.
	CustosProdutos map[string]map[string]float64 `json:"custosProdutos"`
	// Servicos traz o valor consumido por nome de serviço por mês.
	Servicos map[string]map[string]float64 `json:"servicos"`
	// Summary são as métricas derivadas sobre o acumulado.
	Summary DRESummary `json:"summary"`
}
