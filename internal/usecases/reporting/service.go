package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
	"github.com/vfg2006/dcommercial-report-api/pkg/utils"
)

type Reporter interface {
	AvailableMonths() []string
	GenerateDRE(session domain.Session, months []time.Time) (*domain.DREReport, error)
}

type Service struct {
	integrator duzz.Integrator
	cfg        *config.Config
}

func NewService(integrator duzz.Integrator, cfg *config.Config) Reporter {
	return &Service{
		integrator: integrator,
		cfg:        cfg,
	}
}

// AvailableMonths lista os meses de competência selecionáveis, do primeiro
// mês configurado até o mês corrente, no formato AAAA-MM.
func (s *Service) AvailableMonths() []string {
	first, err := utils.ParseMonth(s.cfg.Report.FirstMonth)
	if err != nil {
		logrus.WithError(err).Warn("REPORT_FIRST_MONTH inválido, usando 2023-01")
		first = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	current := utils.MonthStart(time.Now())

	months := make([]string, 0)
	for month := first; !month.After(current); month = month.AddDate(0, 1, 0) {
		months = append(months, month.Format("2006-01"))
	}

	return months
}

// GenerateDRE agrega pagamentos, vendas, estoque e contas a pagar dos meses
// de competência selecionados no relatório de demonstração de resultados.
// Os meses são ordenados ascendente antes da agregação; estoque e contas a
// pagar são buscados uma única vez para todos os meses. Qualquer erro de
// busca ou de dado aborta o relatório inteiro, nunca há agregação parcial.
func (s *Service) GenerateDRE(session domain.Session, months []time.Time) (*domain.DREReport, error) {
	if len(months) == 0 {
		return nil, errors.New("nenhum mês de competência selecionado")
	}

	normalized := make([]time.Time, len(months))
	for i, month := range months {
		normalized[i] = utils.MonthStart(month)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].Before(normalized[j]) })

	stocks, err := s.integrator.GetStocks(session)
	if err != nil {
		return nil, err
	}

	bills, err := s.integrator.GetBillsToPay(session)
	if err != nil {
		return nil, err
	}

	billsByID := make(map[int]domain.Bill, len(bills))
	for _, bill := range bills {
		billsByID[bill.ID] = bill
	}

	report := &domain.DREReport{
		Pseudonym:      session.Pseudonym,
		Months:         make([]string, 0, len(normalized)),
		Faturamento:    make(map[string]domain.MonthlyTotals),
		Daily:          make(map[string]map[string]float64),
		ByPeriod:       make(map[string]map[string]float64),
		Clientes:       make(map[string]map[string]float64),
		Produtos:       make(map[string]map[string]float64),
		CustosProdutos: make(map[string]map[string]float64),
		Servicos:       make(map[string]map[string]float64),
	}

	// Caches por execução: cada cliente e serviço referenciado é buscado
	// uma única vez por relatório.
	customers := make(map[int]*domain.Customer)
	services := make(map[string]*domain.Service)

	for _, month := range normalized {
		report.Months = append(report.Months, utils.MonthLabel(month))

		if err := s.aggregateMonth(session, month, stocks, billsByID, customers, services, report); err != nil {
			return nil, err
		}
	}

	s.accumulate(report)
	report.Summary = summarize(report.Faturamento[domain.AccumulatedKey])

	return report, nil
}

func (s *Service) aggregateMonth(
	session domain.Session,
	month time.Time,
	stocks []domain.Stock,
	billsByID map[int]domain.Bill,
	customers map[int]*domain.Customer,
	serviceCache map[string]*domain.Service,
	report *domain.DREReport,
) error {
	monthStart := month
	monthEnd := utils.MonthEnd(month)
	label := utils.MonthLabel(month)

	payments, err := s.integrator.GetPayments(session, monthStart, monthEnd)
	if err != nil {
		return err
	}

	sales, err := s.integrator.GetSales(session, duzzclient.SalesFilter{
		StartRange: monthStart,
		EndRange:   monthEnd,
	})
	if err != nil {
		return err
	}

	totals := domain.MonthlyTotals{Vendas: len(sales)}

	daily := make(map[string]float64, len(weekdayLabels))
	for _, day := range weekdayLabels {
		daily[day] = 0
	}

	byPeriod := make(map[string]float64, len(dayPeriods))
	for _, period := range dayPeriods {
		byPeriod[period.name] = 0
	}

	clientes := make(map[string]float64)
	produtos := make(map[string]float64)
	custos := make(map[string]float64)
	servicos := make(map[string]float64)

	// CMV e consumo por produto vêm das saídas dos lotes no escopo do mês,
	// limitadas aos movimentos com momento dentro do mês.
	for _, stock := range stocks {
		if !stock.InPeriod(monthStart, monthEnd) {
			continue
		}

		for _, move := range stock.Outs.Moves {
			if move.Moment.Before(monthStart) || move.Moment.After(monthEnd) {
				continue
			}

			totals.CMV += move.Value
			produtos[move.ProductID] += move.Amount
			custos[move.ProductID] += move.Value
		}
	}

	salesByID := make(map[int]domain.Sale, len(sales))
	for _, sale := range sales {
		salesByID[sale.ID] = sale
	}

	for _, sale := range sales {
		hour := sale.Moment.Hour()
		for _, period := range dayPeriods {
			if hour >= period.startHour && hour <= period.endHour {
				byPeriod[period.name] += sale.Value
			}
		}

		daily[weekdayLabel(sale.Moment.Time)] += sale.Value

		customer, err := s.lookupCustomer(session, customers, sale.Customer)
		if err != nil {
			return err
		}
		// Agrupado pelo nome completo: clientes homônimos colapsam no
		// mesmo balde.
		clientes[customer.FullName()] += sale.Value

		for serviceID, amount := range sale.Services {
			service, err := s.lookupService(session, serviceCache, serviceID)
			if err != nil {
				return err
			}
			servicos[service.Name] += amount
		}
	}

	for _, payment := range payments {
		switch payment.ReferenceTable {
		case domain.ReferenceSales:
			totals.Receitas += payment.Value

			sale, ok := salesByID[payment.ReferenceID]
			if !ok {
				// Venda de outra competência: conta na receita, nunca no
				// acumulador de descontos.
				continue
			}

			// Receita bruta inclui o desconto concedido para que desconto e
			// valores líquidos reconciliem.
			totals.Receitas += sale.Discount
			totals.Descontos += sale.Discount

		case domain.ReferenceBillsToPay:
			bill, ok := billsByID[payment.ReferenceID]
			if ok && bill.ReferenceTable != domain.ReferenceStockEntries {
				// Contas de entrada de estoque ficam de fora para não contar
				// duas vezes o custo já capturado pelos movimentos.
				totals.Despesas += payment.Value
			}
		}
	}

	report.Faturamento[label] = totals
	report.Daily[label] = daily
	report.ByPeriod[label] = byPeriod
	report.Clientes[label] = clientes
	report.Produtos[label] = produtos
	report.CustosProdutos[label] = custos
	report.Servicos[label] = servicos

	return nil
}

func (s *Service) lookupCustomer(session domain.Session, cache map[int]*domain.Customer, customerID int) (*domain.Customer, error) {
	if customer, ok := cache[customerID]; ok {
		return customer, nil
	}

	customer, err := s.integrator.GetCustomer(session, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.Errorf("cliente %d referenciado pela venda não encontrado", customerID)
	}

	cache[customerID] = customer
	return customer, nil
}

func (s *Service) lookupService(session domain.Session, cache map[string]*domain.Service, serviceID string) (*domain.Service, error) {
	if service, ok := cache[serviceID]; ok {
		return service, nil
	}

	service, err := s.integrator.GetService(session, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.Errorf("serviço %s referenciado pela venda não encontrado", serviceID)
	}

	cache[serviceID] = service
	return service, nil
}

// accumulate adiciona a linha "acumulado" a cada tabela do relatório: a
// soma exata de cada coluna numérica sobre os meses selecionados.
func (s *Service) accumulate(report *domain.DREReport) {
	var totals domain.MonthlyTotals
	for _, label := range report.Months {
		totals.Add(report.Faturamento[label])
	}
	report.Faturamento[domain.AccumulatedKey] = totals

	report.Daily[domain.AccumulatedKey] = sumColumns(report.Daily, report.Months)
	report.ByPeriod[domain.AccumulatedKey] = sumColumns(report.ByPeriod, report.Months)
	report.Clientes[domain.AccumulatedKey] = sumColumns(report.Clientes, report.Months)
	report.Produtos[domain.AccumulatedKey] = sumColumns(report.Produtos, report.Months)
	report.CustosProdutos[domain.AccumulatedKey] = sumColumns(report.CustosProdutos, report.Months)
	report.Servicos[domain.AccumulatedKey] = sumColumns(report.Servicos, report.Months)
}

func sumColumns(table map[string]map[string]float64, months []string) map[string]float64 {
	accumulated := make(map[string]float64)
	for _, label := range months {
		for key, value := range table[label] {
			accumulated[key] += value
		}
	}
	return accumulated
}

// ratio define divisão com denominador zero como 1, de modo que o
// percentual de desconto com receita zero é 100, nunca NaN ou infinito.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 1
	}
	return numerator / denominator
}

// summarize deriva as métricas do resumo uma única vez sobre o acumulado.
func summarize(totals domain.MonthlyTotals) domain.DRESummary {
	receitaLiquida := totals.Receitas - totals.Descontos

	return domain.DRESummary{
		ReceitaBruta:            utils.RoundWithTwoDecimalPlace(totals.Receitas),
		ReceitaLiquida:          utils.RoundWithTwoDecimalPlace(receitaLiquida),
		DespesasAdministrativas: utils.RoundWithTwoDecimalPlace(totals.Despesas),
		DescontosTotais:         utils.RoundWithTwoDecimalPlace(totals.Descontos),
		CMVTotal:                utils.RoundWithTwoDecimalPlace(totals.CMV),
		TotalVendas:             totals.Vendas,
		LucroLiquido:            utils.RoundWithTwoDecimalPlace(receitaLiquida - totals.Despesas - totals.CMV),
		ReceitasMenosDespesas:   utils.RoundWithTwoDecimalPlace(receitaLiquida - totals.Despesas),
		DescontoPercentual:      utils.RoundWithTwoDecimalPlace(ratio(totals.Descontos, totals.Receitas) * 100),
		MargemCMVPercentual:     utils.RoundWithTwoDecimalPlace(ratio(totals.CMV, receitaLiquida) * 100),
		TicketMedio:             utils.RoundWithTwoDecimalPlace(ratio(receitaLiquida, float64(totals.Vendas))),
	}
}
