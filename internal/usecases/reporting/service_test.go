package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/mocks"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func reportConfig() *config.Config {
	return &config.Config{
		Report: config.Report{FirstMonth: "2023-01"},
	}
}

func testSession() domain.Session {
	return domain.Session{Company: "99", SessionToken: "tok", Pseudonym: "Bar do Zé"}
}

func TestAvailableMonths(t *testing.T) {
	service := NewService(nil, reportConfig())

	months := service.AvailableMonths()

	require.NotEmpty(t, months)
	assert.Equal(t, "2023-01", months[0])
	assert.Equal(t, time.Now().Format("2006-01"), months[len(months)-1])
}

func TestGenerateDRERevenueGrossedUpByDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	session := testSession()

	// Segunda-feira, 07:30 da manhã
	saleMoment := domain.NewDateTime(time.Date(2024, time.January, 15, 7, 30, 0, 0, time.UTC))

	mockIntegrator.EXPECT().GetStocks(session).Return([]domain.Stock{}, nil)
	mockIntegrator.EXPECT().GetBillsToPay(session).Return([]domain.Bill{}, nil)
	mockIntegrator.EXPECT().
		GetPayments(session, gomock.Any(), gomock.Any()).
		Return([]domain.Payment{
			{ID: 1, ReferenceTable: domain.ReferenceSales, ReferenceID: 1, Value: 100},
		}, nil)
	mockIntegrator.EXPECT().
		GetSales(session, gomock.Any()).
		Return([]domain.Sale{
			{ID: 1, Customer: 5, Value: 100, Discount: 10, Moment: saleMoment},
		}, nil)
	mockIntegrator.EXPECT().
		GetCustomer(session, 5).
		Return(&domain.Customer{ID: 5, Name: "Maria", LastName: "Souza"}, nil)

	service := NewService(mockIntegrator, reportConfig())

	report, err := service.GenerateDRE(session, []time.Time{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	require.Equal(t, []string{"01/24"}, report.Months)
	assert.Equal(t, "Bar do Zé", report.Pseudonym)

	// Receita bruta inclui o desconto da venda casada
	totals := report.Faturamento["01/24"]
	assert.Equal(t, float64(110), totals.Receitas)
	assert.Equal(t, float64(10), totals.Descontos)
	assert.Equal(t, 1, totals.Vendas)

	// Venda às 07:30 cai na manhã e na segunda-feira
	assert.Equal(t, float64(100), report.ByPeriod["01/24"]["manha"])
	assert.Zero(t, report.ByPeriod["01/24"]["madrugada"])
	assert.Equal(t, float64(100), report.Daily["01/24"]["1 - Segunda"])

	assert.Equal(t, float64(100), report.Clientes["01/24"]["Maria Souza"])

	// Acumulado de um único mês é o próprio mês
	assert.Equal(t, totals, report.Faturamento[domain.AccumulatedKey])

	assert.Equal(t, float64(110), report.Summary.ReceitaBruta)
	assert.Equal(t, float64(100), report.Summary.ReceitaLiquida)
	assert.Equal(t, 9.09, report.Summary.DescontoPercentual)
	assert.Equal(t, float64(100), report.Summary.TicketMedio)
	assert.Equal(t, float64(100), report.Summary.LucroLiquido)
}

func TestGenerateDREPaymentWithoutMatchingSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	session := testSession()

	mockIntegrator.EXPECT().GetStocks(session).Return([]domain.Stock{}, nil)
	mockIntegrator.EXPECT().GetBillsToPay(session).Return([]domain.Bill{}, nil)
	mockIntegrator.EXPECT().
		GetPayments(session, gomock.Any(), gomock.Any()).
		Return([]domain.Payment{
			{ID: 1, ReferenceTable: domain.ReferenceSales, ReferenceID: 999, Value: 50},
		}, nil)
	mockIntegrator.EXPECT().GetSales(session, gomock.Any()).Return([]domain.Sale{}, nil)

	service := NewService(mockIntegrator, reportConfig())

	report, err := service.GenerateDRE(session, []time.Time{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	// Venda de outra competência: receita sim, desconto não
	totals := report.Faturamento["03/24"]
	assert.Equal(t, float64(50), totals.Receitas)
	assert.Zero(t, totals.Descontos)
}

func TestGenerateDREDiscountPercentIs100AtZeroRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	session := testSession()

	mockIntegrator.EXPECT().GetStocks(session).Return([]domain.Stock{}, nil)
	mockIntegrator.EXPECT().GetBillsToPay(session).Return([]domain.Bill{}, nil)
	mockIntegrator.EXPECT().GetPayments(session, gomock.Any(), gomock.Any()).Return([]domain.Payment{}, nil)
	mockIntegrator.EXPECT().GetSales(session, gomock.Any()).Return([]domain.Sale{}, nil)

	service := NewService(mockIntegrator, reportConfig())

	report, err := service.GenerateDRE(session, []time.Time{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	// Denominador zero vale 1: percentual definido, nunca NaN
	assert.Equal(t, float64(100), report.Summary.DescontoPercentual)
	assert.Equal(t, float64(100), report.Summary.MargemCMVPercentual)
	assert.Equal(t, float64(1), report.Summary.TicketMedio)
}

func TestGenerateDREExpensesAndCMV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	session := testSession()

	// Lote sem dueDate: perpetuamente ativo em qualquer mês
	stocks := []domain.Stock{
		{
			ID:        1,
			StartDate: domain.NewDateTime(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)),
			Outs: domain.StockMoveList{
				Moves: []domain.StockMove{
					{
						ID:        1,
						ProductID: "77",
						Moment:    domain.NewDateTime(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)),
						Amount:    2,
						Value:     30,
					},
					{
						ID:        2,
						ProductID: "77",
						Moment:    domain.NewDateTime(time.Date(2024, time.February, 3, 12, 0, 0, 0, time.UTC)),
						Amount:    1,
						Value:     20,
					},
				},
			},
		},
	}

	bills := []domain.Bill{
		{ID: 7, ReferenceTable: domain.ReferenceCosts},
		{ID: 8, ReferenceTable: domain.ReferenceStockEntries},
	}

	mockIntegrator.EXPECT().GetStocks(session).Return(stocks, nil)
	mockIntegrator.EXPECT().GetBillsToPay(session).Return(bills, nil)

	januaryPayments := []domain.Payment{
		{ID: 1, ReferenceTable: domain.ReferenceBillsToPay, ReferenceID: 7, Value: 40},
		{ID: 2, ReferenceTable: domain.ReferenceBillsToPay, ReferenceID: 8, Value: 25},
		{ID: 3, ReferenceTable: domain.ReferenceBillsToPay, ReferenceID: 999, Value: 10},
	}

	gomock.InOrder(
		mockIntegrator.EXPECT().GetPayments(session, gomock.Any(), gomock.Any()).Return(januaryPayments, nil),
		mockIntegrator.EXPECT().GetPayments(session, gomock.Any(), gomock.Any()).Return([]domain.Payment{}, nil),
	)
	mockIntegrator.EXPECT().GetSales(session, gomock.Any()).Return([]domain.Sale{}, nil).Times(2)

	service := NewService(mockIntegrator, reportConfig())

	// Meses fora de ordem na entrada: a saída é ordenada ascendente
	report, err := service.GenerateDRE(session, []time.Time{
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, []string{"01/24", "02/24"}, report.Months)

	// Conta de entrada de estoque e conta inexistente ficam fora das despesas
	assert.Equal(t, float64(40), report.Faturamento["01/24"].Despesas)

	assert.Equal(t, float64(30), report.Faturamento["01/24"].CMV)
	assert.Equal(t, float64(20), report.Faturamento["02/24"].CMV)

	// Acumulado é a soma exata de cada coluna
	accumulated := report.Faturamento[domain.AccumulatedKey]
	assert.Equal(t, float64(50), accumulated.CMV)
	assert.Equal(t, float64(40), accumulated.Despesas)

	assert.Equal(t, float64(3), report.Produtos[domain.AccumulatedKey]["77"])
	assert.Equal(t, float64(50), report.CustosProdutos[domain.AccumulatedKey]["77"])
}

func TestGenerateDREServicesGroupedByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	session := testSession()

	saleMoment := domain.NewDateTime(time.Date(2024, time.January, 20, 19, 0, 0, 0, time.UTC))

	mockIntegrator.EXPECT().GetStocks(session).Return([]domain.Stock{}, nil)
	mockIntegrator.EXPECT().GetBillsToPay(session).Return([]domain.Bill{}, nil)
	mockIntegrator.EXPECT().GetPayments(session, gomock.Any(), gomock.Any()).Return([]domain.Payment{}, nil)
	mockIntegrator.EXPECT().
		GetSales(session, gomock.Any()).
		Return([]domain.Sale{
			{ID: 1, Customer: 5, Value: 80, Moment: saleMoment, Services: map[string]float64{"15": 30}},
			{ID: 2, Customer: 5, Value: 40, Moment: saleMoment, Services: map[string]float64{"15": 20}},
		}, nil)

	// Cliente e serviço resolvidos uma única vez por relatório
	mockIntegrator.EXPECT().
		GetCustomer(session, 5).
		Return(&domain.Customer{ID: 5, Name: "Maria"}, nil).
		Times(1)
	mockIntegrator.EXPECT().
		GetService(session, "15").
		Return(&domain.Service{ID: 15, Name: "Narguile"}, nil).
		Times(1)

	service := NewService(mockIntegrator, reportConfig())

	report, err := service.GenerateDRE(session, []time.Time{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, float64(50), report.Servicos["01/24"]["Narguile"])
	assert.Equal(t, float64(120), report.Clientes["01/24"]["Maria"])
	assert.Equal(t, float64(120), report.ByPeriod["01/24"]["noite"])
}

func TestGenerateDRERejectsEmptySelection(t *testing.T) {
	service := NewService(nil, reportConfig())

	_, err := service.GenerateDRE(testSession(), nil)
	assert.Error(t, err)
}

func TestWeekdayLabel(t *testing.T) {
	tests := []struct {
		date  time.Time
		label string
	}{
		{time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), "1 - Segunda"},
		{time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC), "2 - Terça"},
		{time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC), "5 - Sexta"},
		{time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), "6 - Sábado"},
		{time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC), "7 - Domingo"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, weekdayLabel(tt.date))
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.5, ratio(1, 2))
	assert.Equal(t, float64(1), ratio(0, 0))
	assert.Equal(t, float64(1), ratio(42, 0))
}
