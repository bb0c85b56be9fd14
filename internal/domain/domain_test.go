package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	parsed, err := ParseDateTime("15-01-2024 07:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 7, 30, 0, 0, time.UTC), parsed.Time)

	_, err = ParseDateTime("2024-01-15 07:30:00")
	assert.Error(t, err)
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var moment DateTime

	err := moment.UnmarshalJSON([]byte(`"01-02-2024 18:00:00"`))
	require.NoError(t, err)
	assert.Equal(t, 18, moment.Hour())

	// Data obrigatória ausente é falha fatal de parse
	err = moment.UnmarshalJSON([]byte(`null`))
	assert.Error(t, err)

	err = moment.UnmarshalJSON([]byte(`""`))
	assert.Error(t, err)
}

func TestFindPromotion(t *testing.T) {
	tests := []struct {
		name      string
		planName  string
		promotion PlanPromotion
		wantErr   bool
	}{
		{name: "plano duplinha", planName: "Plano Duplinha", promotion: PromotionDuplinha},
		{name: "plano dugole", planName: "Plano Dugole", promotion: PromotionDugole},
		{name: "plano comercial", planName: "Plano Comercial", promotion: PromotionComercial},
		{name: "plano cabeça branca", planName: "Plano Cabeça Branca", promotion: PromotionCabecaBranca},
		{name: "nome desconhecido é rejeitado", planName: "Plano Inexistente", wantErr: true},
		{name: "lookup é por nome exato", planName: "plano duplinha", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promotion, err := FindPromotion(tt.planName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.promotion, promotion)
		})
	}
}

func TestParsePlanLimit(t *testing.T) {
	limit, err := ParsePlanLimit("20L")
	require.NoError(t, err)
	assert.Equal(t, float64(20000), limit)

	limit, err = ParsePlanLimit("5L")
	require.NoError(t, err)
	assert.Equal(t, float64(5000), limit)

	_, err = ParsePlanLimit("vinte litros")
	assert.Error(t, err)
}

func TestCustomerFullName(t *testing.T) {
	customer := Customer{Name: "Maria", LastName: "Souza"}
	assert.Equal(t, "Maria Souza", customer.FullName())

	// Sobrenome ausente vira string vazia, sem espaço sobrando
	customer = Customer{Name: "Maria"}
	assert.Equal(t, "Maria", customer.FullName())
}

func TestStockInPeriod(t *testing.T) {
	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)

	due := NewDateTime(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	future := NewDateTime(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		stock   Stock
		inScope bool
	}{
		{
			name:    "sem dueDate é perpetuamente ativo",
			stock:   Stock{StartDate: NewDateTime(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))},
			inScope: true,
		},
		{
			name: "startDate dentro do mês",
			stock: Stock{
				StartDate: NewDateTime(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
				DueDate:   &future,
			},
			inScope: true,
		},
		{
			name: "dueDate antes do fim do mês",
			stock: Stock{
				StartDate: NewDateTime(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
				DueDate:   &due,
			},
			inScope: true,
		},
		{
			name: "janela inteira fora do mês",
			stock: Stock{
				StartDate: NewDateTime(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
				DueDate:   &future,
			},
			inScope: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inScope, tt.stock.InPeriod(monthStart, monthEnd))
		})
	}
}

func TestSaleProductQuantity(t *testing.T) {
	sale := Sale{Products: map[string]string{"10": "2.5"}}

	quantity, err := sale.ProductQuantity("10")
	require.NoError(t, err)
	assert.Equal(t, 2.5, quantity)

	quantity, err = sale.ProductQuantity("99")
	require.NoError(t, err)
	assert.Zero(t, quantity)

	sale.Products["10"] = "duas"
	_, err = sale.ProductQuantity("10")
	assert.Error(t, err)
}

func TestNewSubscriber(t *testing.T) {
	moment := NewDateTime(time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC))
	sale := Sale{ID: 42, Moment: moment}
	customer := Customer{ID: 7, Name: "José"}

	subscriber := NewSubscriber(&sale, customer, PromotionDugole)

	assert.Equal(t, 42, subscriber.SaleID)
	assert.Equal(t, customer, subscriber.Customer)
	assert.Equal(t, PromotionDugole, subscriber.Promotion)
	assert.Equal(t, moment.AddDate(0, 0, SubscriberValidityDays), subscriber.DueDate)
}
