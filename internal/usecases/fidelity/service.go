package fidelity

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
	"github.com/vfg2006/dcommercial-report-api/pkg/utils"
)

// Recipientes da casa, em mililitros, para converter o consumo restante.
const (
	garrafaML          = 600
	pirigueteML        = 300
	lataoML            = 473
	latinhaML          = 350
	refri2LML          = 2000
	refriPitchulinhaML = 200
	redbullML          = 250
)

type Tracker interface {
	GenerateReport(session domain.Session) (*domain.FidelityReport, error)
}

type Service struct {
	integrator duzz.Integrator
	cfg        *config.Config
	now        func() time.Time
}

func NewService(integrator duzz.Integrator, cfg *config.Config) Tracker {
	return &Service{
		integrator: integrator,
		cfg:        cfg,
		now:        time.Now,
	}
}

// GenerateReport monta o relatório de consumo dos planos de fidelidade:
// para cada plano, os assinantes da janela móvel de 30 dias com o consumo
// acumulado contra o limite e a conversão do restante em recipientes.
func (s *Service) GenerateReport(session domain.Session) (*domain.FidelityReport, error) {
	plans, err := s.integrator.GetFidelityPlans(session)
	if err != nil {
		return nil, err
	}

	report := &domain.FidelityReport{
		Planos: make([]*domain.PlanReport, 0, len(plans)),
	}

	// Cache por execução: cada produto referenciado nas compras é buscado
	// uma única vez por relatório.
	products := make(map[string]*domain.Product)

	for _, plan := range plans {
		subscribers, err := s.findSubscribers(session, plan)
		if err != nil {
			return nil, err
		}

		planReport := &domain.PlanReport{
			Plan:       plan,
			Assinantes: make([]*domain.SubscriberConsumption, 0, len(subscribers)),
		}

		for _, subscriber := range subscribers {
			consumption, err := s.trackConsumption(session, plan, subscriber, products)
			if err != nil {
				return nil, err
			}
			planReport.Assinantes = append(planReport.Assinantes, consumption)
		}

		report.Planos = append(report.Planos, planReport)
	}

	return report, nil
}

// findSubscribers lista os assinantes de um plano: as vendas do serviço do
// plano na janela móvel dos últimos 30 dias, ordenadas pelo momento da
// venda, cada uma com o cliente resolvido.
func (s *Service) findSubscribers(session domain.Session, plan domain.Plan) ([]domain.Subscriber, error) {
	today := dayEnd(s.now())
	windowStart := dayStart(today.AddDate(0, 0, -domain.SubscriberValidityDays))

	sales, err := s.integrator.GetSales(session, duzzclient.SalesFilter{
		StartRange: windowStart,
		EndRange:   today,
		ServiceID:  plan.ID,
	})
	if err != nil {
		return nil, err
	}

	subscribers := make([]domain.Subscriber, 0, len(sales))
	for i := range sales {
		sale := sales[i]

		customer, err := s.integrator.GetCustomer(session, sale.Customer)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, errors.Errorf("cliente %d da assinatura não encontrado", sale.Customer)
		}

		subscribers = append(subscribers, domain.NewSubscriber(&sale, *customer, plan.Promotion))
	}

	// O vendor não garante ordem; a vigência mais antiga vem primeiro.
	sort.Slice(subscribers, func(i, j int) bool {
		return subscribers[i].Moment.Before(subscribers[j].Moment.Time)
	})

	return subscribers, nil
}

// trackConsumption soma o volume consumido pelo assinante dentro da
// vigência: tamanho unitário do produto vezes a quantidade comprada, sobre
// todas as compras do cliente sob a mesma promoção.
func (s *Service) trackConsumption(
	session domain.Session,
	plan domain.Plan,
	subscriber domain.Subscriber,
	products map[string]*domain.Product,
) (*domain.SubscriberConsumption, error) {
	purchases, err := s.integrator.GetSales(session, duzzclient.SalesFilter{
		StartRange: subscriber.Moment.Time,
		EndRange:   dayEnd(subscriber.DueDate),
		Promotion:  subscriber.Promotion,
		CustomerID: subscriber.Customer.ID,
	})
	if err != nil {
		return nil, err
	}

	var consumed float64
	for _, purchase := range purchases {
		for productID := range purchase.Products {
			product, err := s.lookupProduct(session, products, productID)
			if err != nil {
				return nil, err
			}

			quantity, err := purchase.ProductQuantity(productID)
			if err != nil {
				return nil, errors.Wrapf(err, "quantidade inválida do produto %s na venda %d", productID, purchase.ID)
			}

			consumed += product.Size * quantity
		}
	}

	remaining := plan.Limit - consumed
	daysRemaining := int(subscriber.DueDate.Sub(s.now()).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return &domain.SubscriberConsumption{
		Subscriber:    subscriber,
		Consumido:     utils.RoundWithTwoDecimalPlace(consumed),
		Limite:        plan.Limit,
		Restante:      remainingVolume(remaining),
		DiasRestantes: daysRemaining,
		Vigencia:      vigencyBucket(daysRemaining),
	}, nil
}

func (s *Service) lookupProduct(session domain.Session, cache map[string]*domain.Product, productID string) (*domain.Product, error) {
	if product, ok := cache[productID]; ok {
		return product, nil
	}

	product, err := s.integrator.GetProduct(session, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.Errorf("produto %s referenciado pela compra não encontrado", productID)
	}

	cache[productID] = product
	return product, nil
}

// remainingVolume converte o volume restante em mililitros para os
// recipientes da casa. Garrafas e latas arredondam para cima; mililitros,
// litros e refri 2L arredondam para o inteiro mais próximo.
func remainingVolume(remaining float64) domain.RemainingVolume {
	return domain.RemainingVolume{
		ML:               int(math.Round(remaining)),
		Litros:           int(math.Round(remaining / 1000)),
		Garrafa:          int(math.Ceil(remaining / garrafaML)),
		Piriguete:        int(math.Ceil(remaining / pirigueteML)),
		Latao:            int(math.Ceil(remaining / lataoML)),
		Latinha:          int(math.Ceil(remaining / latinhaML)),
		Refri2L:          int(math.Round(remaining / refri2LML)),
		RefriPitchulinha: int(math.Ceil(remaining / refriPitchulinhaML)),
		Redbull:          int(math.Ceil(remaining / redbullML)),
	}
}

func vigencyBucket(daysRemaining int) domain.VigencyBucket {
	switch {
	case daysRemaining <= 5:
		return domain.VigencyUpTo5Days
	case daysRemaining <= 15:
		return domain.VigencyUpTo15Days
	default:
		return domain.VigencyOver15Days
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
