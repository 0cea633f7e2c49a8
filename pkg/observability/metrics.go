package observability

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/vending/pkg/domain"
)

const namespace = "vending"

// Rejection reasons used as metric labels.
const (
	ReasonInvalidSelection  = "invalid_selection"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonOther             = "other"
)

// Metrics holds the Prometheus collectors fed by the machine's lifecycle hooks.
type Metrics struct {
	Registry *prometheus.Registry

	screenVisits   *prometheus.CounterVec
	fundsAdded     *prometheus.CounterVec
	balanceAdded   prometheus.Counter
	purchases      *prometheus.CounterVec
	revenue        prometheus.Counter
	rejections     *prometheus.CounterVec
	changeCoins    *prometheus.CounterVec
	changeReturned prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		screenVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_visits_total",
			Help:      "Total number of screen transitions, by destination screen.",
		}, []string{"screen"}),
		fundsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "funds_added_total",
			Help:      "Number of coins or notes inserted, by denomination in minor units.",
		}, []string{"denomination"}),
		balanceAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_added_minor_units_total",
			Help:      "Total value inserted, in minor currency units.",
		}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Number of successful purchases, by item.",
		}, []string{"item"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_minor_units_total",
			Help:      "Total value of successful purchases, in minor currency units.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Number of refused inputs, by screen and reason.",
		}, []string{"screen", "reason"}),
		changeCoins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_coins_total",
			Help:      "Number of coins handed back as change, by denomination in minor units.",
		}, []string{"denomination"}),
		changeReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_returned_minor_units_total",
			Help:      "Total value returned as change, in minor currency units.",
		}),
	}

	m.Registry.MustRegister(
		m.screenVisits,
		m.fundsAdded,
		m.balanceAdded,
		m.purchases,
		m.revenue,
		m.rejections,
		m.changeCoins,
		m.changeReturned,
	)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScreenEnter: func(ctx context.Context, e *domain.ScreenEvent) {
			m.screenVisits.WithLabelValues(e.To.Slug()).Inc()
		},
		OnFundsAdded: func(ctx context.Context, e *domain.FundsEvent) {
			m.fundsAdded.WithLabelValues(strconv.FormatInt(e.Amount, 10)).Inc()
			m.balanceAdded.Add(float64(e.Amount))
		},
		OnPurchase: func(ctx context.Context, e *domain.PurchaseEvent) {
			m.purchases.WithLabelValues(e.Item.Name).Inc()
			m.revenue.Add(float64(e.Item.Price))
		},
		OnRejected: func(ctx context.Context, e *domain.RejectEvent) {
			m.rejections.WithLabelValues(e.Screen.Slug(), reason(e.Err)).Inc()
		},
		OnChangeReturned: func(ctx context.Context, e *domain.ChangeEvent) {
			for d, n := range e.Coins {
				if n > 0 {
					m.changeCoins.WithLabelValues(strconv.FormatInt(d, 10)).Add(float64(n))
				}
			}
			m.changeReturned.Add(float64(e.Amount))
		},
	}
}

// WriteTextfile writes the current metric values to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		return ReasonInvalidSelection
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	}
	return ReasonOther
}
