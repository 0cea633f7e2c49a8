package observability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vending/pkg/domain"
)

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnScreenEnter(ctx, &domain.ScreenEvent{From: domain.ScreenMainMenu, To: domain.ScreenAddFunds})
	hooks.OnFundsAdded(ctx, &domain.FundsEvent{Amount: 100, Balance: 100})
	hooks.OnFundsAdded(ctx, &domain.FundsEvent{Amount: 100, Balance: 200})
	hooks.OnPurchase(ctx, &domain.PurchaseEvent{Item: domain.Item{Name: "Chips", Price: 150}, Balance: 50})
	hooks.OnRejected(ctx, &domain.RejectEvent{Screen: domain.ScreenAddFunds, Input: "abc", Err: &domain.InvalidSelectionError{Input: "abc"}})
	hooks.OnRejected(ctx, &domain.RejectEvent{Screen: domain.ScreenPurchaseItem, Err: fmt.Errorf("%w: chips", domain.ErrInsufficientFunds)})
	hooks.OnChangeReturned(ctx, &domain.ChangeEvent{Amount: 50, Coins: map[int64]int64{200: 0, 25: 2}})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.screenVisits.WithLabelValues("add_funds")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.fundsAdded.WithLabelValues("100")))
	assert.Equal(t, 200.0, testutil.ToFloat64(m.balanceAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchases.WithLabelValues("Chips")))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.revenue))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("add_funds", ReasonInvalidSelection)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("purchase_item", ReasonInsufficientFunds)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.changeCoins.WithLabelValues("25")))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.changeReturned))
	assert.Equal(t, 1, testutil.CollectAndCount(m.changeCoins), "zero-count denominations are not recorded")
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.Hooks().OnPurchase(context.Background(), &domain.PurchaseEvent{Item: domain.Item{Name: "Soda", Price: 100}})

	path := filepath.Join(t.TempDir(), "vending.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `vending_purchases_total{item="Soda"} 1`)
}
