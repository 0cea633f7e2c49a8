package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/vending/internal/runtime"
	"github.com/aretw0/vending/internal/testutils"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleInput returns an input that exercises the transition's trigger from its source screen.
func sampleInput(tr domain.Transition) string {
	switch tr.Trigger {
	case domain.TriggerMenuIndex:
		for i, s := range domain.MenuScreens {
			if s == tr.To {
				return string(rune('0' + i))
			}
		}
	case domain.TriggerDenomIndex, domain.TriggerPaid, domain.TriggerShort:
		return "0"
	case domain.TriggerInvalid:
		return "abc"
	case domain.TriggerDecline:
		return "n"
	}
	return tr.Trigger
}

// TestTransitions_MatchEngine checks every row of the published table against the engine.
func TestTransitions_MatchEngine(t *testing.T) {
	for _, tr := range domain.Transitions() {
		input := sampleInput(tr)
		t.Run(tr.From.Slug()+"/"+tr.Trigger, func(t *testing.T) {
			var balance int64 = 1000
			if tr.Trigger == domain.TriggerShort {
				balance = 0
			}
			term := testutils.NewScriptedTerminal("n")
			engine, err := runtime.NewEngine(testutils.DefaultMachine(), term,
				runtime.WithSession(&domain.Session{Screen: tr.From, Balance: balance}))
			require.NoError(t, err)

			require.NoError(t, engine.Dispatch(context.Background(), input))

			s := engine.Session()
			assert.Equal(t, tr.To, s.Screen)
			assert.Equal(t, tr.Exit, s.ExitRequested)
		})
	}
}
