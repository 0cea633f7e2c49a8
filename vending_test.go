package vending_test

import (
	"context"
	"testing"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/testutils"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	eng, err := vending.New(vending.WithTerminal(testutils.NewScriptedTerminal()))
	require.NoError(t, err)

	assert.Equal(t, testutils.DefaultMachine(), eng.Machine())
	assert.Equal(t, domain.ScreenMainMenu, eng.Session().Screen)
}

func TestNew_RejectsInvalidMachine(t *testing.T) {
	m := testutils.DefaultMachine()
	m.Change = domain.Denominations{3}

	_, err := vending.New(vending.WithMachine(m), vending.WithTerminal(testutils.NewScriptedTerminal()))
	assert.Error(t, err)
}

func TestEngine_EndToEnd(t *testing.T) {
	term := testutils.NewScriptedTerminal("0", "3", "3", "b", "1", "1", "n", "x")
	eng, err := vending.New(vending.WithTerminal(term))
	require.NoError(t, err)

	require.NoError(t, eng.Run(context.Background()))

	s := eng.Session()
	assert.Equal(t, int64(50), s.Balance)
	assert.True(t, s.ExitRequested)
}

func TestEngine_DispatchFromSession(t *testing.T) {
	eng, err := vending.New(
		vending.WithTerminal(testutils.NewScriptedTerminal()),
		vending.WithSession(&domain.Session{Screen: domain.ScreenAddFunds}),
	)
	require.NoError(t, err)

	require.NoError(t, eng.Dispatch(context.Background(), "abc"))

	msg, ok := eng.Session().Message.Peek()
	assert.True(t, ok)
	assert.Equal(t, "Invalid input given. abc is not a valid input", msg)
	assert.Zero(t, eng.Session().Balance)
}
