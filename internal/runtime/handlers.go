package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/vending/pkg/change"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/money"
)

// mainMenuStay is the index that resolves to the main menu itself (enum position 0).
const mainMenuStay = -1

func (e *Engine) handleMainMenu(ctx context.Context, input string) {
	i, err := ParseIndex(input)
	if err == nil && i == mainMenuStay {
		return
	}
	if err == nil {
		i, err = ParseSelection(input, len(domain.MenuScreens))
	}
	if err != nil {
		e.reject(ctx, input, err)
		return
	}
	e.goTo(ctx, domain.MenuScreens[i])
}

func (e *Engine) handleAddFunds(ctx context.Context, input string) {
	i, err := ParseSelection(input, len(e.machine.Funding))
	if err != nil {
		e.reject(ctx, input, err)
		return
	}

	amount := e.machine.Funding[i]
	e.session.Balance += amount
	e.logger.Debug("funds added", "amount", amount, "balance", e.session.Balance)
	if e.hooks.OnFundsAdded != nil {
		e.hooks.OnFundsAdded(ctx, &domain.FundsEvent{Amount: amount, Balance: e.session.Balance})
	}
}

func (e *Engine) handlePurchase(ctx context.Context, input string) error {
	i, err := ParseSelection(input, len(e.machine.Catalog))
	if err != nil {
		e.reject(ctx, input, err)
		return nil
	}

	item := e.machine.Catalog[i]
	if e.session.Balance < item.Price {
		e.reject(ctx, input, fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, item.Name, item.Price, e.session.Balance))
		return nil
	}

	e.session.Balance -= item.Price
	e.logger.Debug("item purchased", "item", item.Name, "price", item.Price, "balance", e.session.Balance)
	if e.hooks.OnPurchase != nil {
		e.hooks.OnPurchase(ctx, &domain.PurchaseEvent{Item: item, Balance: e.session.Balance})
	}

	receipt := fmt.Sprintf("Purchased %s for %s\nThere is %s remaining in the machine",
		item.Name, money.Format(item.Price), money.Format(e.session.Balance))
	if err := e.term.Print(ctx, receipt); err != nil {
		return err
	}

	// The return-change question is asked inline; the screen does not change until it is answered.
	answer, err := e.term.Prompt(ctx, "Return Change?\n"+domain.ReturnChangePrompt)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("input error: %w", err)
	}
	return e.handleReturnChange(ctx, Normalize(answer))
}

func (e *Engine) handleReturnChange(ctx context.Context, input string) error {
	defer e.goTo(ctx, domain.ScreenMainMenu)

	if input != CommandYes {
		e.logger.Debug("change declined", "balance", e.session.Balance)
		return nil
	}

	amount := e.session.Balance
	b := e.change.Compute(amount)
	if !b.Exact() {
		e.logger.Warn("change set cannot make balance exactly", "amount", amount, "remainder", b.Remainder)
	}
	e.session.Balance = 0
	e.logger.Debug("change returned", "amount", amount)
	if e.hooks.OnChangeReturned != nil {
		e.hooks.OnChangeReturned(ctx, &domain.ChangeEvent{Amount: amount, Coins: b.Map()})
	}
	return e.term.Print(ctx, change.Format(b))
}
