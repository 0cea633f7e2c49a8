package domain

import "context"

// ScreenEvent is emitted when the session lands on a screen.
type ScreenEvent struct {
	From Screen
	To   Screen
}

// FundsEvent is emitted when money is inserted.
type FundsEvent struct {
	Amount  int64
	Balance int64
}

// PurchaseEvent is emitted after a successful purchase.
type PurchaseEvent struct {
	Item    Item
	Balance int64
}

// ChangeEvent is emitted when change is returned to the user.
type ChangeEvent struct {
	Amount int64
	Coins  map[int64]int64
}

// RejectEvent is emitted when input is refused on a screen.
type RejectEvent struct {
	Screen Screen
	Input  string
	Err    error
}

// LifecycleHooks defines callbacks for machine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnScreenEnter    func(context.Context, *ScreenEvent)
	OnFundsAdded     func(context.Context, *FundsEvent)
	OnPurchase       func(context.Context, *PurchaseEvent)
	OnChangeReturned func(context.Context, *ChangeEvent)
	OnRejected       func(context.Context, *RejectEvent)
}

// MergeHooks returns hooks that call each of the given hooks in order.
func MergeHooks(all ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnScreenEnter: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range all {
				if h.OnScreenEnter != nil {
					h.OnScreenEnter(ctx, e)
				}
			}
		},
		OnFundsAdded: func(ctx context.Context, e *FundsEvent) {
			for _, h := range all {
				if h.OnFundsAdded != nil {
					h.OnFundsAdded(ctx, e)
				}
			}
		},
		OnPurchase: func(ctx context.Context, e *PurchaseEvent) {
			for _, h := range all {
				if h.OnPurchase != nil {
					h.OnPurchase(ctx, e)
				}
			}
		},
		OnChangeReturned: func(ctx context.Context, e *ChangeEvent) {
			for _, h := range all {
				if h.OnChangeReturned != nil {
					h.OnChangeReturned(ctx, e)
				}
			}
		},
		OnRejected: func(ctx context.Context, e *RejectEvent) {
			for _, h := range all {
				if h.OnRejected != nil {
					h.OnRejected(ctx, e)
				}
			}
		},
	}
}
