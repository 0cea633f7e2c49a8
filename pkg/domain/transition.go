package domain

// Triggers label the input that fires a transition.
const (
	TriggerMenuIndex  = "menu index"
	TriggerStay       = "-1"
	TriggerInvalid    = "invalid"
	TriggerDenomIndex = "denomination index"
	TriggerPaid       = "item index, funds ok"
	TriggerShort      = "item index, funds short"
	TriggerConfirm    = "y"
	TriggerDecline    = "other"
	TriggerBack       = "b"
	TriggerExit       = "x"
)

// Transition is one row of the screen transition table.
// Exit transitions end the session and leave To unchanged.
type Transition struct {
	From    Screen
	To      Screen
	Trigger string
	Exit    bool
}

// Transitions returns the screen transition table of the machine.
func Transitions() []Transition {
	t := []Transition{
		{From: ScreenMainMenu, To: ScreenMainMenu, Trigger: TriggerStay},
		{From: ScreenMainMenu, To: ScreenMainMenu, Trigger: TriggerInvalid},
	}
	for _, s := range MenuScreens {
		t = append(t, Transition{From: ScreenMainMenu, To: s, Trigger: TriggerMenuIndex})
	}
	t = append(t,
		Transition{From: ScreenAddFunds, To: ScreenAddFunds, Trigger: TriggerDenomIndex},
		Transition{From: ScreenAddFunds, To: ScreenAddFunds, Trigger: TriggerInvalid},
		Transition{From: ScreenPurchaseItem, To: ScreenMainMenu, Trigger: TriggerPaid},
		Transition{From: ScreenPurchaseItem, To: ScreenPurchaseItem, Trigger: TriggerShort},
		Transition{From: ScreenPurchaseItem, To: ScreenPurchaseItem, Trigger: TriggerInvalid},
		Transition{From: ScreenReturnChange, To: ScreenMainMenu, Trigger: TriggerConfirm},
		Transition{From: ScreenReturnChange, To: ScreenMainMenu, Trigger: TriggerDecline},
	)
	for _, s := range []Screen{ScreenAddFunds, ScreenPurchaseItem, ScreenReturnChange} {
		t = append(t, Transition{From: s, To: ScreenMainMenu, Trigger: TriggerBack})
	}
	for _, s := range []Screen{ScreenMainMenu, ScreenAddFunds, ScreenPurchaseItem, ScreenReturnChange} {
		t = append(t, Transition{From: s, To: s, Trigger: TriggerExit, Exit: true})
	}
	return t
}
