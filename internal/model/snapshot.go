package model

// State - фаза сессии. Idle -> Spinning -> (Resolving) -> Idle
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateResolving:
		return "resolving"
	}
	return "unknown"
}

// LineSnapshot - копия состояния линейной сессии для отрисовки
type LineSnapshot struct {
	State        State
	Economy      EconomyState
	Board        LineBoard
	WinningLines []WinningLine
	LastWin      int
	Online       bool
	Turbo        bool
}

// CascadeSnapshot - копия состояния каскадной сессии для отрисовки
type CascadeSnapshot struct {
	State               State
	Economy             EconomyState
	Board               CascadeBoard
	LastWin             int
	CurrentCascadeIndex int // -1 вне каскада
	Cascades            []CascadeStep
	ScatterCount        int
	AwardedFreeSpins    int
	LastShownFreeSpins  int
	InFreeSpin          bool
	FreeSpinsConfirmed  bool // false после покупки бонуса до первого ответа сервера
	Online              bool
	Turbo               bool
}
