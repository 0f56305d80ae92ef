package model

// Cluster - взорвавшийся на шаге кластер
type Cluster struct {
	Symbol     Symbol
	Cells      []Position
	Count      int
	Payout     int
	Multiplier int
}

// NewSymbol - символ, упавший сверху после гравитации
type NewSymbol struct {
	Position Position
	Symbol   Symbol
}

// CascadeStep - один шаг каскада. Шаги применяются строго по возрастанию Index.
type CascadeStep struct {
	Index      int
	Clusters   []Cluster
	NewSymbols []NewSymbol
}

// CascadeOutcome - результат каскадного спина во внутреннем представлении
type CascadeOutcome struct {
	InitialBoard   CascadeBoard
	FinalBoard     CascadeBoard
	Reconstructed  bool  // Начальная доска восстановлена на клиенте
	ReconstructErr error // Шаги не сошлись, каскады отброшены
	Cascades       []CascadeStep
	TotalPayout    int
	Balance        int
	ScatterCount   int
	FreeSpins      FreeSpinInfo
}

// Validation - результат сверки доски после каскадов с финальной доской сервера
type Validation struct {
	Valid      bool
	Mismatches []Position
}
