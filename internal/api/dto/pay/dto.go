package pay

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type BalanceResponse struct {
	Balance int `json:"balance"` // Текущий баланс пользователя
}
