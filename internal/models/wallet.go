package models

// DefaultAccountID is the single account the backend tracks today. Balances
// are still keyed by account so the storage contract does not bake in
// single-tenancy.
const DefaultAccountID = "default"

// BalanceRecord holds the balance for one account
type BalanceRecord struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
}
