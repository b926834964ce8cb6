package jsonstore

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
)

const balanceCollection = "balance"

type balanceFile struct {
	Balances []models.BalanceRecord `json:"balances"`
}

// BalanceRepository implements repositories.BalanceRepository on top of the
// store. A missing file or unknown account reads as the configured default
// balance, so a fresh install starts funded without any seeding step.
type BalanceRepository struct {
	store          *Store
	defaultBalance float64
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(store *Store, defaultBalance float64) repositories.BalanceRepository {
	return &BalanceRepository{store: store, defaultBalance: defaultBalance}
}

// Get returns the balance for an account, or the default when absent
func (r *BalanceRepository) Get(ctx context.Context, accountID string) (float64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file balanceFile
	r.store.load(balanceCollection, &file)
	for _, rec := range file.Balances {
		if rec.AccountID == accountID {
			return rec.Balance, nil
		}
	}
	return r.defaultBalance, nil
}

// Set writes the balance for an account, creating the record as needed
func (r *BalanceRepository) Set(ctx context.Context, accountID string, amount float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file balanceFile
	r.store.load(balanceCollection, &file)
	for i, rec := range file.Balances {
		if rec.AccountID == accountID {
			file.Balances[i].Balance = amount
			return r.store.save(balanceCollection, &file)
		}
	}
	file.Balances = append(file.Balances, models.BalanceRecord{AccountID: accountID, Balance: amount})
	return r.store.save(balanceCollection, &file)
}
