package services

import (
	"context"
	"sync"

	"github.com/digitalloto/loto-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure WalletServiceImpl implements WalletService
var _ WalletService = (*WalletServiceImpl)(nil)

// WalletServiceImpl handles balance reads and writes. The balance file is a
// read-modify-write collection like every other, so Debit holds a mutex
// across the check and the write; this is the only place purchase flows
// touch funds.
type WalletServiceImpl struct {
	mu          sync.Mutex
	balanceRepo repositories.BalanceRepository
}

// NewWalletService creates a new WalletServiceImpl
func NewWalletService(balanceRepo repositories.BalanceRepository) *WalletServiceImpl {
	return &WalletServiceImpl{balanceRepo: balanceRepo}
}

// GetBalance retrieves the current balance of an account
func (s *WalletServiceImpl) GetBalance(ctx context.Context, accountID string) (float64, error) {
	balance, err := s.balanceRepo.Get(ctx, accountID)
	if err != nil {
		slog.Error("Failed to read balance", "account", accountID, "error", err)
		return 0, newError(CodeBalanceUpdateError, "failed to read balance")
	}
	return balance, nil
}

// SetBalance overwrites the balance of an account
func (s *WalletServiceImpl) SetBalance(ctx context.Context, accountID string, amount float64) error {
	if amount < 0 {
		return newError(CodeNegativeBalance, "balance cannot be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.balanceRepo.Set(ctx, accountID, amount); err != nil {
		slog.Error("Failed to write balance", "account", accountID, "error", err)
		return newError(CodeBalanceUpdateError, "failed to update balance")
	}
	slog.Info("Balance updated", "account", accountID, "balance", amount)
	return nil
}

// Debit atomically checks funds and subtracts amount, returning the new balance
func (s *WalletServiceImpl) Debit(ctx context.Context, accountID string, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.balanceRepo.Get(ctx, accountID)
	if err != nil {
		slog.Error("Failed to read balance for debit", "account", accountID, "error", err)
		return 0, newError(CodeBalanceUpdateError, "failed to read balance")
	}
	if balance < amount {
		return 0, newError(CodeInsufficientFunds, "insufficient funds")
	}
	newBalance := balance - amount
	if err := s.balanceRepo.Set(ctx, accountID, newBalance); err != nil {
		slog.Error("Failed to write debited balance", "account", accountID, "error", err)
		return 0, newError(CodeBalanceUpdateError, "failed to update balance")
	}
	return newBalance, nil
}
