package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"shop_system/internal/domain"
	"shop_system/internal/store"
	"shop_system/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// maxMoney is the first value a decimal(10,2) column cannot hold
var maxMoney = decimal.New(1, 8)

func fitsMoneyColumn(d decimal.Decimal) bool {
	return d.Equal(d.Round(2)) && d.Abs().LessThan(maxMoney)
}

// ParseAmount reads a wallet amount sent either as a JSON number or as a
// decimal string
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, domain.WithReason(domain.ErrInvalidAmount, "Amount is required")
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, domain.WithReason(domain.ErrInvalidAmount, "Invalid amount. Must be a valid number.")
		}
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, domain.WithReason(domain.ErrInvalidAmount, "Invalid amount. Must be a valid number.")
	}
	if !amount.IsPositive() {
		return decimal.Zero, domain.WithReason(domain.ErrInvalidAmount, "Amount must be a positive number")
	}
	if !fitsMoneyColumn(amount) {
		return decimal.Zero, domain.WithReason(domain.ErrInvalidAmount, "Amount must have at most 2 decimal places and be below 100000000")
	}
	return amount, nil
}

type WalletService struct {
	store *store.Store
	rdb   *redis.Client
}

func NewWalletService(st *store.Store, rdb *redis.Client) *WalletService {
	return &WalletService{store: st, rdb: rdb}
}

// TopUp credits amount to the user's wallet, creating the wallet on first use,
// and records a deposit in the ledger
func (s *WalletService) TopUp(ctx context.Context, userID uint, amount decimal.Decimal) (domain.Wallet, error) {
	if !amount.IsPositive() || !fitsMoneyColumn(amount) {
		return domain.Wallet{}, domain.WithReason(domain.ErrInvalidAmount, "Amount must be a positive number")
	}

	var wallet domain.Wallet
	err := s.store.WithinTx(ctx, func(tx *store.Store) error {
		w, err := tx.Wallets.GetOrCreate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}
		if !w.Balance.Add(amount).LessThan(maxMoney) {
			return domain.WithReason(domain.ErrInvalidAmount, "Amount would exceed the maximum wallet balance")
		}
		if err := tx.Wallets.Credit(ctx, w.ID, amount); err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
		deposit := domain.Transaction{WalletID: w.ID, Amount: amount, Type: domain.TransactionDeposit}
		if err := tx.Transactions.Create(ctx, &deposit); err != nil {
			return fmt.Errorf("record deposit: %w", err)
		}
		wallet, err = tx.Wallets.FindByID(ctx, w.ID)
		wallet.Balance = wallet.Balance.Round(2)
		return err
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount.String(),
			"error":   err.Error(),
		}).Warn("Deposit failed")
		return domain.Wallet{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount.String(),
		"balance": wallet.Balance.String(),
		"type":    domain.TransactionDeposit,
	}).Info("Deposit transaction")
	invalidate(ctx, s.rdb, []string{utils.WalletKey(userID)}, utils.AdminUsersPrefix, utils.AdminTxsPrefix)
	return wallet, nil
}

// Details returns the user's wallet, creating an empty one on first access
func (s *WalletService) Details(ctx context.Context, userID uint) (domain.Wallet, error) {
	w, err := s.store.Wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// Ledger pages through the movements of the user's wallet, newest first
func (s *WalletService) Ledger(ctx context.Context, userID uint, p store.Page) (Paged[domain.Transaction], error) {
	w, err := s.store.Wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return Paged[domain.Transaction]{}, fmt.Errorf("get wallet: %w", err)
	}
	txs, total, err := s.store.Transactions.ListByWallet(ctx, w.ID, p)
	if err != nil {
		return Paged[domain.Transaction]{}, fmt.Errorf("list transactions: %w", err)
	}
	return newPaged(txs, total, p), nil
}
