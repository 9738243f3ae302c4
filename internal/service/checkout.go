package service

import (
	"context"
	"fmt"
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/events"
	"shop_system/internal/store"
	"shop_system/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Receipt is the outcome of a successful checkout
type Receipt struct {
	Total            decimal.Decimal `json:"total_price"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Orders           []domain.Order  `json:"orders"`
}

type CheckoutService struct {
	store     *store.Store
	rdb       *redis.Client
	publisher events.Publisher
	Now       func() time.Time // Clock for server-assigned purchase times
}

func NewCheckoutService(st *store.Store, rdb *redis.Client, pub events.Publisher) *CheckoutService {
	return &CheckoutService{store: st, rdb: rdb, publisher: pub, Now: time.Now}
}

// Checkout buys the user's whole cart. Wallet debit, stock decrements, order
// and ledger appends and the cart clear commit together or not at all.
// purchasedAt overrides the server clock when non-nil.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, purchasedAt *time.Time) (Receipt, error) {
	at := s.Now().UTC()
	if purchasedAt != nil {
		at = purchasedAt.UTC()
	}

	var receipt Receipt
	err := s.store.WithinTx(ctx, func(tx *store.Store) error {
		lines, err := tx.Carts.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(l.Quantity)))
		}

		wallet, err := tx.Wallets.GetOrCreate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}
		if wallet.Balance.LessThan(total) {
			return domain.ErrInsufficientFunds
		}
		ok, err := tx.Wallets.DebitIfEnough(ctx, wallet.ID, total)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}
		if !ok {
			return domain.ErrInsufficientFunds // Balance changed since it was read
		}

		orders := make([]domain.Order, 0, len(lines))
		for _, l := range lines {
			ok, err := tx.Products.DecreaseStockIfEnough(ctx, l.ProductID, l.Quantity)
			if err != nil {
				return fmt.Errorf("decrease stock: %w", err)
			}
			if !ok {
				return &domain.OutOfStockError{Product: l.Product.Name}
			}
			orders = append(orders, domain.Order{
				UserID:      userID,
				ProductID:   l.ProductID,
				Quantity:    l.Quantity,
				Price:       l.Product.Price.Mul(decimal.NewFromInt(l.Quantity)),
				PurchasedAt: at,
			})
		}
		if err := tx.Orders.CreateBatch(ctx, orders); err != nil {
			return fmt.Errorf("create orders: %w", err)
		}
		purchase := domain.Transaction{WalletID: wallet.ID, Amount: total, Type: domain.TransactionPurchase}
		if err := tx.Transactions.Create(ctx, &purchase); err != nil {
			return fmt.Errorf("record purchase: %w", err)
		}
		if _, err := tx.Carts.Clear(ctx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		after, err := tx.Wallets.FindByID(ctx, wallet.ID)
		if err != nil {
			return fmt.Errorf("reload wallet: %w", err)
		}
		receipt = Receipt{Total: total, RemainingBalance: after.Balance.Round(2), Orders: orders}
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Checkout failed")
		return Receipt{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"total":     receipt.Total.String(),
		"remaining": receipt.RemainingBalance.String(),
		"orders":    len(receipt.Orders),
		"type":      domain.TransactionPurchase,
	}).Info("Purchase transaction")

	keys := []string{utils.WalletKey(userID)}
	for _, o := range receipt.Orders {
		keys = append(keys, utils.ProductKey(o.ProductID))
	}
	invalidate(ctx, s.rdb, keys, utils.AdminUsersPrefix, utils.AdminTxsPrefix)

	ev := events.NewOrderPlaced(userID, receipt.Total, receipt.RemainingBalance, receipt.Orders)
	if err := s.publisher.Publish(ctx, events.KeyOrderPlaced, ev); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Publishing order.placed failed")
	}
	return receipt, nil
}
