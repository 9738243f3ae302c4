// Package service implements the shop's use cases on top of the store. HTTP
// concerns stay in the api package; services speak domain errors.
package service

import (
	"context"

	"shop_system/internal/config"
	"shop_system/internal/events"
	"shop_system/internal/store"
	"shop_system/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Services bundles every use case the router exposes
type Services struct {
	Auth     *AuthService
	Catalog  *CatalogService
	Cart     *CartService
	Wallet   *WalletService
	Checkout *CheckoutService
	Orders   *OrderService
	Reports  *ReportService
	Admin    *AdminService
}

func New(st *store.Store, rdb *redis.Client, pub events.Publisher, cfg *config.Config) *Services {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Services{
		Auth:     NewAuthService(st, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL, cfg.AdminRegistrationKey),
		Catalog:  NewCatalogService(st),
		Cart:     NewCartService(st),
		Wallet:   NewWalletService(st, rdb),
		Checkout: NewCheckoutService(st, rdb, pub),
		Orders:   NewOrderService(st),
		Reports:  NewReportService(st, cfg.ReportLocation()),
		Admin:    NewAdminService(st),
	}
}

// Paged is one page of a listing
type Paged[T any] struct {
	Results    []T   `json:"results"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func newPaged[T any](items []T, total int64, p store.Page) Paged[T] {
	if items == nil {
		items = []T{}
	}
	return Paged[T]{
		Results:    items,
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      total,
		TotalPages: p.TotalPages(total),
	}
}

// invalidate drops cached reads made stale by a committed write. Failures are
// logged; a stale entry still expires with the cache TTL.
func invalidate(ctx context.Context, rdb *redis.Client, keys []string, prefixes ...string) {
	if err := utils.DeleteCache(ctx, rdb, keys...); err != nil {
		logrus.WithFields(logrus.Fields{"keys": keys, "error": err.Error()}).Warn("Cache invalidation failed")
	}
	for _, p := range prefixes {
		if err := utils.DeleteCachePrefix(ctx, rdb, p); err != nil {
			logrus.WithFields(logrus.Fields{"prefix": p, "error": err.Error()}).Warn("Cache invalidation failed")
		}
	}
}
