package service

import (
	"context"
	"errors"
	"fmt"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// NewProduct is an admin request to add a catalog entry
type NewProduct struct {
	Name        string
	Category    string
	Brand       string
	Description string
	Price       decimal.Decimal
	Stock       int64
}

type CatalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func (s *CatalogService) Create(ctx context.Context, in NewProduct) (domain.Product, error) {
	if !in.Price.IsPositive() {
		return domain.Product{}, domain.WithReason(domain.ErrBadRequest, "Price must be a positive value.")
	}
	if !fitsMoneyColumn(in.Price) {
		return domain.Product{}, domain.WithReason(domain.ErrBadRequest, "Price must have at most 2 decimal places and be below 100000000.")
	}
	if in.Stock < 0 {
		return domain.Product{}, domain.WithReason(domain.ErrBadRequest, "Number of stocks cannot be negative.")
	}
	p := domain.Product{
		Name:        in.Name,
		Category:    in.Category,
		Brand:       in.Brand,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if err := s.store.Products.Create(ctx, &p); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"product_id": p.ID,
		"brand":      p.Brand,
		"stock":      p.Stock,
	}).Info("Product added")
	return p, nil
}

// All returns the complete catalog
func (s *CatalogService) All(ctx context.Context) ([]domain.Product, error) {
	products, err := s.store.Products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) List(ctx context.Context, p store.Page) (Paged[domain.Product], error) {
	return s.list(ctx, store.ProductFilter{}, p)
}

// ByCategory lists products of a category, optionally narrowed to one brand
func (s *CatalogService) ByCategory(ctx context.Context, category, brand string, p store.Page) (Paged[domain.Product], error) {
	if category == "" {
		return Paged[domain.Product]{}, domain.WithReason(domain.ErrBadRequest, "Category is required")
	}
	return s.list(ctx, store.ProductFilter{Category: category, Brand: brand}, p)
}

func (s *CatalogService) list(ctx context.Context, f store.ProductFilter, p store.Page) (Paged[domain.Product], error) {
	products, total, err := s.store.Products.List(ctx, f, p)
	if err != nil {
		return Paged[domain.Product]{}, fmt.Errorf("list products: %w", err)
	}
	return newPaged(products, total, p), nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (domain.Product, error) {
	p, err := s.store.Products.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Product{}, domain.WithReason(domain.ErrNotFound, "Product not found")
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}
