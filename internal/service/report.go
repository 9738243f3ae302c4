package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DateRange is a half-open interval [From, To) of whole report days
type DateRange struct {
	From time.Time
	To   time.Time
}

// DateSales is one row of the per-day report
type DateSales struct {
	Date           string          `json:"date"`
	Count          int64           `json:"count"`
	TotalPriceSold decimal.Decimal `json:"total_price_sold"`
}

// BrandSales is one row of the per-brand report
type BrandSales struct {
	Brand          string          `json:"brand"`
	Count          int64           `json:"count"`
	TotalPriceSold decimal.Decimal `json:"total_price_sold"`
}

type ReportService struct {
	store *store.Store
	loc   *time.Location
}

func NewReportService(st *store.Store, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{store: st, loc: loc}
}

// ParseRange turns inclusive YYYY-MM-DD bounds into a half-open range that
// ends at the start of the day after to
func (s *ReportService) ParseRange(from, to string) (DateRange, error) {
	if from == "" || to == "" {
		return DateRange{}, domain.WithReason(domain.ErrBadRequest, "Both 'from_date' and 'to_date' are required")
	}
	start, err := time.ParseInLocation(dateLayout, from, s.loc)
	if err != nil {
		return DateRange{}, domain.WithReason(domain.ErrBadRequest, "'from_date' must be a date in YYYY-MM-DD format")
	}
	end, err := time.ParseInLocation(dateLayout, to, s.loc)
	if err != nil {
		return DateRange{}, domain.WithReason(domain.ErrBadRequest, "'to_date' must be a date in YYYY-MM-DD format")
	}
	return DateRange{From: start, To: end.AddDate(0, 0, 1)}, nil
}

func (s *ReportService) orders(ctx context.Context, r DateRange) ([]domain.Order, error) {
	if !r.From.Before(r.To) {
		return nil, nil
	}
	orders, err := s.store.Orders.ListPurchasedBetween(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ByDate aggregates sales per purchase day, oldest day first
func (s *ReportService) ByDate(ctx context.Context, r DateRange) ([]DateSales, error) {
	orders, err := s.orders(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := map[string]*DateSales{}
	for _, o := range orders {
		day := o.PurchasedAt.In(s.loc).Format(dateLayout)
		row, ok := rows[day]
		if !ok {
			row = &DateSales{Date: day, TotalPriceSold: decimal.Zero}
			rows[day] = row
		}
		row.Count++
		row.TotalPriceSold = row.TotalPriceSold.Add(o.Price)
	}
	res := make([]DateSales, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date < res[j].Date })
	return res, nil
}

// ByBrand aggregates sales per product brand, alphabetically
func (s *ReportService) ByBrand(ctx context.Context, r DateRange) ([]BrandSales, error) {
	orders, err := s.orders(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := map[string]*BrandSales{}
	for _, o := range orders {
		row, ok := rows[o.Product.Brand]
		if !ok {
			row = &BrandSales{Brand: o.Product.Brand, TotalPriceSold: decimal.Zero}
			rows[o.Product.Brand] = row
		}
		row.Count++
		row.TotalPriceSold = row.TotalPriceSold.Add(o.Price)
	}
	res := make([]BrandSales, 0, len(rows))
	for _, row := range rows {
		res = append(res, *row)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Brand < res[j].Brand })
	return res, nil
}
