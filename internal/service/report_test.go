package service_test

import (
	"context"
	"testing"
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

// seedSales places orders around the 2024-09-27..28 window
func seedSales(t *testing.T, e *env) {
	t.Helper()
	u := e.user(t, "alice")
	yonex := e.product(t, "Racket", "Yonex", "10", 100)
	victor := e.product(t, "Shuttle", "Victor", "2.50", 100)
	e.fund(t, u.ID, "1000")

	e.purchase(t, u, yonex, 1, at("2024-09-26", "23:59"))
	e.purchase(t, u, yonex, 2, at("2024-09-27", "00:00"))
	e.purchase(t, u, victor, 4, at("2024-09-27", "13:15"))
	e.purchase(t, u, yonex, 1, at("2024-09-28", "23:59"))
	e.purchase(t, u, victor, 1, at("2024-09-29", "00:00"))
}

func TestReportByDate(t *testing.T) {
	e := newEnv(t)
	seedSales(t, e)

	r, err := e.svc.Reports.ParseRange("2024-09-27", "2024-09-28")
	require.NoError(t, err)
	rows, err := e.svc.Reports.ByDate(context.Background(), r)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2024-09-27", rows[0].Date)
	assert.EqualValues(t, 2, rows[0].Count)
	assert.Equal(t, "30.00", rows[0].TotalPriceSold.StringFixed(2))
	assert.Equal(t, "2024-09-28", rows[1].Date)
	assert.EqualValues(t, 1, rows[1].Count)
	assert.Equal(t, "10.00", rows[1].TotalPriceSold.StringFixed(2))
}

func TestReportByBrand(t *testing.T) {
	e := newEnv(t)
	seedSales(t, e)

	r, err := e.svc.Reports.ParseRange("2024-09-27", "2024-09-28")
	require.NoError(t, err)
	rows, err := e.svc.Reports.ByBrand(context.Background(), r)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Victor", rows[0].Brand)
	assert.EqualValues(t, 1, rows[0].Count)
	assert.Equal(t, "10.00", rows[0].TotalPriceSold.StringFixed(2))
	assert.Equal(t, "Yonex", rows[1].Brand)
	assert.EqualValues(t, 2, rows[1].Count)
	assert.Equal(t, "30.00", rows[1].TotalPriceSold.StringFixed(2))
}

func TestReportEmptyAndInvertedRanges(t *testing.T) {
	e := newEnv(t)
	seedSales(t, e)
	ctx := context.Background()

	r, err := e.svc.Reports.ParseRange("2023-01-01", "2023-01-31")
	require.NoError(t, err)
	rows, err := e.svc.Reports.ByDate(ctx, r)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	r, err = e.svc.Reports.ParseRange("2024-09-28", "2024-09-27")
	require.NoError(t, err)
	brands, err := e.svc.Reports.ByBrand(ctx, r)
	require.NoError(t, err)
	assert.Empty(t, brands)
}

func TestReportParseRangeErrors(t *testing.T) {
	e := newEnv(t)
	for _, tc := range [][2]string{
		{"", "2024-09-28"},
		{"2024-09-27", ""},
		{"27/09/2024", "2024-09-28"},
		{"2024-09-27", "2024-02-30"},
	} {
		_, err := e.svc.Reports.ParseRange(tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrBadRequest, "from=%q to=%q", tc[0], tc[1])
	}
}

func TestReportUsesConfiguredTimezone(t *testing.T) {
	e := newEnv(t)
	seedSales(t, e)
	tokyo := service.NewReportService(e.store, time.FixedZone("UTC+9", 9*60*60))

	r, err := tokyo.ParseRange("2024-09-27", "2024-09-27")
	require.NoError(t, err)
	rows, err := tokyo.ByDate(context.Background(), r)
	require.NoError(t, err)

	// 2024-09-26 15:00Z up to 2024-09-27 15:00Z
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-09-27", rows[0].Date)
	assert.EqualValues(t, 3, rows[0].Count)
	assert.Equal(t, "40.00", rows[0].TotalPriceSold.StringFixed(2))
}
