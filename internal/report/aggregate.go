// Package report holds the pure reporting core: aggregation of sale
// records into the summaries the dashboard and reports endpoints serve,
// plus the date-window helpers those endpoints share. Nothing in this
// package performs I/O; callers pass an already-filtered snapshot and
// get new output back, so it is safe to run from concurrent requests.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is the aggregation input. Amounts are expected to be
// non-negative and already coerced by the repository layer; the
// aggregator itself never validates or normalizes anything.
type SaleRecord struct {
	Date         time.Time
	Platform     string
	DriverName   string
	TotalSale    decimal.Decimal
	CardPayments decimal.Decimal
	CashPayments decimal.Decimal
}

// PlatformTotals accumulates the three sums for one platform bucket.
type PlatformTotals struct {
	Platform string          `json:"platform"`
	Total    decimal.Decimal `json:"total"`
	Card     decimal.Decimal `json:"card"`
	Cash     decimal.Decimal `json:"cash"`
}

// GrandTotals is the whole-input sum, with commission filled in only
// when the caller supplied a percentage.
type GrandTotals struct {
	Total      decimal.Decimal `json:"total"`
	Card       decimal.Decimal `json:"card"`
	Cash       decimal.Decimal `json:"cash"`
	Commission decimal.Decimal `json:"commission"`
}

// SeriesPoint is one bucket of the daily or monthly series: the bucket
// total plus a per-driver-name breakdown. ByDriver keys are the literal
// driver names from the input, the empty string included.
type SeriesPoint struct {
	Key      string                     `json:"key"`
	Label    string                     `json:"label"`
	Total    decimal.Decimal            `json:"total"`
	ByDriver map[string]decimal.Decimal `json:"by_driver"`
}

// SummarizeByPlatform groups the input by its literal platform string,
// unknown or empty platforms included. Buckets come back in first-seen
// input order, not sorted. Empty input yields an empty (non-nil) slice.
func SummarizeByPlatform(sales []SaleRecord) []PlatformTotals {
	index := make(map[string]int, len(sales))
	out := make([]PlatformTotals, 0, len(sales))

	for _, s := range sales {
		i, ok := index[s.Platform]
		if !ok {
			i = len(out)
			index[s.Platform] = i
			out = append(out, PlatformTotals{
				Platform: s.Platform,
				Total:    decimal.Zero,
				Card:     decimal.Zero,
				Cash:     decimal.Zero,
			})
		}
		out[i].Total = out[i].Total.Add(s.TotalSale)
		out[i].Card = out[i].Card.Add(s.CardPayments)
		out[i].Cash = out[i].Cash.Add(s.CashPayments)
	}
	return out
}

// Totals sums the entire input. commissionPct is a percentage in
// [0, 100]; pass nil when the caller has no commission (admins, or
// drivers with no rate configured) and Commission stays zero.
func Totals(sales []SaleRecord, commissionPct *decimal.Decimal) GrandTotals {
	g := GrandTotals{
		Total:      decimal.Zero,
		Card:       decimal.Zero,
		Cash:       decimal.Zero,
		Commission: decimal.Zero,
	}
	for _, s := range sales {
		g.Total = g.Total.Add(s.TotalSale)
		g.Card = g.Card.Add(s.CardPayments)
		g.Cash = g.Cash.Add(s.CashPayments)
	}
	if commissionPct != nil && !commissionPct.IsZero() {
		g.Commission = g.Total.Mul(*commissionPct).Div(decimal.NewFromInt(100))
	}
	return g
}

// DailySeries buckets the input by calendar date and returns the
// buckets ascending by date. Key and Label are both the YYYY-MM-DD
// date string.
func DailySeries(sales []SaleRecord) []SeriesPoint {
	return series(sales, func(t time.Time) (string, string) {
		d := t.Format("2006-01-02")
		return d, d
	})
}

// MonthlySeries buckets by (year, month). The sort key is the
// zero-padded YYYY-MM string, never the rendered label, so December
// 2024 always precedes January 2025 even though "December" sorts
// after "January" alphabetically. Labels are "January 2006" style.
func MonthlySeries(sales []SaleRecord) []SeriesPoint {
	return series(sales, func(t time.Time) (string, string) {
		key := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
		return key, t.Month().String() + " " + fmt.Sprintf("%d", t.Year())
	})
}

func series(sales []SaleRecord, bucket func(time.Time) (key, label string)) []SeriesPoint {
	points := make(map[string]*SeriesPoint, len(sales))
	for _, s := range sales {
		key, label := bucket(s.Date)
		p, ok := points[key]
		if !ok {
			p = &SeriesPoint{
				Key:      key,
				Label:    label,
				Total:    decimal.Zero,
				ByDriver: make(map[string]decimal.Decimal),
			}
			points[key] = p
		}
		p.Total = p.Total.Add(s.TotalSale)
		p.ByDriver[s.DriverName] = p.ByDriver[s.DriverName].Add(s.TotalSale)
	}

	out := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// DriverNames returns the distinct driver names in first-seen order,
// for stable column ordering in the monthly-by-driver table.
func DriverNames(sales []SaleRecord) []string {
	seen := make(map[string]struct{}, len(sales))
	out := make([]string, 0, len(sales))
	for _, s := range sales {
		if _, ok := seen[s.DriverName]; ok {
			continue
		}
		seen[s.DriverName] = struct{}{}
		out = append(out, s.DriverName)
	}
	return out
}
