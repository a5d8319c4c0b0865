package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleSales() []SaleRecord {
	return []SaleRecord{
		{Date: day("2025-03-10"), Platform: "UBER", DriverName: "Ana", TotalSale: dec("120.50"), CardPayments: dec("100"), CashPayments: dec("20.50")},
		{Date: day("2025-03-10"), Platform: "BOLT", DriverName: "Ana", TotalSale: dec("80"), CardPayments: dec("80"), CashPayments: dec("0")},
		{Date: day("2025-03-11"), Platform: "UBER", DriverName: "Luis", TotalSale: dec("200"), CardPayments: dec("150"), CashPayments: dec("45")},
		{Date: day("2025-03-12"), Platform: "CABIFY", DriverName: "Ana", TotalSale: dec("60.25"), CardPayments: dec("0"), CashPayments: dec("60.25")},
	}
}

func TestSummarizeByPlatformFirstSeenOrder(t *testing.T) {
	got := SummarizeByPlatform(sampleSales())
	want := []string{"UBER", "BOLT", "CABIFY"}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i, p := range want {
		if got[i].Platform != p {
			t.Errorf("bucket %d = %q, want %q", i, got[i].Platform, p)
		}
	}
	if !got[0].Total.Equal(dec("320.50")) {
		t.Errorf("UBER total = %s, want 320.50", got[0].Total)
	}
	if !got[0].Card.Equal(dec("250")) || !got[0].Cash.Equal(dec("65.50")) {
		t.Errorf("UBER card/cash = %s/%s, want 250/65.50", got[0].Card, got[0].Cash)
	}
}

func TestSummarizeByPlatformConservation(t *testing.T) {
	sales := sampleSales()

	inputSum := decimal.Zero
	for _, s := range sales {
		inputSum = inputSum.Add(s.TotalSale)
	}

	outputSum := decimal.Zero
	for _, b := range SummarizeByPlatform(sales) {
		outputSum = outputSum.Add(b.Total)
	}

	if !inputSum.Equal(outputSum) {
		t.Errorf("platform totals sum to %s, input sums to %s", outputSum, inputSum)
	}
}

func TestSummarizeByPlatformEmptyPlatformBucket(t *testing.T) {
	sales := []SaleRecord{
		{Date: day("2025-03-10"), Platform: "", DriverName: "Ana", TotalSale: dec("10")},
	}
	got := SummarizeByPlatform(sales)
	if len(got) != 1 || got[0].Platform != "" {
		t.Fatalf("expected one bucket under the empty platform string, got %+v", got)
	}
	if !got[0].Total.Equal(dec("10")) {
		t.Errorf("empty-platform total = %s, want 10", got[0].Total)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := SummarizeByPlatform(nil); len(got) != 0 {
		t.Errorf("SummarizeByPlatform(nil) = %+v, want empty", got)
	}
	if got := DailySeries(nil); len(got) != 0 {
		t.Errorf("DailySeries(nil) = %+v, want empty", got)
	}
	if got := MonthlySeries(nil); len(got) != 0 {
		t.Errorf("MonthlySeries(nil) = %+v, want empty", got)
	}

	pct := dec("15")
	g := Totals(nil, &pct)
	for name, v := range map[string]decimal.Decimal{
		"total": g.Total, "card": g.Card, "cash": g.Cash, "commission": g.Commission,
	} {
		if !v.IsZero() {
			t.Errorf("empty-input %s = %s, want 0", name, v)
		}
	}
}

func TestTotalsCommission(t *testing.T) {
	sales := []SaleRecord{
		{Date: day("2025-03-10"), Platform: "UBER", DriverName: "Ana", TotalSale: dec("600")},
		{Date: day("2025-03-11"), Platform: "BOLT", DriverName: "Ana", TotalSale: dec("400")},
	}

	pct := dec("15")
	if g := Totals(sales, &pct); !g.Commission.Equal(dec("150")) {
		t.Errorf("commission at 15%% of 1000 = %s, want 150", g.Commission)
	}

	zero := decimal.Zero
	if g := Totals(sales, &zero); !g.Commission.IsZero() {
		t.Errorf("commission at 0%% = %s, want 0", g.Commission)
	}

	if g := Totals(sales, nil); !g.Commission.IsZero() {
		t.Errorf("commission with no percentage = %s, want 0", g.Commission)
	}
}

func TestTotalsOrderIndependent(t *testing.T) {
	sales := sampleSales()
	reversed := make([]SaleRecord, len(sales))
	for i, s := range sales {
		reversed[len(sales)-1-i] = s
	}

	a := Totals(sales, nil)
	b := Totals(reversed, nil)
	if !a.Total.Equal(b.Total) || !a.Card.Equal(b.Card) || !a.Cash.Equal(b.Cash) {
		t.Errorf("totals differ by input order: %+v vs %+v", a, b)
	}
}

func TestDailySeriesAscending(t *testing.T) {
	got := DailySeries(sampleSales())
	if len(got) != 3 {
		t.Fatalf("got %d days, want 3", len(got))
	}
	wantDates := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	for i, d := range wantDates {
		if got[i].Key != d {
			t.Errorf("day %d = %q, want %q", i, got[i].Key, d)
		}
	}
	if !got[0].Total.Equal(dec("200.50")) {
		t.Errorf("2025-03-10 total = %s, want 200.50", got[0].Total)
	}
	if !got[0].ByDriver["Ana"].Equal(dec("200.50")) {
		t.Errorf("2025-03-10 Ana = %s, want 200.50", got[0].ByDriver["Ana"])
	}
	if !got[1].ByDriver["Luis"].Equal(dec("200")) {
		t.Errorf("2025-03-11 Luis = %s, want 200", got[1].ByDriver["Luis"])
	}
}

func TestMonthlySeriesSortsOnKeyNotLabel(t *testing.T) {
	sales := []SaleRecord{
		{Date: day("2025-01-05"), Platform: "UBER", DriverName: "Ana", TotalSale: dec("50")},
		{Date: day("2024-12-15"), Platform: "UBER", DriverName: "Ana", TotalSale: dec("100")},
	}

	got := MonthlySeries(sales)
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}
	// Alphabetical label sort would put "December 2024" after
	// "January 2025"; the YYYY-MM key sort must not.
	if got[0].Key != "2024-12" || got[1].Key != "2025-01" {
		t.Fatalf("month order = [%s %s], want [2024-12 2025-01]", got[0].Key, got[1].Key)
	}
	if got[0].Label != "December 2024" {
		t.Errorf("label = %q, want %q", got[0].Label, "December 2024")
	}
	if got[1].Label != "January 2025" {
		t.Errorf("label = %q, want %q", got[1].Label, "January 2025")
	}
}

func TestDriverNamesFirstSeenOrder(t *testing.T) {
	got := DriverNames(sampleSales())
	want := []string{"Ana", "Luis"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("driver %d = %q, want %q", i, got[i], want[i])
		}
	}
}
