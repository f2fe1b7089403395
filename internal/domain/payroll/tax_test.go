package payroll

import (
	"math"
	"testing"
)

func TestAnnualTaxBrackets(t *testing.T) {
	cases := []struct {
		annual float64
		want   float64
	}{
		{-50_000, 0},
		{0, 0},
		{600_000, 0},
		{900_000, 3_000},
		{1_200_000, 6_000},
		{2_200_000, 116_000},
		{3_200_000, 346_000},
		{4_100_000, 616_000},
		{5_100_000, 966_000},
		{10_000_000, 2_681_000},
	}
	for _, tc := range cases {
		if got := AnnualTax(tc.annual); math.Abs(got-tc.want) > 1e-6 {
			t.Fatalf("expected tax %v on %v, got %v", tc.want, tc.annual, got)
		}
	}
}

func TestAnnualTaxSurchargeAboveTenMillion(t *testing.T) {
	base := 616_000 + (10_000_001-4_100_000)*0.35
	got := AnnualTax(10_000_001)
	if math.Abs(got-base*1.09) > 1e-6 {
		t.Fatalf("expected surcharged tax %v, got %v", base*1.09, got)
	}
	if jump := got - AnnualTax(10_000_000); jump <= 200_000 {
		t.Fatalf("expected surcharge jump above 200000, got %v", jump)
	}
}

func TestMonthlyWithholding(t *testing.T) {
	if got := MonthlyWithholding(50_000); got != 0 {
		t.Fatalf("expected no withholding on 50000, got %v", got)
	}
	if got := MonthlyWithholding(100_000); got != 500 {
		t.Fatalf("expected withholding 500 on 100000, got %v", got)
	}
	if got := MonthlyWithholding(-20_000); got != 0 {
		t.Fatalf("expected no withholding on negative net, got %v", got)
	}
}
