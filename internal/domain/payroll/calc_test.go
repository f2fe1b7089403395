package payroll

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func fullMonth() Input {
	return Input{
		BasicSalary:      30000,
		TotalWorkingDays: 30,
		DutyHoursPerDay:  8,
		RequiredHours:    240,
		WorkedHours:      240,
	}
}

type floatCheck struct {
	name      string
	got, want float64
}

func checkFloats(t *testing.T, checks []floatCheck) {
	t.Helper()
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("expected %s %v, got %v", c.name, c.want, c.got)
		}
	}
}

func hasCorrection(list []Correction, want Correction) bool {
	for _, c := range list {
		if c == want {
			return true
		}
	}
	return false
}

func TestRecomputeFullMonthCash(t *testing.T) {
	res := Recompute(fullMonth(), FieldNone)

	checkFloats(t, []floatCheck{
		{"per day rate", res.PerDayRate, 1000},
		{"per hour rate", res.PerHourRate, 125},
		{"worked amount", res.WorkedAmount, 30000},
		{"gross", res.GrossTotal, 30000},
		{"net", res.NetTotal, 30000},
		{"cash paid", res.CashPaid, 30000},
		{"bank paid", res.BankPaid, 0},
		{"wht", res.WHT, 0},
		{"balance", res.Balance, 0},
	})
	if len(res.Corrections) != 0 {
		t.Fatalf("expected no corrections, got %v", res.Corrections)
	}
}

func TestRecomputeDefaultsDivisors(t *testing.T) {
	in := fullMonth()
	in.TotalWorkingDays = 0
	in.DutyHoursPerDay = 0
	res := Recompute(in, FieldNone)
	if res.PerDayRate != 1000 || res.PerHourRate != 125 {
		t.Fatalf("expected rates 1000/125, got %v/%v", res.PerDayRate, res.PerHourRate)
	}

	in = fullMonth()
	in.TotalWorkingDays = 31
	in.ThirtyWorkingDays = true
	res = Recompute(in, FieldNone)
	if res.PerDayRate != 1000 {
		t.Fatalf("expected thirty day divisor to give 1000, got %v", res.PerDayRate)
	}
}

func TestRecomputeFoldsOvertime(t *testing.T) {
	in := fullMonth()
	in.WorkedHours = 250
	in.OvertimeHours = 5

	res := Recompute(in, FieldNone)
	checkFloats(t, []floatCheck{
		{"worked hours", res.WorkedHours, 240},
		{"overtime hours", res.OvertimeHours, 15},
		{"total hours", res.WorkedHours + res.OvertimeHours, in.WorkedHours + in.OvertimeHours},
		{"ot/st rate", res.OTSTRate, 125},
		{"overtime amount", res.OvertimeAmount, 1875},
	})
	want := []Correction{
		{Field: FieldWorkedHours, Value: 240},
		{Field: FieldOvertimeHours, Value: 15},
	}
	if !reflect.DeepEqual(res.Corrections, want) {
		t.Fatalf("expected corrections %v, got %v", want, res.Corrections)
	}
}

func TestRecomputeNeverCorrectsActiveField(t *testing.T) {
	in := fullMonth()
	in.WorkedHours = 250

	res := Recompute(in, FieldWorkedHours)
	if res.WorkedHours != 240 {
		t.Fatalf("expected worked hours 240, got %v", res.WorkedHours)
	}
	want := []Correction{{Field: FieldOvertimeHours, Value: 10}}
	if !reflect.DeepEqual(res.Corrections, want) {
		t.Fatalf("expected corrections %v, got %v", want, res.Corrections)
	}
}

func TestRecomputeNoFoldWithoutRequiredHours(t *testing.T) {
	in := fullMonth()
	in.RequiredHours = 0
	in.WorkedHours = 300

	res := Recompute(in, FieldNone)
	if res.WorkedHours != 300 || res.OvertimeHours != 0 {
		t.Fatalf("expected 300 worked and 0 overtime, got %v and %v", res.WorkedHours, res.OvertimeHours)
	}
}

func TestRecomputeShortWeekModes(t *testing.T) {
	t.Run("calculated from worked hours", func(t *testing.T) {
		in := fullMonth()
		in.WorkedHours = 160
		in.BaselineShortHours = 2
		in.CalculateShortWeek = true

		res := Recompute(in, FieldNone)
		checkFloats(t, []floatCheck{
			{"short week days", res.ShortWeekDays, 1},
			{"short time hours", res.ShortTimeHours, 10},
			{"short time amount", res.ShortTimeAmount, 1250},
		})
		for _, want := range []Correction{
			{Field: FieldShortWeekDays, Value: 1},
			{Field: FieldShortTimeHours, Value: 10},
		} {
			if !hasCorrection(res.Corrections, want) {
				t.Fatalf("expected correction %v in %v", want, res.Corrections)
			}
		}
	})

	t.Run("disabled keeps baseline only", func(t *testing.T) {
		in := fullMonth()
		in.WorkedHours = 100
		in.BaselineShortHours = 3
		in.ShortWeekDays = 2

		res := Recompute(in, FieldNone)
		if res.ShortWeekDays != 0 || res.ShortTimeHours != 3 {
			t.Fatalf("expected 0 days and 3 hours, got %v and %v", res.ShortWeekDays, res.ShortTimeHours)
		}
	})

	t.Run("editing short week days", func(t *testing.T) {
		in := fullMonth()
		in.BaselineShortHours = 2
		in.ShortWeekDays = 2

		res := Recompute(in, FieldShortWeekDays)
		if res.ShortWeekDays != 2 || res.ShortTimeHours != 18 {
			t.Fatalf("expected 2 days and 18 hours, got %v and %v", res.ShortWeekDays, res.ShortTimeHours)
		}
		want := []Correction{{Field: FieldShortTimeHours, Value: 18}}
		if !reflect.DeepEqual(res.Corrections, want) {
			t.Fatalf("expected corrections %v, got %v", want, res.Corrections)
		}
	})

	t.Run("editing short time hours", func(t *testing.T) {
		in := fullMonth()
		in.BaselineShortHours = 2
		in.ShortTimeHours = 26

		res := Recompute(in, FieldShortTimeHours)
		if res.ShortWeekDays != 3 || res.ShortTimeHours != 26 {
			t.Fatalf("expected 3 days and 26 hours, got %v and %v", res.ShortWeekDays, res.ShortTimeHours)
		}
		want := []Correction{{Field: FieldShortWeekDays, Value: 3}}
		if !reflect.DeepEqual(res.Corrections, want) {
			t.Fatalf("expected corrections %v, got %v", want, res.Corrections)
		}
	})
}

func TestRecomputeShortAllowanceProration(t *testing.T) {
	in := fullMonth()
	in.FullShortAllowance = 3000
	in.BaselineShortHours = 10

	res := Recompute(in, FieldNone)
	if res.ShortAllowance != 2875 {
		t.Fatalf("expected short allowance 2875, got %v", res.ShortAllowance)
	}

	in.BaselineShortHours = 1000
	res = Recompute(in, FieldNone)
	if res.ShortAllowance != 0 {
		t.Fatalf("expected short allowance clamped to 0, got %v", res.ShortAllowance)
	}
}

func TestRecomputeTotalsIdentities(t *testing.T) {
	in := Input{
		BasicSalary:         45000,
		TotalWorkingDays:    31,
		RequiredHours:       248,
		WorkedHours:         251.5,
		WorkedDays:          26,
		DutyHoursPerDay:     8,
		BaselineShortHours:  1.5,
		Rent:                1500,
		TeaAllowance:        600,
		MonthlyCommission:   2300.4,
		WarehouseCommission: 150,
		FixedAllowance:      500,
		OtherAllowance:      250,
		FullShortAllowance:  1200,
		Fund:                300,
		FoodRatePerDay:      45.5,
		UmrahDeduction:      1000,
		OtherDeduction:      120,
		SecurityDeposit:     500,
		Penalty:             75,
		CurrentAdvance:      2000,
		PreviousAdvance:     1500,
	}
	res := Recompute(in, FieldNone)

	checkFloats(t, []floatCheck{
		{"gross", res.GrossTotal, round(in.BasicSalary + res.EarningsTotal - res.DeductionsTotal)},
		{"advances recovered", res.AdvancesRecovered, 3500},
		{"net", res.NetTotal, res.GrossTotal - res.AdvancesRecovered},
		{"food deduction", res.FoodDeduction, round(45.5 * 26)},
		{"wht", res.WHT, 0},
		{"cash paid", res.CashPaid, res.NetTotal},
		{"balance", res.Balance, 0},
	})
	for _, v := range []float64{res.OvertimeAmount, res.EarningsTotal, res.DeductionsTotal, res.GrossTotal, res.NetTotal} {
		if math.Round(v) != v {
			t.Fatalf("expected whole rupee total, got %v", v)
		}
	}
}

func TestRecomputeBankRouteWithholds(t *testing.T) {
	in := Input{BasicSalary: 100000, TotalWorkingDays: 30, PayFullSalaryThroughBank: true}
	res := Recompute(in, FieldNone)

	checkFloats(t, []floatCheck{
		{"net", res.NetTotal, 100000},
		{"annual salary", res.AnnualSalary, 1_200_000},
		{"annual tax", res.AnnualTax, 6000},
		{"wht", res.WHT, 500},
		{"bank paid", res.BankPaid, 99500},
		{"cash paid", res.CashPaid, 0},
		{"balance", res.Balance, 0},
	})
}

func TestRecomputePaymentOverrides(t *testing.T) {
	bank := 20000.0
	in := fullMonth()
	in.BankPaid = &bank

	res := Recompute(in, FieldNone)
	checkFloats(t, []floatCheck{
		{"bank paid", res.BankPaid, 20000},
		{"cash paid", res.CashPaid, 0},
		{"balance", res.Balance, 10000},
	})
}

func TestRecomputeNormalizesBadNumbers(t *testing.T) {
	in := fullMonth()
	in.BasicSalary = math.NaN()
	in.Rent = -500
	in.Penalty = math.Inf(1)

	res := Recompute(in, FieldNone)
	checkFloats(t, []floatCheck{
		{"per day rate", res.PerDayRate, 0},
		{"earnings", res.EarningsTotal, 0},
		{"deductions", res.DeductionsTotal, 0},
		{"net", res.NetTotal, 0},
	})
	if math.Signbit(res.Balance) {
		t.Fatalf("expected non-negative zero balance, got %v", res.Balance)
	}
}

func TestFormInputIsLenient(t *testing.T) {
	var form Form
	payload := `{
		"basicSalary": "30000",
		"totalWorkingDays": "",
		"dutyHoursPerDay": "8 hrs",
		"requiredHours": 240,
		"workedHours": "abc",
		"rent": -10,
		"thirtyWorkingDays": "on",
		"payFullSalaryThroughBank": false,
		"cashPaid": "1500",
		"bankPaid": null
	}`
	if err := json.Unmarshal([]byte(payload), &form); err != nil {
		t.Fatalf("expected lenient decode, got error %v", err)
	}

	in := form.Input()
	checkFloats(t, []floatCheck{
		{"basic salary", in.BasicSalary, 30000},
		{"total working days", in.TotalWorkingDays, 0},
		{"duty hours", in.DutyHoursPerDay, 8},
		{"required hours", in.RequiredHours, 240},
		{"worked hours", in.WorkedHours, 0},
		{"rent", in.Rent, 0},
	})
	if !in.ThirtyWorkingDays {
		t.Fatalf("expected thirtyWorkingDays to be set")
	}
	if in.PayFullSalaryThroughBank {
		t.Fatalf("expected payFullSalaryThroughBank to be unset")
	}
	if in.BankPaid != nil {
		t.Fatalf("expected no bank override, got %v", *in.BankPaid)
	}
	if in.CashPaid == nil || *in.CashPaid != 1500 {
		t.Fatalf("expected cash override 1500, got %v", in.CashPaid)
	}
}

func TestParseField(t *testing.T) {
	cases := map[string]Field{
		"shortTimeHours": FieldShortTimeHours,
		"basicSalary":    FieldNone,
		"":               FieldNone,
	}
	for raw, want := range cases {
		if got := ParseField(raw); got != want {
			t.Fatalf("expected field %q for %q, got %q", want, raw, got)
		}
	}
}
