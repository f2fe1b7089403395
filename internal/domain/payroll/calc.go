package payroll

import "math"

// Recompute derives the full payroll breakdown from the form values. active is the field
// the operator is editing; it picks the short-week mode and is never corrected.
// The short-time allowance is prorated by the total short hours after short-week days
// are applied, not by the baseline alone.
func Recompute(in Input, active Field) Result {
	in = in.Normalize()

	duty := in.DutyHoursPerDay
	if duty <= 0 {
		duty = DefaultDutyHours
	}
	days := in.TotalWorkingDays
	if in.ThirtyWorkingDays || days <= 0 {
		days = DefaultMonthDays
	}

	var res Result
	res.PerDayRate = in.BasicSalary / days
	res.PerHourRate = res.PerDayRate / duty

	res.WorkedHours, res.OvertimeHours = foldOvertime(in.WorkedHours, in.OvertimeHours, in.RequiredHours)

	res.OTSTRate = in.BasicSalary / DefaultMonthDays / duty
	res.OvertimeAmount = round(res.OvertimeHours * res.OTSTRate)

	res.ShortWeekDays, res.ShortTimeHours = shortWeek(in, active, res.WorkedHours, duty)
	res.ShortAllowance = round(math.Max(0, in.FullShortAllowance-in.FullShortAllowance/DefaultMonthDays/duty*res.ShortTimeHours))

	res.EarningsTotal = round(res.OvertimeAmount + in.Rent + in.TeaAllowance + in.MonthlyCommission +
		in.WarehouseCommission + in.FixedAllowance + res.ShortAllowance + in.OtherAllowance)

	res.ShortTimeAmount = round(res.ShortTimeHours * res.OTSTRate)
	res.FoodDeduction = round(in.FoodRatePerDay * in.WorkedDays)
	res.DeductionsTotal = round(res.ShortTimeAmount + in.Fund + res.FoodDeduction + in.UmrahDeduction +
		in.OtherDeduction + in.SecurityDeposit + in.Penalty)

	res.WorkedAmount = round(res.WorkedHours * res.PerHourRate)
	res.GrossTotal = round(in.BasicSalary + res.EarningsTotal - res.DeductionsTotal)
	res.AdvancesRecovered = round(in.CurrentAdvance + in.PreviousAdvance)
	res.NetTotal = round(res.GrossTotal - res.AdvancesRecovered)

	if in.PayFullSalaryThroughBank {
		res.AnnualSalary = res.NetTotal * 12
		res.AnnualTax = AnnualTax(res.AnnualSalary)
		res.WHT = MonthlyWithholding(res.NetTotal)
	}

	final := round(res.NetTotal - res.WHT)
	switch {
	case in.BankPaid != nil || in.CashPaid != nil:
		res.BankPaid = valueOr(in.BankPaid, 0)
		res.CashPaid = valueOr(in.CashPaid, 0)
	case in.PayFullSalaryThroughBank:
		res.BankPaid = final
	default:
		res.CashPaid = final
	}
	res.Balance = round(res.NetTotal - (res.BankPaid + res.CashPaid) - res.WHT)

	res.Corrections = corrections(in, res, active)
	return res
}

// foldOvertime moves worked hours beyond the required hours into overtime.
func foldOvertime(worked, overtime, required float64) (float64, float64) {
	if required > 0 && worked > required {
		return required, overtime + worked - required
	}
	return worked, overtime
}

// shortWeek returns short-week days and total short hours for the active editing mode.
func shortWeek(in Input, active Field, worked, duty float64) (float64, float64) {
	switch active {
	case FieldShortWeekDays:
		return in.ShortWeekDays, in.BaselineShortHours + in.ShortWeekDays*duty
	case FieldShortTimeHours:
		return round((in.ShortTimeHours - in.BaselineShortHours) / duty), in.ShortTimeHours
	}
	if !in.CalculateShortWeek {
		return 0, in.BaselineShortHours
	}
	weeks := worked / duty / 7
	days := round(math.Max(0, ExpectedWeeks-weeks))
	return days, in.BaselineShortHours + days*duty
}

func corrections(in Input, res Result, active Field) []Correction {
	candidates := []Correction{
		{Field: FieldWorkedHours, Value: res.WorkedHours},
		{Field: FieldOvertimeHours, Value: res.OvertimeHours},
		{Field: FieldShortWeekDays, Value: res.ShortWeekDays},
		{Field: FieldShortTimeHours, Value: res.ShortTimeHours},
	}
	previous := map[Field]float64{
		FieldWorkedHours:    in.WorkedHours,
		FieldOvertimeHours:  in.OvertimeHours,
		FieldShortWeekDays:  in.ShortWeekDays,
		FieldShortTimeHours: in.ShortTimeHours,
	}
	out := make([]Correction, 0, len(candidates))
	for _, c := range candidates {
		if c.Field == active || c.Value == previous[c.Field] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// round is half away from zero and never returns negative zero.
func round(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
