package payroll

import "backoffice/internal/platform/lenient"

// Form is the payroll screen as submitted by the browser: numbers may arrive as
// strings, blanks or garbage, flags as checkbox values.
type Form struct {
	BasicSalary        lenient.Number `json:"basicSalary"`
	TotalWorkingDays   lenient.Number `json:"totalWorkingDays"`
	RequiredHours      lenient.Number `json:"requiredHours"`
	WorkedHours        lenient.Number `json:"workedHours"`
	WorkedDays         lenient.Number `json:"workedDays"`
	DutyHoursPerDay    lenient.Number `json:"dutyHoursPerDay"`
	OvertimeHours      lenient.Number `json:"overtimeHours"`
	BaselineShortHours lenient.Number `json:"baselineShortHours"`
	ShortTimeHours     lenient.Number `json:"shortTimeHours"`
	ShortWeekDays      lenient.Number `json:"shortWeekDays"`

	ThirtyWorkingDays        lenient.Flag `json:"thirtyWorkingDays"`
	CalculateShortWeek       lenient.Flag `json:"calculateShortWeek"`
	PayFullSalaryThroughBank lenient.Flag `json:"payFullSalaryThroughBank"`
	PayAdvSalary             lenient.Flag `json:"payAdvSalary"`

	Rent                lenient.Number `json:"rent"`
	TeaAllowance        lenient.Number `json:"teaAllowance"`
	MonthlyCommission   lenient.Number `json:"monthlyCommission"`
	WarehouseCommission lenient.Number `json:"warehouseCommission"`
	FixedAllowance      lenient.Number `json:"fixedAllowance"`
	OtherAllowance      lenient.Number `json:"otherAllowance"`
	FullShortAllowance  lenient.Number `json:"fullShortAllowance"`

	Fund            lenient.Number `json:"fund"`
	FoodRatePerDay  lenient.Number `json:"foodRatePerDay"`
	UmrahDeduction  lenient.Number `json:"umrahDeduction"`
	OtherDeduction  lenient.Number `json:"otherDeduction"`
	SecurityDeposit lenient.Number `json:"securityDeposit"`
	Penalty         lenient.Number `json:"penalty"`

	CurrentAdvance  lenient.Number `json:"currentAdvance"`
	PreviousAdvance lenient.Number `json:"previousAdvance"`

	BankPaid *lenient.Number `json:"bankPaid"`
	CashPaid *lenient.Number `json:"cashPaid"`
}

// Input converts the submitted form into normalized engine input.
func (f Form) Input() Input {
	in := Input{
		BasicSalary:        f.BasicSalary.Float64(),
		TotalWorkingDays:   f.TotalWorkingDays.Float64(),
		RequiredHours:      f.RequiredHours.Float64(),
		WorkedHours:        f.WorkedHours.Float64(),
		WorkedDays:         f.WorkedDays.Float64(),
		DutyHoursPerDay:    f.DutyHoursPerDay.Float64(),
		OvertimeHours:      f.OvertimeHours.Float64(),
		BaselineShortHours: f.BaselineShortHours.Float64(),
		ShortTimeHours:     f.ShortTimeHours.Float64(),
		ShortWeekDays:      f.ShortWeekDays.Float64(),

		ThirtyWorkingDays:        f.ThirtyWorkingDays.Bool(),
		CalculateShortWeek:       f.CalculateShortWeek.Bool(),
		PayFullSalaryThroughBank: f.PayFullSalaryThroughBank.Bool(),
		PayAdvSalary:             f.PayAdvSalary.Bool(),

		Rent:                f.Rent.Float64(),
		TeaAllowance:        f.TeaAllowance.Float64(),
		MonthlyCommission:   f.MonthlyCommission.Float64(),
		WarehouseCommission: f.WarehouseCommission.Float64(),
		FixedAllowance:      f.FixedAllowance.Float64(),
		OtherAllowance:      f.OtherAllowance.Float64(),
		FullShortAllowance:  f.FullShortAllowance.Float64(),

		Fund:            f.Fund.Float64(),
		FoodRatePerDay:  f.FoodRatePerDay.Float64(),
		UmrahDeduction:  f.UmrahDeduction.Float64(),
		OtherDeduction:  f.OtherDeduction.Float64(),
		SecurityDeposit: f.SecurityDeposit.Float64(),
		Penalty:         f.Penalty.Float64(),

		CurrentAdvance:  f.CurrentAdvance.Float64(),
		PreviousAdvance: f.PreviousAdvance.Float64(),
	}
	if f.BankPaid != nil {
		paid := f.BankPaid.Float64()
		in.BankPaid = &paid
	}
	if f.CashPaid != nil {
		paid := f.CashPaid.Float64()
		in.CashPaid = &paid
	}
	return in.Normalize()
}
