package payroll

import (
	"time"

	"backoffice/internal/platform/lenient"
)

// Field names the payroll form field the operator is typing into. Derived values are
// never written back into the active field.
type Field string

const (
	FieldNone           Field = ""
	FieldWorkedHours    Field = "workedHours"
	FieldOvertimeHours  Field = "overtimeHours"
	FieldShortWeekDays  Field = "shortWeekDays"
	FieldShortTimeHours Field = "shortTimeHours"
)

// ParseField maps a form field id to a Field; unknown ids are FieldNone.
func ParseField(value string) Field {
	switch Field(value) {
	case FieldWorkedHours, FieldOvertimeHours, FieldShortWeekDays, FieldShortTimeHours:
		return Field(value)
	}
	return FieldNone
}

// Input is one employee-month as edited on the payroll screen.
type Input struct {
	BasicSalary        float64 `json:"basicSalary"`
	TotalWorkingDays   float64 `json:"totalWorkingDays"`
	RequiredHours      float64 `json:"requiredHours"`
	WorkedHours        float64 `json:"workedHours"`
	WorkedDays         float64 `json:"workedDays"`
	DutyHoursPerDay    float64 `json:"dutyHoursPerDay"`
	OvertimeHours      float64 `json:"overtimeHours"`
	BaselineShortHours float64 `json:"baselineShortHours"`
	ShortTimeHours     float64 `json:"shortTimeHours"`
	ShortWeekDays      float64 `json:"shortWeekDays"`

	ThirtyWorkingDays        bool `json:"thirtyWorkingDays"`
	CalculateShortWeek       bool `json:"calculateShortWeek"`
	PayFullSalaryThroughBank bool `json:"payFullSalaryThroughBank"`
	// PayAdvSalary is recorded with the payroll; it does not enter the arithmetic.
	PayAdvSalary bool `json:"payAdvSalary"`

	Rent                float64 `json:"rent"`
	TeaAllowance        float64 `json:"teaAllowance"`
	MonthlyCommission   float64 `json:"monthlyCommission"`
	WarehouseCommission float64 `json:"warehouseCommission"`
	FixedAllowance      float64 `json:"fixedAllowance"`
	OtherAllowance      float64 `json:"otherAllowance"`
	FullShortAllowance  float64 `json:"fullShortAllowance"`

	Fund            float64 `json:"fund"`
	FoodRatePerDay  float64 `json:"foodRatePerDay"`
	UmrahDeduction  float64 `json:"umrahDeduction"`
	OtherDeduction  float64 `json:"otherDeduction"`
	SecurityDeposit float64 `json:"securityDeposit"`
	Penalty         float64 `json:"penalty"`

	CurrentAdvance  float64 `json:"currentAdvance"`
	PreviousAdvance float64 `json:"previousAdvance"`

	// BankPaid and CashPaid replace the computed payment split when either is set.
	BankPaid *float64 `json:"bankPaid,omitempty"`
	CashPaid *float64 `json:"cashPaid,omitempty"`
}

// Normalize returns a copy with every amount and hour count finite and non-negative.
func (in Input) Normalize() Input {
	out := in
	for _, value := range []*float64{
		&out.BasicSalary, &out.TotalWorkingDays, &out.RequiredHours, &out.WorkedHours,
		&out.WorkedDays, &out.DutyHoursPerDay, &out.OvertimeHours, &out.BaselineShortHours,
		&out.ShortTimeHours, &out.ShortWeekDays,
		&out.Rent, &out.TeaAllowance, &out.MonthlyCommission, &out.WarehouseCommission,
		&out.FixedAllowance, &out.OtherAllowance, &out.FullShortAllowance,
		&out.Fund, &out.FoodRatePerDay, &out.UmrahDeduction, &out.OtherDeduction,
		&out.SecurityDeposit, &out.Penalty, &out.CurrentAdvance, &out.PreviousAdvance,
	} {
		*value = lenient.NonNegative(*value)
	}
	if in.BankPaid != nil {
		paid := lenient.NonNegative(*in.BankPaid)
		out.BankPaid = &paid
	}
	if in.CashPaid != nil {
		paid := lenient.NonNegative(*in.CashPaid)
		out.CashPaid = &paid
	}
	return out
}

// Correction is a derived value the form should show in a field the operator is not editing.
type Correction struct {
	Field Field   `json:"field"`
	Value float64 `json:"value"`
}

// Result is the full payroll breakdown for one Input.
type Result struct {
	PerDayRate  float64 `json:"perDayRate"`
	PerHourRate float64 `json:"perHourRate"`
	OTSTRate    float64 `json:"otstRate"`

	WorkedHours    float64 `json:"workedHours"`
	OvertimeHours  float64 `json:"overtimeHours"`
	ShortWeekDays  float64 `json:"shortWeekDays"`
	ShortTimeHours float64 `json:"shortTimeHours"`

	OvertimeAmount  float64 `json:"overtimeAmount"`
	ShortAllowance  float64 `json:"shortAllowance"`
	EarningsTotal   float64 `json:"earningsTotal"`
	ShortTimeAmount float64 `json:"shortTimeAmount"`
	FoodDeduction   float64 `json:"foodDeduction"`
	DeductionsTotal float64 `json:"deductionsTotal"`
	WorkedAmount    float64 `json:"workedAmount"`
	GrossTotal      float64 `json:"grossTotal"`

	AdvancesRecovered float64 `json:"advancesRecovered"`
	NetTotal          float64 `json:"netTotal"`
	AnnualSalary      float64 `json:"annualSalary"`
	AnnualTax         float64 `json:"annualTax"`
	WHT               float64 `json:"wht"`
	BankPaid          float64 `json:"bankPaid"`
	CashPaid          float64 `json:"cashPaid"`
	Balance           float64 `json:"balance"`

	Corrections []Correction `json:"corrections"`
}

// Employee is the profile data a payroll draft starts from.
type Employee struct {
	ID              string  `json:"id" validate:"required"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Department      string  `json:"department"`
	Designation     string  `json:"designation"`
	BasicSalary     float64 `json:"basicSalary" validate:"gte=0"`
	DutyHoursPerDay float64 `json:"dutyHoursPerDay" validate:"gte=0"`
	TeaAllowance    float64 `json:"teaAllowance" validate:"gte=0"`
	OtherAllowance  float64 `json:"otherAllowance" validate:"gte=0"`
	AreaAllowance   float64 `json:"areaAllowance" validate:"gte=0"`
	SecurityDeposit float64 `json:"securityDeposit" validate:"gte=0"`
}

// AttendanceDay is one attendance entry; WorkedHours is free text such as "8h 30m".
type AttendanceDay struct {
	Date        time.Time `json:"date"`
	Present     bool      `json:"isPresent"`
	WorkedHours string    `json:"workedHrs"`
}

// Advance is an outstanding salary advance.
type Advance struct {
	Date    time.Time `json:"date"`
	Balance float64   `json:"balance"`
}
