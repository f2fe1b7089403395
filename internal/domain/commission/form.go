package commission

import "backoffice/internal/platform/lenient"

// EntryForm is the row form as submitted by the browser. Amounts may arrive as numeric
// strings or blanks; unreadable values count as 0.
type EntryForm struct {
	EmployeeID     string         `json:"employeeId" validate:"required"`
	EmployeeName   string         `json:"employeeName"`
	SaleBranch     string         `json:"saleBranch" validate:"required"`
	SaleAmount     lenient.Number `json:"saleAmount"`
	Percentage     lenient.Number `json:"percentage"`
	ItemWise       lenient.Number `json:"itemWiseCommission"`
	DailyTarget    lenient.Number `json:"dailyTarget"`
	MonthlyTarget  lenient.Number `json:"monthlyTarget"`
	PaidCommission lenient.Number `json:"paidCommission"`
}

func (f EntryForm) Entry() Entry {
	return Entry{
		EmployeeID:     f.EmployeeID,
		EmployeeName:   f.EmployeeName,
		SaleBranch:     f.SaleBranch,
		SaleAmount:     lenient.NonNegative(f.SaleAmount.Float64()),
		Percentage:     lenient.NonNegative(f.Percentage.Float64()),
		ItemWise:       lenient.NonNegative(f.ItemWise.Float64()),
		DailyTarget:    lenient.NonNegative(f.DailyTarget.Float64()),
		MonthlyTarget:  lenient.NonNegative(f.MonthlyTarget.Float64()),
		PaidCommission: lenient.NonNegative(f.PaidCommission.Float64()),
	}
}
