package commission

const TypeSaleCommission = "sale_commission"

// Row is one (employee, sale branch) line of a commission sheet.
type Row struct {
	EmployeeID        string
	EmployeeName      string
	SaleBranch        string
	SaleAmount        float64
	Percentage        float64
	Commission        float64
	ItemWise          float64
	DailyTarget       float64
	MonthlyTarget     float64
	MTS               float64
	TMTarget          float64
	TotalCommission   float64
	PaidCommission    float64
	BalanceCommission float64
}

// settle restores the total and balance invariants from the row's components.
func (r *Row) settle() {
	r.TotalCommission = r.Commission + r.ItemWise + r.DailyTarget + r.MonthlyTarget + r.TMTarget
	r.BalanceCommission = r.TotalCommission - r.PaidCommission
}

// Record is a monthly commission sheet for one commission branch.
type Record struct {
	ID                   string `json:"id,omitempty"`
	MonthYear            string `json:"monthYear"`
	Branch               string `json:"branch"`
	Department           string `json:"department"`
	CommissionBranch     string `json:"commissionBranch"`
	CommissionBranchName string `json:"commissionBranchName,omitempty"`
	Type                 string `json:"type"`
	Rows                 []Row  `json:"data"`
}

// Entry is the row form as filled in before a row is added or replaced.
type Entry struct {
	EmployeeID     string  `json:"employeeId"`
	EmployeeName   string  `json:"employeeName"`
	SaleBranch     string  `json:"saleBranch"`
	SaleAmount     float64 `json:"saleAmount"`
	Percentage     float64 `json:"percentage"`
	ItemWise       float64 `json:"itemWiseCommission"`
	DailyTarget    float64 `json:"dailyTarget"`
	MonthlyTarget  float64 `json:"monthlyTarget"`
	PaidCommission float64 `json:"paidCommission"`
}

// Summary holds the table footers and the per-employee breakdown of a record.
type Summary struct {
	Sale          float64         `json:"sale"`
	Commission    float64         `json:"commission"`
	ItemWise      float64         `json:"itemWiseCommission"`
	DailyTarget   float64         `json:"dailyTarget"`
	MonthlyTarget float64         `json:"monthlyTarget"`
	TMTarget      float64         `json:"tmTarget"`
	Total         float64         `json:"totalCommission"`
	Paid          float64         `json:"paidCommission"`
	Balance       float64         `json:"balanceCommission"`
	Employees     []EmployeeTotal `json:"employees"`
	RowCount      int             `json:"rowCount"`
	GrandTotal    float64         `json:"grandTotal"`
}

type EmployeeTotal struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Directory resolves employee names for rows saved without one.
type Directory interface {
	EmployeeName(id string) (string, bool)
}

// DirectoryMap is a Directory keyed by employee id.
type DirectoryMap map[string]string

func (d DirectoryMap) EmployeeName(id string) (string, bool) {
	name, ok := d[id]
	return name, ok && name != ""
}
