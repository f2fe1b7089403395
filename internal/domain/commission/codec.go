package commission

import (
	"encoding/json"
	"fmt"
	"strings"

	"backoffice/internal/platform/lenient"
)

// storedRow is the persisted row shape. Older sheets use employeeId/employeeName and
// totalCommission; newer ones use id/name and totalData. Both are read, and id, name,
// totalData and totalCommission are always written.
type storedRow struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId,omitempty"`
	Name         string `json:"name"`
	EmployeeName string `json:"employeeName,omitempty"`

	SaleBranch        string         `json:"saleBranch"`
	SaleAmount        lenient.Number `json:"saleAmount"`
	Percentage        lenient.Number `json:"percentage"`
	Commission        lenient.Number `json:"commission"`
	ItemWise          lenient.Number `json:"itemWiseCommission"`
	DailyTarget       lenient.Number `json:"dailyTarget"`
	MonthlyTarget     lenient.Number `json:"monthlyTarget"`
	MTS               lenient.Number `json:"mts"`
	TMTarget          lenient.Number `json:"tmTarget"`
	TotalData         lenient.Number `json:"totalData"`
	TotalCommission   lenient.Number `json:"totalCommission"`
	PaidCommission    lenient.Number `json:"paidCommission"`
	BalanceCommission lenient.Number `json:"balanceCommission"`
}

func newStoredRow(r Row) storedRow {
	return storedRow{
		ID:                r.EmployeeID,
		Name:              r.EmployeeName,
		SaleBranch:        r.SaleBranch,
		SaleAmount:        lenient.Number(r.SaleAmount),
		Percentage:        lenient.Number(r.Percentage),
		Commission:        lenient.Number(r.Commission),
		ItemWise:          lenient.Number(r.ItemWise),
		DailyTarget:       lenient.Number(r.DailyTarget),
		MonthlyTarget:     lenient.Number(r.MonthlyTarget),
		MTS:               lenient.Number(r.MTS),
		TMTarget:          lenient.Number(r.TMTarget),
		TotalData:         lenient.Number(r.TotalCommission),
		TotalCommission:   lenient.Number(r.TotalCommission),
		PaidCommission:    lenient.Number(r.PaidCommission),
		BalanceCommission: lenient.Number(r.BalanceCommission),
	}
}

// row folds the alternate keys into a Row. totalData wins when it is non-zero.
func (s storedRow) row() Row {
	total := s.TotalData.Float64()
	if total == 0 {
		total = s.TotalCommission.Float64()
	}
	return Row{
		EmployeeID:        firstNonEmpty(s.ID, s.EmployeeID),
		EmployeeName:      cleanName(firstNonEmpty(s.Name, s.EmployeeName)),
		SaleBranch:        s.SaleBranch,
		SaleAmount:        s.SaleAmount.Float64(),
		Percentage:        s.Percentage.Float64(),
		Commission:        s.Commission.Float64(),
		ItemWise:          s.ItemWise.Float64(),
		DailyTarget:       s.DailyTarget.Float64(),
		MonthlyTarget:     s.MonthlyTarget.Float64(),
		MTS:               s.MTS.Float64(),
		TMTarget:          s.TMTarget.Float64(),
		TotalCommission:   total,
		PaidCommission:    s.PaidCommission.Float64(),
		BalanceCommission: s.BalanceCommission.Float64(),
	}
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(newStoredRow(r))
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var stored storedRow
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	*r = stored.row()
	return nil
}

// Decode reads a persisted commission record and resolves rows saved without a usable
// employee name through dir (which may be nil); unresolved names become "Unknown".
func Decode(data []byte, dir Directory) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode commission record: %w", err)
	}
	return ResolveNames(rec, dir), nil
}

// Encode writes a record in the persisted shape.
func Encode(rec Record) ([]byte, error) {
	if rec.Type == "" {
		rec.Type = TypeSaleCommission
	}
	if rec.Rows == nil {
		rec.Rows = []Row{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode commission record: %w", err)
	}
	return data, nil
}

// ResolveNames fills empty employee names from dir, falling back to "Unknown".
func ResolveNames(rec Record, dir Directory) Record {
	out := rec
	out.Rows = make([]Row, len(rec.Rows))
	copy(out.Rows, rec.Rows)
	for i := range out.Rows {
		row := &out.Rows[i]
		if row.EmployeeName != "" {
			continue
		}
		row.EmployeeName = "Unknown"
		if dir == nil || row.EmployeeID == "" {
			continue
		}
		if name, ok := dir.EmployeeName(row.EmployeeID); ok {
			row.EmployeeName = name
		}
	}
	return out
}

// cleanName drops placeholder names left behind by older clients.
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	switch name {
	case "undefined", "null":
		return ""
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
