package commission

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"backoffice/internal/platform/lenient"
)

var hundred = decimal.NewFromInt(100)

// flatCommission is sale * percentage / 100 to two decimals.
func flatCommission(sale, percentage float64) float64 {
	return decimal.NewFromFloat(sale).
		Mul(decimal.NewFromFloat(percentage)).
		Div(hundred).
		Round(2).
		InexactFloat64()
}

func matchingSale(rows []Row, branchName string) float64 {
	var total float64
	for _, row := range rows {
		if Matches(row.SaleBranch, branchName) {
			total += row.SaleAmount
		}
	}
	return total
}

// PreviewRow computes the row an entry would add. Its target share is projected against
// the matching sales already in the record plus the entry's own sale.
func PreviewRow(rec Record, entry Entry, target float64, branchName string) Row {
	row := Row{
		EmployeeID:     entry.EmployeeID,
		EmployeeName:   entry.EmployeeName,
		SaleBranch:     entry.SaleBranch,
		SaleAmount:     lenient.NonNegative(entry.SaleAmount),
		Percentage:     lenient.NonNegative(entry.Percentage),
		ItemWise:       lenient.NonNegative(entry.ItemWise),
		DailyTarget:    lenient.NonNegative(entry.DailyTarget),
		MonthlyTarget:  lenient.NonNegative(entry.MonthlyTarget),
		PaidCommission: lenient.NonNegative(entry.PaidCommission),
	}
	row.Commission = flatCommission(row.SaleAmount, row.Percentage)

	if Matches(row.SaleBranch, branchName) {
		projected := matchingSale(rec.Rows, branchName) + row.SaleAmount
		if projected > 0 {
			row.MTS = lenient.NonNegative(target) / projected
		}
		row.TMTarget = row.MTS * row.SaleAmount
	}
	row.settle()
	return row
}

// AddRow appends the previewed row. Existing rows keep their values until RecomputeAll.
func AddRow(rec Record, entry Entry, target float64, branchName string) Record {
	row := PreviewRow(rec, entry, target, branchName)
	out := rec
	out.Rows = append(slices.Clone(rec.Rows), row)
	return out
}

// UpdateRow replaces the row at index, projecting its share against the other rows.
func UpdateRow(rec Record, index int, entry Entry, target float64, branchName string) (Record, error) {
	if index < 0 || index >= len(rec.Rows) {
		return rec, fmt.Errorf("%w: %d of %d", ErrRowIndex, index, len(rec.Rows))
	}
	others := rec
	others.Rows = slices.Delete(slices.Clone(rec.Rows), index, index+1)

	out := rec
	out.Rows = slices.Clone(rec.Rows)
	out.Rows[index] = PreviewRow(others, entry, target, branchName)
	return out, nil
}

func RemoveRow(rec Record, index int) (Record, error) {
	if index < 0 || index >= len(rec.Rows) {
		return rec, fmt.Errorf("%w: %d of %d", ErrRowIndex, index, len(rec.Rows))
	}
	out := rec
	out.Rows = slices.Delete(slices.Clone(rec.Rows), index, index+1)
	return out, nil
}

// RecomputeAll spreads the achieved target over every row whose sale branch matches the
// commission branch, in proportion to sale, and settles every row's total and balance.
func RecomputeAll(rec Record, target float64, branchName string) Record {
	out := rec
	out.Rows = slices.Clone(rec.Rows)

	var ratio float64
	if matching := matchingSale(out.Rows, branchName); matching > 0 {
		ratio = lenient.NonNegative(target) / matching
	}
	for i := range out.Rows {
		row := &out.Rows[i]
		if Matches(row.SaleBranch, branchName) {
			row.MTS = ratio
			row.TMTarget = ratio * row.SaleAmount
		} else {
			row.MTS = 0
			row.TMTarget = 0
		}
		row.settle()
	}
	return out
}

// Summarize returns the footer sums and the per-employee totals in first-appearance order.
func Summarize(rec Record) Summary {
	s := Summary{Employees: []EmployeeTotal{}}
	index := map[string]int{}
	for _, row := range rec.Rows {
		s.Sale += row.SaleAmount
		s.Commission += row.Commission
		s.ItemWise += row.ItemWise
		s.DailyTarget += row.DailyTarget
		s.MonthlyTarget += row.MonthlyTarget
		s.TMTarget += row.TMTarget
		s.Total += row.TotalCommission
		s.Paid += row.PaidCommission
		s.Balance += row.BalanceCommission

		name := row.EmployeeName
		if name == "" {
			name = "N/A"
		}
		i, ok := index[name]
		if !ok {
			i = len(s.Employees)
			index[name] = i
			s.Employees = append(s.Employees, EmployeeTotal{Name: name})
		}
		s.Employees[i].Count++
		s.Employees[i].Total += row.TotalCommission
	}
	s.RowCount = len(rec.Rows)
	for _, e := range s.Employees {
		s.GrandTotal += e.Total
	}
	return s
}
