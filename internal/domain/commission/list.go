package commission

import "strings"

// ListEntry is the list-view line for one saved record.
type ListEntry struct {
	ID                   string  `json:"id,omitempty"`
	MonthYear            string  `json:"monthYear"`
	Branch               string  `json:"branch"`
	CommissionBranch     string  `json:"commissionBranch"`
	CommissionBranchName string  `json:"commissionBranchName,omitempty"`
	Sale                 float64 `json:"sale"`
	ItemWise             float64 `json:"itemWiseCommission"`
	DailyTarget          float64 `json:"dailyTarget"`
	MonthlyTarget        float64 `json:"monthlyTarget"`
	Total                float64 `json:"totalCommission"`
	Paid                 float64 `json:"paidCommission"`
}

// Digest sums a record's rows for the list view.
func Digest(rec Record) ListEntry {
	d := ListEntry{
		ID:                   rec.ID,
		MonthYear:            rec.MonthYear,
		Branch:               rec.Branch,
		CommissionBranch:     rec.CommissionBranch,
		CommissionBranchName: rec.CommissionBranchName,
	}
	for _, row := range rec.Rows {
		d.Sale += row.SaleAmount
		d.ItemWise += row.ItemWise
		d.DailyTarget += row.DailyTarget
		d.MonthlyTarget += row.MonthlyTarget
		d.Total += row.TotalCommission
		d.Paid += row.PaidCommission
	}
	return d
}

// ListFilter narrows saved records. From and To may be months ("2024-02") or dates
// ("2024-02-15"); only the month part is compared and both bounds are inclusive.
type ListFilter struct {
	Branch string `json:"branch"`
	From   string `json:"from" validate:"omitempty,min=7"`
	To     string `json:"to" validate:"omitempty,min=7"`
}

// Filter keeps sale commission records that pass f, in input order.
func Filter(records []Record, f ListFilter) []Record {
	from, to := monthOf(f.From), monthOf(f.To)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Type != TypeSaleCommission {
			continue
		}
		if f.Branch != "" && rec.Branch != f.Branch {
			continue
		}
		if from != "" && rec.MonthYear < from {
			continue
		}
		if to != "" && rec.MonthYear > to {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func monthOf(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > 7 {
		return value[:7]
	}
	return value
}
