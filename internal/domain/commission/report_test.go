package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGroupsAndBranchSplit(t *testing.T) {
	rec := Record{
		MonthYear: "2024-02",
		Branch:    "Main",
		Rows: []Row{
			{EmployeeID: "e1", EmployeeName: "Ali", SaleBranch: "F-6", SaleAmount: 1000, Commission: 20, TMTarget: 80, TotalCommission: 100},
			{EmployeeID: "e1", EmployeeName: "Ali", SaleBranch: " G-9 ", SaleAmount: 500, Commission: 10, ItemWise: 5},
			{EmployeeID: "e9", SaleBranch: "(F-6) Outlet", SaleAmount: 250, TotalCommission: 12},
			{SaleBranch: "", SaleAmount: 40, TotalCommission: 1},
		},
	}

	report := Report(rec, "F-6", DirectoryMap{"e9": "Sara"})

	require.Len(t, report.Groups, 3)
	ali := report.Groups[0]
	assert.Equal(t, "Ali", ali.Name)
	require.Len(t, ali.Lines, 2)
	assert.Equal(t, 100.0, ali.Lines[0].Net)
	assert.Equal(t, 15.0, ali.Lines[1].Net)
	assert.Equal(t, 1500.0, ali.Sale)
	assert.Equal(t, 115.0, ali.Net)
	assert.Equal(t, "Sara", report.Groups[1].Name)
	assert.Equal(t, "Unknown Employee", report.Groups[2].Name)

	assert.Equal(t, 1790.0, report.GrandSale)
	assert.Equal(t, 128.0, report.GrandNet)
	assert.Equal(t, 1250.0, report.CommissionBranchSale)
	assert.Equal(t, []BranchSale{{Name: "G-9", Amount: 500}, {Name: "Unknown", Amount: 40}}, report.OtherBranches)
}

func TestReportNamesUnresolvedEmployeesByID(t *testing.T) {
	rec := Record{Rows: []Row{{EmployeeID: "e5", EmployeeName: "null", SaleBranch: "F-6"}}}
	report := Report(rec, "F-6", nil)
	require.Len(t, report.Groups, 1)
	assert.Equal(t, "ID: e5", report.Groups[0].Name)
}

func TestDigest(t *testing.T) {
	rec := Record{
		ID:        "r1",
		MonthYear: "2024-02",
		Rows: []Row{
			{SaleAmount: 1000, ItemWise: 5, DailyTarget: 10, MonthlyTarget: 20, TotalCommission: 100, PaidCommission: 40},
			{SaleAmount: 500, ItemWise: 1, TotalCommission: 30, PaidCommission: 30},
		},
	}
	d := Digest(rec)
	assert.Equal(t, "r1", d.ID)
	assert.Equal(t, 1500.0, d.Sale)
	assert.Equal(t, 6.0, d.ItemWise)
	assert.Equal(t, 10.0, d.DailyTarget)
	assert.Equal(t, 20.0, d.MonthlyTarget)
	assert.Equal(t, 130.0, d.Total)
	assert.Equal(t, 70.0, d.Paid)
}

func TestFilter(t *testing.T) {
	records := []Record{
		{ID: "a", Type: TypeSaleCommission, Branch: "Main", MonthYear: "2024-01"},
		{ID: "b", Type: TypeSaleCommission, Branch: "Main", MonthYear: "2024-02"},
		{ID: "c", Type: TypeSaleCommission, Branch: "North", MonthYear: "2024-02"},
		{ID: "d", Type: "bonus", Branch: "Main", MonthYear: "2024-02"},
		{ID: "e", Type: TypeSaleCommission, Branch: "Main", MonthYear: "2024-04"},
	}

	ids := func(recs []Record) []string {
		out := []string{}
		for _, r := range recs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c", "e"}, ids(Filter(records, ListFilter{})))
	assert.Equal(t, []string{"a", "b", "e"}, ids(Filter(records, ListFilter{Branch: "Main"})))
	assert.Equal(t, []string{"b", "c"}, ids(Filter(records, ListFilter{From: "2024-02-01", To: "2024-03-31"})))
	assert.Equal(t, []string{"e"}, ids(Filter(records, ListFilter{Branch: "Main", From: "2024-03"})))
	assert.Empty(t, Filter(nil, ListFilter{}))
}
