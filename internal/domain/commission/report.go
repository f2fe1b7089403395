package commission

import "strings"

type ReportLine struct {
	SaleBranch    string  `json:"saleBranch"`
	Sale          float64 `json:"sale"`
	Percentage    float64 `json:"percentage"`
	Commission    float64 `json:"commission"`
	ItemWise      float64 `json:"itemWiseCommission"`
	DailyTarget   float64 `json:"dailyTarget"`
	MonthlyTarget float64 `json:"monthlyTarget"`
	MTS           float64 `json:"mts"`
	TMTarget      float64 `json:"tmTarget"`
	Net           float64 `json:"net"`
}

type EmployeeGroup struct {
	Name          string       `json:"name"`
	Lines         []ReportLine `json:"lines"`
	Sale          float64      `json:"sale"`
	Commission    float64      `json:"commission"`
	ItemWise      float64      `json:"itemWiseCommission"`
	DailyTarget   float64      `json:"dailyTarget"`
	MonthlyTarget float64      `json:"monthlyTarget"`
	TMTarget      float64      `json:"tmTarget"`
	Net           float64      `json:"net"`
}

type BranchSale struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ReportData is the printable commission report without any layout.
type ReportData struct {
	MonthYear            string          `json:"monthYear"`
	Branch               string          `json:"branch"`
	CommissionBranchName string          `json:"commissionBranchName"`
	Groups               []EmployeeGroup `json:"groups"`
	GrandSale            float64         `json:"grandSale"`
	GrandCommission      float64         `json:"grandCommission"`
	GrandItemWise        float64         `json:"grandItemWiseCommission"`
	GrandNet             float64         `json:"grandNet"`
	CommissionBranchSale float64         `json:"commissionBranchSale"`
	OtherBranches        []BranchSale    `json:"otherBranches"`
}

// Report groups rows by employee and splits sales between the commission branch and
// every other branch. Groups and branches keep first-appearance order.
func Report(rec Record, branchName string, dir Directory) ReportData {
	out := ReportData{
		MonthYear:            rec.MonthYear,
		Branch:               rec.Branch,
		CommissionBranchName: branchName,
		Groups:               []EmployeeGroup{},
		OtherBranches:        []BranchSale{},
	}

	groupIndex := map[string]int{}
	var branches []BranchSale
	branchIndex := map[string]int{}

	for _, row := range rec.Rows {
		name := reportName(row, dir)
		gi, ok := groupIndex[name]
		if !ok {
			gi = len(out.Groups)
			groupIndex[name] = gi
			out.Groups = append(out.Groups, EmployeeGroup{Name: name})
		}
		line := reportLine(row)
		g := &out.Groups[gi]
		g.Lines = append(g.Lines, line)
		g.Sale += line.Sale
		g.Commission += line.Commission
		g.ItemWise += line.ItemWise
		g.DailyTarget += line.DailyTarget
		g.MonthlyTarget += line.MonthlyTarget
		g.TMTarget += line.TMTarget
		g.Net += line.Net

		branch := strings.TrimSpace(row.SaleBranch)
		if branch == "" {
			branch = "Unknown"
		}
		bi, ok := branchIndex[branch]
		if !ok {
			bi = len(branches)
			branchIndex[branch] = bi
			branches = append(branches, BranchSale{Name: branch})
		}
		branches[bi].Amount += row.SaleAmount
	}

	for _, g := range out.Groups {
		out.GrandSale += g.Sale
		out.GrandCommission += g.Commission
		out.GrandItemWise += g.ItemWise
		out.GrandNet += g.Net
	}
	for _, b := range branches {
		if Matches(b.Name, branchName) {
			out.CommissionBranchSale += b.Amount
			continue
		}
		out.OtherBranches = append(out.OtherBranches, b)
	}
	return out
}

func reportLine(row Row) ReportLine {
	net := row.TotalCommission
	if net == 0 {
		net = row.Commission + row.ItemWise + row.DailyTarget + row.MonthlyTarget + row.TMTarget
	}
	return ReportLine{
		SaleBranch:    row.SaleBranch,
		Sale:          row.SaleAmount,
		Percentage:    row.Percentage,
		Commission:    row.Commission,
		ItemWise:      row.ItemWise,
		DailyTarget:   row.DailyTarget,
		MonthlyTarget: row.MonthlyTarget,
		MTS:           row.MTS,
		TMTarget:      row.TMTarget,
		Net:           net,
	}
}

func reportName(row Row, dir Directory) string {
	if name := cleanName(row.EmployeeName); name != "" {
		return name
	}
	if dir != nil && row.EmployeeID != "" {
		if name, ok := dir.EmployeeName(row.EmployeeID); ok {
			return name
		}
	}
	if row.EmployeeID != "" {
		return "ID: " + row.EmployeeID
	}
	return "Unknown Employee"
}
