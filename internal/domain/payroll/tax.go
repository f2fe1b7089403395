package payroll

// AnnualTax applies the progressive withholding table to an annual salary, plus the
// surcharge above SurchargeThreshold. Salaries at or below the first bracket pay nothing.
func AnnualTax(annual float64) float64 {
	var tax float64
	for _, b := range withholdingBrackets {
		if b.upTo == 0 || annual <= b.upTo {
			tax = b.base + (annual-b.over)*b.percent/100
			break
		}
	}
	if annual > SurchargeThreshold {
		tax = tax * (100 + SurchargePercent) / 100
	}
	return tax
}

// MonthlyWithholding is the rounded monthly share of the annual tax on net*12.
func MonthlyWithholding(net float64) float64 {
	return round(AnnualTax(net*12) / 12)
}
