package payroll

const (
	DefaultMonthDays = 30
	DefaultDutyHours = 8

	// ExpectedWeeks is the number of worked weeks a month is expected to hold when
	// short week is calculated from worked hours.
	ExpectedWeeks = 4

	// Annual salary above which the withholding surcharge applies.
	SurchargeThreshold = 10_000_000
	SurchargePercent   = 9
)

type taxBracket struct {
	upTo    float64
	base    float64
	percent float64
	over    float64
}

// withholdingBrackets is the annual progressive table; the last bracket is open ended.
var withholdingBrackets = []taxBracket{
	{upTo: 600_000, base: 0, percent: 0, over: 0},
	{upTo: 1_200_000, base: 0, percent: 1, over: 600_000},
	{upTo: 2_200_000, base: 6_000, percent: 11, over: 1_200_000},
	{upTo: 3_200_000, base: 116_000, percent: 23, over: 2_200_000},
	{upTo: 4_100_000, base: 346_000, percent: 30, over: 3_200_000},
	{upTo: 0, base: 616_000, percent: 35, over: 4_100_000},
}
