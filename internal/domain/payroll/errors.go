package payroll

import "errors"

var (
	ErrInvalidMonthYear = errors.New("month-year must be in YYYY-MM format")
	ErrMissingEmployee  = errors.New("payroll draft requires an employee id")
)
