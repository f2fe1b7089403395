package payroll

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain/timecodec"
)

// ParseMonthYear returns the first day of a "YYYY-MM" month in UTC.
func ParseMonthYear(value string) (time.Time, error) {
	start, err := time.Parse("2006-01", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthYear, value)
	}
	return start, nil
}

// Draft prefills a payroll form for one employee-month from the profile, the month's
// attendance and the outstanding advances. Entries outside the month are ignored.
func Draft(emp Employee, monthYear string, attendance []AttendanceDay, advances []Advance) (Input, error) {
	if strings.TrimSpace(emp.ID) == "" {
		return Input{}, ErrMissingEmployee
	}
	start, err := ParseMonthYear(monthYear)
	if err != nil {
		return Input{}, err
	}
	daysInMonth := float64(start.AddDate(0, 1, -1).Day())

	duty := emp.DutyHoursPerDay
	if duty <= 0 {
		duty = DefaultDutyHours
	}

	in := Input{
		BasicSalary:        emp.BasicSalary,
		TotalWorkingDays:   daysInMonth,
		RequiredHours:      daysInMonth * duty,
		DutyHoursPerDay:    duty,
		TeaAllowance:       emp.TeaAllowance,
		OtherAllowance:     emp.OtherAllowance,
		FullShortAllowance: emp.AreaAllowance,
		SecurityDeposit:    emp.SecurityDeposit,
	}

	for _, day := range attendance {
		if !sameMonth(day.Date, start) {
			continue
		}
		if day.Present {
			in.WorkedDays++
		}
		in.WorkedHours += timecodec.ParseDuration(day.WorkedHours)
	}

	var latest time.Time
	for _, adv := range advances {
		if !sameMonth(adv.Date, start) || adv.Date.Before(latest) {
			continue
		}
		latest = adv.Date
		in.PreviousAdvance = adv.Balance
	}

	return in.Normalize(), nil
}

func sameMonth(t, month time.Time) bool {
	y, m, _ := t.Date()
	return y == month.Year() && m == month.Month()
}
