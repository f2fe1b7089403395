package payroll

import (
	"context"
	"log/slog"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

func (s *Service) Recompute(ctx context.Context, form Form, active Field) Result {
	res := Recompute(form.Input(), active)
	s.logger.DebugContext(ctx, "payroll recomputed",
		"activeField", string(active),
		"gross", res.GrossTotal,
		"net", res.NetTotal,
		"wht", res.WHT,
		"corrections", len(res.Corrections),
	)
	return res
}

// Draft builds the form input for an employee-month and its computed breakdown.
func (s *Service) Draft(ctx context.Context, emp Employee, monthYear string, attendance []AttendanceDay, advances []Advance) (Input, Result, error) {
	in, err := Draft(emp, monthYear, attendance, advances)
	if err != nil {
		s.logger.WarnContext(ctx, "payroll draft rejected", "employeeId", emp.ID, "monthYear", monthYear, "error", err)
		return Input{}, Result{}, err
	}
	res := Recompute(in, FieldNone)
	s.logger.InfoContext(ctx, "payroll draft prepared",
		"employeeId", emp.ID,
		"monthYear", monthYear,
		"workedDays", in.WorkedDays,
		"workedHours", in.WorkedHours,
		"net", res.NetTotal,
	)
	return in, res, nil
}
