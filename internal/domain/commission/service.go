package commission

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

// branchFor prefers an explicit commission branch name over the one stored on the record.
func branchFor(rec Record, branchName string) string {
	if branchName != "" {
		return branchName
	}
	return rec.CommissionBranchName
}

func (s *Service) Preview(ctx context.Context, rec Record, entry Entry, target float64, branchName string) Row {
	return PreviewRow(rec, entry, target, branchFor(rec, branchName))
}

func (s *Service) Add(ctx context.Context, rec Record, entry Entry, target float64, branchName string) (Record, Summary) {
	out := AddRow(rec, entry, target, branchFor(rec, branchName))
	s.logger.DebugContext(ctx, "commission row added",
		"monthYear", rec.MonthYear,
		"employeeId", entry.EmployeeID,
		"saleBranch", entry.SaleBranch,
		"rows", len(out.Rows),
	)
	return out, Summarize(out)
}

func (s *Service) Update(ctx context.Context, rec Record, index int, entry Entry, target float64, branchName string) (Record, Summary, error) {
	out, err := UpdateRow(rec, index, entry, target, branchFor(rec, branchName))
	if err != nil {
		s.logger.WarnContext(ctx, "commission row update rejected", "index", index, "rows", len(rec.Rows), "error", err)
		return rec, Summary{}, err
	}
	return out, Summarize(out), nil
}

func (s *Service) Remove(ctx context.Context, rec Record, index int) (Record, Summary, error) {
	out, err := RemoveRow(rec, index)
	if err != nil {
		s.logger.WarnContext(ctx, "commission row removal rejected", "index", index, "rows", len(rec.Rows), "error", err)
		return rec, Summary{}, err
	}
	return out, Summarize(out), nil
}

func (s *Service) Recompute(ctx context.Context, rec Record, target float64, branchName string) (Record, Summary) {
	out := RecomputeAll(rec, target, branchFor(rec, branchName))
	summary := Summarize(out)
	s.logger.DebugContext(ctx, "commission recomputed",
		"monthYear", rec.MonthYear,
		"commissionBranch", branchFor(rec, branchName),
		"target", target,
		"rows", summary.RowCount,
		"total", summary.Total,
	)
	return out, summary
}

func (s *Service) Report(ctx context.Context, rec Record, branchName string, dir Directory) ReportData {
	return Report(rec, branchFor(rec, branchName), dir)
}

// List filters saved records and returns their list-view digests.
func (s *Service) List(ctx context.Context, records []Record, f ListFilter) []ListEntry {
	kept := Filter(records, f)
	out := make([]ListEntry, 0, len(kept))
	for _, rec := range kept {
		out = append(out, Digest(rec))
	}
	s.logger.DebugContext(ctx, "commission list filtered", "records", len(records), "kept", len(out))
	return out
}
