package metrics

import (
	"sync/atomic"
	"time"
)

// Calculation identifies an engine whose runs are counted.
type Calculation string

const (
	CalcPayroll    Calculation = "payroll"
	CalcDraft      Calculation = "payrollDraft"
	CalcCommission Calculation = "commission"
	CalcTime       Calculation = "time"
)

type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	errorRequests   atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64

	payrollRuns    atomic.Uint64
	draftRuns      atomic.Uint64
	commissionRuns atomic.Uint64
	timeRuns       atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
	case status >= 500:
		c.errorRequests.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(max(duration.Milliseconds(), 0)))
}

// Count records one engine run. A nil collector ignores it.
func (c *Collector) Count(calc Calculation) {
	if c == nil {
		return
	}
	switch calc {
	case CalcPayroll:
		c.payrollRuns.Add(1)
	case CalcDraft:
		c.draftRuns.Add(1)
	case CalcCommission:
		c.commissionRuns.Add(1)
	case CalcTime:
		c.timeRuns.Add(1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"clientErrorsTotal": c.clientErrors.Load(),
		"errorsTotal":       c.errorRequests.Load(),
		"rateLimitedTotal":  c.rateLimited.Load(),
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"calculations": map[string]uint64{
			string(CalcPayroll):    c.payrollRuns.Load(),
			string(CalcDraft):      c.draftRuns.Load(),
			string(CalcCommission): c.commissionRuns.Load(),
			string(CalcTime):       c.timeRuns.Load(),
		},
	}
}
