package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64

	payslipsGenerated uint64
	payrollRuns       uint64
	payrollRunErrors  uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordPayslip() {
	atomic.AddUint64(&c.payslipsGenerated, 1)
}

func (c *Collector) RecordPayrollRun(failed int) {
	atomic.AddUint64(&c.payrollRuns, 1)
	atomic.AddUint64(&c.payrollRunErrors, uint64(failed))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"payslipsGenerated": atomic.LoadUint64(&c.payslipsGenerated),
		"payrollRuns":       atomic.LoadUint64(&c.payrollRuns),
		"payrollRunErrors":  atomic.LoadUint64(&c.payrollRunErrors),
	}
}
