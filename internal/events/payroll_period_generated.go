package events

import "time"

const PayrollPeriodGeneratedTopic = "payroll.period.generated.v1"

// PayrollPeriodGeneratedEvent is consumed by the external payslip renderer
// and reporting dashboards once a period's records are committed.
type PayrollPeriodGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PeriodID    string    `json:"period_id"`
	PeriodName  string    `json:"period_name"`
	RecordCount int       `json:"record_count"`
	GeneratedBy string    `json:"generated_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
