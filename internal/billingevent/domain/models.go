package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Event types emitted by the billing workflows.
const (
	EventPlanChanged     = "subscription.plan_changed"
	EventInvoiceCreated  = "invoice.generated"
	EventPaymentRecorded = "invoice.payment_recorded"
)

// BillingEvent captures audit events for billing workflows.
type BillingEvent struct {
	ID        snowflake.ID
	EventType string
	Payload   map[string]any
	CreatedAt time.Time
}

// Recorder collects billing events in creation order.
type Recorder interface {
	Append(eventType string, payload map[string]any) BillingEvent
	List() []BillingEvent
}
