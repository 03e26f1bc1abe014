// Package domain contains the invoice model and numbering.
package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Status represents invoice lifecycle states. The only stored transition is
// Unpaid to Paid; overdue is a derived predicate, never a stored state.
type Status string

const (
	StatusUnpaid Status = "Unpaid"
	StatusPaid   Status = "Paid"
)

// Invoice is a billing record captured at generation time. The subscriber id
// is a plain foreign reference; it is not checked against a live registry.
type Invoice struct {
	Number       int64
	SubscriberID int64
	Amount       float64
	DueAt        time.Time
	Status       Status
	CreatedAt    time.Time
}

// New returns an Unpaid invoice with the given number.
func New(number, subscriberID int64, amount float64, createdAt, dueAt time.Time) *Invoice {
	return &Invoice{
		Number:       number,
		SubscriberID: subscriberID,
		Amount:       amount,
		DueAt:        dueAt,
		Status:       StatusUnpaid,
		CreatedAt:    createdAt,
	}
}

// MarkPaid sets the invoice Paid. There is no guard against re-marking an
// already paid invoice; callers re-announce the payment on every call.
func (i *Invoice) MarkPaid() {
	i.Status = StatusPaid
}

// IsOverdue reports whether the invoice is unpaid and past its due date at
// the supplied instant. The answer changes as now moves; it is never stored.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == StatusUnpaid && i.DueAt.Before(now)
}

// String renders the invoice line used by the aging report.
func (i *Invoice) String() string {
	return fmt.Sprintf("Invoice#%d | SubscriberID: %d | Amount: $%s | Due: %s | State: %s",
		i.Number,
		i.SubscriberID,
		strconv.FormatFloat(i.Amount, 'f', -1, 64),
		i.DueAt.Format("2006-01-02"),
		i.Status,
	)
}
