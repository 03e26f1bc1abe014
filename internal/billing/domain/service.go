// Package domain defines the billing orchestration contract.
package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/smallbiznis/railbill/internal/invoice/domain"
	subscriberdomain "github.com/smallbiznis/railbill/internal/subscriber/domain"
)

// RevenueReport totals the amounts of invoices already paid at report time.
type RevenueReport struct {
	Total     float64
	PaidCount int
}

// AgingReport lists invoices that are unpaid and past due at report time.
type AgingReport struct {
	Overdue []*invoicedomain.Invoice
}

type Service interface {
	// GenerateInvoice bills the subscriber's current plan, feeding the
	// plan's trial-day count in as the usage quantity. Trial days and
	// usage days are different concepts; the coupling is kept on purpose
	// because downstream totals depend on it.
	GenerateInvoice(ctx context.Context, sub *subscriberdomain.Subscriber) (*invoicedomain.Invoice, error)

	// GenerateInvoiceForUsage bills explicit usage, applying the discount
	// code when it matches a configured one (case-insensitive). Unknown
	// codes are accepted and ignored.
	GenerateInvoiceForUsage(ctx context.Context, sub *subscriberdomain.Subscriber, daysUsed int, discountCode string) (*invoicedomain.Invoice, error)

	// RecordPayment marks the invoice paid and announces it. Calling it
	// on a paid invoice repeats the announcement; the state is unchanged.
	RecordPayment(ctx context.Context, invoice *invoicedomain.Invoice) error

	ShowRevenueReport(ctx context.Context) (RevenueReport, error)
	ShowAgingReport(ctx context.Context) (AgingReport, error)
}

var (
	ErrMissingSubscriber = errors.New("missing_subscriber")
	ErrMissingPlan       = errors.New("missing_plan")
	ErrMissingInvoice    = errors.New("missing_invoice")
)
