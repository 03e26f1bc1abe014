package service

import (
	"context"
	"time"

	"github.com/smallbiznis/railbill/internal/billing/domain"
	billingeventdomain "github.com/smallbiznis/railbill/internal/billingevent/domain"
	"github.com/smallbiznis/railbill/internal/clock"
	"github.com/smallbiznis/railbill/internal/config"
	invoicedomain "github.com/smallbiznis/railbill/internal/invoice/domain"
	"github.com/smallbiznis/railbill/internal/observability/metrics"
	"github.com/smallbiznis/railbill/internal/render"
	subscriberdomain "github.com/smallbiznis/railbill/internal/subscriber/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	Config   *config.BillingConfigHolder
	Sequence *invoicedomain.Sequence
	Invoices invoicedomain.Repository
	Events   billingeventdomain.Recorder
	Metrics  *metrics.Metrics
	Console  *render.Console
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	config   *config.BillingConfigHolder
	sequence *invoicedomain.Sequence
	invoices invoicedomain.Repository
	events   billingeventdomain.Recorder
	metrics  *metrics.Metrics
	console  *render.Console
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("billing.service"),
		clock:    p.Clock,
		config:   p.Config,
		sequence: p.Sequence,
		invoices: p.Invoices,
		events:   p.Events,
		metrics:  p.Metrics,
		console:  p.Console,
	}
}

func (s *Service) GenerateInvoice(ctx context.Context, sub *subscriberdomain.Subscriber) (*invoicedomain.Invoice, error) {
	if sub == nil {
		return nil, domain.ErrMissingSubscriber
	}
	if sub.Plan == nil {
		return nil, domain.ErrMissingPlan
	}

	amount := sub.Plan.ComputeAmount(sub.Plan.TrialDays)
	invoice, err := s.appendInvoice(ctx, sub, amount)
	if err != nil {
		return nil, err
	}

	s.console.InvoiceGenerated(sub.Name, amount)
	s.afterGenerate(ctx, sub, invoice, "")
	return invoice, nil
}

func (s *Service) GenerateInvoiceForUsage(ctx context.Context, sub *subscriberdomain.Subscriber, daysUsed int, discountCode string) (*invoicedomain.Invoice, error) {
	if sub == nil {
		return nil, domain.ErrMissingSubscriber
	}
	if sub.Plan == nil {
		return nil, domain.ErrMissingPlan
	}

	amount := sub.Plan.ComputeAmount(daysUsed)
	amount *= s.config.Get().DiscountMultiplier(discountCode)

	invoice, err := s.appendInvoice(ctx, sub, amount)
	if err != nil {
		return nil, err
	}

	s.console.InvoiceGeneratedWithDiscount(sub.Name, amount, discountCode)
	s.afterGenerate(ctx, sub, invoice, discountCode)
	return invoice, nil
}

func (s *Service) appendInvoice(ctx context.Context, sub *subscriberdomain.Subscriber, amount float64) (*invoicedomain.Invoice, error) {
	now := s.clock.Now()
	dueAt := now.Add(time.Duration(s.config.Get().DueDays) * 24 * time.Hour)

	invoice := invoicedomain.New(s.sequence.Next(), sub.ID, amount, now, dueAt)
	if err := s.invoices.Append(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *Service) afterGenerate(ctx context.Context, sub *subscriberdomain.Subscriber, invoice *invoicedomain.Invoice, discountCode string) {
	s.events.Append(billingeventdomain.EventInvoiceCreated, map[string]any{
		"invoice_no":    invoice.Number,
		"subscriber_id": invoice.SubscriberID,
		"amount":        invoice.Amount,
		"discount_code": discountCode,
	})
	s.metrics.RecordInvoiceGenerated(ctx, string(sub.Plan.Kind), discountCode)
	s.log.Info("invoice generated",
		zap.Int64("invoice_no", invoice.Number),
		zap.Int64("subscriber_id", invoice.SubscriberID),
		zap.Float64("amount", invoice.Amount),
		zap.Time("due_at", invoice.DueAt),
	)
}

func (s *Service) RecordPayment(ctx context.Context, invoice *invoicedomain.Invoice) error {
	if invoice == nil {
		return domain.ErrMissingInvoice
	}

	invoice.MarkPaid()
	s.console.InvoicePaid(invoice.Number)

	s.events.Append(billingeventdomain.EventPaymentRecorded, map[string]any{
		"invoice_no": invoice.Number,
		"amount":     invoice.Amount,
	})
	s.metrics.RecordPaymentRecorded(ctx)
	s.log.Info("payment recorded", zap.Int64("invoice_no", invoice.Number))
	return nil
}

func (s *Service) ShowRevenueReport(ctx context.Context) (domain.RevenueReport, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return domain.RevenueReport{}, err
	}

	var report domain.RevenueReport
	for _, inv := range invoices {
		if inv.Status == invoicedomain.StatusPaid {
			report.Total += inv.Amount
			report.PaidCount++
		}
	}

	s.console.RevenueTotal(report.Total)
	s.log.Info("revenue report",
		zap.Float64("total", report.Total),
		zap.Int("paid_count", report.PaidCount),
	)
	return report, nil
}

func (s *Service) ShowAgingReport(ctx context.Context) (domain.AgingReport, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return domain.AgingReport{}, err
	}

	now := s.clock.Now()
	s.console.OverdueHeader()

	var report domain.AgingReport
	for _, inv := range invoices {
		if inv.IsOverdue(now) {
			report.Overdue = append(report.Overdue, inv)
			s.console.Line(inv.String())
		}
	}

	s.log.Info("aging report", zap.Int("overdue_count", len(report.Overdue)))
	return report, nil
}
