// Package seed wires the demonstration scenario: two plans, two
// subscribers, three invoices, two payments, both reports.
package seed

import (
	"context"

	billingdomain "github.com/smallbiznis/railbill/internal/billing/domain"
	plandomain "github.com/smallbiznis/railbill/internal/plan/domain"
	subscriberdomain "github.com/smallbiznis/railbill/internal/subscriber/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	Plans       plandomain.Service
	Subscribers subscriberdomain.Service
	Billing     billingdomain.Service
}

// Run executes the fixed demonstration sequence.
func Run(ctx context.Context, p Params) error {
	log := p.Log.Named("seed")

	basic, err := p.Plans.Create(ctx, plandomain.CreatePlanRequest{
		ID:           1,
		Kind:         plandomain.KindMonthly,
		Name:         "Basic",
		MonthlyPrice: 50,
		Features:     "Email Support",
		TrialDays:    7,
	})
	if err != nil {
		return err
	}
	pro, err := p.Plans.Create(ctx, plandomain.CreatePlanRequest{
		ID:           2,
		Kind:         plandomain.KindAnnual,
		Name:         "Pro",
		MonthlyPrice: 100,
		Features:     "Priority Support + Analytics",
		TrialDays:    14,
	})
	if err != nil {
		return err
	}

	alice, err := p.Subscribers.Create(ctx, subscriberdomain.CreateSubscriberRequest{
		ID:    101,
		Name:  "Alice",
		Email: "alice@example.com",
		Plan:  basic,
	})
	if err != nil {
		return err
	}
	bob, err := p.Subscribers.Create(ctx, subscriberdomain.CreateSubscriberRequest{
		ID:    102,
		Name:  "Bob",
		Email: "bob@example.com",
		Plan:  pro,
	})
	if err != nil {
		return err
	}

	invoice1, err := p.Billing.GenerateInvoice(ctx, alice)
	if err != nil {
		return err
	}
	invoice2, err := p.Billing.GenerateInvoiceForUsage(ctx, bob, 365, "DISC10")
	if err != nil {
		return err
	}

	if err := p.Subscribers.ChangePlan(ctx, alice, pro); err != nil {
		return err
	}
	if _, err := p.Billing.GenerateInvoiceForUsage(ctx, alice, 30, "DISC10"); err != nil {
		return err
	}

	if err := p.Billing.RecordPayment(ctx, invoice1); err != nil {
		return err
	}
	if err := p.Billing.RecordPayment(ctx, invoice2); err != nil {
		return err
	}

	if _, err := p.Billing.ShowRevenueReport(ctx); err != nil {
		return err
	}
	if _, err := p.Billing.ShowAgingReport(ctx); err != nil {
		return err
	}

	log.Info("demo scenario complete")
	return nil
}
