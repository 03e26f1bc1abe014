// Package domain contains the plan model and its billing arithmetic.
package domain

// Kind selects how a plan derives a billing amount from days used.
type Kind string

const (
	KindBase    Kind = "base"
	KindMonthly Kind = "monthly"
	KindAnnual  Kind = "annual"
)

// Plan is a priced subscription tier. Plans are created once and shared by
// reference across every subscriber on them; identity never changes.
type Plan struct {
	ID           int64
	Name         string
	MonthlyPrice float64
	Features     string
	TrialDays    int
	Kind         Kind
}

func New(id int64, kind Kind, name string, monthlyPrice float64, features string, trialDays int) *Plan {
	return &Plan{
		ID:           id,
		Name:         name,
		MonthlyPrice: monthlyPrice,
		Features:     features,
		TrialDays:    trialDays,
		Kind:         kind,
	}
}

// ComputeAmount derives the billing amount for the given usage. Pure.
//
// Base plans charge the flat monthly price regardless of usage. Monthly
// plans prorate linearly over a 30-day month. Annual plans charge twelve
// months up front with a 10% discount and ignore usage entirely.
//
// Negative daysUsed is accepted and yields a negative prorated amount;
// callers own any validation.
func (p *Plan) ComputeAmount(daysUsed int) float64 {
	switch p.Kind {
	case KindMonthly:
		return p.MonthlyPrice / 30 * float64(daysUsed)
	case KindAnnual:
		return p.MonthlyPrice * 12 * 0.9
	default:
		return p.MonthlyPrice
	}
}

// Setters mutate in place without validation.

func (p *Plan) SetName(name string)           { p.Name = name }
func (p *Plan) SetMonthlyPrice(price float64) { p.MonthlyPrice = price }
func (p *Plan) SetFeatures(features string)   { p.Features = features }
func (p *Plan) SetTrialDays(days int)         { p.TrialDays = days }
