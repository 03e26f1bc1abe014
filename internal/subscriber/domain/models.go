// Package domain contains the subscriber model.
package domain

import (
	plandomain "github.com/smallbiznis/railbill/internal/plan/domain"
)

// Status is the subscriber lifecycle state.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Subscriber associates an identity with exactly one current plan. The plan
// reference is non-owning: plans outlive subscribers and are shared.
type Subscriber struct {
	ID     int64
	Name   string
	Email  string
	Status Status
	Plan   *plandomain.Plan
}

// New returns an Active subscriber on the given plan.
func New(id int64, name, email string, plan *plandomain.Plan) *Subscriber {
	return &Subscriber{
		ID:     id,
		Name:   name,
		Email:  email,
		Status: StatusActive,
		Plan:   plan,
	}
}

// SwapPlan replaces the current plan reference and returns the name of the
// plan being replaced. The old name is read before the overwrite so the
// caller can still announce the transition. Past invoices are unaffected.
func (s *Subscriber) SwapPlan(newPlan *plandomain.Plan) (oldName string) {
	if s.Plan != nil {
		oldName = s.Plan.Name
	}
	s.Plan = newPlan
	return oldName
}

func (s *Subscriber) SetStatus(status Status) { s.Status = status }
