package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/railbill/internal/plan/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("plan.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePlanRequest) (*domain.Plan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.MonthlyPrice < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if req.TrialDays < 0 {
		return nil, domain.ErrInvalidTrialDays
	}

	kind := req.Kind
	switch kind {
	case domain.KindBase, domain.KindMonthly, domain.KindAnnual:
	case "":
		kind = domain.KindBase
	default:
		return nil, domain.ErrInvalidKind
	}

	plan := domain.New(req.ID, kind, name, req.MonthlyPrice, req.Features, req.TrialDays)
	if err := s.repo.Insert(ctx, plan); err != nil {
		return nil, err
	}

	s.log.Info("plan created",
		zap.Int64("plan_id", plan.ID),
		zap.String("kind", string(plan.Kind)),
		zap.Float64("monthly_price", plan.MonthlyPrice),
	)
	return plan, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Plan, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.repo.List(ctx)
}

// Update applies the plan setters. Setter semantics carry no validation;
// the request simply selects which fields to touch.
func (s *Service) Update(ctx context.Context, id int64, req domain.UpdatePlanRequest) (*domain.Plan, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.SetName(*req.Name)
	}
	if req.MonthlyPrice != nil {
		plan.SetMonthlyPrice(*req.MonthlyPrice)
	}
	if req.Features != nil {
		plan.SetFeatures(*req.Features)
	}
	if req.TrialDays != nil {
		plan.SetTrialDays(*req.TrialDays)
	}

	s.log.Info("plan updated", zap.Int64("plan_id", plan.ID))
	return plan, nil
}
