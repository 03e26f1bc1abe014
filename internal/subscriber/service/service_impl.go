package service

import (
	"context"
	"strings"

	billingeventdomain "github.com/smallbiznis/railbill/internal/billingevent/domain"
	"github.com/smallbiznis/railbill/internal/observability/metrics"
	plandomain "github.com/smallbiznis/railbill/internal/plan/domain"
	"github.com/smallbiznis/railbill/internal/render"
	"github.com/smallbiznis/railbill/internal/subscriber/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	Events  billingeventdomain.Recorder
	Metrics *metrics.Metrics
	Console *render.Console
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	events  billingeventdomain.Recorder
	metrics *metrics.Metrics
	console *render.Console
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("subscriber.service"),
		repo:    p.Repo,
		events:  p.Events,
		metrics: p.Metrics,
		console: p.Console,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSubscriberRequest) (*domain.Subscriber, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Plan == nil {
		return nil, domain.ErrMissingPlan
	}

	sub := domain.New(req.ID, name, strings.TrimSpace(req.Email), req.Plan)
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info("subscriber created",
		zap.Int64("subscriber_id", sub.ID),
		zap.Int64("plan_id", sub.Plan.ID),
	)
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Subscriber, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.repo.List(ctx)
}

func (s *Service) ChangePlan(ctx context.Context, sub *domain.Subscriber, newPlan *plandomain.Plan) error {
	if newPlan == nil {
		return domain.ErrMissingPlan
	}

	oldName := sub.SwapPlan(newPlan)
	s.console.PlanChanged(sub.Name, oldName, newPlan.Name)

	s.events.Append(billingeventdomain.EventPlanChanged, map[string]any{
		"subscriber_id": sub.ID,
		"from_plan":     oldName,
		"to_plan":       newPlan.Name,
	})
	s.metrics.RecordPlanChange(ctx, oldName, newPlan.Name)
	s.log.Info("plan changed",
		zap.Int64("subscriber_id", sub.ID),
		zap.String("from_plan", oldName),
		zap.String("to_plan", newPlan.Name),
	)
	return nil
}
