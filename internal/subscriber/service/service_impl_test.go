package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/railbill/internal/billingevent"
	billingeventdomain "github.com/smallbiznis/railbill/internal/billingevent/domain"
	"github.com/smallbiznis/railbill/internal/clock"
	"github.com/smallbiznis/railbill/internal/observability/metrics"
	plandomain "github.com/smallbiznis/railbill/internal/plan/domain"
	"github.com/smallbiznis/railbill/internal/render"
	"github.com/smallbiznis/railbill/internal/subscriber/domain"
	"github.com/smallbiznis/railbill/internal/subscriber/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, out *bytes.Buffer) (domain.Service, billingeventdomain.Recorder) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	m, err := metrics.New(metrics.Config{}, noop.NewMeterProvider())
	require.NoError(t, err)

	events := billingevent.NewRecorder(billingevent.Params{
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	})

	svc := New(Params{
		Log:     zap.NewNop(),
		Repo:    repository.Provide(),
		Events:  events,
		Metrics: m,
		Console: render.NewConsole(out),
	})
	return svc, events
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc, _ := newTestService(t, &bytes.Buffer{})
	basic := plandomain.New(1, plandomain.KindMonthly, "Basic", 50, "Email Support", 7)

	sub, err := svc.Create(context.Background(), domain.CreateSubscriberRequest{
		ID: 101, Name: "Alice", Email: "alice@example.com", Plan: basic,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, sub.Status)
	assert.Same(t, basic, sub.Plan)
}

func TestCreateRequiresNameAndPlan(t *testing.T) {
	svc, _ := newTestService(t, &bytes.Buffer{})
	ctx := context.Background()
	basic := plandomain.New(1, plandomain.KindMonthly, "Basic", 50, "", 7)

	_, err := svc.Create(ctx, domain.CreateSubscriberRequest{ID: 101, Name: "", Plan: basic})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateSubscriberRequest{ID: 101, Name: "Alice"})
	assert.ErrorIs(t, err, domain.ErrMissingPlan)
}

func TestChangePlanSwapsReferenceAndAnnounces(t *testing.T) {
	out := &bytes.Buffer{}
	svc, events := newTestService(t, out)
	ctx := context.Background()

	basic := plandomain.New(1, plandomain.KindMonthly, "Basic", 50, "Email Support", 7)
	pro := plandomain.New(2, plandomain.KindAnnual, "Pro", 100, "Priority Support + Analytics", 14)

	alice, err := svc.Create(ctx, domain.CreateSubscriberRequest{
		ID: 101, Name: "Alice", Email: "alice@example.com", Plan: basic,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ChangePlan(ctx, alice, pro))

	assert.Same(t, pro, alice.Plan)
	assert.Equal(t, "Alice changed plan from Basic to Pro\n", out.String())

	recorded := events.List()
	require.Len(t, recorded, 1)
	assert.Equal(t, billingeventdomain.EventPlanChanged, recorded[0].EventType)
	assert.Equal(t, "Basic", recorded[0].Payload["from_plan"])
	assert.Equal(t, "Pro", recorded[0].Payload["to_plan"])
}

func TestChangePlanRejectsNilPlan(t *testing.T) {
	svc, _ := newTestService(t, &bytes.Buffer{})
	basic := plandomain.New(1, plandomain.KindMonthly, "Basic", 50, "", 7)

	alice, err := svc.Create(context.Background(), domain.CreateSubscriberRequest{
		ID: 101, Name: "Alice", Plan: basic,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePlan(context.Background(), alice, nil), domain.ErrMissingPlan)
	assert.Same(t, basic, alice.Plan)
}
