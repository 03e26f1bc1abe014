package billingevent

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/railbill/internal/billingevent/domain"
	"github.com/smallbiznis/railbill/internal/clock"
	"go.uber.org/fx"
)

// MemoryRecorder is an in-memory, append-only audit trail of billing events.
type MemoryRecorder struct {
	mu     sync.RWMutex
	genID  *snowflake.Node
	clock  clock.Clock
	events []domain.BillingEvent
}

type Params struct {
	fx.In

	GenID *snowflake.Node
	Clock clock.Clock
}

func NewRecorder(p Params) domain.Recorder {
	return &MemoryRecorder{genID: p.GenID, clock: p.Clock}
}

func (r *MemoryRecorder) Append(eventType string, payload map[string]any) domain.BillingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := domain.BillingEvent{
		ID:        r.genID.Generate(),
		EventType: eventType,
		Payload:   payload,
		CreatedAt: r.clock.Now(),
	}
	r.events = append(r.events, event)
	return event
}

func (r *MemoryRecorder) List() []domain.BillingEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.BillingEvent, len(r.events))
	copy(out, r.events)
	return out
}

var Module = fx.Module("billingevent",
	fx.Provide(NewRecorder),
)
