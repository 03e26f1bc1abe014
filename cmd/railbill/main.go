package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/railbill/internal/billing"
	"github.com/smallbiznis/railbill/internal/billingevent"
	"github.com/smallbiznis/railbill/internal/clock"
	"github.com/smallbiznis/railbill/internal/config"
	"github.com/smallbiznis/railbill/internal/observability"
	"github.com/smallbiznis/railbill/internal/plan"
	"github.com/smallbiznis/railbill/internal/render"
	"github.com/smallbiznis/railbill/internal/seed"
	"github.com/smallbiznis/railbill/internal/subscriber"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		fx.Provide(
			config.Load,
			config.NewBillingConfigHolder,
			RegisterSnowflake,
			render.NewStdoutConsole,
		),
		observability.Module,
		clock.Module,

		// Functional Domains
		billingevent.Module,
		plan.Module,
		subscriber.Module,
		billing.Module,

		fx.Invoke(runDemo),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

// runDemo runs the fixed demonstration once the app has started, then
// shuts the process down.
func runDemo(lc fx.Lifecycle, sh fx.Shutdowner, log *zap.Logger, p seed.Params) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := seed.Run(context.Background(), p); err != nil {
					log.Error("demo run failed", zap.Error(err))
					_ = sh.Shutdown(fx.ExitCode(1))
					return
				}
				_ = sh.Shutdown()
			}()
			return nil
		},
	})
}
