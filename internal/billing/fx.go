package billing

import (
	"github.com/smallbiznis/railbill/internal/billing/service"
	"github.com/smallbiznis/railbill/internal/config"
	invoicedomain "github.com/smallbiznis/railbill/internal/invoice/domain"
	invoicerepository "github.com/smallbiznis/railbill/internal/invoice/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(invoicerepository.Provide),
	fx.Provide(provideSequence),
	fx.Provide(service.New),
)

func provideSequence(holder *config.BillingConfigHolder) *invoicedomain.Sequence {
	return invoicedomain.NewSequence(holder.Get().SequenceSeed)
}
