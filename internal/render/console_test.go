package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountUsesShortestExactForm(t *testing.T) {
	assert.Equal(t, "972", Amount(972))
	assert.Equal(t, "0.5", Amount(0.5))

	price := 50.0
	assert.Equal(t, "11.666666666666668", Amount(price/30*7))
}

func TestConsoleWording(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(out)

	c.PlanChanged("Alice", "Basic", "Pro")
	c.InvoiceGenerated("Alice", 11.666666666666666)
	c.InvoiceGeneratedWithDiscount("Bob", 972, "DISC10")
	c.InvoicePaid(1000)
	c.RevenueTotal(983.6666666666666)
	c.OverdueHeader()

	assert.Equal(t,
		"Alice changed plan from Basic to Pro\n"+
			"Invoice generated for Alice: $11.666666666666666\n"+
			"Invoice generated for Bob: $972 with discount DISC10\n"+
			"Invoice 1000 has been paid.\n"+
			"Total Revenue Collected: $983.6666666666666\n"+
			"Overdue Invoices:\n",
		out.String(),
	)
}
