// Package render writes the human-readable billing output. State transitions
// live in the domain packages; wording lives here.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Console renders billing notifications and reports to a writer.
type Console struct {
	w io.Writer
}

// NewConsole renders to the given writer.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// NewStdoutConsole renders to process standard output.
func NewStdoutConsole() *Console {
	return NewConsole(os.Stdout)
}

func (c *Console) PlanChanged(subscriberName, oldPlanName, newPlanName string) {
	fmt.Fprintf(c.w, "%s changed plan from %s to %s\n", subscriberName, oldPlanName, newPlanName)
}

func (c *Console) InvoiceGenerated(subscriberName string, amount float64) {
	fmt.Fprintf(c.w, "Invoice generated for %s: $%s\n", subscriberName, Amount(amount))
}

func (c *Console) InvoiceGeneratedWithDiscount(subscriberName string, amount float64, code string) {
	fmt.Fprintf(c.w, "Invoice generated for %s: $%s with discount %s\n", subscriberName, Amount(amount), code)
}

func (c *Console) InvoicePaid(invoiceNo int64) {
	fmt.Fprintf(c.w, "Invoice %d has been paid.\n", invoiceNo)
}

func (c *Console) RevenueTotal(total float64) {
	fmt.Fprintf(c.w, "Total Revenue Collected: $%s\n", Amount(total))
}

func (c *Console) OverdueHeader() {
	fmt.Fprintln(c.w, "Overdue Invoices:")
}

func (c *Console) Line(s string) {
	fmt.Fprintln(c.w, s)
}

// Amount formats a monetary amount with the shortest exact decimal form.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
