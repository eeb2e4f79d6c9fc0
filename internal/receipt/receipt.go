package receipt

import (
	"fmt"
	"strings"

	"github.com/spicetable/pos/internal/domain"
)

// Header holds the business identity printed at the top of every receipt.
type Header struct {
	BusinessName string
	Address      string
	Phone        string
}

// Line represents a single item row on a receipt.
type Line struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Receipt is a value object representing a printable bill. It is composed
// from an order snapshot at render time and carries no state of its own;
// all temporal data comes from the order's own timestamp.
type Receipt struct {
	Header        Header  `json:"header"`
	BillNo        string  `json:"bill_no"`
	Date          string  `json:"date"`
	Table         string  `json:"table,omitempty"`
	ServiceType   string  `json:"service_type"`
	PaymentMethod string  `json:"payment_method"`
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	Lines         []Line  `json:"lines"`
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount,omitempty"`
	Total         float64 `json:"total"`
}

// Formatter renders order snapshots into receipts. It is stateless apart
// from the business header.
type Formatter struct {
	header Header
}

// NewFormatter creates a receipt formatter with the given business header
func NewFormatter(header Header) *Formatter {
	return &Formatter{header: header}
}

// Format builds the receipt document for an order. The same order always
// yields the same receipt.
func (f *Formatter) Format(order *domain.Order) Receipt {
	r := Receipt{
		Header:        f.header,
		BillNo:        order.ID,
		Date:          order.CreatedAt.Format("2006-01-02 15:04:05"),
		Table:         order.Table,
		ServiceType:   string(order.ServiceType),
		PaymentMethod: string(order.PaymentMethod),
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Total:         order.Total,
	}

	// Customer block is omitted entirely when the name is blank.
	if strings.TrimSpace(order.Customer.Name) != "" {
		r.CustomerName = order.Customer.Name
		r.CustomerPhone = order.Customer.Phone
	}

	r.Lines = make([]Line, len(order.Lines))
	for i, l := range order.Lines {
		r.Lines[i] = Line{
			Name:      l.Name,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		}
	}
	return r
}

const receiptWidth = 40

// Render produces the plain-text document handed to the print surface.
func Render(r Receipt) string {
	var b strings.Builder
	rule := strings.Repeat("-", receiptWidth)

	center(&b, r.Header.BusinessName)
	if r.Header.Address != "" {
		center(&b, r.Header.Address)
	}
	if r.Header.Phone != "" {
		center(&b, "Ph: "+r.Header.Phone)
	}
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "Bill No : %s\n", r.BillNo)
	fmt.Fprintf(&b, "Date    : %s\n", r.Date)
	if r.Table != "" {
		fmt.Fprintf(&b, "Table   : %s\n", r.Table)
	}
	fmt.Fprintf(&b, "Service : %s\n", r.ServiceType)
	fmt.Fprintf(&b, "Payment : %s\n", r.PaymentMethod)

	if r.CustomerName != "" {
		b.WriteString(rule + "\n")
		fmt.Fprintf(&b, "Customer: %s\n", r.CustomerName)
		if r.CustomerPhone != "" {
			fmt.Fprintf(&b, "Phone   : %s\n", r.CustomerPhone)
		}
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-24s %4s %10s\n", "Item", "Qty", "Amount")
	b.WriteString(rule + "\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%-24s %4d %10.2f\n", truncate(l.Name, 24), l.Quantity, l.LineTotal)
	}
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "%-29s %10.2f\n", "Subtotal", r.Subtotal)
	if r.Discount > 0 {
		fmt.Fprintf(&b, "%-29s %10.2f\n", "Discount", r.Discount)
	}
	fmt.Fprintf(&b, "%-29s %10.2f\n", "TOTAL", r.Total)
	b.WriteString(rule + "\n")
	center(&b, "Thank you, visit again!")

	return b.String()
}

func center(b *strings.Builder, s string) {
	pad := (receiptWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
