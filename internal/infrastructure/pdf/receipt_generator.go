// Package pdf renders the printable order receipt offered on the
// confirmation page.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: A+ Med Marketplace  │  Order N° + Date             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SHIP TO: name / company / address                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Supplier | Unit | Subtotal             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Shipping / Tax / TOTAL PAID             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

const marketplaceName = "A+ Med Marketplace"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// usd formats money at presentation time only; internal values stay at full
// precision until this point.
var usd = message.NewPrinter(language.AmericanEnglish)

func money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return usd.Sprintf("$%.2f", f)
}

// ReceiptGenerator renders order receipts with Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator builds the generator.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceipt renders the PDF and returns its bytes.
func (g *ReceiptGenerator) GenerateReceipt(order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Order Receipt "+order.ID, true).
		WithAuthor(marketplaceName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shipToRow(order.Address))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marketplace name (left), order number + date (right).
func headerRow(order *entity.Order) core.Row {
	date := order.CreatedAt.Format("01/02/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(marketplaceName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Medical supplies for professionals", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDER RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func shipToRow(a entity.ShippingAddress) core.Row {
	who := a.Name
	if a.Company != "" {
		who += "  |  " + a.Company
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SHIP TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   —   %s, %s, %s %s", who, a.Street, a.City, a.State, a.Zip),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	hr := h
	hr.Align = align.Right
	return row.New(7).Add(
		col.New(1).Add(text.New("Qty", h)),
		col.New(5).Add(text.New("Item", h)),
		col.New(3).Add(text.New("Supplier", h)),
		col.New(1).Add(text.New("Unit", hr)),
		col.New(2).Add(text.New("Subtotal", hr)),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	right := cell
	right.Align = align.Right
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
			col.New(5).Add(text.New(it.Name, cell)),
			col.New(3).Add(text.New(it.Supplier, cell)),
			col.New(1).Add(text.New(money(it.Price), right)),
			col.New(2).Add(text.New(money(it.Subtotal()), right)),
		))
	}
	return rows
}

func totalsRows(order *entity.Order) []core.Row {
	label := props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 1}
	value := props.Text{Size: 8, Align: align.Right, Top: 1}
	totalLabel := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1}
	totalValue := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1}

	lineOf := func(name string, amount decimal.Decimal) core.Row {
		return row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New(name, label)),
			col.New(2).Add(text.New(money(amount), value)),
		)
	}
	return []core.Row{
		lineOf("Subtotal", order.Subtotal),
		lineOf("Shipping", order.Shipping),
		lineOf("Tax (8%)", order.Tax),
		row.New(8).Add(
			col.New(8),
			col.New(2).Add(text.New("TOTAL PAID", totalLabel)),
			col.New(2).Add(text.New(money(order.Total), totalValue)),
		),
	}
}
