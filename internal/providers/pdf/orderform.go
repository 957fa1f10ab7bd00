package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/smallbiznis/partnerportal/internal/pricing/money"
)

type OrderFormData struct {
	OrderNumber string
	QuoteNumber string
	IssueDate   string

	ClientName    string
	ClientCompany string
	ClientEmail   string
	ClientAddress string

	PONumber            string
	BillingContactName  string
	BillingContactEmail string

	ProductLine      string
	SubscriptionType string
	CameraCount      int
	ContractMonths   int

	Currency               string
	DiscountedMonthlyCents int64
	OneTimeCents           int64
	TotalContractCents     int64

	SuccessCriteria string
	Terms           string
}

func (p *PDFProvider) GenerateOrderForm(ctx context.Context, data OrderFormData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Order Form", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Order number: "+data.OrderNumber, props.Text{Top: 0}),
			text.New("Quote number: "+data.QuoteNumber, props.Text{Top: 4}),
			text.New("Date of issue: "+data.IssueDate, props.Text{Top: 8}),
		),
		col.New(6).Add(
			text.New("PO number: "+data.PONumber, props.Text{Top: 0}),
			text.New("Billing contact: "+data.BillingContactName, props.Text{Top: 4}),
			text.New(data.BillingContactEmail, props.Text{Top: 8}),
		),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New("Customer", props.Text{Style: fontstyle.Bold}),
			text.New(data.ClientName, props.Text{Top: 5}),
			text.New(data.ClientCompany, props.Text{Top: 9}),
			text.New(data.ClientAddress, props.Text{Top: 13}),
			text.New(data.ClientEmail, props.Text{Top: 17}),
		),
		col.New(6).Add(
			text.New("Order summary", props.Text{Style: fontstyle.Bold}),
			text.New("Product line: "+data.ProductLine, props.Text{Top: 5}),
			text.New("Subscription: "+data.SubscriptionType, props.Text{Top: 9}),
			text.New(fmt.Sprintf("Cameras: %d", data.CameraCount), props.Text{Top: 13}),
			text.New(fmt.Sprintf("Term: %d months", data.ContractMonths), props.Text{Top: 17}),
		),
	)

	addTotalRow(m, "Monthly fee", money.FormatCents(data.Currency, data.DiscountedMonthlyCents), false)
	if data.OneTimeCents > 0 {
		addTotalRow(m, "One-time costs", money.FormatCents(data.Currency, data.OneTimeCents), false)
	}
	addTotalRow(m, "Total contract value", money.FormatCents(data.Currency, data.TotalContractCents), true)

	m.AddRow(8,
		text.NewCol(12, "Success criteria", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}),
	)
	m.AddRow(30,
		text.NewCol(12, data.SuccessCriteria, props.Text{Size: 9}),
	)

	m.AddRow(8,
		text.NewCol(12, "Terms", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}),
	)
	m.AddRow(40,
		text.NewCol(12, data.Terms, props.Text{Size: 9}),
	)

	m.AddRow(25,
		col.New(6).Add(
			text.New("Customer signature", props.Text{Style: fontstyle.Bold, Top: 8}),
			text.New("Name / date", props.Text{Size: 8, Top: 18}),
		),
		col.New(6).Add(
			text.New("Provider signature", props.Text{Style: fontstyle.Bold, Top: 8}),
			text.New("Name / date", props.Text{Size: 8, Top: 18}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
