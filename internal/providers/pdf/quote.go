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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/smallbiznis/partnerportal/internal/pricing/money"
)

type QuoteData struct {
	QuoteNumber string
	IssueDate   string

	ClientName    string
	ClientCompany string
	ClientEmail   string
	ClientAddress string
	CustomerRef   string

	ProductLine      string
	Variant          string
	SubscriptionType string
	CameraCount      int

	Currency string
	Items    []QuoteItem

	MonthlyCents           int64
	AdjustedMonthlyCents   int64
	DiscountPercent        float64
	DiscountedMonthlyCents int64
	DiscountAmountCents    int64
	ContractMonths         int

	OneTimeCents   int64
	LicenseCents   int64
	AMCAnnualCents int64

	TotalContractCents int64

	SecondaryCurrency   string
	SecondaryTotalCents int64

	Disclaimer string
}

type QuoteItem struct {
	Label         string
	Cameras       int
	UnitCents     int64
	SubtotalCents int64
}

func (p *PDFProvider) GenerateQuote(ctx context.Context, data QuoteData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Quote", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Quote number: "+data.QuoteNumber, props.Text{Top: 0}),
			text.New("Date of issue: "+data.IssueDate, props.Text{Top: 4}),
			text.New("Product line: "+data.ProductLine, props.Text{Top: 8}),
			text.New("Subscription: "+data.SubscriptionType, props.Text{Top: 12}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Cameras: %d", data.CameraCount), props.Text{Top: 0}),
			text.New("Variant: "+data.Variant, props.Text{Top: 4}),
		),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New("Prepared for", props.Text{Style: fontstyle.Bold}),
			text.New(data.ClientName, props.Text{Top: 5}),
			text.New(data.ClientCompany, props.Text{Top: 9}),
			text.New(data.ClientAddress, props.Text{Top: 13}),
			text.New(data.ClientEmail, props.Text{Top: 17}),
		),
		col.New(6).Add(
			text.New("Customer reference", props.Text{Style: fontstyle.Bold}),
			text.New(data.CustomerRef, props.Text{Top: 5}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Cameras", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit / mo", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount / mo", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(8,
			text.NewCol(6, item.Label, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Cameras), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.FormatCents(data.Currency, item.UnitCents), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money.FormatCents(data.Currency, item.SubtotalCents), props.Text{Size: 9, Align: align.Right}),
		)
	}

	addTotalRow(m, "Monthly subtotal", money.FormatCents(data.Currency, data.MonthlyCents), false)
	if data.AdjustedMonthlyCents != data.MonthlyCents {
		addTotalRow(m, "Monthly after plan discount", money.FormatCents(data.Currency, data.AdjustedMonthlyCents), false)
	}
	if data.DiscountPercent > 0 {
		addTotalRow(m,
			fmt.Sprintf("Partner discount (%.1f%%)", data.DiscountPercent),
			"-"+money.FormatCents(data.Currency, data.AdjustedMonthlyCents-data.DiscountedMonthlyCents), false)
		addTotalRow(m, "Monthly after all discounts", money.FormatCents(data.Currency, data.DiscountedMonthlyCents), false)
		addTotalRow(m, "Annual savings", money.FormatCents(data.Currency, data.DiscountAmountCents), false)
	}
	if data.OneTimeCents > 0 {
		addTotalRow(m, "One-time costs", money.FormatCents(data.Currency, data.OneTimeCents), false)
	}
	if data.LicenseCents > 0 {
		addTotalRow(m, "Perpetual license", money.FormatCents(data.Currency, data.LicenseCents), false)
		addTotalRow(m, "Annual maintenance (billed separately)", money.FormatCents(data.Currency, data.AMCAnnualCents), false)
	}
	if data.ContractMonths > 0 {
		addTotalRow(m, fmt.Sprintf("Contract term: %d months", data.ContractMonths), "", false)
	}
	addTotalRow(m, "Total contract value", money.FormatCents(data.Currency, data.TotalContractCents), true)

	if data.SecondaryCurrency != "" && data.SecondaryCurrency != data.Currency {
		addTotalRow(m,
			fmt.Sprintf("Indicative total (%s)", data.SecondaryCurrency),
			money.FormatCents(data.SecondaryCurrency, data.SecondaryTotalCents), false)
	}

	if data.Disclaimer != "" {
		m.AddRow(20,
			text.NewCol(12, data.Disclaimer, props.Text{Size: 8, Top: 6}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func addTotalRow(m core.Maroto, label, value string, bold bool) {
	labelStyle := props.Text{Size: 9}
	valueStyle := props.Text{Size: 9, Align: align.Right}
	if bold {
		labelStyle.Style = fontstyle.Bold
		valueStyle.Style = fontstyle.Bold
	}
	m.AddRow(8,
		col.New(5),
		text.NewCol(4, label, labelStyle),
		text.NewCol(3, value, valueStyle),
	)
}
