package docx

import (
	"bytes"
	"context"
	"fmt"
	"io"

	godocx "github.com/fumiama/go-docx"

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

// GenerateOrderForm renders an editable order form so partners can
// redline terms before signature. Layout mirrors the PDF variant.
func (p *DocxProvider) GenerateOrderForm(ctx context.Context, data OrderFormData) (io.Reader, error) {
	doc := godocx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText("Order Form").Size("36").Bold()

	meta := doc.AddParagraph()
	meta.AddText(fmt.Sprintf("Order number: %s", data.OrderNumber))
	doc.AddParagraph().AddText(fmt.Sprintf("Quote number: %s", data.QuoteNumber))
	doc.AddParagraph().AddText(fmt.Sprintf("Date of issue: %s", data.IssueDate))
	doc.AddParagraph().AddText(fmt.Sprintf("PO number: %s", orDefault(data.PONumber, "N/A")))

	doc.AddParagraph().AddText("Customer").Size("24").Bold()
	doc.AddParagraph().AddText(data.ClientName)
	doc.AddParagraph().AddText(data.ClientCompany)
	if data.ClientAddress != "" {
		doc.AddParagraph().AddText(data.ClientAddress)
	}
	doc.AddParagraph().AddText(data.ClientEmail)

	doc.AddParagraph().AddText("Billing contact").Size("24").Bold()
	doc.AddParagraph().AddText(orDefault(data.BillingContactName, data.ClientName))
	doc.AddParagraph().AddText(orDefault(data.BillingContactEmail, data.ClientEmail))

	doc.AddParagraph().AddText("Order summary").Size("24").Bold()
	doc.AddParagraph().AddText(fmt.Sprintf("Product line: %s", data.ProductLine))
	doc.AddParagraph().AddText(fmt.Sprintf("Subscription: %s", data.SubscriptionType))
	doc.AddParagraph().AddText(fmt.Sprintf("Cameras: %d", data.CameraCount))
	doc.AddParagraph().AddText(fmt.Sprintf("Term: %d months", data.ContractMonths))
	doc.AddParagraph().AddText(fmt.Sprintf("Monthly fee: %s", money.FormatCents(data.Currency, data.DiscountedMonthlyCents)))
	if data.OneTimeCents > 0 {
		doc.AddParagraph().AddText(fmt.Sprintf("One-time costs: %s", money.FormatCents(data.Currency, data.OneTimeCents)))
	}
	total := doc.AddParagraph()
	total.AddText(fmt.Sprintf("Total contract value: %s", money.FormatCents(data.Currency, data.TotalContractCents))).Bold()

	doc.AddParagraph().AddText("Success criteria").Size("24").Bold()
	doc.AddParagraph().AddText(data.SuccessCriteria)

	doc.AddParagraph().AddText("Terms").Size("24").Bold()
	doc.AddParagraph().AddText(data.Terms)

	doc.AddParagraph().AddText("Customer signature: ______________________    Date: ____________")
	doc.AddParagraph().AddText("Provider signature: ______________________    Date: ____________")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}

	return bytes.NewReader(buf.Bytes()), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
