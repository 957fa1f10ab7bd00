package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	orderformdomain "github.com/smallbiznis/partnerportal/internal/orderform/domain"
	"github.com/smallbiznis/partnerportal/internal/pricing/engine"
	"github.com/smallbiznis/partnerportal/internal/pricing/money"
	"github.com/smallbiznis/partnerportal/internal/providers/docx"
	"github.com/smallbiznis/partnerportal/internal/providers/pdf"
	quotedomain "github.com/smallbiznis/partnerportal/internal/quote/domain"
	"go.uber.org/zap"
)

// Quotes are always priced in USD; the secondary currency is display-only.
const primaryCurrency = "USD"

func (s *Server) ExportQuotePDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	quote, err := s.quoteSvc.GetByID(c.Request.Context(), quotedomain.GetQuoteRequest{ID: id})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := s.quotePDFData(quote)
	reader, err := s.pdfProvider.GenerateQuote(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordExport("quote_pdf")
	}

	writeDownload(c, reader, "application/pdf",
		fmt.Sprintf("quote-%s.pdf", quote.ID.String()))
}

func (s *Server) ExportOrderFormPDF(c *gin.Context) {
	form, quote, err := s.resolveOrderForm(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := orderFormExportData(form, quote)
	reader, err := s.pdfProvider.GenerateOrderForm(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordExport("order_form_pdf")
	}

	writeDownload(c, reader, "application/pdf",
		fmt.Sprintf("order-form-%s.pdf", form.ID.String()))
}

func (s *Server) ExportOrderFormDocx(c *gin.Context) {
	form, quote, err := s.resolveOrderForm(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := orderFormExportData(form, quote)
	reader, err := s.docxProvider.GenerateOrderForm(c.Request.Context(), docx.OrderFormData(data))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordExport("order_form_docx")
	}

	writeDownload(c, reader,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		fmt.Sprintf("order-form-%s.docx", form.ID.String()))
}

func (s *Server) resolveOrderForm(c *gin.Context) (*orderformdomain.OrderForm, *quotedomain.Quote, error) {
	id := strings.TrimSpace(c.Param("id"))
	form, err := s.orderFormSvc.GetByID(c.Request.Context(), orderformdomain.GetOrderFormRequest{ID: id})
	if err != nil {
		return nil, nil, err
	}

	quote, err := s.quoteSvc.GetByID(c.Request.Context(), quotedomain.GetQuoteRequest{ID: form.QuoteID.String()})
	if err != nil {
		return nil, nil, err
	}

	return form, quote, nil
}

func (s *Server) quotePDFData(quote *quotedomain.Quote) pdf.QuoteData {
	var lines []engine.TierLine
	if err := json.Unmarshal(quote.TierBreakdown, &lines); err != nil {
		s.log.Warn("stored tier breakdown unreadable, rendering without line items",
			zap.String("quote_id", quote.ID.String()),
			zap.Error(err),
		)
	}

	items := make([]pdf.QuoteItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, pdf.QuoteItem{
			Label:         line.Label,
			Cameras:       line.Cameras,
			UnitCents:     line.UnitCents,
			SubtotalCents: line.SubtotalCents,
		})
	}

	data := pdf.QuoteData{
		QuoteNumber: quote.ID.String(),
		IssueDate:   quote.CreatedAt.Format("2006-01-02"),

		ClientName:    quote.ClientName,
		ClientCompany: quote.ClientCompany,
		ClientEmail:   quote.ClientEmail,
		ClientAddress: joinAddress(quote.ClientAddress, quote.ClientCity, quote.ClientState, quote.ClientZip),
		CustomerRef:   quote.CustomerRef,

		ProductLine:      quote.ProductLine,
		Variant:          string(quote.Variant),
		SubscriptionType: string(quote.SubscriptionType),
		CameraCount:      quote.CameraCount,

		Currency: primaryCurrency,
		Items:    items,

		MonthlyCents:           quote.MonthlyRecurringCents,
		AdjustedMonthlyCents:   quote.AdjustedMonthlyCents,
		DiscountPercent:        float64(quote.DiscountPercent),
		DiscountedMonthlyCents: quote.DiscountedMonthlyCents,
		DiscountAmountCents:    quote.DiscountAmountCents,
		ContractMonths:         quote.ContractMonths,

		OneTimeCents:   quote.TotalOneTimeCents,
		LicenseCents:   quote.LicenseCents,
		AMCAnnualCents: quote.AMCAnnualCents,

		TotalContractCents: quote.TotalContractCents,

		Disclaimer: s.cfg.ExportDisclaimer,
	}

	if quote.SecondaryCurrency != "" && quote.ExchangeRate > 0 {
		data.SecondaryCurrency = quote.SecondaryCurrency
		data.SecondaryTotalCents = money.ConvertCents(quote.TotalContractCents, quote.ExchangeRate)
	}

	return data
}

// orderFormExportData builds the shared field set; the pdf and docx data
// structs are kept structurally identical so either can be converted from it.
type orderFormFields = pdf.OrderFormData

func orderFormExportData(form *orderformdomain.OrderForm, quote *quotedomain.Quote) orderFormFields {
	return orderFormFields{
		OrderNumber: form.ID.String(),
		QuoteNumber: quote.ID.String(),
		IssueDate:   form.CreatedAt.Format("2006-01-02"),

		ClientName:    quote.ClientName,
		ClientCompany: quote.ClientCompany,
		ClientEmail:   quote.ClientEmail,
		ClientAddress: joinAddress(quote.ClientAddress, quote.ClientCity, quote.ClientState, quote.ClientZip),

		PONumber:            form.PONumber,
		BillingContactName:  form.BillingContactName,
		BillingContactEmail: form.BillingContactEmail,

		ProductLine:      quote.ProductLine,
		SubscriptionType: string(quote.SubscriptionType),
		CameraCount:      quote.CameraCount,
		ContractMonths:   quote.ContractMonths,

		Currency:               primaryCurrency,
		DiscountedMonthlyCents: quote.DiscountedMonthlyCents,
		OneTimeCents:           quote.TotalOneTimeCents,
		TotalContractCents:     quote.TotalContractCents,

		SuccessCriteria: form.SuccessCriteria,
		Terms:           form.Terms,
	}
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ", ")
}

func writeDownload(c *gin.Context, reader io.Reader, contentType, filename string) {
	body, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
