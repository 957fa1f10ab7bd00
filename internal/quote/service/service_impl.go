package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/identity"
	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"github.com/smallbiznis/partnerportal/internal/pricing/engine"
	"github.com/smallbiznis/partnerportal/internal/pricing/money"
	"github.com/smallbiznis/partnerportal/internal/quote/domain"
	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	PricingSvc pricingdomain.Service
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	pricingSvc pricingdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("quote.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		pricingSvc: p.PricingSvc,
	}
}

// resolved carries the normalized selections alongside the computed result.
type resolved struct {
	line    *pricingdomain.ProductLine
	variant pricingdomain.Variant
	sub     *pricingdomain.SubscriptionType
	starter *pricingdomain.StarterPackage

	cameraCount     int
	discountPercent int
	oneTime         domain.OneTimeSelections
	result          engine.Result
}

func (s *Service) Preview(ctx context.Context, req domain.ComputeRequest) (*domain.ComputeResponse, error) {
	res, err := s.compute(ctx, req, false)
	if err != nil {
		return nil, err
	}
	return s.toComputeResponse(req, res)
}

func (s *Service) Create(ctx context.Context, req domain.CreateQuoteRequest) (*domain.Quote, error) {
	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidSubject
	}

	client, err := normalizeClient(req.Client)
	if err != nil {
		return nil, err
	}

	res, err := s.compute(ctx, req.ComputeRequest, true)
	if err != nil {
		return nil, err
	}

	breakdown, err := json.Marshal(res.result.TierBreakdown)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:      s.genID.Generate(),
		Subject: subject,

		ProductLine:      res.line.Code,
		Variant:          res.variant,
		Scenarios:        datatypes.NewJSONSlice(req.Scenarios),
		CameraCount:      res.cameraCount,
		SubscriptionType: res.sub.Code,
		DiscountPercent:  res.discountPercent,

		IncludeServer:          res.oneTime.IncludeServer,
		ServerCount:            res.oneTime.ServerCount,
		ImplementationFeeMode:  res.oneTime.ImplementationFeeMode,
		ImplementationFeeCents: res.oneTime.ImplementationFeeCents,
		IncludeSpeakers:        res.oneTime.IncludeSpeakers,
		SpeakerCount:           res.oneTime.SpeakerCount,
		IncludeTravel:          res.oneTime.IncludeTravel,
		TravelCents:            res.oneTime.TravelCents,

		ClientName:    client.Name,
		ClientCompany: client.Company,
		ClientEmail:   client.Email,
		ClientAddress: client.Address,
		ClientCity:    client.City,
		ClientState:   client.State,
		ClientZip:     client.Zip,
		CustomerRef:   client.CustomerRef,

		PerCameraMonthlyCents:  res.result.PerCameraMonthlyCents,
		TierBreakdown:          datatypes.JSON(breakdown),
		MonthlyRecurringCents:  res.result.MonthlyRecurringCents,
		AnnualRecurringCents:   res.result.AnnualRecurringCents,
		AdjustedMonthlyCents:   res.result.AdjustedMonthlyCents,
		AdjustedAnnualCents:    res.result.AdjustedAnnualCents,
		DiscountedMonthlyCents: res.result.DiscountedMonthlyCents,
		DiscountedAnnualCents:  res.result.DiscountedAnnualCents,
		DiscountAmountCents:    res.result.DiscountAmountCents,
		TotalOneTimeCents:      res.result.TotalOneTimeCents,
		LicenseCents:           res.result.LicenseCents,
		AMCAnnualCents:         res.result.AMCAnnualCents,
		ContractMonths:         res.result.ContractMonths,
		TotalContractCents:     res.result.TotalContractCents,

		SecondaryCurrency: strings.ToUpper(strings.TrimSpace(req.SecondaryCurrency)),
		ExchangeRate:      req.ExchangeRate,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if res.starter != nil {
		quote.StarterPackage = res.starter.Code
	}

	if err := s.repo.Insert(ctx, s.db, quote); err != nil {
		return nil, err
	}

	s.log.Info("quote saved",
		zap.String("quote_id", quote.ID.String()),
		zap.String("product_line", quote.ProductLine),
		zap.Int64("total_contract_cents", quote.TotalContractCents),
	)

	return quote, nil
}

func (s *Service) List(ctx context.Context, req domain.ListQuoteRequest) (domain.ListQuoteResponse, error) {
	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return domain.ListQuoteResponse{}, domain.ErrInvalidSubject
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, subject, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListQuoteResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(quote *domain.Quote) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        quote.ID.String(),
			CreatedAt: quote.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	quotes := make([]domain.Quote, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		quotes = append(quotes, *item)
	}

	resp := domain.ListQuoteResponse{Quotes: quotes}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetQuoteRequest) (*domain.Quote, error) {
	subject, ok := identity.SubjectFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidSubject
	}

	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, subject, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return item, nil
}

// compute runs the pricing pipeline: resolve selections against the catalog,
// allocate tiers, adjust for the subscription type, and aggregate.
func (s *Service) compute(ctx context.Context, req domain.ComputeRequest, saving bool) (*resolved, error) {
	catalog, err := s.pricingSvc.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	line, ok := catalog.ProductLineByCode(strings.TrimSpace(req.ProductLine))
	if !ok {
		return nil, domain.ErrInvalidProductLine
	}

	sub, ok := catalog.SubscriptionByCode(pricingdomain.SubscriptionCode(strings.TrimSpace(req.SubscriptionType)))
	if !ok {
		return nil, domain.ErrInvalidSubscription
	}

	cameraCount := req.CameraCount
	if cameraCount < 0 {
		return nil, domain.ErrInvalidCameraCount
	}
	if saving && cameraCount < line.MinCameras {
		return nil, domain.ErrInvalidCameraCount
	}
	if cameraCount > 0 && cameraCount < line.MinCameras {
		cameraCount = line.MinCameras
	}
	if cameraCount > line.MaxCameras {
		cameraCount = line.MaxCameras
	}

	discountPercent := req.DiscountPercent
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > line.MaxDiscountPercent {
		discountPercent = line.MaxDiscountPercent
	}

	variant, err := resolveVariant(req, line)
	if err != nil {
		return nil, err
	}

	tiers := catalog.TiersFor(int64(line.ID), variant)
	if len(tiers) == 0 {
		// Product lines without variant-specific tables price everything
		// off the core table.
		variant = pricingdomain.VariantCore
		tiers = catalog.TiersFor(int64(line.ID), variant)
	}
	if len(tiers) == 0 {
		return nil, pricingdomain.ErrCatalogEmpty
	}

	var starter *pricingdomain.StarterPackage
	billable := cameraCount
	var lines []engine.TierLine
	if code := strings.TrimSpace(req.StarterPackage); code != "" {
		starter, ok = catalog.StarterPackageByCode(code)
		if !ok {
			return nil, domain.ErrInvalidStarterPack
		}
		bundled := starter.IncludedCameras
		if bundled > cameraCount {
			bundled = cameraCount
		}
		billable = cameraCount - bundled
		if bundled > 0 {
			lines = append(lines, engine.TierLine{
				Label:         starter.Name,
				Cameras:       bundled,
				UnitCents:     0,
				SubtotalCents: starter.BaseMonthlyCents,
			})
		}
	}
	lines = append(lines, engine.Allocate(billable, tiers)...)

	if req.SecondaryCurrency != "" && req.ExchangeRate <= 0 {
		return nil, domain.ErrInvalidExchangeRate
	}

	oneTime := normalizeOneTime(req.OneTime, catalog.AdditionalCosts)

	adj := engine.Adjust(engine.MonthlyTotal(lines), *sub, catalog.SubscriptionTypes)
	result := engine.Aggregate(lines, adj, oneTimeCosts(oneTime, catalog.AdditionalCosts), discountPercent)

	return &resolved{
		line:            line,
		variant:         variant,
		sub:             sub,
		starter:         starter,
		cameraCount:     cameraCount,
		discountPercent: discountPercent,
		oneTime:         oneTime,
		result:          result,
	}, nil
}

func (s *Service) toComputeResponse(req domain.ComputeRequest, res *resolved) (*domain.ComputeResponse, error) {
	resp := &domain.ComputeResponse{
		ProductLine:      res.line.Code,
		Variant:          res.variant,
		SubscriptionType: res.sub.Code,
		CameraCount:      res.cameraCount,
		DiscountPercent:  res.discountPercent,
		Result:           res.result,
	}

	if currency := strings.ToUpper(strings.TrimSpace(req.SecondaryCurrency)); currency != "" {
		resp.SecondaryCurrency = currency
		resp.SecondaryTotalCents = money.ConvertCents(res.result.TotalContractCents, req.ExchangeRate)
	}

	return resp, nil
}

func resolveVariant(req domain.ComputeRequest, line *pricingdomain.ProductLine) (pricingdomain.Variant, error) {
	switch pricingdomain.Variant(strings.TrimSpace(req.Variant)) {
	case pricingdomain.VariantCore:
		// Selecting more scenarios than the core limit still forces the
		// Everything table.
		if len(req.Scenarios) > line.ScenarioLimit {
			return pricingdomain.VariantEverything, nil
		}
		return pricingdomain.VariantCore, nil
	case pricingdomain.VariantEverything:
		return pricingdomain.VariantEverything, nil
	case "":
		if len(req.Scenarios) > line.ScenarioLimit {
			return pricingdomain.VariantEverything, nil
		}
		return pricingdomain.VariantCore, nil
	default:
		return "", pricingdomain.ErrInvalidVariant
	}
}

func normalizeOneTime(in domain.OneTimeSelections, costs pricingdomain.AdditionalCosts) domain.OneTimeSelections {
	out := in

	if out.IncludeServer && out.ServerCount <= 0 {
		out.ServerCount = 1
	}
	if !out.IncludeServer {
		out.ServerCount = 0
	}

	switch out.ImplementationFeeMode {
	case domain.FeeModeAuto:
		out.ImplementationFeeCents = costs.ImplementationFeeCents
	case domain.FeeModeCustom:
		if out.ImplementationFeeCents < 0 {
			out.ImplementationFeeCents = 0
		}
	default:
		out.ImplementationFeeMode = domain.FeeModeUnset
		out.ImplementationFeeCents = 0
	}

	if out.IncludeSpeakers && out.SpeakerCount <= 0 {
		out.SpeakerCount = 1
	}
	if !out.IncludeSpeakers {
		out.SpeakerCount = 0
	}

	if out.IncludeTravel && out.TravelCents <= 0 {
		out.TravelCents = costs.TravelDefaultCents
	}
	if !out.IncludeTravel {
		out.TravelCents = 0
	}

	return out
}

func oneTimeCosts(sel domain.OneTimeSelections, costs pricingdomain.AdditionalCosts) engine.OneTimeCosts {
	var out engine.OneTimeCosts
	if sel.IncludeServer {
		out.ServerCents = int64(sel.ServerCount) * costs.ServerUnitCents
	}
	out.ImplementationCents = sel.ImplementationFeeCents
	if sel.IncludeSpeakers {
		out.SpeakerCents = int64(sel.SpeakerCount) * costs.SpeakerUnitCents
	}
	if sel.IncludeTravel {
		out.TravelCents = sel.TravelCents
	}
	return out
}

func normalizeClient(in domain.ClientInfo) (domain.ClientInfo, error) {
	out := domain.ClientInfo{
		Name:        strings.TrimSpace(in.Name),
		Company:     strings.TrimSpace(in.Company),
		Email:       strings.TrimSpace(in.Email),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Zip:         strings.TrimSpace(in.Zip),
		CustomerRef: strings.TrimSpace(in.CustomerRef),
	}

	if out.Name == "" {
		return out, domain.ErrMissingClientName
	}
	if out.Company == "" {
		return out, domain.ErrMissingClientCompany
	}
	if out.Email == "" || !strings.Contains(out.Email, "@") {
		return out, domain.ErrMissingClientEmail
	}

	return out, nil
}
