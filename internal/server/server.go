package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/partnerportal/internal/config"
	dealregdomain "github.com/smallbiznis/partnerportal/internal/dealreg/domain"
	"github.com/smallbiznis/partnerportal/internal/identity"
	learningdomain "github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	"github.com/smallbiznis/partnerportal/internal/observability"
	orderformdomain "github.com/smallbiznis/partnerportal/internal/orderform/domain"
	partnerappdomain "github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	"github.com/smallbiznis/partnerportal/internal/providers/docx"
	"github.com/smallbiznis/partnerportal/internal/providers/pdf"
	quotedomain "github.com/smallbiznis/partnerportal/internal/quote/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, registry *prometheus.Registry, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log))
	r.Use(observability.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger, registry *prometheus.Registry, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, log, registry, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	verifier *identity.Verifier

	pricingSvc    pricingdomain.Service
	quoteSvc      quotedomain.Service
	orderFormSvc  orderformdomain.Service
	partnerAppSvc partnerappdomain.Service
	learningSvc   learningdomain.Service
	dealRegSvc    dealregdomain.Service

	pdfProvider  pdf.Provider
	docxProvider docx.Provider
	metrics      *observability.HTTPMetrics
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	Log      *zap.Logger
	Verifier *identity.Verifier

	PricingSvc    pricingdomain.Service
	QuoteSvc      quotedomain.Service
	OrderFormSvc  orderformdomain.Service
	PartnerAppSvc partnerappdomain.Service
	LearningSvc   learningdomain.Service
	DealRegSvc    dealregdomain.Service

	PDFProvider  pdf.Provider
	DocxProvider docx.Provider
	Metrics      *observability.HTTPMetrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		log:           p.Log.Named("http.server"),
		verifier:      p.Verifier,
		pricingSvc:    p.PricingSvc,
		quoteSvc:      p.QuoteSvc,
		orderFormSvc:  p.OrderFormSvc,
		partnerAppSvc: p.PartnerAppSvc,
		learningSvc:   p.LearningSvc,
		dealRegSvc:    p.DealRegSvc,
		pdfProvider:   p.PDFProvider,
		docxProvider:  p.DocxProvider,
		metrics:       p.Metrics,
	}

	svc.registerPublicRoutes()
	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerPublicRoutes() {
	s.engine.POST("/api/partner-applications", s.CreatePartnerApplication)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	api.GET("/pricing/catalog", s.GetCatalog)

	// -------- Quotes --------
	api.POST("/quotes/preview", s.PreviewQuote)
	api.POST("/quotes", s.CreateQuote)
	api.GET("/quotes", s.ListQuotes)
	api.GET("/quotes/:id", s.GetQuoteByID)
	api.GET("/quotes/:id/pdf", s.ExportQuotePDF)

	// -------- Order forms --------
	api.POST("/order-forms", s.CreateOrderForm)
	api.GET("/order-forms", s.ListOrderForms)
	api.GET("/order-forms/:id", s.GetOrderFormByID)
	api.GET("/order-forms/:id/pdf", s.ExportOrderFormPDF)
	api.GET("/order-forms/:id/docx", s.ExportOrderFormDocx)

	// -------- Learning materials --------
	api.GET("/learning-materials", s.ListLearningMaterials)

	// -------- Deal registrations --------
	api.POST("/deal-registrations", s.CreateDealRegistration)
	api.GET("/deal-registrations", s.ListDealRegistrations)
	api.GET("/deal-registrations/:id", s.GetDealRegistrationByID)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", s.AuthRequired(), s.AdminRequired())

	admin.GET("/partner-applications", s.ListPartnerApplications)
	admin.GET("/partner-applications/:id", s.GetPartnerApplicationByID)
	admin.PUT("/partner-applications/:id/status", s.UpdatePartnerApplicationStatus)

	admin.POST("/learning-materials", s.CreateLearningMaterial)
	admin.GET("/learning-materials", s.ListAllLearningMaterials)
	admin.PUT("/learning-materials/:id", s.UpdateLearningMaterial)
	admin.DELETE("/learning-materials/:id", s.DeleteLearningMaterial)

	admin.GET("/deal-registrations", s.ListAllDealRegistrations)
	admin.PUT("/deal-registrations/:id/status", s.UpdateDealRegistrationStatus)
}
