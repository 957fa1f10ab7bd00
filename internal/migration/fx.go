package migration

import (
	"github.com/smallbiznis/partnerportal/internal/config"
	dealregdomain "github.com/smallbiznis/partnerportal/internal/dealreg/domain"
	learningdomain "github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	orderformdomain "github.com/smallbiznis/partnerportal/internal/orderform/domain"
	partnerappdomain "github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
	pricingdomain "github.com/smallbiznis/partnerportal/internal/pricing/domain"
	quotedomain "github.com/smallbiznis/partnerportal/internal/quote/domain"
	"github.com/smallbiznis/partnerportal/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql are dev conveniences; gorm owns their schema.
			if err := conn.AutoMigrate(
				&pricingdomain.ProductLine{},
				&pricingdomain.PriceTier{},
				&pricingdomain.SubscriptionType{},
				&pricingdomain.StarterPackage{},
				&pricingdomain.AdditionalCosts{},
				&quotedomain.Quote{},
				&orderformdomain.OrderForm{},
				&partnerappdomain.PartnerApplication{},
				&learningdomain.LearningMaterial{},
				&dealregdomain.DealRegistration{},
			); err != nil {
				return err
			}
		}

		return seed.EnsureDefaultCatalog(conn)
	}),
)
