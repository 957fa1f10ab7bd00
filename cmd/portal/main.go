package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/partnerportal/internal/config"
	"github.com/smallbiznis/partnerportal/internal/dealreg"
	"github.com/smallbiznis/partnerportal/internal/identity"
	"github.com/smallbiznis/partnerportal/internal/learningmaterial"
	"github.com/smallbiznis/partnerportal/internal/logger"
	"github.com/smallbiznis/partnerportal/internal/migration"
	"github.com/smallbiznis/partnerportal/internal/observability"
	"github.com/smallbiznis/partnerportal/internal/orderform"
	"github.com/smallbiznis/partnerportal/internal/partnerapplication"
	"github.com/smallbiznis/partnerportal/internal/pricing"
	"github.com/smallbiznis/partnerportal/internal/providers/docx"
	"github.com/smallbiznis/partnerportal/internal/providers/pdf"
	"github.com/smallbiznis/partnerportal/internal/quote"
	"github.com/smallbiznis/partnerportal/internal/server"
	"github.com/smallbiznis/partnerportal/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		identity.Module,
		migration.Module,

		// Functional domains
		pricing.Module,
		quote.Module,
		orderform.Module,
		partnerapplication.Module,
		learningmaterial.Module,
		dealreg.Module,

		// Document providers
		pdf.Module,
		docx.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
