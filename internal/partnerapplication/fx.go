package partnerapplication

import (
	"github.com/smallbiznis/partnerportal/internal/partnerapplication/repository"
	"github.com/smallbiznis/partnerportal/internal/partnerapplication/service"
	"go.uber.org/fx"
)

var Module = fx.Module("partnerapplication.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
