package dealreg

import (
	"github.com/smallbiznis/partnerportal/internal/dealreg/repository"
	"github.com/smallbiznis/partnerportal/internal/dealreg/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dealreg.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
