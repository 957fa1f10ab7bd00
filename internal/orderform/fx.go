package orderform

import (
	"github.com/smallbiznis/partnerportal/internal/orderform/repository"
	"github.com/smallbiznis/partnerportal/internal/orderform/service"
	"go.uber.org/fx"
)

var Module = fx.Module("orderform.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
