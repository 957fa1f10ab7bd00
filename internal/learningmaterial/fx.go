package learningmaterial

import (
	"github.com/smallbiznis/partnerportal/internal/learningmaterial/repository"
	"github.com/smallbiznis/partnerportal/internal/learningmaterial/service"
	"go.uber.org/fx"
)

var Module = fx.Module("learningmaterial.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
