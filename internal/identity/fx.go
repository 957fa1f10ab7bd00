package identity

import "go.uber.org/fx"

// Module provides the bearer token verifier.
var Module = fx.Module("identity",
	fx.Provide(NewVerifier),
)
