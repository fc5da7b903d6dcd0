package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/usersvc/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Provide(newPasswordHasher)

type hasherParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}
