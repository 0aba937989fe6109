package healthcheck

import (
	"github.com/holdergate/goapi/base/ctx"
)

type HealthCheckRepo interface {
	PingCache(c ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}
