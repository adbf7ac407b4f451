//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/giftshop/internal/order"
	"github.com/ecodeclub/giftshop/internal/product"
	"github.com/ecodeclub/giftshop/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitMQ, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		user.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
