// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/giftshop/internal/order/internal/event"
	"github.com/ecodeclub/giftshop/internal/order/internal/event/consumer"
	"github.com/ecodeclub/giftshop/internal/order/internal/repository"
	"github.com/ecodeclub/giftshop/internal/order/internal/service"
	"github.com/ecodeclub/giftshop/internal/order/internal/web"
	"github.com/ecodeclub/giftshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/giftshop/internal/product"
	"github.com/ecodeclub/giftshop/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	c ecache.Cache,
	productModule *product.Module,
	userModule *user.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		sequencenumber.NewGenerator,
		event.NewOrderEventProducer,
		consumer.NewPaymentConsumer,
		consumer.NewDeliveryConsumer,
		service.NewService,
		web.NewHandler,
		initExpireGiftItemsJob,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
