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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	"github.com/ecodeclub/giftshop/internal/order/internal/event/consumer"
	"github.com/ecodeclub/giftshop/internal/order/internal/job"
	"github.com/ecodeclub/giftshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/giftshop/internal/order/internal/service"
	"github.com/ecodeclub/giftshop/internal/order/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

type (
	Handler   = web.Handler
	Service   = service.Service
	Order     = domain.Order
	OrderItem = domain.OrderItem
)

type Module struct {
	Hdl *Handler
	Svc Service
	// ExpireGiftItemsJob 交给定时任务框架调度
	ExpireGiftItemsJob *job.ExpireGiftItemsJob
	PaymentConsumer    *consumer.PaymentConsumer
	DeliveryConsumer   *consumer.DeliveryConsumer
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db)
}

func initExpireGiftItemsJob(svc service.Service) *job.ExpireGiftItemsJob {
	hours := econf.GetInt64("order.giftClaimWindowHours")
	if hours <= 0 {
		hours = 24
	}
	return job.NewExpireGiftItemsJob(svc, hours, time.Minute)
}
