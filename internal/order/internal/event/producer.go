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

package event

import (
	"context"

	"github.com/ecodeclub/giftshop/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -destination=../../../mocks/producer.mock.go -package=ordermocks -typed=false OrderEventProducer

type OrderEventProducer interface {
	Produce(ctx context.Context, evt OrderStatusEvent) error
}

// NewOrderEventProducer 同一笔订单的事件按 SN 分区保序
func NewOrderEventProducer(q mq.MQ) (OrderEventProducer, error) {
	return mqx.NewGeneralProducerWithKey[OrderStatusEvent](q, OrderEventName,
		func(evt OrderStatusEvent) string {
			return evt.OrderSN
		})
}
