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

package consumer

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/giftshop/internal/order/internal/event"
	"github.com/ecodeclub/giftshop/internal/order/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// DeliveryConsumer 消费发货完成消息, 给订阅项累加已交付期数。
// 期数归履约系统所有, 订单侧只做带版本号的累加。
type DeliveryConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewDeliveryConsumer(svc service.Service, q mq.MQ) (*DeliveryConsumer, error) {
	groupID := "order_delivery"
	consumer, err := q.Consumer(event.DeliveryEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &DeliveryConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *DeliveryConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费发货事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *DeliveryConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}
	var evt event.DeliveryEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}
	return c.svc.MarkItemDelivered(ctx, evt.OrderItemID)
}
