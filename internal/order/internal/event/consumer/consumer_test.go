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
	"testing"
	"time"

	"github.com/ecodeclub/giftshop/internal/order/internal/event"
	svcmocks "github.com/ecodeclub/giftshop/internal/order/internal/service/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentConsumer_Consume(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.PaymentEventName, 1))

	svc := svcmocks.NewMockService(ctrl)
	c, err := NewPaymentConsumer(svc, q)
	require.NoError(t, err)

	producer, err := q.Producer(event.PaymentEventName)
	require.NoError(t, err)
	data, err := json.Marshal(event.PaymentSuccessEvent{
		OrderSN: "OR20240101",
		PayerID: 77,
		PaidAt:  1700000000000,
	})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	svc.EXPECT().MarkOrderPaid(gomock.Any(), "OR20240101", "", int64(1700000000000)).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, c.Consume(ctx))
}

func TestDeliveryConsumer_Consume(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.DeliveryEventName, 1))

	svc := svcmocks.NewMockService(ctrl)
	c, err := NewDeliveryConsumer(svc, q)
	require.NoError(t, err)

	producer, err := q.Producer(event.DeliveryEventName)
	require.NoError(t, err)
	data, err := json.Marshal(event.DeliveryEvent{
		OrderItemID: 1001,
		DeliveredAt: 1700000000000,
	})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	svc.EXPECT().MarkItemDelivered(gomock.Any(), int64(1001)).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, c.Consume(ctx))
}
