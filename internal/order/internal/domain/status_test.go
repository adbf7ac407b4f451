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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name         string
		order        Order
		wantStatus   DisplayStatus
		wantText     string
		wantProgress DeliveryProgress
	}{
		{
			name:       "待支付",
			order:      Order{Status: OrderStatusPending},
			wantStatus: DisplayStatusPending,
			wantText:   "待付款",
		},
		{
			name: "已支付的普通订单_无订阅即待发货",
			order: Order{Status: OrderStatusPaid, Items: []OrderItem{
				{Quantity: 1},
			}},
			wantStatus: DisplayStatusPendingShip,
			wantText:   "待发货",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 1, DeliveredCount: 1, Percent: 100,
			},
		},
		{
			name: "已支付的订阅订单_未交付即待发货",
			order: Order{Status: OrderStatusPaid, Items: []OrderItem{
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 12},
			}},
			wantStatus: DisplayStatusPendingShip,
			wantText:   "待发货",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 12, HasSubscription: true,
			},
		},
		{
			name: "已支付的订阅订单_交付过半即部分发货",
			order: Order{Status: OrderStatusPaid, Items: []OrderItem{
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 12, DeliveredCount: 7},
			}},
			wantStatus: DisplayStatusPartialShipped,
			wantText:   "已发货58%",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 12, DeliveredCount: 7, Percent: 58, HasSubscription: true,
			},
		},
		{
			name: "已支付的订阅订单_交付完即全部发货",
			order: Order{Status: OrderStatusPaid, Items: []OrderItem{
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 4, DeliveredCount: 4},
			}},
			wantStatus: DisplayStatusAllShipped,
			wantText:   "已全部发货",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 4, DeliveredCount: 4, Percent: 100, HasSubscription: true,
			},
		},
		{
			name: "已支付的礼物_未分享即待赠送",
			order: Order{Status: OrderStatusPaid, IsGift: true, Items: []OrderItem{
				{Quantity: 1, GiftStatus: GiftStatusUnclaimed},
			}},
			wantStatus: DisplayStatusUnsent,
			wantText:   "待赠送",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 1, DeliveredCount: 1, Percent: 100,
			},
		},
		{
			name: "已支付的礼物_已分享未领取即待领取",
			order: Order{Status: OrderStatusPaid, IsGift: true, Items: []OrderItem{
				{Quantity: 1, GiftStatus: GiftStatusUnclaimed, GiftRelationship: "友人"},
			}},
			wantStatus: DisplayStatusPendingReceive,
			wantText:   "待领取",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 1, DeliveredCount: 1, Percent: 100,
			},
		},
		{
			name: "已支付的礼物_全部领完即已领取",
			order: Order{Status: OrderStatusPaid, IsGift: true, Items: []OrderItem{
				{Quantity: 1, GiftStatus: GiftStatusReceived, GiftRelationship: "友人", ReceiverID: 7},
			}},
			wantStatus: DisplayStatusReceived,
			wantText:   "已领取",
			wantProgress: DeliveryProgress{
				TotalDeliveries: 1, DeliveredCount: 1, Percent: 100,
			},
		},
		{
			name:       "已发货",
			order:      Order{Status: OrderStatusShipped},
			wantStatus: DisplayStatusShipped,
			wantText:   "已发货",
		},
		{
			name:       "已完成",
			order:      Order{Status: OrderStatusCompleted},
			wantStatus: DisplayStatusCompleted,
			wantText:   "已完成",
		},
		{
			name:       "已取消",
			order:      Order{Status: OrderStatusCancelled},
			wantStatus: DisplayStatusCancelled,
			wantText:   "已取消",
		},
		{
			name:       "已退款",
			order:      Order{Status: OrderStatusRefunded},
			wantStatus: DisplayStatusRefunded,
			wantText:   "已退款",
		},
		{
			name:       "未知原始状态_原样透出",
			order:      Order{Status: OrderStatus(9)},
			wantStatus: DisplayStatus("unknown_9"),
			wantText:   "未知状态",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeStatus(tc.order)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantText, got.StatusText)
			assert.Equal(t, tc.wantProgress, got.Progress)
		})
	}
}

// 推导是纯函数, 同样的输入重复计算结果一致, 且不修改入参
func TestComputeStatus_Idempotent(t *testing.T) {
	t.Parallel()
	order := Order{Status: OrderStatusPaid, IsGift: true, Items: []OrderItem{
		{Quantity: 1, GiftStatus: GiftStatusUnclaimed, GiftRelationship: "友人"},
		{Quantity: 1, IsSubscription: true, TotalDeliveries: 4, DeliveredCount: 2},
	}}
	first := ComputeStatus(order)
	second := ComputeStatus(order)
	assert.Equal(t, first, second)
	assert.Equal(t, OrderStatusPaid, order.Status)
	assert.Equal(t, GiftStatusUnclaimed, order.Items[0].GiftStatus)
}
