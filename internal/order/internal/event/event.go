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

const (
	// OrderEventName 订单状态变更事件
	OrderEventName = "order_events"
	// PaymentEventName 支付结果事件
	PaymentEventName = "payment_events"
	// DeliveryEventName 发货结果事件
	DeliveryEventName = "delivery_events"
)

// OrderStatusEvent 订单状态变化时对外广播
type OrderStatusEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerId"`
	// Scene 触发场景，created/paid/cancelled/claimed/expired
	Scene  string `json:"scene"`
	Status uint8  `json:"status"`
}

// PaymentSuccessEvent 支付模块发来的支付成功消息
type PaymentSuccessEvent struct {
	OrderSN string `json:"orderSN"`
	PayerID int64  `json:"payerId"`
	// PaidAt 支付完成时间，毫秒时间戳
	PaidAt int64 `json:"paidAt"`
}

// DeliveryEvent 履约系统发来的单次发货完成消息
type DeliveryEvent struct {
	OrderItemID int64 `json:"orderItemId"`
	// DeliveredAt 发货时间，毫秒时间戳
	DeliveredAt int64 `json:"deliveredAt"`
}
