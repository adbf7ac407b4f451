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

import "fmt"

// DisplayStatus 展示状态, 只由持久化字段推导得出, 永不落库
type DisplayStatus string

const (
	DisplayStatusPending        DisplayStatus = "pending"
	DisplayStatusUnsent         DisplayStatus = "unsent"
	DisplayStatusPendingReceive DisplayStatus = "pending_receive"
	DisplayStatusReceived       DisplayStatus = "received"
	DisplayStatusPendingShip    DisplayStatus = "pending_ship"
	DisplayStatusPartialShipped DisplayStatus = "partial_shipped"
	DisplayStatusAllShipped     DisplayStatus = "all_shipped"
	DisplayStatusShipped        DisplayStatus = "shipped"
	DisplayStatusCompleted      DisplayStatus = "completed"
	DisplayStatusCancelled      DisplayStatus = "cancelled"
	DisplayStatusRefunded       DisplayStatus = "refunded"
)

// ComputedStatus 订单的推导状态视图
type ComputedStatus struct {
	Status     DisplayStatus
	StatusText string
	Progress   DeliveryProgress
	Gift       GiftState
	// HasGift 标记 Gift 字段是否有意义
	HasGift bool
}

// ComputeStatus 把原始订单状态、礼物状态、交付进度合成为展示状态。
// 幂等且无副作用: 相同的持久化状态永远得到相同的输出。
func ComputeStatus(order Order) ComputedStatus {
	res := ComputedStatus{
		Progress: CalculateDeliveryProgress(order.Items),
	}
	res.Gift, res.HasGift = EvaluateGiftState(order)

	switch order.Status {
	case OrderStatusPending:
		return withText(res, DisplayStatusPending, "待付款")
	case OrderStatusShipped:
		return withText(res, DisplayStatusShipped, "已发货")
	case OrderStatusCompleted:
		return withText(res, DisplayStatusCompleted, "已完成")
	case OrderStatusCancelled:
		return withText(res, DisplayStatusCancelled, "已取消")
	case OrderStatusRefunded:
		return withText(res, DisplayStatusRefunded, "已退款")
	case OrderStatusPaid:
		if order.IsGift {
			return giftStatus(res, order)
		}
		return shipStatus(res)
	default:
		// 未知的原始状态原样透出, 便于排查脏数据
		return withText(res, DisplayStatus(fmt.Sprintf("unknown_%d", order.Status)), "未知状态")
	}
}

func giftStatus(res ComputedStatus, order Order) ComputedStatus {
	if !res.Gift.IsShared {
		return withText(res, DisplayStatusUnsent, "待赠送")
	}
	for _, it := range order.Items {
		if it.GiftStatus == GiftStatusUnclaimed {
			return withText(res, DisplayStatusPendingReceive, "待领取")
		}
	}
	return withText(res, DisplayStatusReceived, "已领取")
}

func shipStatus(res ComputedStatus) ComputedStatus {
	p := res.Progress
	if !p.HasSubscription || p.Percent == 0 {
		return withText(res, DisplayStatusPendingShip, "待发货")
	}
	if p.Percent < 100 {
		return withText(res, DisplayStatusPartialShipped, fmt.Sprintf("已发货%d%%", p.Percent))
	}
	return withText(res, DisplayStatusAllShipped, "已全部发货")
}

func withText(res ComputedStatus, status DisplayStatus, text string) ComputedStatus {
	res.Status = status
	res.StatusText = text
	return res
}
