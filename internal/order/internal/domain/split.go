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

// PurchaseItem 购买请求中的一行: 买哪个商品, 买几件
type PurchaseItem struct {
	ProductID int64
	Quantity  int64
}

// ProductSnapshot 下单时刻的商品快照, 价格与订阅条款在此定格
type ProductSnapshot struct {
	ProductID        int64
	Price            int64
	IsSubscription   bool
	MaxDeliveries    int64
	DeliveryType     string
	DeliveryInterval int64
}

const (
	// defaultMaxDeliveries 订阅商品未配置期数时的默认总期数
	defaultMaxDeliveries = 4
	// DeliveryTypeOnce 非订阅商品的交付方式
	DeliveryTypeOnce = "once"
)

// TotalAmount 按快照价格计算订单总金额, 单位为分
func TotalAmount(reqs []PurchaseItem, snaps map[int64]ProductSnapshot) int64 {
	var amount int64
	for _, r := range reqs {
		amount += snaps[r.ProductID].Price * r.Quantity
	}
	return amount
}

// SplitOrderItems 按赠送策略把购买请求拆成订单项草稿。
// 非礼物: 每个商品一条, 归属买家本人;
// 独享礼物(type 1): 每个商品一条, 数量照搬, 暂无归属;
// 拆分礼物(type 2): 每件商品一条, 数量恒为 1, 暂无归属。
func SplitOrderItems(buyerID int64, isGift bool, giftType GiftType,
	reqs []PurchaseItem, snaps map[int64]ProductSnapshot) []OrderItem {
	items := make([]OrderItem, 0, len(reqs))
	for _, r := range reqs {
		snap := snaps[r.ProductID]
		draft := newItemDraft(snap)
		if !isGift {
			draft.Quantity = r.Quantity
			draft.ReceiverID = buyerID
			items = append(items, draft)
			continue
		}
		if giftType == GiftTypeSplit {
			for i := int64(0); i < r.Quantity; i++ {
				unit := draft
				unit.Quantity = 1
				items = append(items, unit)
			}
			continue
		}
		draft.Quantity = r.Quantity
		items = append(items, draft)
	}
	return items
}

func newItemDraft(snap ProductSnapshot) OrderItem {
	item := OrderItem{
		ProductID:       snap.ProductID,
		Price:           snap.Price,
		IsSubscription:  snap.IsSubscription,
		TotalDeliveries: 1,
		DeliveryType:    DeliveryTypeOnce,
	}
	if snap.IsSubscription {
		item.TotalDeliveries = snap.MaxDeliveries
		if item.TotalDeliveries <= 0 {
			item.TotalDeliveries = defaultMaxDeliveries
		}
		item.DeliveryType = snap.DeliveryType
		item.DeliveryInterval = snap.DeliveryInterval
	}
	return item
}
