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

func TestSplitOrderItems(t *testing.T) {
	t.Parallel()
	snaps := map[int64]ProductSnapshot{
		100: {ProductID: 100, Price: 990},
		200: {ProductID: 200, Price: 1990, IsSubscription: true,
			MaxDeliveries: 12, DeliveryType: "monthly", DeliveryInterval: 30},
		300: {ProductID: 300, Price: 500, IsSubscription: true},
	}
	testCases := []struct {
		name     string
		isGift   bool
		giftType GiftType
		reqs     []PurchaseItem
		want     []OrderItem
	}{
		{
			name: "非礼物_数量合并为一项且归属买家",
			reqs: []PurchaseItem{{ProductID: 100, Quantity: 3}},
			want: []OrderItem{
				{ProductID: 100, Quantity: 3, Price: 990, ReceiverID: 666,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
			},
		},
		{
			name:     "独享礼物_整单一项且暂无归属",
			isGift:   true,
			giftType: GiftTypeExclusive,
			reqs:     []PurchaseItem{{ProductID: 100, Quantity: 3}},
			want: []OrderItem{
				{ProductID: 100, Quantity: 3, Price: 990,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
			},
		},
		{
			name:     "拆分礼物_每件一项数量恒为一",
			isGift:   true,
			giftType: GiftTypeSplit,
			reqs:     []PurchaseItem{{ProductID: 100, Quantity: 3}},
			want: []OrderItem{
				{ProductID: 100, Quantity: 1, Price: 990,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
				{ProductID: 100, Quantity: 1, Price: 990,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
				{ProductID: 100, Quantity: 1, Price: 990,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
			},
		},
		{
			name: "订阅商品_快照条款随项定格",
			reqs: []PurchaseItem{{ProductID: 200, Quantity: 1}},
			want: []OrderItem{
				{ProductID: 200, Quantity: 1, Price: 1990, ReceiverID: 666,
					IsSubscription: true, TotalDeliveries: 12,
					DeliveryType: "monthly", DeliveryInterval: 30},
			},
		},
		{
			name: "订阅商品未配置期数_回落到默认四期",
			reqs: []PurchaseItem{{ProductID: 300, Quantity: 1}},
			want: []OrderItem{
				{ProductID: 300, Quantity: 1, Price: 500, ReceiverID: 666,
					IsSubscription: true, TotalDeliveries: 4},
			},
		},
		{
			name:     "拆分礼物_多商品混合",
			isGift:   true,
			giftType: GiftTypeSplit,
			reqs: []PurchaseItem{
				{ProductID: 100, Quantity: 2},
				{ProductID: 200, Quantity: 1},
			},
			want: []OrderItem{
				{ProductID: 100, Quantity: 1, Price: 990,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
				{ProductID: 100, Quantity: 1, Price: 990,
					TotalDeliveries: 1, DeliveryType: DeliveryTypeOnce},
				{ProductID: 200, Quantity: 1, Price: 1990,
					IsSubscription: true, TotalDeliveries: 12,
					DeliveryType: "monthly", DeliveryInterval: 30},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items := SplitOrderItems(666, tc.isGift, tc.giftType, tc.reqs, snaps)
			assert.Equal(t, tc.want, items)
		})
	}
}

func TestTotalAmount(t *testing.T) {
	t.Parallel()
	snaps := map[int64]ProductSnapshot{
		100: {ProductID: 100, Price: 990},
		200: {ProductID: 200, Price: 1990},
	}
	reqs := []PurchaseItem{
		{ProductID: 100, Quantity: 3},
		{ProductID: 200, Quantity: 2},
	}
	assert.Equal(t, int64(990*3+1990*2), TotalAmount(reqs, snaps))
}

// 拆分策略不改变订单总价
func TestSplitOrderItems_AmountInvariant(t *testing.T) {
	t.Parallel()
	snaps := map[int64]ProductSnapshot{
		100: {ProductID: 100, Price: 990},
		200: {ProductID: 200, Price: 1990},
	}
	reqs := []PurchaseItem{
		{ProductID: 100, Quantity: 5},
		{ProductID: 200, Quantity: 2},
	}
	for _, giftType := range []GiftType{GiftTypeExclusive, GiftTypeSplit} {
		items := SplitOrderItems(666, true, giftType, reqs, snaps)
		var sum int64
		for _, it := range items {
			sum += it.Price * it.Quantity
		}
		assert.Equal(t, TotalAmount(reqs, snaps), sum)
	}
}
