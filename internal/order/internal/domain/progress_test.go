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

func TestCalculateDeliveryProgress(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		items []OrderItem
		want  DeliveryProgress
	}{
		{
			name:  "空订单_进度为零",
			items: nil,
			want:  DeliveryProgress{},
		},
		{
			name: "纯非订阅_视为已全部交付",
			items: []OrderItem{
				{Quantity: 2},
				{Quantity: 1},
			},
			want: DeliveryProgress{
				TotalDeliveries: 3,
				DeliveredCount:  3,
				Percent:         100,
			},
		},
		{
			name: "订阅过半_百分比四舍五入",
			items: []OrderItem{
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 12, DeliveredCount: 7},
			},
			want: DeliveryProgress{
				TotalDeliveries: 12,
				DeliveredCount:  7,
				Percent:         58,
				HasSubscription: true,
			},
		},
		{
			name: "订阅与非订阅混合_非订阅计入已交付",
			items: []OrderItem{
				{Quantity: 2},
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 4, DeliveredCount: 1},
			},
			want: DeliveryProgress{
				TotalDeliveries: 6,
				DeliveredCount:  3,
				Percent:         50,
				HasSubscription: true,
			},
		},
		{
			name: "多件订阅_期数按件数放大",
			items: []OrderItem{
				{Quantity: 2, IsSubscription: true, TotalDeliveries: 4, DeliveredCount: 4},
			},
			want: DeliveryProgress{
				TotalDeliveries: 8,
				DeliveredCount:  8,
				Percent:         100,
				HasSubscription: true,
			},
		},
		{
			name: "订阅未开始_百分比为零",
			items: []OrderItem{
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 4},
			},
			want: DeliveryProgress{
				TotalDeliveries: 4,
				HasSubscription: true,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CalculateDeliveryProgress(tc.items))
		})
	}
}
