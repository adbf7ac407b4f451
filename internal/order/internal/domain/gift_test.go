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

func TestEvaluateGiftState(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		order  Order
		want   GiftState
		wantOK bool
	}{
		{
			name:   "非礼物订单_不产出礼物状态",
			order:  Order{Items: []OrderItem{{GiftStatus: GiftStatusUnclaimed}}},
			wantOK: false,
		},
		{
			name: "未分享未领取",
			order: Order{IsGift: true, Items: []OrderItem{
				{GiftStatus: GiftStatusUnclaimed},
			}},
			want:   GiftState{},
			wantOK: true,
		},
		{
			name: "已分享未领取_可领取",
			order: Order{IsGift: true, Items: []OrderItem{
				{GiftStatus: GiftStatusUnclaimed, GiftRelationship: "友人"},
			}},
			want:   GiftState{IsShared: true, CanReceive: true},
			wantOK: true,
		},
		{
			name: "全部领完_不可再领",
			order: Order{IsGift: true, Items: []OrderItem{
				{GiftStatus: GiftStatusReceived, GiftRelationship: "友人", ReceiverID: 7},
				{GiftStatus: GiftStatusReceived, GiftRelationship: "友人", ReceiverID: 8},
			}},
			want:   GiftState{IsShared: true, IsReceived: true},
			wantOK: true,
		},
		{
			name: "部分领取_整单不算已领取",
			order: Order{IsGift: true, Items: []OrderItem{
				{GiftStatus: GiftStatusReceived, GiftRelationship: "友人", ReceiverID: 7},
				{GiftStatus: GiftStatusUnclaimed, GiftRelationship: "友人"},
			}},
			want:   GiftState{IsShared: true, CanReceive: true},
			wantOK: true,
		},
		{
			name: "任何一项过期_订单级不可领取",
			order: Order{IsGift: true, Items: []OrderItem{
				{GiftStatus: GiftStatusExpired, GiftRelationship: "友人"},
				{GiftStatus: GiftStatusUnclaimed, GiftRelationship: "友人"},
			}},
			want:   GiftState{IsShared: true, HasExpired: true},
			wantOK: true,
		},
		{
			name:   "礼物订单无订单项_不算已领取",
			order:  Order{IsGift: true},
			want:   GiftState{},
			wantOK: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := EvaluateGiftState(tc.order)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
