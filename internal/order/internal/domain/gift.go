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

// GiftState 礼物订单在订单级别的领取状态视图。
// 注意这是展示口径: CanReceive 在订单级别计算, 任何一项过期都会置为 false,
// 真正的领取资格以单项上的条件更新为准, 见 GiftClaim 的写路径。
type GiftState struct {
	IsShared   bool
	IsReceived bool
	HasExpired bool
	CanReceive bool
}

// EvaluateGiftState 推导礼物订单的分享/领取/过期状态。
// 非礼物订单返回 ok == false。纯函数, 不访问存储。
func EvaluateGiftState(order Order) (GiftState, bool) {
	if !order.IsGift {
		return GiftState{}, false
	}
	var res GiftState
	res.IsReceived = len(order.Items) > 0
	for _, it := range order.Items {
		if it.Shared() {
			res.IsShared = true
		}
		if it.GiftStatus != GiftStatusReceived {
			res.IsReceived = false
		}
		if it.GiftStatus == GiftStatusExpired {
			res.HasExpired = true
		}
	}
	res.CanReceive = res.IsShared && !res.IsReceived && !res.HasExpired
	return res, true
}
