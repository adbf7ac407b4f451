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

// DeliveryProgress 订阅交付进度的聚合视图
type DeliveryProgress struct {
	TotalDeliveries int64
	DeliveredCount  int64
	// Percent 取值范围 [0, 100]
	Percent         int64
	HasSubscription bool
}

// CalculateDeliveryProgress 聚合一个订单的交付进度。
// 非订阅项在支付后即视为已交付一次; 订阅项按 期数×件数 累计。
// 纯函数, 不访问存储。
func CalculateDeliveryProgress(items []OrderItem) DeliveryProgress {
	var res DeliveryProgress
	for _, it := range items {
		if it.IsSubscription {
			res.HasSubscription = true
			res.TotalDeliveries += it.TotalDeliveries * it.Quantity
			res.DeliveredCount += it.DeliveredCount * it.Quantity
			continue
		}
		res.TotalDeliveries += it.Quantity
		res.DeliveredCount += it.Quantity
	}
	if !res.HasSubscription {
		// 全部是一次性商品, 支付后即视为交付完成
		if res.TotalDeliveries > 0 {
			res.Percent = 100
		}
		return res
	}
	res.Percent = roundPercent(res.DeliveredCount, res.TotalDeliveries)
	return res
}

// roundPercent 四舍五入的整数百分比, total 为 0 时返回 0
func roundPercent(delivered, total int64) int64 {
	if total <= 0 {
		return 0
	}
	p := (delivered*100 + total/2) / total
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
