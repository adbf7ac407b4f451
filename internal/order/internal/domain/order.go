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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	OrderStatusPending   OrderStatus = 0 // 待支付
	OrderStatusPaid      OrderStatus = 1 // 已支付
	OrderStatusShipped   OrderStatus = 2 // 已发货
	OrderStatusCompleted OrderStatus = 3 // 已完成
	OrderStatusCancelled OrderStatus = 4 // 已取消
	OrderStatusRefunded  OrderStatus = 5 // 已退款
)

type GiftType uint8

func (t GiftType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// GiftTypeExclusive 独享礼物, 一个收礼人认领整个订单项
	GiftTypeExclusive GiftType = 1
	// GiftTypeSplit 拆分礼物, 每件商品是独立可认领的订单项
	GiftTypeSplit GiftType = 2
)

type GiftStatus uint8

func (s GiftStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	GiftStatusUnclaimed GiftStatus = 0 // 未领取
	GiftStatusReceived  GiftStatus = 1 // 已领取
	GiftStatusExpired   GiftStatus = 2 // 已过期
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	PayType string
	// TotalAmount 下单时快照的总金额, 单位为分, 创建后不再重算
	TotalAmount int64
	Status      OrderStatus
	IsGift      bool
	// GiftType 仅在 IsGift 为 true 时有意义
	GiftType   GiftType
	GiftCardSN string
	Items      []OrderItem
	PaidAt     int64
	Ctime      int64
	Utime      int64
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	// Price 下单时快照的单价, 单位为分
	Price int64
	// ReceiverID 为 0 表示尚未有归属: 礼物未被领取, 或等待分配
	ReceiverID     int64
	IsSubscription bool
	// TotalDeliveries 订阅商品的总期数, 非订阅商品恒为 1
	TotalDeliveries int64
	// DeliveredCount 由履约方写入, 本模块只读
	DeliveredCount   int64
	DeliveryType     string
	DeliveryInterval int64
	GiftStatus       GiftStatus
	// GiftRelationship 买家分享该项时填写的关系标签, 非空即视为已分享
	GiftRelationship string
	GiftReceiverName string
	GiftMessage      string
	// ClaimAttrs 收礼人领取时透传的信息, 本模块不解释其内容
	ClaimAttrs ClaimAttrs
	ReceivedAt int64
	ExpiredAt  int64
	// Version 乐观锁版本号, 保护 DeliveredCount 的并发更新
	Version int64
	Ctime   int64
	Utime   int64
}

// ClaimAttrs 领取礼物时的透传信息, 原样落库
type ClaimAttrs struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Shared 该订单项是否已被买家分享出去
func (i OrderItem) Shared() bool {
	return i.GiftRelationship != ""
}

// GiftShare 买家分享某个订单项时填写的内容
type GiftShare struct {
	Relationship string
	ReceiverName string
	Message      string
}
