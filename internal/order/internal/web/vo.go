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

package web

type CreateOrderReq struct {
	// RequestID 客户端生成的幂等键, 重复提交直接拒绝
	RequestID string            `json:"requestId"`
	PayType   string            `json:"payType"`
	IsGift    bool              `json:"isGift"`
	GiftType  uint8             `json:"giftType"`
	Items     []PurchaseItemReq `json:"items"`
}

type PurchaseItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
	// TotalAmount 单位为分
	TotalAmount int64 `json:"totalAmount"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	OrderStatus uint8 `json:"orderStatus"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ShareGiftReq struct {
	ItemID       int64  `json:"itemId"`
	Relationship string `json:"relationship"`
	ReceiverName string `json:"receiverName"`
	Message      string `json:"message"`
}

type ClaimGiftReq struct {
	ItemID  int64  `json:"itemId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type StatusResp struct {
	Status     string    `json:"status"`
	StatusText string    `json:"statusText"`
	Progress   *Progress `json:"progress,omitempty"`
	Gift       *Gift     `json:"gift,omitempty"`
}

type Progress struct {
	TotalDeliveries int64 `json:"totalDeliveries"`
	DeliveredCount  int64 `json:"deliveredCount"`
	Percent         int64 `json:"percent"`
	HasSubscription bool  `json:"hasSubscription"`
}

type Gift struct {
	IsShared   bool `json:"isShared"`
	IsReceived bool `json:"isReceived"`
	HasExpired bool `json:"hasExpired"`
	CanReceive bool `json:"canReceive"`
}

type Order struct {
	SN          string      `json:"sn"`
	PayType     string      `json:"payType"`
	TotalAmount int64       `json:"totalAmount"`
	Status      uint8       `json:"status"`
	IsGift      bool        `json:"isGift"`
	GiftType    uint8       `json:"giftType,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	Ctime       int64       `json:"ctime"`
}

type OrderItem struct {
	ID               int64  `json:"id"`
	ProductID        int64  `json:"productId"`
	Quantity         int64  `json:"quantity"`
	Price            int64  `json:"price"`
	ReceiverID       int64  `json:"receiverId,omitempty"`
	IsSubscription   bool   `json:"isSubscription"`
	TotalDeliveries  int64  `json:"totalDeliveries"`
	DeliveredCount   int64  `json:"deliveredCount"`
	GiftStatus       uint8  `json:"giftStatus"`
	GiftRelationship string `json:"giftRelationship,omitempty"`
	GiftReceiverName string `json:"giftReceiverName,omitempty"`
	GiftMessage      string `json:"giftMessage,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}
