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

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	"github.com/ecodeclub/giftshop/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go -typed=false OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error)
	TotalOrders(ctx context.Context, uid int64) (int64, error)
	MarkOrderPaid(ctx context.Context, sn string, payType string, paidAt int64) (domain.Order, error)
	CancelOrder(ctx context.Context, buyerID, orderID int64) error
	FindOrderItemByID(ctx context.Context, itemID int64) (domain.OrderItem, error)
	ClaimGiftItem(ctx context.Context, itemID, claimerID int64, attrs domain.ClaimAttrs) (domain.OrderItem, error)
	ShareGiftItem(ctx context.Context, buyerID, itemID int64, share domain.GiftShare) error
	ExpireGiftItems(ctx context.Context, paidBefore int64) (int64, error)
	MarkItemDelivered(ctx context.Context, itemID int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	entities := o.toOrderItemEntities(order.Items)
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), entities)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	// 自增主键在落库时回填进实体, 领取和交付接口都要用
	for i := range order.Items {
		order.Items[i].ID = entities[i].Id
		order.Items[i].OrderID = entities[i].OrderId
	}
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.orderWithItems(ctx, order)
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号及买家ID查找订单失败: %w", err)
	}
	return o.orderWithItems(ctx, order)
}

func (o *orderRepository) orderWithItems(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, 0, len(os))
	for _, src := range os {
		order, err := o.orderWithItems(ctx, src)
		if err != nil {
			return nil, err
		}
		res = append(res, order)
	}
	return res, nil
}

func (o *orderRepository) TotalOrders(ctx context.Context, uid int64) (int64, error) {
	return o.d.Count(ctx, uid)
}

func (o *orderRepository) MarkOrderPaid(ctx context.Context, sn string, payType string, paidAt int64) (domain.Order, error) {
	order, err := o.d.MarkOrderPaid(ctx, sn, payType, paidAt)
	if err != nil {
		return domain.Order{}, err
	}
	return o.orderWithItems(ctx, order)
}

func (o *orderRepository) CancelOrder(ctx context.Context, buyerID, orderID int64) error {
	return o.d.CancelOrder(ctx, buyerID, orderID)
}

func (o *orderRepository) FindOrderItemByID(ctx context.Context, itemID int64) (domain.OrderItem, error) {
	item, err := o.d.FindOrderItemByID(ctx, itemID)
	if err != nil {
		return domain.OrderItem{}, err
	}
	return o.toOrderItemDomain(item), nil
}

func (o *orderRepository) ClaimGiftItem(ctx context.Context, itemID, claimerID int64, attrs domain.ClaimAttrs) (domain.OrderItem, error) {
	item, err := o.d.ClaimGiftItem(ctx, itemID, claimerID, attrs)
	if err != nil {
		return domain.OrderItem{}, err
	}
	return o.toOrderItemDomain(item), nil
}

func (o *orderRepository) ShareGiftItem(ctx context.Context, buyerID, itemID int64, share domain.GiftShare) error {
	return o.d.ShareGiftItem(ctx, buyerID, itemID, share.Relationship, share.ReceiverName, share.Message)
}

func (o *orderRepository) ExpireGiftItems(ctx context.Context, paidBefore int64) (int64, error) {
	return o.d.ExpireGiftItems(ctx, paidBefore)
}

func (o *orderRepository) MarkItemDelivered(ctx context.Context, itemID int64) error {
	// 乐观锁冲突说明有并发的交付确认, 重读版本号再试
	const maxAttempts = 3
	for i := 0; i < maxAttempts; i++ {
		item, err := o.d.FindOrderItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		err = o.d.IncrementDeliveredCount(ctx, item.Id, item.Version)
		if !errors.Is(err, dao.ErrVersionConflict) {
			return err
		}
	}
	return dao.ErrVersionConflict
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:          order.ID,
		SN:          order.SN,
		BuyerId:     order.BuyerID,
		PayType:     order.PayType,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.ToUint8(),
		IsGift:      order.IsGift,
		GiftType:    order.GiftType.ToUint8(),
		GiftCardSN:  order.GiftCardSN,
		PaidAt:      order.PaidAt,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		e := dao.OrderItem{
			Id:               src.ID,
			OrderId:          src.OrderID,
			ProductId:        src.ProductID,
			Quantity:         src.Quantity,
			Price:            src.Price,
			IsSubscription:   src.IsSubscription,
			TotalDeliveries:  src.TotalDeliveries,
			DeliveredCount:   src.DeliveredCount,
			DeliveryType:     src.DeliveryType,
			DeliveryInterval: src.DeliveryInterval,
			GiftStatus:       src.GiftStatus.ToUint8(),
			GiftReceiverName: src.GiftReceiverName,
			GiftMessage:      src.GiftMessage,
			ReceivedAt:       src.ReceivedAt,
			ExpiredAt:        src.ExpiredAt,
			Version:          src.Version,
		}
		if src.ReceiverID != 0 {
			e.ReceiverId = sql.NullInt64{Int64: src.ReceiverID, Valid: true}
		}
		if src.GiftRelationship != "" {
			e.GiftRelationship = sql.NullString{String: src.GiftRelationship, Valid: true}
		}
		if src.ClaimAttrs != (domain.ClaimAttrs{}) {
			e.ClaimAttrs = sqlx.JsonColumn[domain.ClaimAttrs]{Val: src.ClaimAttrs, Valid: true}
		}
		return e
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:          order.Id,
		SN:          order.SN,
		BuyerID:     order.BuyerId,
		PayType:     order.PayType,
		TotalAmount: order.TotalAmount,
		Status:      domain.OrderStatus(order.Status),
		IsGift:      order.IsGift,
		GiftType:    domain.GiftType(order.GiftType),
		GiftCardSN:  order.GiftCardSN,
		PaidAt:      order.PaidAt,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return o.toOrderItemDomain(src)
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}

func (o *orderRepository) toOrderItemDomain(src dao.OrderItem) domain.OrderItem {
	item := domain.OrderItem{
		ID:               src.Id,
		OrderID:          src.OrderId,
		ProductID:        src.ProductId,
		Quantity:         src.Quantity,
		Price:            src.Price,
		IsSubscription:   src.IsSubscription,
		TotalDeliveries:  src.TotalDeliveries,
		DeliveredCount:   src.DeliveredCount,
		DeliveryType:     src.DeliveryType,
		DeliveryInterval: src.DeliveryInterval,
		GiftStatus:       domain.GiftStatus(src.GiftStatus),
		GiftReceiverName: src.GiftReceiverName,
		GiftMessage:      src.GiftMessage,
		ReceivedAt:       src.ReceivedAt,
		ExpiredAt:        src.ExpiredAt,
		Version:          src.Version,
		Ctime:            src.Ctime,
		Utime:            src.Utime,
	}
	if src.ReceiverId.Valid {
		item.ReceiverID = src.ReceiverId.Int64
	}
	if src.GiftRelationship.Valid {
		item.GiftRelationship = src.GiftRelationship.String
	}
	if src.ClaimAttrs.Valid {
		item.ClaimAttrs = src.ClaimAttrs.Val
	}
	return item
}
