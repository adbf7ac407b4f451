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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	"github.com/ecodeclub/giftshop/internal/order/internal/event"
	"github.com/ecodeclub/giftshop/internal/order/internal/repository"
	"github.com/ecodeclub/giftshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/giftshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/giftshop/internal/product"
	"github.com/ecodeclub/giftshop/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -destination=mocks/service.mock.go -package=svcmocks -typed=false Service

var (
	ErrInvalidRequest     = errors.New("非法的下单请求")
	ErrProductNotFound    = errors.New("商品不存在或已下架")
	ErrInvariantViolation = errors.New("订单数据违反不变量")

	ErrOrderNotFound      = dao.ErrOrderNotFound
	ErrGiftAlreadyClaimed = dao.ErrGiftAlreadyClaimed
	ErrGiftExpired        = dao.ErrGiftExpired
	ErrGiftNotShareable   = dao.ErrGiftNotShareable
	ErrInvalidStatus      = dao.ErrInvalidStatus
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	BuyerID  int64
	PayType  string
	IsGift   bool
	GiftType domain.GiftType
	Items    []domain.PurchaseItem
}

type Service interface {
	// CreateOrder 校验商品后按赠送策略拆项并原子落库
	CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error)
	FindOrderBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	// ComputedStatus 由订单明细推导展示状态, 不落库
	ComputedStatus(ctx context.Context, buyerID int64, sn string) (domain.ComputedStatus, error)
	ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	CancelOrder(ctx context.Context, buyerID int64, sn string) error
	MarkOrderPaid(ctx context.Context, sn string, payType string, paidAt int64) error
	ShareGiftItem(ctx context.Context, buyerID, itemID int64, share domain.GiftShare) error
	// ClaimGiftItem 并发领取同一项时恰好一人成功
	ClaimGiftItem(ctx context.Context, itemID, claimerID int64, attrs domain.ClaimAttrs) (domain.OrderItem, error)
	// ExpireGiftItems 把超过领取窗口仍未认领的礼物项置为过期
	ExpireGiftItems(ctx context.Context, paidBefore int64) (int64, error)
	MarkItemDelivered(ctx context.Context, itemID int64) error
}

type service struct {
	repo       repository.OrderRepository
	productSvc product.Service
	userSvc    user.UserService
	snGen      *sequencenumber.Generator
	producer   event.OrderEventProducer
	logger     *elog.Component
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	userSvc user.UserService,
	snGen *sequencenumber.Generator,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		userSvc:    userSvc,
		snGen:      snGen,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	if err := s.validate(req); err != nil {
		return domain.Order{}, err
	}
	if !req.IsGift {
		// 非礼物订单不落赠送类型, 即便调用方传了
		req.GiftType = 0
	}
	snaps, err := s.productSnapshots(ctx, req.Items)
	if err != nil {
		return domain.Order{}, err
	}
	// 历史库里可能没有这个买家的账号, 下单前补齐
	buyer, err := s.userSvc.EnsureAccount(ctx, req.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("初始化买家账号失败: %w", err)
	}
	sn, err := s.snGen.Generate(buyer.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order := domain.Order{
		SN:          sn,
		BuyerID:     req.BuyerID,
		PayType:     req.PayType,
		TotalAmount: domain.TotalAmount(req.Items, snaps),
		Status:      domain.OrderStatusPending,
		IsGift:      req.IsGift,
		GiftType:    req.GiftType,
		Items: domain.SplitOrderItems(req.BuyerID, req.IsGift,
			req.GiftType, req.Items, snaps),
	}
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	s.sendStatusEvent(created, "created")
	return created, nil
}

func (s *service) validate(req CreateOrderRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: 未选择任何商品", ErrInvalidRequest)
	}
	for _, it := range req.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return fmt.Errorf("%w: productID=%d, quantity=%d",
				ErrInvalidRequest, it.ProductID, it.Quantity)
		}
	}
	if req.IsGift &&
		req.GiftType != domain.GiftTypeExclusive &&
		req.GiftType != domain.GiftTypeSplit {
		return fmt.Errorf("%w: 未知的赠送类型 %d", ErrInvalidRequest, req.GiftType)
	}
	return nil
}

func (s *service) productSnapshots(ctx context.Context,
	items []domain.PurchaseItem) (map[int64]domain.ProductSnapshot, error) {
	ids := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	products, err := s.productSvc.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	if len(products) != len(ids) {
		return nil, fmt.Errorf("%w: 请求%d个, 命中%d个",
			ErrProductNotFound, len(ids), len(products))
	}
	snaps := make(map[int64]domain.ProductSnapshot, len(products))
	for _, p := range products {
		snaps[p.ID] = domain.ProductSnapshot{
			ProductID:        p.ID,
			Price:            p.Price,
			IsSubscription:   p.IsSubscription,
			MaxDeliveries:    p.MaxDeliveries,
			DeliveryType:     p.DeliveryType,
			DeliveryInterval: p.DeliveryInterval,
		}
	}
	return snaps, nil
}

func (s *service) FindOrderBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ComputedStatus(ctx context.Context, buyerID int64, sn string) (domain.ComputedStatus, error) {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.ComputedStatus{}, err
	}
	for _, it := range order.Items {
		if it.DeliveredCount > it.TotalDeliveries {
			return domain.ComputedStatus{},
				fmt.Errorf("%w: item=%d, 已交付%d期超过总共%d期",
					ErrInvariantViolation, it.ID, it.DeliveredCount, it.TotalDeliveries)
		}
	}
	return domain.ComputeStatus(order), nil
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrdersByUID(ctx, offset, limit, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, uid)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) CancelOrder(ctx context.Context, buyerID int64, sn string) error {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return err
	}
	err = s.repo.CancelOrder(ctx, buyerID, order.ID)
	if err != nil {
		return err
	}
	order.Status = domain.OrderStatusCancelled
	s.sendStatusEvent(order, "cancelled")
	return nil
}

func (s *service) MarkOrderPaid(ctx context.Context, sn string, payType string, paidAt int64) error {
	order, err := s.repo.MarkOrderPaid(ctx, sn, payType, paidAt)
	if err != nil {
		return err
	}
	s.sendStatusEvent(order, "paid")
	return nil
}

func (s *service) ShareGiftItem(ctx context.Context, buyerID, itemID int64, share domain.GiftShare) error {
	return s.repo.ShareGiftItem(ctx, buyerID, itemID, share)
}

func (s *service) ClaimGiftItem(ctx context.Context, itemID, claimerID int64, attrs domain.ClaimAttrs) (domain.OrderItem, error) {
	// 领取人也可能是首次进入系统
	_, err := s.userSvc.EnsureAccount(ctx, claimerID)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("初始化领取人账号失败: %w", err)
	}
	item, err := s.repo.ClaimGiftItem(ctx, itemID, claimerID, attrs)
	if err != nil {
		return domain.OrderItem{}, err
	}
	s.sendItemEvent(item, "claimed")
	return item, nil
}

func (s *service) ExpireGiftItems(ctx context.Context, paidBefore int64) (int64, error) {
	return s.repo.ExpireGiftItems(ctx, paidBefore)
}

func (s *service) MarkItemDelivered(ctx context.Context, itemID int64) error {
	return s.repo.MarkItemDelivered(ctx, itemID)
}

// sendStatusEvent 发送失败只记日志, 不影响主流程
func (s *service) sendStatusEvent(order domain.Order, scene string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.OrderStatusEvent{
		OrderSN: order.SN,
		BuyerID: order.BuyerID,
		Scene:   scene,
		Status:  order.Status.ToUint8(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单状态事件失败",
			elog.FieldErr(err),
			elog.String("orderSN", order.SN),
			elog.String("scene", scene))
	}
}

func (s *service) sendItemEvent(item domain.OrderItem, scene string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := event.OrderStatusEvent{
		BuyerID: item.ReceiverID,
		Scene:   scene,
		Status:  item.GiftStatus.ToUint8(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送礼物领取事件失败",
			elog.FieldErr(err),
			elog.Int64("itemID", item.ID),
			elog.String("scene", scene))
	}
}
