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
	"testing"

	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	repomocks "github.com/ecodeclub/giftshop/internal/order/internal/repository/mocks"
	ordermocks "github.com/ecodeclub/giftshop/internal/order/mocks"
	"github.com/ecodeclub/giftshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/giftshop/internal/product"
	productmocks "github.com/ecodeclub/giftshop/internal/product/mocks"
	"github.com/ecodeclub/giftshop/internal/user"
	usermocks "github.com/ecodeclub/giftshop/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBuyerID = int64(666)

func newTestService(repo *repomocks.MockOrderRepository,
	productSvc *productmocks.MockService,
	userSvc *usermocks.MockUserService,
	producer *ordermocks.MockOrderEventProducer) Service {
	return NewService(repo, productSvc, userSvc, sequencenumber.NewGenerator(), producer)
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer)
		req     CreateOrderRequest
		wantErr error
		assert  func(t *testing.T, order domain.Order)
	}{
		{
			name: "未选择任何商品",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				return repomocks.NewMockOrderRepository(ctrl),
					productmocks.NewMockService(ctrl),
					usermocks.NewMockUserService(ctrl),
					ordermocks.NewMockOrderEventProducer(ctrl)
			},
			req:     CreateOrderRequest{BuyerID: testBuyerID},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "数量非法",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				return repomocks.NewMockOrderRepository(ctrl),
					productmocks.NewMockService(ctrl),
					usermocks.NewMockUserService(ctrl),
					ordermocks.NewMockOrderEventProducer(ctrl)
			},
			req: CreateOrderRequest{
				BuyerID: testBuyerID,
				Items:   []domain.PurchaseItem{{ProductID: 100, Quantity: 0}},
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "未知的赠送类型",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				return repomocks.NewMockOrderRepository(ctrl),
					productmocks.NewMockService(ctrl),
					usermocks.NewMockUserService(ctrl),
					ordermocks.NewMockOrderEventProducer(ctrl)
			},
			req: CreateOrderRequest{
				BuyerID:  testBuyerID,
				IsGift:   true,
				GiftType: domain.GiftType(9),
				Items:    []domain.PurchaseItem{{ProductID: 100, Quantity: 1}},
			},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "商品不存在或已下架",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByIDs(gomock.Any(), []int64{100, 200}).
					Return([]product.Product{{ID: 100, Price: 990}}, nil)
				return repomocks.NewMockOrderRepository(ctrl),
					productSvc,
					usermocks.NewMockUserService(ctrl),
					ordermocks.NewMockOrderEventProducer(ctrl)
			},
			req: CreateOrderRequest{
				BuyerID: testBuyerID,
				Items: []domain.PurchaseItem{
					{ProductID: 100, Quantity: 1},
					{ProductID: 200, Quantity: 1},
				},
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "普通订单创建成功",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByIDs(gomock.Any(), []int64{100}).
					Return([]product.Product{{ID: 100, Price: 990}}, nil)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().EnsureAccount(gomock.Any(), testBuyerID).
					Return(user.User{ID: testBuyerID}, nil)
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order domain.Order) (domain.Order, error) {
						order.ID = 1
						return order, nil
					})
				producer := ordermocks.NewMockOrderEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, productSvc, userSvc, producer
			},
			req: CreateOrderRequest{
				BuyerID: testBuyerID,
				PayType: "wechat",
				Items:   []domain.PurchaseItem{{ProductID: 100, Quantity: 3}},
			},
			assert: func(t *testing.T, order domain.Order) {
				assert.NotEmpty(t, order.SN)
				assert.Equal(t, int64(990*3), order.TotalAmount)
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				require.Len(t, order.Items, 1)
				assert.Equal(t, testBuyerID, order.Items[0].ReceiverID)
			},
		},
		{
			name: "非礼物订单_忽略传入的赠送类型",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByIDs(gomock.Any(), []int64{100}).
					Return([]product.Product{{ID: 100, Price: 990}}, nil)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().EnsureAccount(gomock.Any(), testBuyerID).
					Return(user.User{ID: testBuyerID}, nil)
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order domain.Order) (domain.Order, error) {
						return order, nil
					})
				producer := ordermocks.NewMockOrderEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, productSvc, userSvc, producer
			},
			req: CreateOrderRequest{
				BuyerID:  testBuyerID,
				GiftType: domain.GiftTypeSplit,
				Items:    []domain.PurchaseItem{{ProductID: 100, Quantity: 2}},
			},
			assert: func(t *testing.T, order domain.Order) {
				assert.False(t, order.IsGift)
				assert.Equal(t, domain.GiftType(0), order.GiftType)
				require.Len(t, order.Items, 1)
				assert.Equal(t, int64(2), order.Items[0].Quantity)
				assert.Equal(t, testBuyerID, order.Items[0].ReceiverID)
			},
		},
		{
			name: "拆分礼物_按件拆项且无归属",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockOrderRepository, *productmocks.MockService, *usermocks.MockUserService, *ordermocks.MockOrderEventProducer) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByIDs(gomock.Any(), []int64{100}).
					Return([]product.Product{{ID: 100, Price: 990}}, nil)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().EnsureAccount(gomock.Any(), testBuyerID).
					Return(user.User{ID: testBuyerID}, nil)
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order domain.Order) (domain.Order, error) {
						return order, nil
					})
				producer := ordermocks.NewMockOrderEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, productSvc, userSvc, producer
			},
			req: CreateOrderRequest{
				BuyerID:  testBuyerID,
				IsGift:   true,
				GiftType: domain.GiftTypeSplit,
				Items:    []domain.PurchaseItem{{ProductID: 100, Quantity: 3}},
			},
			assert: func(t *testing.T, order domain.Order) {
				assert.Equal(t, int64(990*3), order.TotalAmount)
				require.Len(t, order.Items, 3)
				for _, it := range order.Items {
					assert.Equal(t, int64(1), it.Quantity)
					assert.Zero(t, it.ReceiverID)
				}
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := newTestService(tc.mock(ctrl))
			order, err := svc.CreateOrder(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.assert != nil {
				tc.assert(t, order)
			}
		})
	}
}

func TestService_ComputedStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "sn-1", testBuyerID).
		Return(domain.Order{
			Status: domain.OrderStatusPaid,
			Items: []domain.OrderItem{
				{Quantity: 1, IsSubscription: true, TotalDeliveries: 12, DeliveredCount: 7},
			},
		}, nil)
	svc := newTestService(repo,
		productmocks.NewMockService(ctrl),
		usermocks.NewMockUserService(ctrl),
		ordermocks.NewMockOrderEventProducer(ctrl))

	cs, err := svc.ComputedStatus(context.Background(), testBuyerID, "sn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayStatusPartialShipped, cs.Status)
	assert.Equal(t, "已发货58%", cs.StatusText)
}

// 已交付期数超过总期数属于脏数据, 状态推导必须报错而不是瞎算
func TestService_ComputedStatus_DirtyDeliveredCount(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "sn-1", testBuyerID).
		Return(domain.Order{
			Status: domain.OrderStatusPaid,
			Items: []domain.OrderItem{
				{ID: 11, Quantity: 1, IsSubscription: true, TotalDeliveries: 4, DeliveredCount: 5},
			},
		}, nil)
	svc := newTestService(repo,
		productmocks.NewMockService(ctrl),
		usermocks.NewMockUserService(ctrl),
		ordermocks.NewMockOrderEventProducer(ctrl))

	_, err := svc.ComputedStatus(context.Background(), testBuyerID, "sn-1")
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestService_ClaimGiftItem(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	claimerID := int64(777)
	attrs := domain.ClaimAttrs{Name: "小王", Phone: "13800000000"}
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().EnsureAccount(gomock.Any(), claimerID).
		Return(user.User{ID: claimerID}, nil)
	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().ClaimGiftItem(gomock.Any(), int64(11), claimerID, attrs).
		Return(domain.OrderItem{
			ID:         11,
			ReceiverID: claimerID,
			GiftStatus: domain.GiftStatusReceived,
		}, nil)
	producer := ordermocks.NewMockOrderEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	svc := newTestService(repo, productmocks.NewMockService(ctrl), userSvc, producer)

	item, err := svc.ClaimGiftItem(context.Background(), 11, claimerID, attrs)
	require.NoError(t, err)
	assert.Equal(t, claimerID, item.ReceiverID)
	assert.Equal(t, domain.GiftStatusReceived, item.GiftStatus)
}
