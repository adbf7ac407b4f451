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

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	"github.com/ecodeclub/giftshop/internal/order/internal/errs"
	"github.com/ecodeclub/giftshop/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

// createDedupTimeout 同一个幂等键在窗口内只接受一次下单
const createDedupTimeout = 10 * time.Minute

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{
		svc:   svc,
		cache: cache,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("", ginx.BS[OrderSNReq](h.RetrieveOrderStatus))
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
	g.POST("/status", ginx.BS[OrderSNReq](h.Status))
	g.POST("/list", ginx.BS[ListOrdersReq](h.List))
	g.POST("/cancel", ginx.BS[OrderSNReq](h.Cancel))
	g.POST("/gift/share", ginx.BS[ShareGiftReq](h.ShareGift))
	g.POST("/gift/claim", ginx.BS[ClaimGiftReq](h.ClaimGift))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	var dedupKey string
	if req.RequestID != "" {
		dedupKey = fmt.Sprintf("order:create:%s", req.RequestID)
		ok, err := h.cache.SetNX(ctx.Request.Context(), dedupKey, uid, createDedupTimeout)
		if err != nil {
			return systemErrorResult, fmt.Errorf("写入幂等键失败: %w", err)
		}
		if !ok {
			return ginx.Result{
				Code: errs.InvalidRequest.Code,
				Msg:  "重复提交",
			}, nil
		}
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), service.CreateOrderRequest{
		BuyerID:  uid,
		PayType:  req.PayType,
		IsGift:   req.IsGift,
		GiftType: domain.GiftType(req.GiftType),
		Items: slice.Map(req.Items, func(idx int, src PurchaseItemReq) domain.PurchaseItem {
			return domain.PurchaseItem{
				ProductID: src.ProductID,
				Quantity:  src.Quantity,
			}
		}),
	})
	if err != nil {
		// 下单没成功就不消耗幂等键, 否则窗口期内没法重试
		if dedupKey != "" {
			_, _ = h.cache.Delete(ctx.Request.Context(), dedupKey)
		}
		return h.toErrResult(err), err
	}
	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:     order.SN,
			TotalAmount: order.TotalAmount,
		},
	}, nil
}

// RetrieveOrderStatus 供支付前端轮询订单的持久化状态
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return h.toErrResult(err), err
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			OrderStatus: order.Status.ToUint8(),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return h.toErrResult(err), err
	}
	return ginx.Result{
		Data: h.toOrderVO(order),
	}, nil
}

func (h *Handler) Status(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.ComputedStatus(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return h.toErrResult(err), err
	}
	resp := StatusResp{
		Status:     string(cs.Status),
		StatusText: cs.StatusText,
	}
	if cs.Progress.HasSubscription {
		resp.Progress = &Progress{
			TotalDeliveries: cs.Progress.TotalDeliveries,
			DeliveredCount:  cs.Progress.DeliveredCount,
			Percent:         cs.Progress.Percent,
			HasSubscription: true,
		}
	}
	if cs.HasGift {
		resp.Gift = &Gift{
			IsShared:   cs.Gift.IsShared,
			IsReceived: cs.Gift.IsReceived,
			HasExpired: cs.Gift.HasExpired,
			CanReceive: cs.Gift.CanReceive,
		}
	}
	return ginx.Result{Data: resp}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 10
	}
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return h.toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return h.toErrResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ShareGift(ctx *ginx.Context, req ShareGiftReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.ShareGiftItem(ctx.Request.Context(), sess.Claims().Uid, req.ItemID, domain.GiftShare{
		Relationship: req.Relationship,
		ReceiverName: req.ReceiverName,
		Message:      req.Message,
	})
	if err != nil {
		return h.toErrResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ClaimGift(ctx *ginx.Context, req ClaimGiftReq, sess session.Session) (ginx.Result, error) {
	item, err := h.svc.ClaimGiftItem(ctx.Request.Context(), req.ItemID, sess.Claims().Uid, domain.ClaimAttrs{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return h.toErrResult(err), err
	}
	return ginx.Result{
		Data: h.toItemVO(item),
	}, nil
}

func (h *Handler) toErrResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return ginx.Result{Code: errs.InvalidRequest.Code, Msg: errs.InvalidRequest.Msg}
	case errors.Is(err, service.ErrProductNotFound):
		return ginx.Result{Code: errs.ProductNotFound.Code, Msg: errs.ProductNotFound.Msg}
	case errors.Is(err, service.ErrOrderNotFound):
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}
	case errors.Is(err, service.ErrGiftAlreadyClaimed):
		return ginx.Result{Code: errs.GiftAlreadyClaimed.Code, Msg: errs.GiftAlreadyClaimed.Msg}
	case errors.Is(err, service.ErrGiftExpired):
		return ginx.Result{Code: errs.GiftExpired.Code, Msg: errs.GiftExpired.Msg}
	case errors.Is(err, service.ErrGiftNotShareable), errors.Is(err, service.ErrInvalidStatus):
		return ginx.Result{Code: errs.InvalidStatus.Code, Msg: errs.InvalidStatus.Msg}
	default:
		return systemErrorResult
	}
}

func (h *Handler) toOrderVO(order domain.Order) Order {
	return Order{
		SN:          order.SN,
		PayType:     order.PayType,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.ToUint8(),
		IsGift:      order.IsGift,
		GiftType:    order.GiftType.ToUint8(),
		Ctime:       order.Ctime,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return h.toItemVO(src)
		}),
	}
}

func (h *Handler) toItemVO(item domain.OrderItem) OrderItem {
	return OrderItem{
		ID:               item.ID,
		ProductID:        item.ProductID,
		Quantity:         item.Quantity,
		Price:            item.Price,
		ReceiverID:       item.ReceiverID,
		IsSubscription:   item.IsSubscription,
		TotalDeliveries:  item.TotalDeliveries,
		DeliveredCount:   item.DeliveredCount,
		GiftStatus:       item.GiftStatus.ToUint8(),
		GiftRelationship: item.GiftRelationship,
		GiftReceiverName: item.GiftReceiverName,
		GiftMessage:      item.GiftMessage,
	}
}
