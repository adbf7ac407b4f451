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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = gorm.ErrRecordNotFound
	ErrGiftAlreadyClaimed = errors.New("礼物已被领取")
	ErrGiftExpired        = errors.New("礼物已过期")
	ErrGiftNotShareable   = errors.New("订单项不可分享")
	ErrInvalidStatus      = errors.New("订单状态非法")
	ErrVersionConflict    = errors.New("交付计数版本冲突")
	ErrDeliveryExceeded   = errors.New("交付次数已达总期数")
)

//go:generate mockgen -source=./order.go -package=daomocks -destination=./mocks/order.mock.go -typed=false OrderDAO
type OrderDAO interface {
	// CreateOrder 在单个事务里落库订单及其全部订单项, 任一失败则整体回滚。
	// 落库成功后 items 里的自增ID和OrderId会回填进传入的切片
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	FindOrderItemByID(ctx context.Context, id int64) (OrderItem, error)
	List(ctx context.Context, offset, limit int, uid int64) ([]Order, error)
	Count(ctx context.Context, uid int64) (int64, error)
	MarkOrderPaid(ctx context.Context, sn string, payType string, paidAt int64) (Order, error)
	CancelOrder(ctx context.Context, buyerID, orderID int64) error
	// ClaimGiftItem 条件更新, 并发领取同一项时至多一个成功
	ClaimGiftItem(ctx context.Context, itemID, claimerID int64, attrs domain.ClaimAttrs) (OrderItem, error)
	ShareGiftItem(ctx context.Context, buyerID, itemID int64, relationship, receiverName, message string) error
	// ExpireGiftItems 过期清扫, 只扫已分享未领取的礼物项,
	// 与领取走同一套条件更新纪律, 二者不可能同时生效
	ExpireGiftItems(ctx context.Context, paidBefore int64) (int64, error)
	IncrementDeliveredCount(ctx context.Context, itemID, version int64) error
}

type orderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderGORMDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

func (d *orderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	// 事务尚未提交, 瞬时失败可以安全地整体重试
	const maxInterval = 500 * time.Millisecond
	const maxRetries = 3
	strategy, err := retry.NewExponentialBackoffRetryStrategy(50*time.Millisecond, maxInterval, maxRetries)
	if err != nil {
		return 0, err
	}
	for {
		oid, err := d.createOrder(ctx, order, items)
		if err == nil || !isMySQLTransientError(err) {
			return oid, err
		}
		next, ok := strategy.Next()
		if !ok {
			return 0, err
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(next):
		}
	}
}

func (d *orderGORMDAO) createOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	order.Ctime, order.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return 0, err
	}
	return order.Id, nil
}

func (d *orderGORMDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (d *orderGORMDAO) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "sn = ? AND buyer_id = ?", sn, buyerID).Error
	return res, err
}

func (d *orderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Order("id ASC").Find(&res, "order_id = ?", oid).Error
	return res, err
}

func (d *orderGORMDAO) FindOrderItemByID(ctx context.Context, id int64) (OrderItem, error) {
	var res OrderItem
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *orderGORMDAO) List(ctx context.Context, offset, limit int, uid int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res, "buyer_id = ?", uid).Error
	return res, err
}

func (d *orderGORMDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", uid).Count(&count).Error
	return count, err
}

func (d *orderGORMDAO) MarkOrderPaid(ctx context.Context, sn string, payType string, paidAt int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		updateResult := tx.Model(&Order{}).
			Where("sn = ? AND status = ?", sn, domain.OrderStatusPending.ToUint8()).
			Updates(map[string]any{
				"Status":  domain.OrderStatusPaid.ToUint8(),
				"PayType": payType,
				"PaidAt":  paidAt,
				"Utime":   time.Now().UnixMilli(),
			})
		if updateResult.Error != nil {
			return updateResult.Error
		}
		if err := tx.First(&res, "sn = ?", sn).Error; err != nil {
			return err
		}
		if updateResult.RowsAffected == 0 &&
			res.Status != domain.OrderStatusPaid.ToUint8() {
			// 已支付是消息重投, 幂等放过; 其余状态一律拒绝
			return ErrInvalidStatus
		}
		return nil
	})
	return res, err
}

func (d *orderGORMDAO) CancelOrder(ctx context.Context, buyerID, orderID int64) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND buyer_id = ? AND status = ?",
			orderID, buyerID, domain.OrderStatusPending.ToUint8()).
		Updates(map[string]any{
			"Status": domain.OrderStatusCancelled.ToUint8(),
			"Utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatus
	}
	return nil
}

func (d *orderGORMDAO) ClaimGiftItem(ctx context.Context, itemID, claimerID int64, attrs domain.ClaimAttrs) (OrderItem, error) {
	now := time.Now().UnixMilli()
	var item OrderItem
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		updateResult := tx.Model(&OrderItem{}).
			Where("id = ? AND receiver_id IS NULL AND gift_status = ?",
				itemID, domain.GiftStatusUnclaimed.ToUint8()).
			Updates(map[string]any{
				"ReceiverId": claimerID,
				"GiftStatus": domain.GiftStatusReceived.ToUint8(),
				"ClaimAttrs": sqlx.JsonColumn[domain.ClaimAttrs]{Val: attrs, Valid: true},
				"ReceivedAt": now,
				"Utime":      now,
			})
		if updateResult.Error != nil {
			return updateResult.Error
		}
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		if updateResult.RowsAffected == 0 {
			if item.GiftStatus == domain.GiftStatusExpired.ToUint8() {
				return ErrGiftExpired
			}
			return ErrGiftAlreadyClaimed
		}
		return nil
	})
	if err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

func (d *orderGORMDAO) ShareGiftItem(ctx context.Context, buyerID, itemID int64, relationship, receiverName, message string) error {
	paidGiftOrders := d.db.WithContext(ctx).Model(&Order{}).Select("id").
		Where("buyer_id = ? AND is_gift = ? AND status = ?",
			buyerID, true, domain.OrderStatusPaid.ToUint8())
	res := d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("id = ? AND gift_status = ? AND order_id IN (?)",
			itemID, domain.GiftStatusUnclaimed.ToUint8(), paidGiftOrders).
		Updates(map[string]any{
			"GiftRelationship": relationship,
			"GiftReceiverName": receiverName,
			"GiftMessage":      message,
			"Utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGiftNotShareable
	}
	return nil
}

func (d *orderGORMDAO) ExpireGiftItems(ctx context.Context, paidBefore int64) (int64, error) {
	// 未分享的礼物项不清扫, 否则买家之后就没法分享了
	const batchSize = 100
	var total int64
	for {
		now := time.Now().UnixMilli()
		paidGiftOrders := d.db.WithContext(ctx).Model(&Order{}).Select("id").
			Where("is_gift = ? AND status = ? AND paid_at > 0 AND paid_at < ?",
				true, domain.OrderStatusPaid.ToUint8(), paidBefore)
		var ids []int64
		err := d.db.WithContext(ctx).Model(&OrderItem{}).
			Where("gift_status = ? AND receiver_id IS NULL AND gift_relationship IS NOT NULL AND order_id IN (?)",
				domain.GiftStatusUnclaimed.ToUint8(), paidGiftOrders).
			Limit(batchSize).Pluck("id", &ids).Error
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}
		res := d.db.WithContext(ctx).Model(&OrderItem{}).
			Where("id IN ? AND gift_status = ?", ids, domain.GiftStatusUnclaimed.ToUint8()).
			Updates(map[string]any{
				"GiftStatus": domain.GiftStatusExpired.ToUint8(),
				"ExpiredAt":  now,
				"Utime":      now,
			})
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
		if len(ids) < batchSize {
			return total, nil
		}
	}
}

func (d *orderGORMDAO) IncrementDeliveredCount(ctx context.Context, itemID, version int64) error {
	res := d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("id = ? AND version = ? AND delivered_count < total_deliveries", itemID, version).
		Updates(map[string]any{
			"DeliveredCount": gorm.Expr("delivered_count + 1"),
			"Version":        gorm.Expr("version + 1"),
			"Utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var item OrderItem
		if err := d.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		if item.DeliveredCount >= item.TotalDeliveries {
			return ErrDeliveryExceeded
		}
		return ErrVersionConflict
	}
	return nil
}

func isMySQLTransientError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213 死锁, 1205 锁等待超时
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	PayType string `gorm:"type:varchar(64);not null;default:'';comment:支付方式"`
	// 创建时按快照单价计算, 之后不再重算
	TotalAmount int64  `gorm:"not null;comment:订单总金额;单位为分, 999表示9.99元"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:订单状态 0=待支付 1=已支付 2=已发货 3=已完成 4=已取消 5=已退款"`
	IsGift      bool   `gorm:"not null;default:false;comment:是否礼物订单"`
	GiftType    uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:赠送类型 1=独享 2=拆分, 非礼物订单为0"`
	GiftCardSN  string `gorm:"type:varchar(255);not null;default:'';comment:礼物卡封面引用"`
	PaidAt      int64  `gorm:"not null;default:0;comment:支付时间"`
	Ctime       int64
	Utime       int64
}

type OrderItem struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64 `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64 `gorm:"not null;index:idx_product_id;comment:商品ID"`
	Quantity  int64 `gorm:"not null;comment:数量, 拆分礼物恒为1"`
	Price     int64 `gorm:"not null;comment:下单时快照单价;单位为分"`
	// 未领取的礼物以及待分配的订单项为 NULL, 领取后不可变更
	ReceiverId       sql.NullInt64                         `gorm:"comment:归属用户ID, NULL表示未认领"`
	IsSubscription   bool                                  `gorm:"not null;default:false;comment:是否订阅商品"`
	TotalDeliveries  int64                                 `gorm:"not null;default:1;comment:总交付期数, 非订阅恒为1"`
	DeliveredCount   int64                                 `gorm:"not null;default:0;comment:已交付期数, 由履约方累加"`
	DeliveryType     string                                `gorm:"type:varchar(64);not null;default:'once';comment:交付方式"`
	DeliveryInterval int64                                 `gorm:"not null;default:0;comment:交付间隔, 单位为天"`
	GiftStatus       uint8                                 `gorm:"type:tinyint unsigned;not null;default:0;comment:礼物状态 0=未领取 1=已领取 2=已过期, 仅礼物订单有意义"`
	GiftRelationship sql.NullString                        `gorm:"type:varchar(255);comment:分享时的关系标签, NULL表示未分享"`
	GiftReceiverName string                                `gorm:"type:varchar(255);not null;default:'';comment:分享时填写的收礼人称呼"`
	GiftMessage      string                                `gorm:"type:varchar(512);not null;default:'';comment:赠言"`
	ClaimAttrs       sqlx.JsonColumn[domain.ClaimAttrs]    `gorm:"type:varchar(1024);comment:领取时透传的信息,JSON格式"`
	ReceivedAt       int64                                 `gorm:"not null;default:0;comment:领取时间"`
	ExpiredAt        int64                                 `gorm:"not null;default:0;comment:过期时间"`
	Version          int64                                 `gorm:"not null;default:0;comment:乐观锁版本号, 保护交付计数"`
	Ctime            int64
	Utime            int64
}
