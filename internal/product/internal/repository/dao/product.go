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
	"time"

	"github.com/ecodeclub/giftshop/internal/product/internal/domain"
	"github.com/ego-component/egorm"
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	// FindByIDs 只返回在架商品, 缺失的ID由调用方判定
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	Create(ctx context.Context, p Product) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{})
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, domain.StatusOnShelf.ToUint8()).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

type Product struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN               string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name             string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description      string `gorm:"not null;comment:商品描述"`
	Price            int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	IsSubscription   bool   `gorm:"not null;default:false;comment:是否订阅商品"`
	MaxDeliveries    int64  `gorm:"not null;default:0;comment:订阅总期数"`
	DeliveryType     string `gorm:"type:varchar(64);not null;default:'';comment:交付方式"`
	DeliveryInterval int64  `gorm:"not null;default:0;comment:交付间隔, 单位为天"`
	Image            string `gorm:"type:varchar(512);not null;default:'';comment:商品缩略图,CDN绝对路径"`
	Status           uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime            int64
	Utime            int64
}
