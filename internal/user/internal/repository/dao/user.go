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
	"errors"
	"sync"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = gorm.ErrRecordNotFound
	ErrUserDuplicate = errors.New("用户冲突")
)

const uniqueIndexErrNo uint16 = 1062

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (dao *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := dao.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (dao *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var res User
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

var once = &sync.Once{}

func InitTables(db *egorm.Component) error {
	var err error
	once.Do(func() {
		err = db.AutoMigrate(&User{})
	})
	return err
}

type User struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// SN 全局唯一的用户编号
	SN       string `gorm:"type:varchar(256);unique"`
	Nickname string `gorm:"type:varchar(128)"`
	Avatar   string `gorm:"type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

func (User) TableName() string {
	return "users"
}
