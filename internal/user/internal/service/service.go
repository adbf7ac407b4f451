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

	"github.com/ecodeclub/giftshop/internal/user/internal/domain"
	"github.com/ecodeclub/giftshop/internal/user/internal/repository"
	"github.com/ecodeclub/giftshop/internal/user/internal/repository/dao"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/user.mock.go -package=usermocks -typed=false UserService

type SNGenerator interface {
	Generate() (int64, error)
}

type UserService interface {
	// EnsureAccount 确保 uid 对应的账号存在，不存在就创建
	EnsureAccount(ctx context.Context, uid int64) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
}

type userService struct {
	repo  repository.UserRepository
	snGen SNGenerator
}

func NewUserService(repo repository.UserRepository, snGen SNGenerator) UserService {
	return &userService{
		repo:  repo,
		snGen: snGen,
	}
}

func (svc *userService) EnsureAccount(ctx context.Context, uid int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, uid)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, dao.ErrUserNotFound) {
		return domain.User{}, err
	}
	sn, err := svc.snGen.Generate()
	if err != nil {
		return domain.User{}, fmt.Errorf("生成用户编号失败: %w", err)
	}
	u = domain.User{
		ID: uid,
		SN: fmt.Sprintf("U%d", sn),
	}
	_, err = svc.repo.Create(ctx, u)
	if errors.Is(err, dao.ErrUserDuplicate) {
		// 并发创建，别人已经成功了
		return svc.repo.FindById(ctx, uid)
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}
