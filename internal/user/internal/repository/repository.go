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

	"github.com/ecodeclub/giftshop/internal/user/internal/domain"
	"github.com/ecodeclub/giftshop/internal/user/internal/repository/dao"
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

type CachedUserRepository struct {
	dao dao.UserDAO
}

func NewCachedUserRepository(d dao.UserDAO) UserRepository {
	return &CachedUserRepository{dao: d}
}

func (repo *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(u))
}

func (repo *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.ID,
		SN:       u.SN,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.Id,
		SN:       u.SN,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
