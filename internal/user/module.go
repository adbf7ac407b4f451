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

package user

import (
	"sync"

	"github.com/ecodeclub/giftshop/internal/pkg/snowflake"
	"github.com/ecodeclub/giftshop/internal/user/internal/domain"
	"github.com/ecodeclub/giftshop/internal/user/internal/repository/dao"
	"github.com/ecodeclub/giftshop/internal/user/internal/service"
	"github.com/ego-component/egorm"
)

type User = domain.User

type UserService = service.UserService

type Module struct {
	Svc UserService
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}

// userAppID 用户编号在雪花算法里的业务位
const userAppID uint = 0

type snGenerator struct {
	gen *snowflake.AppIDGenerator
}

func (s *snGenerator) Generate() (int64, error) {
	id, err := s.gen.Generate(userAppID)
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}

func initSNGenerator() service.SNGenerator {
	gen, err := snowflake.NewAppIDGenerator(1, 1)
	if err != nil {
		panic(err)
	}
	return &snGenerator{gen: gen}
}
