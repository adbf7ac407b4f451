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
	"testing"

	"github.com/ecodeclub/giftshop/internal/order/internal/domain"
	"github.com/ecodeclub/giftshop/internal/order/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createOnlyDAO 模拟落库时回填自增主键的行为
type createOnlyDAO struct {
	dao.OrderDAO
}

func (c *createOnlyDAO) CreateOrder(ctx context.Context, order dao.Order, items []dao.OrderItem) (int64, error) {
	const oid = 888
	for i := range items {
		items[i].Id = int64(i+1) * 100
		items[i].OrderId = oid
	}
	return oid, nil
}

// 返回的领域对象必须带上落库回填的主键
func TestOrderRepository_CreateOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(&createOnlyDAO{})

	created, err := repo.CreateOrder(context.Background(), domain.Order{
		SN:      "OR20240101",
		BuyerID: 666,
		Items: []domain.OrderItem{
			{ProductID: 100, Quantity: 1, Price: 990},
			{ProductID: 200, Quantity: 1, Price: 1990},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(888), created.ID)
	require.Len(t, created.Items, 2)
	assert.Equal(t, int64(100), created.Items[0].ID)
	assert.Equal(t, int64(200), created.Items[1].ID)
	for _, it := range created.Items {
		assert.Equal(t, int64(888), it.OrderID)
	}
}
