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

package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 不连库也能构造 *gorm.DB, 验证回调注册本身没问题
func newOfflineDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("mysql", "root:root@tcp(localhost:13316)/giftshop")
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestGormTracingPlugin_Initialize(t *testing.T) {
	t.Parallel()
	db := newOfflineDB(t)
	err := db.Use(NewGormTracingPlugin())
	assert.NoError(t, err)
	// 六类操作的前后回调都应已挂上
	assert.NotNil(t, db.Callback().Query().Get("tracing:before_query"))
	assert.NotNil(t, db.Callback().Query().Get("tracing:after_query"))
	assert.NotNil(t, db.Callback().Create().Get("tracing:before_create"))
	assert.NotNil(t, db.Callback().Create().Get("tracing:after_create"))
	assert.NotNil(t, db.Callback().Update().Get("tracing:before_update"))
	assert.NotNil(t, db.Callback().Update().Get("tracing:after_update"))
	assert.NotNil(t, db.Callback().Delete().Get("tracing:before_delete"))
	assert.NotNil(t, db.Callback().Delete().Get("tracing:after_delete"))
	assert.NotNil(t, db.Callback().Row().Get("tracing:before_row"))
	assert.NotNil(t, db.Callback().Row().Get("tracing:after_row"))
	assert.NotNil(t, db.Callback().Raw().Get("tracing:before_raw"))
	assert.NotNil(t, db.Callback().Raw().Get("tracing:after_raw"))
}
