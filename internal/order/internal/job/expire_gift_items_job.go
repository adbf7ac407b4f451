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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/giftshop/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ExpireGiftItemsJob 定时把超过领取窗口仍未认领的礼物项置为过期。
// 过期与领取走同一套条件更新, 同一项不可能既被领取又被过期。
type ExpireGiftItemsJob struct {
	svc service.Service
	// windowHours 支付后允许领取的窗口, 单位小时
	windowHours int64
	timeout     time.Duration
	logger      *elog.Component
}

func NewExpireGiftItemsJob(svc service.Service, windowHours int64, timeout time.Duration) *ExpireGiftItemsJob {
	return &ExpireGiftItemsJob{
		svc:         svc,
		windowHours: windowHours,
		timeout:     timeout,
		logger:      elog.DefaultLogger,
	}
}

func (e *ExpireGiftItemsJob) Name() string {
	return "ExpireGiftItemsJob"
}

func (e *ExpireGiftItemsJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	paidBefore := time.Now().Add(-time.Duration(e.windowHours) * time.Hour).UnixMilli()
	affected, err := e.svc.ExpireGiftItems(ctx, paidBefore)
	if err != nil {
		return err
	}
	e.logger.Info("清扫过期礼物完成",
		elog.String("job", e.Name()),
		elog.Int64("affected", affected))
	return nil
}
