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
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database"

// spanKey 在 gorm 的 InstanceSet/InstanceGet 里传递 span
const spanKey = "otel:span"

// GormTracingPlugin 为所有数据库操作注册 OpenTelemetry 追踪回调
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	// gorm 的 processor 类型不可导出, 只能逐个操作显式注册
	registrations := []func() error{
		func() error {
			return db.Callback().Query().Before("gorm:query").Register("tracing:before_query", p.before("query"))
		},
		func() error {
			return db.Callback().Query().After("gorm:query").Register("tracing:after_query", p.after)
		},
		func() error {
			return db.Callback().Create().Before("gorm:create").Register("tracing:before_create", p.before("create"))
		},
		func() error {
			return db.Callback().Create().After("gorm:create").Register("tracing:after_create", p.after)
		},
		func() error {
			return db.Callback().Update().Before("gorm:update").Register("tracing:before_update", p.before("update"))
		},
		func() error {
			return db.Callback().Update().After("gorm:update").Register("tracing:after_update", p.after)
		},
		func() error {
			return db.Callback().Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("delete"))
		},
		func() error {
			return db.Callback().Delete().After("gorm:delete").Register("tracing:after_delete", p.after)
		},
		func() error {
			return db.Callback().Row().Before("gorm:row").Register("tracing:before_row", p.before("row"))
		},
		func() error {
			return db.Callback().Row().After("gorm:row").Register("tracing:after_row", p.after)
		},
		func() error {
			return db.Callback().Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("raw"))
		},
		func() error {
			return db.Callback().Raw().After("gorm:raw").Register("tracing:after_raw", p.after)
		},
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		_, span := p.tracer.Start(db.Statement.Context,
			fmt.Sprintf("gorm:%s", op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	span.SetAttributes(
		attribute.String("db.table", db.Statement.Table),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	)
	if db.Error != nil {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
	}
}
