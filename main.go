package main

import (
	"context"

	"github.com/ecodeclub/giftshop/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
	"go.opentelemetry.io/otel/sdk/trace"
)

// 本地调试:
// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	egoApp := ego.New()
	tp := ioc.InitTracer()
	defer func(tp *trace.TracerProvider) {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.Error("关闭 tracer 失败", elog.FieldErr(err))
		}
	}(tp)
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	// 支付、发货事件的消费者常驻后台
	for _, c := range app.Consumers {
		c.Start(context.Background())
	}
	err = egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("应用退出", elog.FieldErr(err))
	}
}
