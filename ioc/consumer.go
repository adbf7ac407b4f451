package ioc

import (
	"github.com/ecodeclub/giftshop/internal/order"
)

func initConsumers(m *order.Module) []Consumer {
	return []Consumer{
		m.PaymentConsumer,
		m.DeliveryConsumer,
	}
}
