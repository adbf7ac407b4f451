package errs

var (
	SystemError        = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidRequest     = ErrorCode{Code: 503002, Msg: "请求参数非法"}
	ProductNotFound    = ErrorCode{Code: 503003, Msg: "商品不存在或已下架"}
	OrderNotFound      = ErrorCode{Code: 503004, Msg: "订单未找到"}
	GiftAlreadyClaimed = ErrorCode{Code: 503005, Msg: "手慢了, 礼物已被领取"}
	GiftExpired        = ErrorCode{Code: 503006, Msg: "礼物已过期"}
	InvalidStatus      = ErrorCode{Code: 503007, Msg: "订单状态非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
