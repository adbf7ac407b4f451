package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// SessionKey 测试中间件往 gin context 里塞登录态用的 key
const SessionKey = "_session"

// 测试里用假的 session provider, 登录态由测试中间件直接塞进 gin context
func init() {
	session.SetDefaultProvider(&fakeProvider{})
}

type fakeProvider struct{}

func (f *fakeProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (f *fakeProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(SessionKey)
	if !ok {
		return nil, errors.New("测试没有设置登录态")
	}
	return val.(session.Session), nil
}

func (f *fakeProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (f *fakeProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (f *fakeProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}
