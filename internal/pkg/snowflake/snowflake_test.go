package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppIDGenerator_Generate(t *testing.T) {
	g, err := NewAppIDGenerator(0, 2)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		appid   uint
		wantErr error
	}{
		{
			name:  "生成app0的ID",
			appid: 0,
		},
		{
			name:  "生成app1的ID",
			appid: 1,
		},
		{
			name:    "未注册的app",
			appid:   5,
			wantErr: ErrUnknownApp,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := g.Generate(tc.appid)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.appid, id.AppID())
			assert.Positive(t, id.Int64())
		})
	}
}

func TestNewAppIDGenerator_Limits(t *testing.T) {
	_, err := NewAppIDGenerator(32, 1)
	assert.ErrorIs(t, err, ErrExceedNode)

	_, err = NewAppIDGenerator(0, 33)
	assert.ErrorIs(t, err, ErrExceedApp)
}
