package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// IDGenerator 按应用隔离的雪花ID生成器
type IDGenerator interface {
	Generate(appid uint) (ID, error)
}

const (
	maxNode uint = 31
	maxApp  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedApp  = errors.New("app超出限制")
	ErrUnknownApp = errors.New("未知的app")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

type AppIDGenerator struct {
	// 键为appid
	nodes syncx.Map[uint, *snowflake.Node]
}

// NewAppIDGenerator nodeId 表示第几个节点, apps 表示应用个数, appid 从 0 开始, 最多 32 个
func NewAppIDGenerator(nodeId, apps uint) (*AppIDGenerator, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if apps > maxApp+1 {
		return nil, fmt.Errorf("%w", ErrExceedApp)
	}
	g := &AppIDGenerator{}
	for i := 0; i < int(apps); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(uint(i), n)
	}
	return g, nil
}

type ID int64

func (g *AppIDGenerator) Generate(appid uint) (ID, error) {
	n, ok := g.nodes.Load(appid)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownApp)
	}
	return ID(n.Generate()), nil
}

func (f ID) AppID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
