package testioc

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/giftshop/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db     *egorm.Component
	dbOnce sync.Once
)

func InitDB() *egorm.Component {
	dbOnce.Do(func() {
		loadConfig()
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}

// 集成测试都在 internal/<模块>/internal/integration 下跑, 配置统一取仓库根的 local.yaml
func loadConfig() {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	path := filepath.Join(dir, "..", "..", "..", "..", "config", "local.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal); err != nil {
		panic(err)
	}
}
