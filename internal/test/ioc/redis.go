package testioc

import (
	"os"
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache     ecache.Cache
	cacheOnce sync.Once
)

func InitCache() ecache.Cache {
	cacheOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		cmd := redis.NewClient(&redis.Options{Addr: addr})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "giftshop:",
		}
	})
	return cache
}
