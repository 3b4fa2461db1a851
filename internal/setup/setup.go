package setup

import (
	"context"

	"github.com/The127/ioc"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/clock"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/config"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/password"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/retry"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/services/keyValue"
)

func Clock(dc *ioc.DependencyCollection) {
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) clock.Service {
		return clock.NewClockService()
	})
}

func Caching(dc *ioc.DependencyCollection, cacheConfig config.CacheConfig) {
	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) keyValue.Store {
		switch cacheConfig.Mode {
		case config.CacheModeMemory:
			return keyValue.NewMemoryStore(
				ioc.GetDependency[clock.Service](dp),
				keyValue.WithMaxEntries(cacheConfig.MaxEntries),
			)

		case config.CacheModeRedis:
			client := keyValue.NewRedisClient(keyValue.RedisOptions{
				Host:     cacheConfig.Redis.Host,
				Port:     cacheConfig.Redis.Port,
				Username: cacheConfig.Redis.Username,
				Password: cacheConfig.Redis.Password,
				Database: cacheConfig.Redis.Database,
			})
			retry.FiveTimes(func() error {
				return client.Ping(context.Background()).Err()
			}, "connecting to redis")
			return keyValue.NewRedisStore(client, cacheConfig.Redis.KeyPrefix)

		default:
			panic("cache mode missing or not supported")
		}
	})
}

func Services(dc *ioc.DependencyCollection, cacheConfig config.CacheConfig) {
	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) password.Evaluator {
		return password.NewEvaluator()
	})
	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) password.CachedEvaluator {
		return password.NewCachedEvaluator(
			ioc.GetDependency[password.Evaluator](dp),
			ioc.GetDependency[keyValue.Store](dp),
			cacheConfig.Ttl,
			[]byte(cacheConfig.KeySecret),
		)
	})
}
