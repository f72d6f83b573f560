package service

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"sekolah-branding/internal/config"
	"sekolah-branding/internal/pkg/rescache"
	"sekolah-branding/internal/repository"
	"sekolah-branding/internal/service/exchange"
	"sekolah-branding/internal/service/locale"
	"sekolah-branding/internal/service/resolver"
	"sekolah-branding/internal/service/theme"
)

// invalidationChannel carries cache scope names between instances so a
// write on one node purges stale resolved maps everywhere.
const invalidationChannel = "branding:invalidate"

type Services struct {
	Resolver resolver.Service
	Theme    theme.Service
	Locale   locale.Service
	Exchange exchange.Service

	Cache *rescache.Cache
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, cache *rescache.Cache, cfg *config.Config) *Services {
	if redisClient != nil {
		cache.OnInvalidate = func(scope string) {
			if err := redisClient.Publish(context.Background(), invalidationChannel, scope).Err(); err != nil {
				log.Printf("cache invalidation publish failed for %s: %v", scope, err)
			}
		}
	}

	resolverService := resolver.NewService(repos.Translation, repos.Override, cache, cfg.DefaultLocale)
	themeService := theme.NewService(repos.Theme, cache, cfg.ThemeExtendsDepth)
	localeService := locale.NewService(repos.Locale)
	exchangeService := exchange.NewService(resolverService)

	return &Services{
		Resolver: resolverService,
		Theme:    themeService,
		Locale:   localeService,
		Exchange: exchangeService,
		Cache:    cache,
	}
}

// ListenInvalidations applies cache purges published by other
// instances. It blocks until the context is cancelled.
func ListenInvalidations(ctx context.Context, redisClient *redis.Client, cache *rescache.Cache) {
	if redisClient == nil {
		return
	}

	sub := redisClient.Subscribe(ctx, invalidationChannel)
	defer func() { _ = sub.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			cache.Drop(msg.Payload)
		}
	}
}
