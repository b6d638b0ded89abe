// Package bootstrap builds the catalog store selected by configuration,
// optionally fronted by a Redis cache, and the readiness checkers for it.
package bootstrap

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/config"
	"github.com/artem13815/scholarship/pkg/health"
	"github.com/artem13815/scholarship/pkg/health/checkers"
	"github.com/artem13815/scholarship/pkg/repository/cache"
	mongorepo "github.com/artem13815/scholarship/pkg/repository/mongo"
	pgrepo "github.com/artem13815/scholarship/pkg/repository/postgres"
	supabaserepo "github.com/artem13815/scholarship/pkg/repository/supabase"
	"github.com/artem13815/scholarship/pkg/scholarship"
	"github.com/artem13815/scholarship/pkg/storage/mongo"
	"github.com/artem13815/scholarship/pkg/storage/postgres"
	"github.com/artem13815/scholarship/pkg/storage/redis"
)

// Stores holds everything built from config. Close releases connections.
type Stores struct {
	Repo     scholarship.Repository
	Cache    *cache.Repository
	Redis    *goredis.Client
	Checkers []health.Checker

	closers []func()
}

// Build connects to the configured catalog backend. When REDIS_URL is set the
// repository is wrapped in a cache and the client is returned for other uses.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (*Stores, error) {
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}
	s := &Stores{}

	switch cfg.CatalogBackend {
	case config.BackendStatic:
		s.Repo = catalog.NewStatic(catalog.MustLoad())
	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pool.Close)
		repo, err := pgrepo.NewScholarshipRepository(ctx, pool)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("init scholarship repo: %w", err)
		}
		s.Repo = repo
		s.Checkers = append(s.Checkers, checkers.NewPostgresChecker(pool))
	case config.BackendMongo:
		client, err := mongo.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = client.Disconnect(context.Background()) })
		s.Repo = mongorepo.NewScholarshipRepository(client.Database(cfg.MongoDatabase))
		s.Checkers = append(s.Checkers, checkers.NewMongoChecker(client))
	case config.BackendSupabase:
		repo, err := supabaserepo.NewScholarshipRepository(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, err
		}
		s.Repo = repo
	}
	log.Info("catalog store ready", zap.String("backend", cfg.CatalogBackend))

	if cfg.RedisURL != "" {
		rdb, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = rdb.Close() })
		s.Redis = rdb
		s.Cache = cache.New(s.Repo, rdb, cfg.CacheTTL, log.Named("cache"))
		s.Repo = s.Cache
		s.Checkers = append(s.Checkers, checkers.NewRedisChecker(rdb))
		log.Info("catalog cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}
	return s, nil
}

// Close releases resources in reverse order of acquisition.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
