package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/config"
)

func TestBuildStatic(t *testing.T) {
	s, err := Build(context.Background(), config.Config{CatalogBackend: config.BackendStatic}, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Cache)
	assert.Nil(t, s.Redis)
	assert.Empty(t, s.Checkers)

	items, err := s.Repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(catalog.MustLoad()))
}

func TestBuildRejectsIncompleteConfig(t *testing.T) {
	_, err := Build(context.Background(), config.Config{CatalogBackend: config.BackendPostgres}, zap.NewNop())
	assert.Error(t, err)

	_, err = Build(context.Background(), config.Config{CatalogBackend: "sqlite"}, zap.NewNop())
	assert.Error(t, err)
}

func TestBuildSupabaseNeedsNoConnection(t *testing.T) {
	cfg := config.Config{CatalogBackend: config.BackendSupabase, SupabaseURL: "https://example.supabase.co", SupabaseKey: "anon"}
	s, err := Build(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	assert.NotNil(t, s.Repo)
}
