package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/repositories/kv"
	"github.com/KirkDiggler/npc-tracker/internal/testutils"
)

// RepositoryTestSuite runs the same behavior checks against every backend.
type RepositoryTestSuite struct {
	suite.Suite
	open    func() (kv.Repository, func())
	repo    kv.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.open()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestGetMissingKey() {
	_, err := s.repo.Get(s.ctx, "gm_npc_library")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal("gm_npc_library", errors.GetMeta(err)["key"])
}

func (s *RepositoryTestSuite) TestSetThenGet() {
	s.Require().NoError(s.repo.Set(s.ctx, "active_npc_id", `"npc_1"`))

	got, err := s.repo.Get(s.ctx, "active_npc_id")
	s.Require().NoError(err)
	s.Assert().Equal(`"npc_1"`, got)
}

func (s *RepositoryTestSuite) TestSetOverwrites() {
	s.Require().NoError(s.repo.Set(s.ctx, "active_npc_id", `"npc_1"`))
	s.Require().NoError(s.repo.Set(s.ctx, "active_npc_id", `"npc_2"`))

	got, err := s.repo.Get(s.ctx, "active_npc_id")
	s.Require().NoError(err)
	s.Assert().Equal(`"npc_2"`, got)
}

func (s *RepositoryTestSuite) TestEmptyValueIsStored() {
	s.Require().NoError(s.repo.Set(s.ctx, "gm_npc_library", ""))

	got, err := s.repo.Get(s.ctx, "gm_npc_library")
	s.Require().NoError(err)
	s.Assert().Equal("", got)
}

func (s *RepositoryTestSuite) TestEmptyKey() {
	s.Assert().True(errors.IsInvalidArgument(s.repo.Set(s.ctx, "", "x")))

	_, err := s.repo.Get(s.ctx, "")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestKeysAreIndependent() {
	s.Require().NoError(s.repo.Set(s.ctx, "gm_npc_library", "[]"))
	s.Require().NoError(s.repo.Set(s.ctx, "active_npc_id", `"x"`))

	lib, err := s.repo.Get(s.ctx, "gm_npc_library")
	s.Require().NoError(err)
	s.Assert().Equal("[]", lib)

	_, err = s.repo.Get(s.ctx, "aeliana_character_data")
	s.Assert().True(errors.IsNotFound(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		open: func() (kv.Repository, func()) {
			repo := kv.NewInMemory()
			return repo, func() { _ = repo.Close() }
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		open: func() (kv.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := kv.NewRedis(&kv.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		open: func() (kv.Repository, func()) {
			path := filepath.Join(t.TempDir(), "npc.db")
			repo, err := kv.NewSQLite(context.Background(), &kv.SQLiteConfig{Path: path})
			if err != nil {
				t.Fatalf("failed to open sqlite repository: %v", err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

type RedisPrefixTestSuite struct {
	suite.Suite
}

func TestRedisPrefixSuite(t *testing.T) {
	suite.Run(t, new(RedisPrefixTestSuite))
}

func (s *RedisPrefixTestSuite) TestKeyPrefixIsApplied() {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(s.T(), func(mr *miniredis.Miniredis) {
		s.Require().NoError(mr.Set("npc:active_npc_id", `"seeded"`))
	})
	defer cleanup()

	repo, err := kv.NewRedis(&kv.RedisConfig{Client: client, KeyPrefix: "npc:"})
	s.Require().NoError(err)

	got, err := repo.Get(context.Background(), "active_npc_id")
	s.Require().NoError(err)
	s.Assert().Equal(`"seeded"`, got)

	s.Require().NoError(repo.Set(context.Background(), "gm_npc_library", "[]"))
	raw, err := mr.Get("npc:gm_npc_library")
	s.Require().NoError(err)
	s.Assert().Equal("[]", raw)
	s.Assert().False(mr.Exists("gm_npc_library"))
}

func (s *RedisPrefixTestSuite) TestServerDownIsUnavailable() {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(s.T(), nil)
	defer cleanup()

	repo, err := kv.NewRedis(&kv.RedisConfig{Client: client})
	s.Require().NoError(err)

	mr.Close()

	err = repo.Set(context.Background(), "active_npc_id", `"x"`)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *RedisPrefixTestSuite) TestConfigValidation() {
	_, err := kv.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = kv.NewRedis(&kv.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = kv.NewSQLite(context.Background(), &kv.SQLiteConfig{Path: "  "})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func TestSQLiteRepositoryReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "npc.db")

	repo, err := kv.NewSQLite(ctx, &kv.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.Set(ctx, "active_npc_id", `"npc_7"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Second close is harmless.
	if err := repo.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	reopened, err := kv.NewSQLite(ctx, &kv.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "active_npc_id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `"npc_7"` {
		t.Fatalf("got %q, want %q", got, `"npc_7"`)
	}
}
