package keyValue

import (
	"fmt"
	"testing"
	"time"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/clock"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
}

func TestMemoryStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestSetGet() {
	// arrange
	clockService, _ := clock.NewMockServiceNow()
	store := NewMemoryStore(clockService)
	ctx := s.T().Context()

	// act
	err := store.Set(ctx, "key", "value")
	s.Require().NoError(err)
	value, err := store.Get(ctx, "key")

	// assert
	s.Require().NoError(err)
	s.Equal("value", value)
}

func (s *MemoryStoreSuite) TestGetMissingKey() {
	// arrange
	clockService, _ := clock.NewMockServiceNow()
	store := NewMemoryStore(clockService)

	// act
	_, err := store.Get(s.T().Context(), "missing")

	// assert
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestExpiredValueIsGone() {
	// arrange
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clockService, setTime := clock.NewMockService(now)
	store := NewMemoryStore(clockService)
	ctx := s.T().Context()

	err := store.Set(ctx, "key", "value", WithExpiration(time.Minute))
	s.Require().NoError(err)

	// act
	setTime(now.Add(2 * time.Minute))
	_, err = store.Get(ctx, "key")

	// assert
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestNotYetExpiredValueIsReturned() {
	// arrange
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clockService, setTime := clock.NewMockService(now)
	store := NewMemoryStore(clockService)
	ctx := s.T().Context()

	err := store.Set(ctx, "key", "value", WithExpiration(time.Minute))
	s.Require().NoError(err)

	// act
	setTime(now.Add(30 * time.Second))
	value, err := store.Get(ctx, "key")

	// assert
	s.Require().NoError(err)
	s.Equal("value", value)
}

func (s *MemoryStoreSuite) TestDelete() {
	// arrange
	clockService, _ := clock.NewMockServiceNow()
	store := NewMemoryStore(clockService)
	ctx := s.T().Context()

	err := store.Set(ctx, "key", "value")
	s.Require().NoError(err)

	// act
	err = store.Delete(ctx, "key")

	// assert
	s.Require().NoError(err)
	_, err = store.Get(ctx, "key")
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestExpiresExactlyAtDeadline() {
	// arrange
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clockService, setTime := clock.NewMockService(now)
	store := NewMemoryStore(clockService)
	ctx := s.T().Context()

	err := store.Set(ctx, "key", "value", WithExpiration(time.Minute))
	s.Require().NoError(err)

	// act
	setTime(now.Add(time.Minute))
	_, err = store.Get(ctx, "key")

	// assert
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestSweepDropsExpiredEntries() {
	// arrange
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clockService, setTime := clock.NewMockService(now)
	store := NewMemoryStore(clockService)
	ctx := s.T().Context()

	for i := 0; i < sweepEvery-1; i++ {
		err := store.Set(ctx, fmt.Sprintf("short-%d", i), "value", WithExpiration(time.Minute))
		s.Require().NoError(err)
	}
	setTime(now.Add(2 * time.Minute))

	// act
	err := store.Set(ctx, "kept", "value")

	// assert
	s.Require().NoError(err)
	s.Equal(1, store.(*memoryStore).len())
}

func (s *MemoryStoreSuite) TestMaxEntriesBoundsTheStore() {
	// arrange
	clockService, _ := clock.NewMockServiceNow()
	store := NewMemoryStore(clockService, WithMaxEntries(2))
	ctx := s.T().Context()

	s.Require().NoError(store.Set(ctx, "first", "1"))
	s.Require().NoError(store.Set(ctx, "second", "2"))

	// act
	err := store.Set(ctx, "third", "3")

	// assert
	s.Require().NoError(err)
	s.Equal(2, store.(*memoryStore).len())
	value, err := store.Get(ctx, "third")
	s.Require().NoError(err)
	s.Equal("3", value)
}

func (s *MemoryStoreSuite) TestOverwritingInFullStoreEvictsNothing() {
	// arrange
	clockService, _ := clock.NewMockServiceNow()
	store := NewMemoryStore(clockService, WithMaxEntries(2))
	ctx := s.T().Context()

	s.Require().NoError(store.Set(ctx, "first", "1"))
	s.Require().NoError(store.Set(ctx, "second", "2"))

	// act
	err := store.Set(ctx, "second", "two")

	// assert
	s.Require().NoError(err)
	first, err := store.Get(ctx, "first")
	s.Require().NoError(err)
	s.Equal("1", first)
	second, err := store.Get(ctx, "second")
	s.Require().NoError(err)
	s.Equal("two", second)
}
