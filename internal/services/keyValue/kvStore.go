package keyValue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/clock"
)

var ErrNotFound = errors.New("not found")

type Options struct {
	Expiration time.Duration
}

type Option func(*Options)

func WithExpiration(expiration time.Duration) Option {
	return func(o *Options) {
		o.Expiration = expiration
	}
}

func collectOptions(opts []Option) Options {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

//go:generate mockgen -destination=./mocks/mock_store.go -package=mocks . Store
type Store interface {
	Set(ctx context.Context, key string, value string, opts ...Option) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// sweepEvery is the number of writes between two scans for expired entries.
const sweepEvery = 1024

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expiredAt(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type memoryStore struct {
	clockService clock.Service
	maxEntries   int

	mu               sync.Mutex
	entries          map[string]memoryEntry
	writesSinceSweep int
}

type MemoryStoreOption func(*memoryStore)

// WithMaxEntries bounds the store. Inserting a new key into a full store
// evicts one entry chosen at random. Zero means unbounded.
func WithMaxEntries(maxEntries int) MemoryStoreOption {
	return func(m *memoryStore) {
		m.maxEntries = maxEntries
	}
}

// NewMemoryStore keeps values in process. Expired entries are dropped lazily
// on read and in bulk every sweepEvery writes.
func NewMemoryStore(clockService clock.Service, opts ...MemoryStoreOption) Store {
	m := &memoryStore{
		clockService: clockService,
		entries:      make(map[string]memoryEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *memoryStore) Set(_ context.Context, key string, value string, opts ...Option) error {
	options := collectOptions(opts)
	now := m.clockService.Now()

	entry := memoryEntry{value: value}
	if options.Expiration > 0 {
		entry.expiresAt = now.Add(options.Expiration)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.evictOne()
	}
	m.entries[key] = entry

	m.writesSinceSweep++
	if m.writesSinceSweep >= sweepEvery {
		m.sweep(now)
	}
	return nil
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	now := m.clockService.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}

	if entry.expiredAt(now) {
		delete(m.entries, key)
		return "", ErrNotFound
	}

	return entry.value, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// sweep must be called with mu held.
func (m *memoryStore) sweep(now time.Time) {
	for key, entry := range m.entries {
		if entry.expiredAt(now) {
			delete(m.entries, key)
		}
	}
	m.writesSinceSweep = 0
}

// evictOne must be called with mu held. Map iteration order makes the
// victim effectively random.
func (m *memoryStore) evictOne() {
	for key := range m.entries {
		delete(m.entries, key)
		return
	}
}

func (m *memoryStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

type redisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore stores every key under keyPrefix so several deployments can
// share one redis database.
func NewRedisStore(client *redis.Client, keyPrefix string) Store {
	return &redisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *redisStore) Set(ctx context.Context, key string, value string, opts ...Option) error {
	options := collectOptions(opts)

	err := r.client.Set(ctx, r.keyPrefix+key, value, options.Expiration).Err()
	if err != nil {
		return fmt.Errorf("setting redis key: %w", err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	result, err := r.client.Get(ctx, r.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting redis key: %w", err)
	}
	return result, nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.keyPrefix+key).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("deleting redis key: %w", err)
	}
	return nil
}

type RedisOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	Database int
}

func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.Database,
	})
}
