package password

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/services/keyValue"
)

const cacheKeyPrefix = "password-strength:"

// CachedEvaluator memoizes evaluations keyed on the (password, email) pair.
type CachedEvaluator interface {
	Evaluate(ctx context.Context, password string, email string) Result
}

type cachedEvaluator struct {
	evaluator Evaluator
	store     keyValue.Store
	ttl       time.Duration
	keySecret []byte
}

// NewCachedEvaluator keys the store with an HMAC over keySecret. An empty
// secret is replaced by a random one, which only suits stores that live as
// long as the process.
func NewCachedEvaluator(evaluator Evaluator, store keyValue.Store, ttl time.Duration, keySecret []byte) CachedEvaluator {
	if len(keySecret) == 0 {
		keySecret = RandomKeySecret()
	}

	return &cachedEvaluator{
		evaluator: evaluator,
		store:     store,
		ttl:       ttl,
		keySecret: keySecret,
	}
}

func RandomKeySecret() []byte {
	secret := make([]byte, sha256.Size)
	if _, err := rand.Read(secret); err != nil {
		panic(fmt.Errorf("generating cache key secret: %w", err))
	}
	return secret
}

// CacheKey derives the store key as HMAC-SHA256 over the length-prefixed
// password and email. Without the secret the key cannot be recomputed from
// a guessed password.
func CacheKey(keySecret []byte, password string, email string) string {
	mac := hmac.New(sha256.New, keySecret)
	for _, field := range []string{password, email} {
		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(field)))
		mac.Write(length[:])
		mac.Write([]byte(field))
	}
	return cacheKeyPrefix + hex.EncodeToString(mac.Sum(nil))
}

func (c *cachedEvaluator) Evaluate(ctx context.Context, password string, email string) Result {
	if password == "" {
		return c.evaluator.Evaluate(password, email)
	}

	key := CacheKey(c.keySecret, password, email)

	cached, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var result Result
		err = json.Unmarshal([]byte(cached), &result)
		if err == nil {
			return result
		}
		logging.Logger.Warnf("discarding cached evaluation: %v", err)

	case !errors.Is(err, keyValue.ErrNotFound):
		logging.Logger.Warnf("reading cached evaluation: %v", err)
	}

	result := c.evaluator.Evaluate(password, email)

	encoded, err := json.Marshal(result)
	if err != nil {
		logging.Logger.Warnf("encoding evaluation: %v", err)
		return result
	}

	err = c.store.Set(ctx, key, string(encoded), keyValue.WithExpiration(c.ttl))
	if err != nil {
		logging.Logger.Warnf("caching evaluation: %v", err)
	}

	return result
}
