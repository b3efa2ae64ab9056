package lexicon

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type RedisConf struct {
	Addr    string
	DB      int
	TTLSecs int
}

// RedisCache shares dictionary answers between processes through Redis.
// Redis failures are logged and the inner lookup answers instead.
type RedisCache struct {
	conf        RedisConf
	redisClient *redis.Client
	inner       Lookup
}

func NewRedisCache(conf RedisConf, inner Lookup) *RedisCache {
	return &RedisCache{
		conf:  conf,
		inner: inner,
		redisClient: redis.NewClient(&redis.Options{
			Addr:       conf.Addr,
			DB:         conf.DB,
			MaxRetries: -1,
		}),
	}
}

func createCacheID(word string) string {
	h := sha1.New()
	h.Write([]byte(word))
	return fmt.Sprintf("pali:lexicon:%x", h.Sum(nil))
}

func (rc *RedisCache) ttl() time.Duration {
	return time.Duration(rc.conf.TTLSecs) * time.Second
}

func (rc *RedisCache) get(ctx context.Context, word string) ([]Entry, error) {
	cacheID := createCacheID(word)
	val, err := rc.redisClient.Get(ctx, cacheID).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	} else if err != nil {
		return nil, err
	}
	if _, err := rc.redisClient.Expire(ctx, cacheID, rc.ttl()).Result(); err != nil {
		return nil, err
	}
	var ans []Entry
	if err := gob.NewDecoder(bytes.NewReader([]byte(val))).Decode(&ans); err != nil {
		return nil, err
	}
	return ans, nil
}

func (rc *RedisCache) set(ctx context.Context, word string, entries []Entry) error {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(entries); err != nil {
		return err
	}
	_, err := rc.redisClient.Set(ctx, createCacheID(word), buffer.String(), rc.ttl()).Result()
	return err
}

func (rc *RedisCache) FetchEntries(ctx context.Context, word string) ([]Entry, error) {
	entries, err := rc.get(ctx, word)
	if err == nil {
		return entries, nil
	}
	if err != ErrCacheMiss {
		log.Warn().Err(err).Str("word", word).Msg("redis lexicon cache unavailable")
	}
	entries, err = rc.inner.FetchEntries(ctx, word)
	if err != nil {
		return nil, err
	}
	if err := rc.set(ctx, word, entries); err != nil {
		log.Warn().Err(err).Str("word", word).Msg("failed to store lexicon entries in redis")
	}
	return entries, nil
}

func (rc *RedisCache) Exists(ctx context.Context, word string) (bool, error) {
	entries, err := rc.FetchEntries(ctx, word)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

func (rc *RedisCache) Close() error {
	return rc.redisClient.Close()
}
