package utils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator purges cached event responses after a write so the next
// read reflects the store. Key families must match middlewares.CacheKeyFrom.
type CacheInvalidator struct{ rdb *redis.Client }

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator { return &CacheInvalidator{rdb} }

func (ci *CacheInvalidator) PurgeEventsList(ctx context.Context) {
	ci.purgePrefix(ctx, "cache:events:list:*")
}

// PurgeEventItems drops every cached single-event response. Item keys embed
// a sha1 of the id, so a targeted delete is not possible without keeping a
// reverse index; the item family is small enough to clear wholesale.
func (ci *CacheInvalidator) PurgeEventItems(ctx context.Context) {
	ci.purgePrefix(ctx, "cache:events:item:*")
}

func (ci *CacheInvalidator) purgePrefix(ctx context.Context, pattern string) {
	iter := ci.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = ci.rdb.Del(ctx, iter.Val()).Err()
	}
}
