package mintmeta

import (
	"context"
	"fmt"
	"time"

	"github.com/near/borsh-go"
	"github.com/redis/go-redis/v9"
	"multisig-decoder-sol/internal/types"
	"multisig-decoder-sol/pkg/logger"
)

const (
	mintPrefix     = "mintmeta:mint"
	defaultMintTTL = 24 * time.Hour
)

// RedisCachedConnection 在 Connection 之前加一层 Redis 缓存，只缓存 mint 元数据。
// Redis 不可用时直接回源，缓存错误不会向上返回。
type RedisCachedConnection struct {
	Connection
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCachedConnection(source Connection, rdb *redis.Client, ttl time.Duration) *RedisCachedConnection {
	if ttl <= 0 {
		ttl = defaultMintTTL
	}
	return &RedisCachedConnection{Connection: source, rdb: rdb, ttl: ttl}
}

func (r *RedisCachedConnection) getKey(mint types.Pubkey) string {
	return fmt.Sprintf("%s:%s", mintPrefix, mint)
}

func (r *RedisCachedConnection) GetMintInfo(ctx context.Context, mint types.Pubkey) (*MintInfo, error) {
	key := r.getKey(mint)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == redis.Nil:
		// 未命中
	case err != nil:
		logger.Warnf("[mintmeta::RedisCache] redis get error: key=%s err=%v", key, err)
	default:
		if info, ok := decodeMintInfo(raw); ok {
			return info, nil
		}
		logger.Warnf("[mintmeta::RedisCache] corrupt cache entry: key=%s", key)
	}

	info, err := r.Connection.GetMintInfo(ctx, mint)
	if err != nil || info == nil {
		return info, err
	}

	encoded, err := borsh.Serialize(*info)
	if err != nil {
		logger.Warnf("[mintmeta::RedisCache] encode failed: mint=%s err=%v", mint, err)
		return info, nil
	}
	if err := r.rdb.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		logger.Warnf("[mintmeta::RedisCache] redis set error: key=%s err=%v", key, err)
	}
	return info, nil
}

func decodeMintInfo(raw []byte) (_ *MintInfo, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	var info MintInfo
	if err := borsh.Deserialize(&info, raw); err != nil {
		return nil, false
	}
	return &info, true
}
