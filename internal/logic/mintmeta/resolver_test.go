package mintmeta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"multisig-decoder-sol/internal/types"
)

type fakeConnection struct {
	accounts  map[types.Pubkey][]byte
	mints     map[types.Pubkey]*MintInfo
	err       error
	mintCalls int
}

func (f *fakeConnection) GetAccountData(_ context.Context, account types.Pubkey) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[account], nil
}

func (f *fakeConnection) GetMintInfo(_ context.Context, mint types.Pubkey) (*MintInfo, error) {
	f.mintCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.mints[mint], nil
}

func key(b byte) types.Pubkey {
	var p types.Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

// 构造 165 字节的 TokenAccount 数据，mint 写在 [0:32]
func tokenAccountData(mint, owner types.Pubkey) []byte {
	data := make([]byte, 165)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	return data
}

func TestResolveAccountMint(t *testing.T) {
	account, mint, owner := key(1), key(2), key(3)
	conn := &fakeConnection{
		accounts: map[types.Pubkey][]byte{
			account: tokenAccountData(mint, owner),
			key(9):  {1, 2, 3},
		},
		mints: map[types.Pubkey]*MintInfo{
			mint: {Mint: mint, Decimals: 9, Supply: 1000, IsInitialized: true},
		},
	}
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		info, ok := ResolveAccountMint(ctx, conn, account)
		require.True(t, ok)
		assert.Equal(t, mint, info.Mint)
		assert.Equal(t, uint8(9), info.Decimals)
	})

	t.Run("account missing", func(t *testing.T) {
		info, ok := ResolveAccountMint(ctx, conn, key(7))
		assert.False(t, ok)
		assert.Nil(t, info)
	})

	t.Run("account too short", func(t *testing.T) {
		_, ok := ResolveAccountMint(ctx, conn, key(9))
		assert.False(t, ok)
	})

	t.Run("mint missing", func(t *testing.T) {
		orphan := key(5)
		conn.accounts[orphan] = tokenAccountData(key(6), owner)
		_, ok := ResolveAccountMint(ctx, conn, orphan)
		assert.False(t, ok)
	})

	t.Run("connection error", func(t *testing.T) {
		broken := &fakeConnection{err: errors.New("rpc down")}
		_, ok := ResolveAccountMint(ctx, broken, account)
		assert.False(t, ok)
	})
}

func TestMintFromTokenAccount(t *testing.T) {
	mint := key(4)
	got, ok := MintFromTokenAccount(tokenAccountData(mint, key(1)))
	assert.True(t, ok)
	assert.Equal(t, mint, got)

	_, ok = MintFromTokenAccount(make([]byte, 31))
	assert.False(t, ok)
}

func TestRedisCachedConnection_FallsBackWhenRedisDown(t *testing.T) {
	mint := key(2)
	source := &fakeConnection{
		mints: map[types.Pubkey]*MintInfo{mint: {Mint: mint, Decimals: 6}},
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	cached := NewRedisCachedConnection(source, rdb, time.Minute)
	info, err := cached.GetMintInfo(context.Background(), mint)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, uint8(6), info.Decimals)
	assert.Equal(t, 1, source.mintCalls)
	assert.Equal(t, "mintmeta:mint:"+mint.String(), cached.getKey(mint))
}
