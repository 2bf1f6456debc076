package mintmeta

import (
	"context"

	"multisig-decoder-sol/internal/logic/ixdecoder/common"
	"multisig-decoder-sol/internal/types"
	"multisig-decoder-sol/pkg/logger"
)

// SPL TokenAccount 布局: [0:32]=mint, [32:64]=owner, [64:72]=amount, ...
const tokenAccountMintOffset = 0

// MintInfo 表示一个 mint 的元数据
type MintInfo struct {
	Mint             types.Pubkey
	Decimals         uint8
	Supply           uint64
	IsInitialized    bool
	HasMintAuthority bool
	MintAuthority    types.Pubkey
}

// Connection 是执行 I/O 的外部连接（通常为 RPC）。
// 账户不存在时两个方法都返回 (nil, nil)。
type Connection interface {
	GetAccountData(ctx context.Context, account types.Pubkey) ([]byte, error)
	GetMintInfo(ctx context.Context, mint types.Pubkey) (*MintInfo, error)
}

// MintFromTokenAccount 从 TokenAccount 原始数据中取出 mint 公钥
func MintFromTokenAccount(data []byte) (types.Pubkey, bool) {
	b, ok := common.ReadPubkeyBytes(data, tokenAccountMintOffset)
	if !ok {
		return types.Pubkey{}, false
	}
	mint, err := types.PubkeyFromBytes(b)
	if err != nil {
		return types.Pubkey{}, false
	}
	return mint, true
}

// ResolveAccountMint 查询 TokenAccount 对应 mint 的元数据。
// 账户不存在、数据过短或连接出错时返回 (nil, false)；本函数不做重试，由调用方决定。
func ResolveAccountMint(ctx context.Context, conn Connection, account types.Pubkey) (*MintInfo, bool) {
	data, err := conn.GetAccountData(ctx, account)
	if err != nil {
		logger.Warnf("[mintmeta::ResolveAccountMint] fetch account failed: account=%s err=%v", account, err)
		return nil, false
	}
	if data == nil {
		logger.Infof("[mintmeta::ResolveAccountMint] account not found: %s", account)
		return nil, false
	}

	mint, ok := MintFromTokenAccount(data)
	if !ok {
		logger.Warnf("[mintmeta::ResolveAccountMint] account data too short: account=%s len=%d", account, len(data))
		return nil, false
	}

	info, err := conn.GetMintInfo(ctx, mint)
	if err != nil {
		logger.Warnf("[mintmeta::ResolveAccountMint] fetch mint failed: account=%s mint=%s err=%v", account, mint, err)
		return nil, false
	}
	if info == nil {
		logger.Infof("[mintmeta::ResolveAccountMint] mint not found: account=%s mint=%s", account, mint)
		return nil, false
	}

	logger.Infof("[mintmeta::ResolveAccountMint] account=%s mint=%s decimals=%d", account, mint, info.Decimals)
	return info, true
}
