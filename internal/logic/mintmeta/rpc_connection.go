package mintmeta

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/client"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"multisig-decoder-sol/internal/types"
)

// RPCConnection 基于 Solana JSON-RPC 的 Connection 实现
type RPCConnection struct {
	client *client.Client
}

func NewRPCConnection(endpoint string) *RPCConnection {
	return &RPCConnection{client: client.NewClient(endpoint)}
}

func (c *RPCConnection) GetAccountData(ctx context.Context, account types.Pubkey) ([]byte, error) {
	info, err := c.client.GetAccountInfo(ctx, account.String())
	if err != nil {
		return nil, fmt.Errorf("GetAccountInfo %s: %w", account, err)
	}
	// RPC 对不存在的账户返回空值
	if info.Lamports == 0 && len(info.Data) == 0 {
		return nil, nil
	}
	return info.Data, nil
}

func (c *RPCConnection) GetMintInfo(ctx context.Context, mint types.Pubkey) (*MintInfo, error) {
	data, err := c.GetAccountData(ctx, mint)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	account, err := sdktoken.MintAccountFromData(data)
	if err != nil {
		return nil, fmt.Errorf("parse mint %s: %w", mint, err)
	}

	info := &MintInfo{
		Mint:          mint,
		Decimals:      account.Decimals,
		Supply:        account.Supply,
		IsInitialized: account.IsInitialized,
	}
	if account.MintAuthority != nil {
		info.HasMintAuthority = true
		info.MintAuthority = types.Pubkey(*account.MintAuthority)
	}
	return info, nil
}
