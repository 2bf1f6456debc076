package txadapter

import (
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder/saberswap"
	"multisig-decoder-sol/internal/types"
)

const noAccount = -1

// scaleAccounts[i] 表示 DecimalScale 第 i 个位置取哪个账户的精度
type scaleAccounts [consts.DecimalScaleLen]int

type scaleKey struct {
	program types.Pubkey
	opcode  uint8
}

// scaleSources 描述各指令中金额对应的 TokenAccount 位置
var scaleSources = map[scaleKey]scaleAccounts{
	// Transfer: [src_account, dest_account, authority_wallet]
	{consts.TokenProgram, uint8(sdktoken.InstructionTransfer)}: {0, noAccount, noAccount, noAccount},

	// Deposit: [swap, authority, user_authority, source_a, source_b, reserve_a, reserve_b, pool_mint, pool_dest, ...]
	{consts.SaberSwapProgram, saberswap.InstructionDeposit}: {noAccount, 3, 4, 8},

	// Withdraw: [swap, authority, user_authority, pool_mint, pool_source, reserve_a, reserve_b, dest_a, dest_b, ...]
	{consts.SaberSwapProgram, saberswap.InstructionWithdraw}: {noAccount, 7, 8, 4},
}

// ScaleForInstruction 按交易中的 TokenAccount 精度推导指令的 DecimalScale。
// 找不到精度的位置保持 consts.DefaultDecimals。
func ScaleForInstruction(raw *core.RawInstruction, decimals map[types.Pubkey]uint8) core.DecimalScale {
	scale := core.DefaultDecimalScale()
	if len(raw.Data) == 0 {
		return scale
	}
	sources, ok := scaleSources[scaleKey{program: raw.ProgramID, opcode: raw.Data[0]}]
	if !ok {
		return scale
	}
	for pos, accountIdx := range sources {
		if accountIdx == noAccount {
			continue
		}
		account, ok := raw.AccountAt(accountIdx)
		if !ok {
			continue
		}
		if d, found := decimals[account]; found {
			scale[pos] = d
		}
	}
	return scale
}
