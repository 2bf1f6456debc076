package saberswap

import (
	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder/common"
)

// Saber stable-swap 指令 opcode（SwapInstruction 的枚举序号）
const (
	InstructionInitialize uint8 = 0
	InstructionSwap       uint8 = 1
	InstructionDeposit    uint8 = 2
	InstructionWithdraw   uint8 = 3
)

// swapAccountIndex: deposit / withdraw 的首个账户均为 swap 账户
const swapAccountIndex = 0

// RegisterHandlers 注册 Saber stable-swap 的解码逻辑
func RegisterHandlers(m common.Registry) {
	m[consts.SaberSwapProgram] = decodeSwapInstruction
}

func decodeSwapInstruction(raw *core.RawInstruction, scale core.DecimalScale) core.DecodedInstruction {
	opcode, ok := common.ReadOpcode(raw.Data)
	if !ok {
		// 无首字节与 opcode 0 同样处理，保留 swap 账户
		return common.BuildUnsupported(core.FamilySaberSwap, raw, swapContext(raw))
	}

	switch opcode {
	case InstructionDeposit:
		if decoded, ok := decodeDeposit(raw, scale); ok {
			return decoded
		}
		return common.BuildUnsupported(core.FamilySaberSwap, raw, "")

	case InstructionWithdraw:
		if decoded, ok := decodeWithdraw(raw, scale); ok {
			return decoded
		}
		return common.BuildUnsupported(core.FamilySaberSwap, raw, "")

	case InstructionInitialize:
		return common.BuildUnsupported(core.FamilySaberSwap, raw, swapContext(raw))

	default:
		return common.BuildUnsupported(core.FamilySaberSwap, raw, "")
	}
}

func swapContext(raw *core.RawInstruction) string {
	swap, ok := raw.AccountAt(swapAccountIndex)
	if !ok {
		return ""
	}
	return common.LabeledAddress("swapAccount", swap)
}
