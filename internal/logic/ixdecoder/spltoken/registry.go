package spltoken

import (
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder/common"
)

// RegisterHandlers 注册 token 程序的解码逻辑
func RegisterHandlers(m common.Registry) {
	m[consts.TokenProgram] = decodeTokenInstruction
}

// decodeTokenInstruction 根据首字节 opcode 选择布局，目前只解码 Transfer。
func decodeTokenInstruction(raw *core.RawInstruction, scale core.DecimalScale) core.DecodedInstruction {
	opcode, ok := common.ReadOpcode(raw.Data)
	if !ok {
		return common.BuildUnsupported(core.FamilyToken, raw, "")
	}

	switch opcode {
	case byte(sdktoken.InstructionTransfer):
		if decoded, ok := decodeTransfer(raw, scale); ok {
			return decoded
		}
		return common.BuildUnsupported(core.FamilyToken, raw, "")

	default:
		// 非关心的 TokenProgram 指令
		return common.BuildUnsupported(core.FamilyToken, raw, "")
	}
}
