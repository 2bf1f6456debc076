package spltoken

import (
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder/common"
)

const OpTransfer = "transfer"

// receiverAccountIndex: Transfer 的账户布局为 [src_account, dest_account, authority_wallet]
const receiverAccountIndex = 1

// decodeTransfer 解析 Transfer: [0]=instr, [1:9]=amount
// amount 按 scale[0] 缩放；context 为接收方 TokenAccount。
func decodeTransfer(raw *core.RawInstruction, scale core.DecimalScale) (core.DecodedInstruction, bool) {
	var layout common.TransferLayout
	if !common.DecodeLayout(raw.Data, common.TransferLayoutSize, &layout) {
		return core.DecodedInstruction{}, false
	}

	var context string
	if receiver, ok := raw.AccountAt(receiverAccountIndex); ok {
		context = common.LabeledAddress("receiver", receiver)
	}

	fields := []core.Field{
		{Name: "amount", Value: common.FormatAmount(layout.Amount, scale.At(0))},
	}
	return common.BuildDecoded(core.FamilyToken, OpTransfer, byte(sdktoken.InstructionTransfer), raw, fields, context), true
}
