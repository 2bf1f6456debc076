package saberswap

import (
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder/common"
)

const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
)

// DecimalScale 中各位置的含义
const (
	scaleTokenA    = 1
	scaleTokenB    = 2
	scalePoolToken = 3
)

// decodeDeposit 解析 Deposit: [0]=instr, [1:9]=token_a_amount, [9:17]=token_b_amount, [17:25]=min_mint_amount
func decodeDeposit(raw *core.RawInstruction, scale core.DecimalScale) (core.DecodedInstruction, bool) {
	var layout common.SwapAmountsLayout
	if !common.DecodeLayout(raw.Data, common.SwapAmountsLayoutSize, &layout) {
		return core.DecodedInstruction{}, false
	}

	fields := []core.Field{
		{Name: "tokenAmountA", Value: common.FormatAmount(layout.Value1, scale.At(scaleTokenA))},
		{Name: "tokenAmountB", Value: common.FormatAmount(layout.Value2, scale.At(scaleTokenB))},
		{Name: "minimumPoolTokenAmount", Value: common.FormatAmount(layout.Value3, scale.At(scalePoolToken))},
	}
	return common.BuildDecoded(core.FamilySaberSwap, OpDeposit, InstructionDeposit, raw, fields, swapContext(raw)), true
}

// decodeWithdraw 解析 Withdraw: [0]=instr, [1:9]=pool_token_amount, [9:17]=minimum_token_a_amount, [17:25]=minimum_token_b_amount
// 注意 scale 位置与 deposit 不同：pool token 使用 scale[3]，两个 minimum 分别使用 scale[1] / scale[2]。
func decodeWithdraw(raw *core.RawInstruction, scale core.DecimalScale) (core.DecodedInstruction, bool) {
	var layout common.SwapAmountsLayout
	if !common.DecodeLayout(raw.Data, common.SwapAmountsLayoutSize, &layout) {
		return core.DecodedInstruction{}, false
	}

	fields := []core.Field{
		{Name: "poolTokenAmount", Value: common.FormatAmount(layout.Value1, scale.At(scalePoolToken))},
		{Name: "minimumTokenA", Value: common.FormatAmount(layout.Value2, scale.At(scaleTokenA))},
		{Name: "minimumTokenB", Value: common.FormatAmount(layout.Value3, scale.At(scaleTokenB))},
	}
	return common.BuildDecoded(core.FamilySaberSwap, OpWithdraw, InstructionWithdraw, raw, fields, swapContext(raw)), true
}
