package common

import (
	"encoding/base64"
	"math/big"

	"github.com/shopspring/decimal"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/types"
)

// FormatAmount 将最小单位金额除以 10^decimals 并输出十进制字符串。
// 使用精确十进制运算，小数部分完整保留，末尾多余的 0 会被去掉（1000000/10^6 → "1"）。
func FormatAmount(raw uint64, decimals uint8) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals)).String()
}

// EncodePayload 将完整指令数据编码为展示用 base64
func EncodePayload(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// LabeledAddress 构造 "label=<base58>" 形式的 context 文本
func LabeledAddress(label string, key types.Pubkey) string {
	return label + "=" + key.String()
}

// BuildUnknown 构造未识别程序的结果
func BuildUnknown(raw *core.RawInstruction) core.DecodedInstruction {
	return core.DecodedInstruction{
		Family:     core.FamilyUnknown,
		Operation:  core.OpUnsupported,
		Opcode:     core.OpcodeNone,
		Fields:     []core.Field{},
		RawPayload: EncodePayload(raw.Data),
	}
}

// BuildUnsupported 构造已识别程序但无法匹配布局的结果，opcode 原样保留（无首字节时为 -1）
func BuildUnsupported(family core.ProgramFamily, raw *core.RawInstruction, context string) core.DecodedInstruction {
	opcode := core.OpcodeNone
	if op, ok := ReadOpcode(raw.Data); ok {
		opcode = int(op)
	}
	return core.DecodedInstruction{
		Family:     family,
		Operation:  core.OpUnsupported,
		Opcode:     opcode,
		Fields:     []core.Field{},
		RawPayload: EncodePayload(raw.Data),
		Context:    context,
	}
}

// BuildDecoded 构造成功解码的结果
func BuildDecoded(
	family core.ProgramFamily,
	operation string,
	opcode uint8,
	raw *core.RawInstruction,
	fields []core.Field,
	context string,
) core.DecodedInstruction {
	return core.DecodedInstruction{
		Family:     family,
		Operation:  operation,
		Opcode:     int(opcode),
		Fields:     fields,
		RawPayload: EncodePayload(raw.Data),
		Context:    context,
	}
}
