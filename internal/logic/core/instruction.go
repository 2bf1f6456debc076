package core

import (
	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/types"
)

// AccountMeta 表示指令中一个账户及其角色，顺序与链上指令声明的账户顺序一致。
type AccountMeta struct {
	Pubkey     types.Pubkey
	IsSigner   bool
	IsWritable bool
}

// RawInstruction 表示一条待解码的原始指令（由外部数据获取方提供，解码器只读）。
type RawInstruction struct {
	ProgramID types.Pubkey  // 指令对应的程序 ID
	Data      []byte        // 指令原始数据，首字节为 opcode
	Accounts  []AccountMeta // 指令涉及的账户列表，保持原始顺序
}

// AccountAt 返回第 i 个账户的公钥，越界时 ok=false
func (ix *RawInstruction) AccountAt(i int) (types.Pubkey, bool) {
	if i < 0 || i >= len(ix.Accounts) {
		return types.Pubkey{}, false
	}
	return ix.Accounts[i].Pubkey, true
}

// DecimalScale 表示每个金额位置的精度（10 的幂次）。
// 位置含义：[0] token transfer 金额，[1] swap token A，[2] swap token B，[3] swap pool token。
// 缺失的位置（包括 nil）按 consts.DefaultDecimals 处理。
type DecimalScale []uint8

// DefaultDecimalScale 返回 {6,6,6,6}
func DefaultDecimalScale() DecimalScale {
	s := make(DecimalScale, consts.DecimalScaleLen)
	for i := range s {
		s[i] = consts.DefaultDecimals
	}
	return s
}

// At 返回位置 i 的精度
func (s DecimalScale) At(i int) uint8 {
	if i < 0 || i >= len(s) {
		return consts.DefaultDecimals
	}
	return s[i]
}

// Normalize 返回补齐到 4 个位置的新切片，不修改原切片
func (s DecimalScale) Normalize() DecimalScale {
	out := make(DecimalScale, consts.DecimalScaleLen)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
