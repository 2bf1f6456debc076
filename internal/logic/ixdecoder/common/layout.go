package common

import (
	"encoding/binary"

	"github.com/near/borsh-go"
	"multisig-decoder-sol/pkg/logger"
)

// 各 opcode 对应的固定布局。字段全部为 little-endian，与 borsh 对 u64 的编码一致，
// 因此在长度校验通过后直接交给 borsh 反序列化。
//
// 合约源代码:
// SplToken:  https://github.com/solana-program/token/blob/main/program/src/instruction.rs
// SaberSwap: https://github.com/saber-hq/stable-swap/blob/master/stable-swap-program/program/src/instruction.rs

// OpcodeSize 是首字节 opcode 的长度
const OpcodeSize = 1

// TransferLayout: [0]=opcode, [1:9]=amount
type TransferLayout struct {
	Amount uint64
}

// TransferLayoutSize 不含 opcode
const TransferLayoutSize = 8

// SwapAmountsLayout: [0]=opcode, [1:9]=value1, [9:17]=value2, [17:25]=value3
// deposit 与 withdraw 共用该布局，三个值的语义由 opcode 决定。
type SwapAmountsLayout struct {
	Value1 uint64
	Value2 uint64
	Value3 uint64
}

// SwapAmountsLayoutSize 不含 opcode
const SwapAmountsLayoutSize = 24

// ReadOpcode 读取首字节 opcode，数据为空时 ok=false
func ReadOpcode(data []byte) (opcode uint8, ok bool) {
	if len(data) < OpcodeSize {
		return 0, false
	}
	return data[0], true
}

// ReadU64 在 offset 处读取 little-endian u64，越界时 ok=false
func ReadU64(data []byte, offset int) (uint64, bool) {
	if offset < 0 || len(data) < offset+8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[offset : offset+8]), true
}

// ReadPubkeyBytes 在 offset 处读取 32 字节公钥，越界时 ok=false
func ReadPubkeyBytes(data []byte, offset int) ([]byte, bool) {
	if offset < 0 || len(data) < offset+32 {
		return nil, false
	}
	return data[offset : offset+32], true
}

// DecodeLayout 将 data[OpcodeSize:OpcodeSize+size] 反序列化到 out。
// 长度不足时直接返回 false，不读取任何字段；borsh 的 panic 在此处被吞掉并记录。
func DecodeLayout(data []byte, size int, out interface{}) (ok bool) {
	if len(data) < OpcodeSize+size {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[ixdecoder::DecodeLayout] borsh.Deserialize panic: %v, size=%d, dataLen=%d", r, size, len(data))
			ok = false
		}
	}()

	if err := borsh.Deserialize(out, data[OpcodeSize:OpcodeSize+size]); err != nil {
		logger.Warnf("[ixdecoder::DecodeLayout] borsh.Deserialize failed: %v, size=%d", err, size)
		return false
	}
	return true
}
