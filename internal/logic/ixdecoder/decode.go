package ixdecoder

import (
	"runtime"
	"runtime/debug"

	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder/common"
	"multisig-decoder-sol/internal/logic/ixdecoder/saberswap"
	"multisig-decoder-sol/internal/logic/ixdecoder/spltoken"
	"multisig-decoder-sol/pkg/logger"
	"multisig-decoder-sol/pkg/utils"
)

// decoders 是 ProgramID → 对应解码函数的路由表。
// 只在 init 阶段写入，之后只读，因此 Decode 可被任意 goroutine 并发调用。
var decoders = common.Registry{}

func init() {
	spltoken.RegisterHandlers(decoders)
	saberswap.RegisterHandlers(decoders)
}

// Decode 识别指令所属程序并解码其数据。
// 没有错误返回：未知程序、未知 opcode、长度不足都会降级为 unsupported 结果。
func Decode(raw core.RawInstruction, scale core.DecimalScale) (result core.DecodedInstruction) {
	decoder, ok := decoders[raw.ProgramID]
	if !ok {
		return common.BuildUnknown(&raw)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[ixdecoder::Decode] panic program=%s dataLen=%d: %+v\nstack: %s",
				raw.ProgramID, len(raw.Data), r, debug.Stack())
			result = common.BuildUnsupported(familyOf(raw.ProgramID), &raw, "")
		}
	}()

	result = decoder(&raw, scale)
	if !result.IsSupported() {
		logger.Debugf("[ixdecoder::Decode] unsupported instruction: program=%s family=%s opcode=%d",
			raw.ProgramID, result.Family, result.Opcode)
	}
	return result
}

// 批量较小时并发反而更慢
const parallelDecodeThreshold = 64

// DecodeAll 解码一批指令，结果与输入一一对应，单条失败不影响其它指令
func DecodeAll(raws []core.RawInstruction, scale core.DecimalScale) []core.DecodedInstruction {
	workers := 1
	if len(raws) >= parallelDecodeThreshold {
		workers = runtime.NumCPU()
	}
	return utils.ParallelMap(raws, workers, func(raw core.RawInstruction) core.DecodedInstruction {
		return Decode(raw, scale)
	})
}

// IsKnownProgram 判断 ProgramID 是否在路由表中
func IsKnownProgram(raw *core.RawInstruction) bool {
	_, ok := decoders[raw.ProgramID]
	return ok
}
