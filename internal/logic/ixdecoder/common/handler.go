package common

import (
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/types"
)

// InstructionDecoder 定义单个程序族的解码函数签名。
// 实现必须是纯函数：不做 I/O、不修改入参、不 panic，任何无法匹配的输入都返回 unsupported 结果。
type InstructionDecoder func(raw *core.RawInstruction, scale core.DecimalScale) core.DecodedInstruction

// Registry 是 ProgramID → 解码函数的路由表，只在初始化阶段写入
type Registry map[types.Pubkey]InstructionDecoder
