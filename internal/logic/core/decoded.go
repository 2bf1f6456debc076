package core

import "strings"

// ProgramFamily 表示解码器识别的程序族（封闭枚举）
type ProgramFamily uint8

const (
	FamilyUnknown   ProgramFamily = iota // 0 (保留)
	FamilyToken                          // 1
	FamilySaberSwap                      // 2
)

var familyNames = []string{
	"Unknown",   // 0
	"Token",     // 1
	"SaberSwap", // 2
}

func (f ProgramFamily) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return familyNames[FamilyUnknown]
}

// OpUnsupported 是所有无法匹配布局的指令使用的操作名
const OpUnsupported = "unsupported"

// OpcodeNone 表示程序未识别（或没有首字节）时的 opcode 哨兵值
const OpcodeNone = -1

// Field 是一个已格式化的字段，顺序与链上数据布局一致
type Field struct {
	Name  string
	Value string
}

// DecodedInstruction 是解码结果，每次解码构造一次，之后不再修改。
// 不变式：Fields 非空当且仅当 Operation != OpUnsupported。
type DecodedInstruction struct {
	Family     ProgramFamily
	Operation  string
	Opcode     int
	Fields     []Field
	RawPayload string // 完整指令数据的 base64，仅用于展示
	Context    string // 非数值的附加信息，例如对手方地址；不适用时为空
}

// IsSupported 判断是否成功匹配到已知布局
func (d DecodedInstruction) IsSupported() bool {
	return d.Operation != OpUnsupported && len(d.Fields) > 0
}

// String 渲染单行展示文本：
//   - 已支持：  "<operation>: <f1>=<v1>, <f2>=<v2>"
//   - 未支持：  "<operation>: data=<rawPayload>"
func (d DecodedInstruction) String() string {
	var sb strings.Builder
	sb.WriteString(d.Operation)
	sb.WriteString(": ")
	if !d.IsSupported() {
		sb.WriteString("data=")
		sb.WriteString(d.RawPayload)
		return sb.String()
	}
	for i, f := range d.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
	}
	return sb.String()
}
