package consts

// DefaultDecimals 是调用方未提供精度时每个 scale 位置的缺省值
const DefaultDecimals uint8 = 6

// DecimalScaleLen 表示 DecimalScale 的位置数：
// [0] token transfer 金额，[1] swap token A，[2] swap token B，[3] swap pool token
const DecimalScaleLen = 4
