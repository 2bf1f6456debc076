package consts

import "multisig-decoder-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	// Programs
	SystemProgramStr    = "11111111111111111111111111111111"
	TokenProgramStr     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	SaberSwapProgramStr = "SSwpkEEcbUqx4vtoEByFjSkhKdCT9YJqb8U9HHjk1M8"

	// Serum multisig 程序（各集群部署地址不同）
	MultisigProgramMainnetStr = "msigmtwzgXJHj2ext4XJjCDmpbcMuufFb5cHuwg6Xdt"
	MultisigProgramDevnetStr  = "81u91ekry3qovR9Pn7tAYKBRRYffkgnK3hS4ygq3bbHo"
	MultisigProgramLocalStr   = "9z7Pq56To96qbVLzuBcf47Lc7u8uUWZh6k5rhcaTsDjz"

	// 各集群默认展示的 multisig 账户（upgrade authority）
	MultisigUpgradeAuthorityMainnetStr = "3uztpEgUmvirDBYRXgDamUDZiU5EcgTwArQ2pULtHJPC"
	MultisigUpgradeAuthorityDevnetStr  = "EPJ42Bi719xTVB2T2v2NfJQSkdPdL3WmRXpX877FZVf5"
)

// 公钥形式的地址常量，用于路由表比对
var (
	SystemProgram    = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram     = types.PubkeyFromBase58(TokenProgramStr)
	SaberSwapProgram = types.PubkeyFromBase58(SaberSwapProgramStr)
)
