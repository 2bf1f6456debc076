package ixdecoder

import (
	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/types"
)

func familyOf(programID types.Pubkey) core.ProgramFamily {
	switch programID {
	case consts.TokenProgram:
		return core.FamilyToken
	case consts.SaberSwapProgram:
		return core.FamilySaberSwap
	default:
		return core.FamilyUnknown
	}
}
