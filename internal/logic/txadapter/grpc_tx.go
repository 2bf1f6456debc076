package txadapter

import (
	"fmt"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/types"
)

// AdaptedInstruction 表示一条主指令或 inner 指令，以及为它推导出的精度。
type AdaptedInstruction struct {
	IxIndex    uint16 // 主指令索引（从 0 开始）
	InnerIndex uint16 // 主指令本身为 0，CPI 调用从 1 开始
	Raw        core.RawInstruction
	Scale      core.DecimalScale
}

// AdaptedTx 表示已展平的交易，供解码器逐条处理
type AdaptedTx struct {
	Signature    []byte
	Instructions []*AdaptedInstruction
}

// buildFullAccountKeys 构造交易中完整的账户 Pubkey 列表。
// 拼接 message.accountKeys 与 Address Lookup Table 中的 writable / readonly 地址，
// 供后续通过 accountIndex 索引使用。
func buildFullAccountKeys(segments ...[][]byte) ([]types.Pubkey, error) {
	total := 0
	for _, seg := range segments {
		total += len(seg)
	}
	pubkeys := make([]types.Pubkey, 0, total)

	for _, seg := range segments {
		for _, b := range seg {
			pk, err := types.PubkeyFromBytes(b)
			if err != nil {
				return nil, fmt.Errorf("invalid pubkey at index %d: %w", len(pubkeys), err)
			}
			pubkeys = append(pubkeys, pk)
		}
	}
	return pubkeys, nil
}

// accountRole 表示账户在整笔交易中的角色
type accountRole struct {
	signer   bool
	writable bool
}

// buildAccountRoles 按 message header 推导每个账户的 signer / writable 属性。
// 静态账户顺序：[可写 signer][只读 signer][可写非 signer][只读非 signer]，
// 之后依次为 ALT 的 writable 与 readonly 地址。
func buildAccountRoles(header *pb.MessageHeader, staticCount, loadedWritable, loadedReadonly int) ([]accountRole, error) {
	if header == nil {
		return nil, fmt.Errorf("missing message header")
	}
	numSigners := int(header.NumRequiredSignatures)
	readonlySigned := int(header.NumReadonlySignedAccounts)
	readonlyUnsigned := int(header.NumReadonlyUnsignedAccounts)
	if numSigners > staticCount || readonlySigned > numSigners || readonlyUnsigned > staticCount-numSigners {
		return nil, fmt.Errorf("invalid message header: signers=%d readonlySigned=%d readonlyUnsigned=%d static=%d",
			numSigners, readonlySigned, readonlyUnsigned, staticCount)
	}

	roles := make([]accountRole, 0, staticCount+loadedWritable+loadedReadonly)
	for i := 0; i < staticCount; i++ {
		if i < numSigners {
			roles = append(roles, accountRole{signer: true, writable: i < numSigners-readonlySigned})
		} else {
			roles = append(roles, accountRole{writable: i < staticCount-readonlyUnsigned})
		}
	}
	for i := 0; i < loadedWritable; i++ {
		roles = append(roles, accountRole{writable: true})
	}
	for i := 0; i < loadedReadonly; i++ {
		roles = append(roles, accountRole{})
	}
	return roles, nil
}

// buildTokenDecimals 从 Pre/PostTokenBalances 收集 TokenAccount → decimals
func buildTokenDecimals(meta *pb.TransactionStatusMeta, accountKeys []types.Pubkey) map[types.Pubkey]uint8 {
	decimals := make(map[types.Pubkey]uint8, len(meta.PostTokenBalances)+len(meta.PreTokenBalances))
	collect := func(list []*pb.TokenBalance) {
		for _, b := range list {
			if b == nil || b.UiTokenAmount == nil || int(b.AccountIndex) >= len(accountKeys) {
				continue
			}
			account := accountKeys[b.AccountIndex]
			if _, ok := decimals[account]; !ok {
				decimals[account] = uint8(b.UiTokenAmount.Decimals)
			}
		}
	}
	// Post 优先（代表账户最终状态），Pre 只补充 Post 中不存在的账户
	collect(meta.PostTokenBalances)
	collect(meta.PreTokenBalances)
	return decimals
}

// instructionBuilder 将 accountIndex 形式的指令转换为 RawInstruction
type instructionBuilder struct {
	accountKeys []types.Pubkey
	roles       []accountRole
	decimals    map[types.Pubkey]uint8
}

func (b *instructionBuilder) build(ixIndex, innerIndex uint16, programIdx uint32, accountIdxs, data []byte) (*AdaptedInstruction, error) {
	if int(programIdx) >= len(b.accountKeys) {
		return nil, fmt.Errorf("ix %d/%d: program index %d out of range", ixIndex, innerIndex, programIdx)
	}

	accounts := make([]core.AccountMeta, 0, len(accountIdxs))
	for _, idx := range accountIdxs {
		if int(idx) >= len(b.accountKeys) {
			return nil, fmt.Errorf("ix %d/%d: account index %d out of range", ixIndex, innerIndex, idx)
		}
		role := b.roles[idx]
		accounts = append(accounts, core.AccountMeta{
			Pubkey:     b.accountKeys[idx],
			IsSigner:   role.signer,
			IsWritable: role.writable,
		})
	}

	raw := core.RawInstruction{
		ProgramID: b.accountKeys[programIdx],
		Data:      data,
		Accounts:  accounts,
	}
	return &AdaptedInstruction{
		IxIndex:    ixIndex,
		InnerIndex: innerIndex,
		Raw:        raw,
		Scale:      ScaleForInstruction(&raw, b.decimals),
	}, nil
}

// buildAdaptedInstructions 扁平化主指令与 inner 指令：
//   - IxIndex：主指令索引；
//   - InnerIndex：0 表示主指令，1及以上表示对应的 inner 指令序号。
func buildAdaptedInstructions(tx *pb.SubscribeUpdateTransactionInfo, b *instructionBuilder) ([]*AdaptedInstruction, error) {
	rawInstructions := tx.Transaction.Message.Instructions
	rawInners := tx.Meta.InnerInstructions

	instructions := make([]*AdaptedInstruction, 0, max(len(rawInstructions)*2, 8))
	innerIndex := 0

	for i, inst := range rawInstructions {
		ix, err := b.build(uint16(i), 0, inst.ProgramIdIndex, inst.Accounts, inst.Data)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ix)

		// inner 列表按主指令索引（Index）递增排列，顺序匹配即可
		if innerIndex < len(rawInners) && int(rawInners[innerIndex].Index) == i {
			for j, inner := range rawInners[innerIndex].Instructions {
				ix, err := b.build(uint16(i), uint16(j+1), inner.ProgramIdIndex, inner.Accounts, inner.Data)
				if err != nil {
					return nil, err
				}
				instructions = append(instructions, ix)
			}
			innerIndex++
		}
	}
	return instructions, nil
}

// AdaptGrpcTx 将 gRPC 推送的交易数据转换为解码器输入。
// 完整流程：
//  1. 构建 accountKeys（含 Address Lookup）与账户角色；
//  2. 收集 TokenAccount 精度；
//  3. 展平主指令与 inner 指令，并为每条指令推导 DecimalScale。
func AdaptGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) (_ *AdaptedTx, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("AdaptGrpcTx panic: %v", r)
		}
	}()

	if tx == nil || tx.Transaction == nil || tx.Transaction.Message == nil || tx.Meta == nil {
		return nil, fmt.Errorf("invalid transaction: missing message or meta")
	}
	msg := tx.Transaction.Message

	accountKeys, err := buildFullAccountKeys(msg.AccountKeys, tx.Meta.LoadedWritableAddresses, tx.Meta.LoadedReadonlyAddresses)
	if err != nil {
		return nil, fmt.Errorf("buildFullAccountKeys error: %w", err)
	}
	if len(tx.Transaction.Signatures) == 0 || len(accountKeys) == 0 {
		return nil, fmt.Errorf("invalid transaction: missing signature or accountKeys")
	}

	roles, err := buildAccountRoles(msg.Header, len(msg.AccountKeys),
		len(tx.Meta.LoadedWritableAddresses), len(tx.Meta.LoadedReadonlyAddresses))
	if err != nil {
		return nil, err
	}

	builder := &instructionBuilder{
		accountKeys: accountKeys,
		roles:       roles,
		decimals:    buildTokenDecimals(tx.Meta, accountKeys),
	}
	instructions, err := buildAdaptedInstructions(tx, builder)
	if err != nil {
		return nil, fmt.Errorf("buildAdaptedInstructions error: %w", err)
	}

	return &AdaptedTx{
		Signature:    tx.Transaction.Signatures[0],
		Instructions: instructions,
	}, nil
}
