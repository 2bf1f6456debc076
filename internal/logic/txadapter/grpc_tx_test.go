package txadapter

import (
	"encoding/binary"
	"testing"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/logic/ixdecoder"
	"multisig-decoder-sol/internal/types"
)

func key(b byte) types.Pubkey {
	var p types.Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

func transferData(amount uint64) []byte {
	data := make([]byte, 9)
	data[0] = 3
	binary.LittleEndian.PutUint64(data[1:], amount)
	return data
}

// 账户顺序：[0]=payer(signer,writable) [1]=src [2]=dest [3]=token program，ALT writable [4]=extra
func buildTransferTx() *pb.SubscribeUpdateTransactionInfo {
	payer, src, dest, extra := key(1), key(2), key(3), key(4)
	return &pb.SubscribeUpdateTransactionInfo{
		Index: 5,
		Transaction: &pb.Transaction{
			Signatures: [][]byte{make([]byte, 64)},
			Message: &pb.Message{
				Header: &pb.MessageHeader{
					NumRequiredSignatures:       1,
					NumReadonlySignedAccounts:   0,
					NumReadonlyUnsignedAccounts: 1,
				},
				AccountKeys: [][]byte{payer[:], src[:], dest[:], consts.TokenProgram[:]},
				Instructions: []*pb.CompiledInstruction{
					{ProgramIdIndex: 3, Accounts: []byte{1, 2, 0}, Data: transferData(2_500_000_000)},
					{ProgramIdIndex: 3, Accounts: []byte{1, 4, 0}, Data: []byte{9}},
				},
			},
		},
		Meta: &pb.TransactionStatusMeta{
			LoadedWritableAddresses: [][]byte{extra[:]},
			InnerInstructions: []*pb.InnerInstructions{
				{
					Index: 0,
					Instructions: []*pb.InnerInstruction{
						{ProgramIdIndex: 3, Accounts: []byte{2, 1, 0}, Data: transferData(1)},
					},
				},
			},
			PostTokenBalances: []*pb.TokenBalance{
				{AccountIndex: 1, UiTokenAmount: &pb.UiTokenAmount{Decimals: 9}},
				{AccountIndex: 2, UiTokenAmount: &pb.UiTokenAmount{Decimals: 9}},
			},
			PreTokenBalances: []*pb.TokenBalance{
				{AccountIndex: 1, UiTokenAmount: &pb.UiTokenAmount{Decimals: 2}},
			},
		},
	}
}

func TestAdaptGrpcTx(t *testing.T) {
	adapted, err := AdaptGrpcTx(buildTransferTx())
	require.NoError(t, err)
	require.Len(t, adapted.Instructions, 3)

	outer := adapted.Instructions[0]
	assert.Equal(t, uint16(0), outer.IxIndex)
	assert.Equal(t, uint16(0), outer.InnerIndex)
	assert.Equal(t, consts.TokenProgram, outer.Raw.ProgramID)
	require.Len(t, outer.Raw.Accounts, 3)
	assert.Equal(t, core.AccountMeta{Pubkey: key(2), IsWritable: true}, outer.Raw.Accounts[0])
	assert.Equal(t, core.AccountMeta{Pubkey: key(1), IsSigner: true, IsWritable: true}, outer.Raw.Accounts[2])
	// Post 的精度优先于 Pre
	assert.Equal(t, core.DecimalScale{9, 6, 6, 6}, outer.Scale)

	inner := adapted.Instructions[1]
	assert.Equal(t, uint16(0), inner.IxIndex)
	assert.Equal(t, uint16(1), inner.InnerIndex)

	second := adapted.Instructions[2]
	assert.Equal(t, uint16(1), second.IxIndex)
	assert.Equal(t, core.AccountMeta{Pubkey: key(4), IsWritable: true}, second.Raw.Accounts[1])
	assert.Equal(t, core.DecimalScale{6, 6, 6, 6}, second.Scale)

	decoded := ixdecoder.Decode(outer.Raw, outer.Scale)
	assert.Equal(t, "transfer: amount=2.5", decoded.String())
	assert.Equal(t, "receiver="+key(3).String(), decoded.Context)
}

func TestAdaptGrpcTx_Invalid(t *testing.T) {
	t.Run("missing meta", func(t *testing.T) {
		tx := buildTransferTx()
		tx.Meta = nil
		_, err := AdaptGrpcTx(tx)
		assert.Error(t, err)
	})

	t.Run("account index out of range", func(t *testing.T) {
		tx := buildTransferTx()
		tx.Transaction.Message.Instructions[0].Accounts = []byte{1, 42}
		_, err := AdaptGrpcTx(tx)
		assert.Error(t, err)
	})

	t.Run("bad pubkey length", func(t *testing.T) {
		tx := buildTransferTx()
		tx.Transaction.Message.AccountKeys[1] = []byte{1, 2, 3}
		_, err := AdaptGrpcTx(tx)
		assert.Error(t, err)
	})

	t.Run("bad header", func(t *testing.T) {
		tx := buildTransferTx()
		tx.Transaction.Message.Header.NumRequiredSignatures = 10
		_, err := AdaptGrpcTx(tx)
		assert.Error(t, err)
	})
}

func TestScaleForInstruction_Swap(t *testing.T) {
	accounts := make([]core.AccountMeta, 12)
	for i := range accounts {
		accounts[i] = core.AccountMeta{Pubkey: key(byte(10 + i))}
	}
	decimals := map[types.Pubkey]uint8{
		key(13): 9, // deposit source_a / withdraw reserve_a 不使用
		key(14): 8, // deposit source_b / withdraw pool_source
		key(17): 5, // withdraw dest_a
		key(18): 4, // deposit pool_dest / withdraw dest_b
	}

	deposit := ScaleForInstruction(&core.RawInstruction{
		ProgramID: consts.SaberSwapProgram, Data: []byte{2}, Accounts: accounts,
	}, decimals)
	assert.Equal(t, core.DecimalScale{6, 9, 8, 4}, deposit)

	withdraw := ScaleForInstruction(&core.RawInstruction{
		ProgramID: consts.SaberSwapProgram, Data: []byte{3}, Accounts: accounts,
	}, decimals)
	assert.Equal(t, core.DecimalScale{6, 5, 4, 8}, withdraw)

	unknown := ScaleForInstruction(&core.RawInstruction{ProgramID: key(99), Data: []byte{3}}, decimals)
	assert.Equal(t, core.DefaultDecimalScale(), unknown)
}
