package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/internal/types"
)

type accountInput struct {
	Pubkey     string `yaml:"pubkey"`
	IsSigner   bool   `yaml:"isSigner"`
	IsWritable bool   `yaml:"isWritable"`
}

type instructionInput struct {
	ProgramID string         `yaml:"programId"`
	Data      string         `yaml:"data"` // base64
	Accounts  []accountInput `yaml:"accounts"`
	Scale     []int          `yaml:"scale"`
}

type batchInput struct {
	Instructions []instructionInput `yaml:"instructions"`
}

// batchItem 是一条已转换为解码器输入的指令
type batchItem struct {
	Raw   core.RawInstruction
	Scale core.DecimalScale // nil 表示使用配置中的默认精度
}

func readBatch(r io.Reader) ([]batchItem, error) {
	var in batchInput
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}

	items := make([]batchItem, 0, len(in.Instructions))
	for i, ix := range in.Instructions {
		item, err := ix.toItem()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (ix *instructionInput) toItem() (batchItem, error) {
	programID, err := types.TryPubkeyFromBase58(ix.ProgramID)
	if err != nil {
		return batchItem{}, fmt.Errorf("programId: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(ix.Data)
	if err != nil {
		return batchItem{}, fmt.Errorf("data: %w", err)
	}

	accounts := make([]core.AccountMeta, 0, len(ix.Accounts))
	for j, a := range ix.Accounts {
		pk, err := types.TryPubkeyFromBase58(a.Pubkey)
		if err != nil {
			return batchItem{}, fmt.Errorf("account %d: %w", j, err)
		}
		accounts = append(accounts, core.AccountMeta{Pubkey: pk, IsSigner: a.IsSigner, IsWritable: a.IsWritable})
	}

	var scale core.DecimalScale
	if len(ix.Scale) > 0 {
		scale = make(core.DecimalScale, 0, len(ix.Scale))
		for _, v := range ix.Scale {
			if v < 0 || v > math.MaxUint8 {
				return batchItem{}, fmt.Errorf("scale value %d out of range", v)
			}
			scale = append(scale, uint8(v))
		}
		scale = scale.Normalize()
	}

	return batchItem{
		Raw: core.RawInstruction{
			ProgramID: programID,
			Data:      data,
			Accounts:  accounts,
		},
		Scale: scale,
	}, nil
}
