package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadU64(t *testing.T) {
	data := make([]byte, 9)
	data[0] = 3
	binary.LittleEndian.PutUint64(data[1:], 1_000_000)

	v, ok := ReadU64(data, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(1_000_000), v)

	_, ok = ReadU64(data, 2)
	assert.False(t, ok)
	_, ok = ReadU64(data, -1)
	assert.False(t, ok)
}

func TestDecodeLayout(t *testing.T) {
	data := make([]byte, 1+SwapAmountsLayoutSize)
	data[0] = 2
	binary.LittleEndian.PutUint64(data[1:], 11)
	binary.LittleEndian.PutUint64(data[9:], 22)
	binary.LittleEndian.PutUint64(data[17:], math.MaxUint64)

	var layout SwapAmountsLayout
	assert.True(t, DecodeLayout(data, SwapAmountsLayoutSize, &layout))
	assert.Equal(t, SwapAmountsLayout{Value1: 11, Value2: 22, Value3: math.MaxUint64}, layout)

	var short SwapAmountsLayout
	assert.False(t, DecodeLayout(data[:24], SwapAmountsLayoutSize, &short))
	assert.Equal(t, SwapAmountsLayout{}, short)
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		raw      uint64
		decimals uint8
		want     string
	}{
		{1_000_000, 6, "1"},
		{500_000, 6, "0.5"},
		{0, 6, "0"},
		{1, 9, "0.000000001"},
		{123, 0, "123"},
		{math.MaxUint64, 6, "18446744073709.551615"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.raw, tc.decimals))
	}
}

func TestReadPubkeyBytes(t *testing.T) {
	data := make([]byte, 64)
	data[32] = 1

	b, ok := ReadPubkeyBytes(data, 32)
	assert.True(t, ok)
	assert.Len(t, b, 32)
	assert.Equal(t, byte(1), b[0])

	_, ok = ReadPubkeyBytes(data, 33)
	assert.False(t, ok)
}
