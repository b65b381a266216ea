// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.
package abi

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunyihoo/abicodec/common/hexutil"
)

func TestFunctionSelector(t *testing.T) {
	tests := []struct {
		sig, canonical, id string
	}{
		{"transfer(address,uint)", "transfer(address,uint256)", "0xa9059cbb"},
		{"baz(uint32,bool)", "baz(uint32,bool)", "0xcdcd77c0"},
		{"sam(bytes,bool,uint[])", "sam(bytes,bool,uint256[])", "0xa5643bf2"},
		{"f(uint,uint32[],bytes10,bytes)", "f(uint256,uint32[],bytes10,bytes)", "0x8be65246"},
	}
	for _, tt := range tests {
		fn, err := ParseFunction(tt.sig, "")
		require.NoError(t, err, tt.sig)
		assert.Equal(t, tt.canonical, fn.Sig)
		assert.Equal(t, tt.id, hexutil.Encode(fn.ID))
	}
}

func TestParseFunctionErrors(t *testing.T) {
	for _, sig := range []string{"", "1f()", "f", "f(uint8", "f(uint8)x", "f uint8"} {
		_, err := ParseFunction(sig, "")
		assert.Error(t, err, sig)
	}
	_, err := ParseFunction("f()", "uint8")
	assert.Error(t, err)

	_, err = NewFunction("f", mustType(t, "bool"), nil)
	assert.Error(t, err)
	_, err = NewFunction("f-g", mustType(t, "()"), nil)
	assert.Error(t, err)
}

func TestEncodeCall(t *testing.T) {
	fn, err := ParseFunction("baz(uint32,bool)", "(bool)")
	require.NoError(t, err)
	assert.Equal(t, "baz(uint32,bool) returns (bool)", fn.String())

	args := Tuple{uint64(69), true}
	n, err := fn.CallLength(args)
	require.NoError(t, err)
	assert.Equal(t, 68, n)

	data, err := fn.EncodeCall(args)
	require.NoError(t, err)
	assert.Equal(t, hexBytes("cdcd77c0", uintWord(0x45), uintWord(1)), data)

	dec, err := fn.DecodeCall(data)
	require.NoError(t, err)
	requireTupleEqual(t, args, dec)

	ret, err := fn.EncodeReturn(Tuple{true})
	require.NoError(t, err)
	out, err := fn.DecodeReturn(ret)
	require.NoError(t, err)
	requireTupleEqual(t, Tuple{true}, out)
}

func TestEncodeCallDynamic(t *testing.T) {
	fn, err := ParseFunction("sam(bytes,bool,uint[])", "")
	require.NoError(t, err)
	data, err := fn.EncodeCall(standardTests[4].values)
	require.NoError(t, err)
	assert.Equal(t, append(hexBytes("a5643bf2"), standardTests[4].want...), data)
}

func TestDecodeCallErrors(t *testing.T) {
	fn, err := ParseFunction("baz(uint32,bool)", "")
	require.NoError(t, err)

	_, err = fn.DecodeCall([]byte{0xcd, 0xcd})
	assert.True(t, errors.Is(err, ErrShortInput), "got %v", err)

	_, err = fn.DecodeCall(hexBytes("a9059cbb", uintWord(0x45), uintWord(1)))
	assert.True(t, errors.Is(err, ErrSelectorMismatch), "got %v", err)

	_, err = fn.DecodeCall(hexBytes("cdcd77c0", uintWord(0x45)))
	assert.True(t, errors.Is(err, ErrShortInput), "got %v", err)

	_, err = fn.EncodeCall(Tuple{big.NewInt(69), true})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestFormatCall(t *testing.T) {
	out, err := FormatCall(hexBytes("cdcd77c0", uintWord(0x45), uintWord(1)))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID       0xcdcd77c0", lines[0])
	assert.Equal(t, "0        "+uintWord(0x45), lines[1])
	assert.Equal(t, "20       "+uintWord(1), lines[2])

	_, err = FormatCall([]byte{1})
	assert.Error(t, err)
	_, err = Format(make([]byte, 33))
	assert.Error(t, err)
}
