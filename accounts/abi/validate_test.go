// Copyright 2017 The go-ethereum Authors
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		typ    string
		values Tuple
		path   []int
		msg    string
	}{
		{"(uint8,bool)", Tuple{uint64(1)}, []int{1}, "tuple length mismatch: 1 != 2"},
		{"(uint8)", Tuple{uint64(1), true}, []int{1}, "tuple length mismatch: 2 != 1"},
		{"(uint8)", Tuple{int64(1)}, []int{0}, "cannot use int64 as uint64"},
		{"(uint8[])", Tuple{[]uint64{1, 300}}, []int{0, 1}, "value 300 out of range"},
		{"(int8)", Tuple{int64(-129)}, []int{0}, "value -129 out of range"},
		{"(int8)", Tuple{int64(128)}, []int{0}, "value 128 out of range"},
		{"(uint256)", Tuple{big.NewInt(-1)}, []int{0}, "negative value -1 for unsigned type"},
		{"(int256)", Tuple{new(big.Int).Lsh(big.NewInt(1), 255)}, []int{0}, "exceeds 256 bits"},
		{"(address)", Tuple{new(big.Int).Lsh(big.NewInt(1), 160)}, []int{0}, "exceeds 160 bits"},
		{"(address)", Tuple{(*big.Int)(nil)}, []int{0}, "cannot use *big.Int as *big.Int"},
		{"(bytes2)", Tuple{[]byte{1}}, []int{0}, "length mismatch: 1 != 2"},
		{"(bool[2])", Tuple{[]bool{true}}, []int{0}, "array length mismatch: 1 != 2"},
		{"(bool[])", Tuple{[]uint64{1}}, []int{0}, "cannot use []uint64 as []bool"},
		{"(uint8[][])", Tuple{[]interface{}{[]uint64{1}, []int64{2}}}, []int{0, 1}, "cannot use []int64 as []uint64"},
		{"(string)", Tuple{"\xff"}, []int{0}, "invalid utf-8"},
		{"(fixed128x2)", Tuple{NewDecimal(big.NewInt(1), 3)}, []int{0}, "scale mismatch: 3 != 2"},
		{"((bool,(string)))", Tuple{Tuple{true, Tuple{1}}}, []int{0, 1, 0}, "cannot use int as string"},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			_, err := mustType(t, tt.typ).Encode(tt.values)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.path, verr.Path)
			assert.Contains(t, verr.Msg, tt.msg)
		})
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		typ   string
		value interface{}
		want  int
	}{
		{"bool", true, 32},
		{"bytes", []byte{}, 32},
		{"bytes", make([]byte, 33), 96},
		{"string", "abc", 64},
		{"uint8[]", []uint64{1, 2}, 96},
		{"string[]", []string{"a", ""}, 32 + 64 + 64 + 32},
		{"(bool,string)", Tuple{true, "x"}, 32 + 32 + 64},
		{"()[2]", []Tuple{{}, {}}, 0},
	}
	for _, tt := range tests {
		n, err := mustType(t, tt.typ).Validate(tt.value)
		require.NoError(t, err, tt.typ)
		assert.Equal(t, tt.want, n, tt.typ)
	}
}

func TestValidationErrorString(t *testing.T) {
	_, err := mustType(t, "(uint8[])").Encode(Tuple{[]uint64{1, 300}})
	assert.EqualError(t, err, "abi: invalid uint8 value at [0][1]: value 300 out of range")

	_, err = mustType(t, "uint8").Validate("x")
	assert.EqualError(t, err, "abi: invalid uint8 value: cannot use string as uint64")
}
