// Copyright 2015 The go-ethereum Authors
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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func mustType(t testing.TB, signature string) *Type {
	t.Helper()
	typ, err := ParseType(signature)
	require.NoError(t, err, signature)
	return typ
}

func TestParseTypeCanonical(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
		dynamic   bool
		static    int
	}{
		{"bool", "bool", false, 32},
		{"uint", "uint256", false, 32},
		{"int", "int256", false, 32},
		{"int8", "int8", false, 32},
		{"address", "address", false, 32},
		{"fixed", "fixed128x18", false, 32},
		{"ufixed", "ufixed128x18", false, 32},
		{"ufixed256x47", "ufixed256x47", false, 32},
		{"bytes32", "bytes32", false, 32},
		{"function", "function", false, 32},
		{"bytes", "bytes", true, 32},
		{"string", "string", true, 32},
		{"uint[3]", "uint256[3]", false, 96},
		{"uint8[]", "uint8[]", true, 32},
		{"string[2]", "string[2]", true, 32},
		{"(bool,uint)", "(bool,uint256)", false, 64},
		{"()", "()", false, 0},
		{"()[]", "()[]", true, 32},
		{"(int16)[2][][1]", "(int16)[2][][1]", true, 32},
		{"((int,(bytes1)[2]),fixed[0])", "((int256,(bytes1)[2]),fixed128x18[0])", false, 96},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ := mustType(t, tt.input)
			assert.Equal(t, tt.canonical, typ.String())
			assert.Equal(t, tt.dynamic, typ.IsDynamic())
			assert.Equal(t, tt.static, typ.StaticLength())
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"", "empty parameter"},
		{"(bool,)", "empty parameter"},
		{"(,bool)", "empty parameter"},
		{"(bool", "unterminated tuple"},
		{"uint8[2", "unterminated array"},
		{"uint8[02]", "illegal array length"},
		{"uint8[-1]", "illegal array length"},
		{"uint7", "unrecognized type"},
		{"int264", "unrecognized type"},
		{"bytes33", "unrecognized type"},
		{"bytes0", "unrecognized type"},
		{"fixed128x0", "unsupported fixed point scale"},
		{"fixed128x81", "unsupported fixed point scale"},
		{"fixed0128x18", "illegal fixed point width"},
		{"fixed7x18", "unsupported fixed point width"},
		{"bool)", "unexpected string ')'"},
		{"bool ", "unexpected string ' '"},
		{"(bool;uint8)", "illegal character ';'"},
		{"$x", "illegal character '$'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseType(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestElementaryTypes(t *testing.T) {
	typ := mustType(t, "int72")
	assert.Equal(t, IntTy, typ.T)
	assert.Equal(t, KindBigInt, typ.Kind)
	assert.Equal(t, 72, typ.Size)
	assert.False(t, typ.Unsigned)

	typ = mustType(t, "uint64")
	assert.Equal(t, KindUint64, typ.Kind)
	assert.True(t, typ.Unsigned)

	typ = mustType(t, "address")
	assert.Equal(t, AddressTy, typ.T)
	assert.Equal(t, 160, typ.Size)
	assert.True(t, typ.Unsigned)

	typ = mustType(t, "fixed64x10")
	assert.Equal(t, FixedPointTy, typ.T)
	assert.Equal(t, KindDecimal, typ.Kind)
	assert.Equal(t, 64, typ.Size)
	assert.Equal(t, 10, typ.Scale)

	typ = mustType(t, "bytes7")
	assert.Equal(t, FixedBytesTy, typ.T)
	assert.Equal(t, KindArray, typ.Kind)
	assert.Equal(t, 7, typ.Size)
	assert.Equal(t, ByteTy, typ.Elem.T)

	assert.Equal(t, 24, NewFunctionType().Size)
	assert.Equal(t, DynamicLength, NewBytesType().Size)
	assert.Same(t, mustType(t, "uint"), mustType(t, "uint256"))
	assert.Same(t, NewStringType(), mustType(t, "string"))
}

func TestConstructors(t *testing.T) {
	u8, err := NewIntType(8, true)
	require.NoError(t, err)
	arr, err := NewArrayType(u8, 3)
	require.NoError(t, err)
	slice, err := NewArrayType(arr, DynamicLength)
	require.NoError(t, err)
	tuple, err := NewTupleType(NewBoolType(), slice, NewAddressType())
	require.NoError(t, err)

	assert.Equal(t, "(bool,uint8[3][],address)", tuple.String())
	assert.Equal(t, SliceTy, slice.T)
	assert.True(t, tuple.IsDynamic())
	assert.Equal(t, 96, arr.StaticLength())

	_, err = NewIntType(12, false)
	assert.Error(t, err)
	_, err = NewFixedBytesType(33)
	assert.Error(t, err)
	_, err = NewArrayType(u8, -2)
	assert.Error(t, err)
	_, err = NewArrayType(nil, 1)
	assert.Error(t, err)
	_, err = NewTupleType(u8, nil)
	assert.Error(t, err)

	big, err := NewArrayType(mustType(t, "uint256"), 1<<26)
	require.NoError(t, err)
	_, err = NewArrayType(big, 1<<26)
	assert.ErrorContains(t, err, "too large")
	// Dynamic arrays only take one head word regardless of the element size.
	_, err = NewArrayType(big, DynamicLength)
	assert.NoError(t, err)
}

func TestNewTupleTypeCopiesElems(t *testing.T) {
	elems := []*Type{NewBoolType(), NewStringType()}
	tuple, err := NewTupleType(elems...)
	require.NoError(t, err)

	elems[1] = NewAddressType()
	assert.Equal(t, "(bool,string)", tuple.String())
	assert.Equal(t, StringTy, tuple.TupleElems[1].T)
	assert.True(t, tuple.IsDynamic())
}

func TestSubTuple(t *testing.T) {
	typ := mustType(t, "(bool,string,uint8,bytes)")

	sub, err := typ.SubTuple([]bool{true, false, true, false}, false)
	require.NoError(t, err)
	assert.Equal(t, "(bool,uint8)", sub.String())
	assert.False(t, sub.IsDynamic())

	sub, err = typ.SubTuple([]bool{true, false, true, false}, true)
	require.NoError(t, err)
	assert.Equal(t, "(string,bytes)", sub.String())

	_, err = typ.SubTuple([]bool{true}, false)
	assert.ErrorContains(t, err, "manifest length mismatch")
	_, err = mustType(t, "bool").SubTuple(nil, false)
	assert.Error(t, err)
}

func TestParseTupleType(t *testing.T) {
	_, err := ParseTupleType("uint8[]")
	assert.ErrorContains(t, err, "not a tuple type")

	typ, err := TupleTypeOf("uint", "string[]", "(bool)")
	require.NoError(t, err)
	assert.Equal(t, "(uint256,string[],(bool))", typ.String())
}

func TestRegistryConcurrentGrowth(t *testing.T) {
	before := registeredTypes()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for scale := 1; scale <= 40; scale++ {
				name := fmt.Sprintf("fixed%dx%d", 8*(scale%4+1), scale)
				a, err := ParseType(name)
				if err != nil {
					return err
				}
				b, err := ParseType(name + "[]")
				if err != nil {
					return err
				}
				if a != b.Elem {
					return fmt.Errorf("%s registered twice", name)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.GreaterOrEqual(t, registeredTypes(), before)
	assert.LessOrEqual(t, registeredTypes(), before+40)
}
