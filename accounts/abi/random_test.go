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
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// typeGen produces random type signatures and matching values from a fixed
// seed, so failures can be replayed.
type typeGen struct {
	rnd *rand.Rand
}

func newTypeGen(seed int64) *typeGen {
	return &typeGen{rnd: rand.New(rand.NewSource(seed))}
}

func (g *typeGen) elementary() string {
	bits := 8 * (1 + g.rnd.Intn(32))
	switch g.rnd.Intn(10) {
	case 0:
		return "bool"
	case 1:
		return fmt.Sprintf("int%d", bits)
	case 2:
		return fmt.Sprintf("uint%d", bits)
	case 3:
		return "address"
	case 4:
		return fmt.Sprintf("bytes%d", 1+g.rnd.Intn(32))
	case 5:
		return "bytes"
	case 6:
		return "string"
	case 7:
		return "function"
	case 8:
		return fmt.Sprintf("fixed%dx%d", bits, 1+g.rnd.Intn(80))
	default:
		return fmt.Sprintf("ufixed%dx%d", bits, 1+g.rnd.Intn(80))
	}
}

// signature returns a type nested at most depth levels deep.
func (g *typeGen) signature(depth int) string {
	var s string
	if depth > 0 && g.rnd.Intn(4) == 0 {
		elems := make([]string, g.rnd.Intn(4))
		for i := range elems {
			elems[i] = g.signature(depth - 1)
		}
		s = "(" + strings.Join(elems, ",") + ")"
	} else {
		s = g.elementary()
	}
	for ; depth > 0 && g.rnd.Intn(3) == 0; depth-- {
		if g.rnd.Intn(2) == 0 {
			s += "[]"
		} else {
			s += fmt.Sprintf("[%d]", g.rnd.Intn(4))
		}
	}
	return s
}

// integer returns a random value in the range of an integer type of the
// given width.
func (g *typeGen) integer(bits int, unsigned bool) *big.Int {
	if !unsigned {
		bits--
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(g.rnd.Intn(bits+1)))
	x := new(big.Int).Rand(g.rnd, limit)
	if !unsigned && g.rnd.Intn(2) == 0 {
		x.Neg(x)
	}
	return x
}

func (g *typeGen) bytes(n int) []byte {
	b := make([]byte, n)
	g.rnd.Read(b)
	return b
}

func (g *typeGen) value(t *Type) interface{} {
	switch t.T {
	case BoolTy:
		return g.rnd.Intn(2) == 1
	case IntTy, UintTy, AddressTy, FixedPointTy:
		x := g.integer(t.Size, t.Unsigned)
		switch t.Kind {
		case KindInt64:
			return x.Int64()
		case KindUint64:
			return x.Uint64()
		case KindDecimal:
			return NewDecimal(x, t.Scale)
		}
		return x
	case FixedBytesTy, FunctionTy:
		return g.bytes(t.Size)
	case BytesTy:
		return g.bytes(g.rnd.Intn(70))
	case StringTy:
		const letters = "abcdefghijklmnopqrstuvwxyz0123456789 äöü"
		runes := []rune(letters)
		s := make([]rune, g.rnd.Intn(40))
		for i := range s {
			s[i] = runes[g.rnd.Intn(len(runes))]
		}
		return string(s)
	case SliceTy, ArrayTy:
		n := t.Size
		if t.T == SliceTy {
			n = g.rnd.Intn(4)
		}
		v, err := t.newArray(n, func(int) (interface{}, error) {
			return g.value(t.Elem), nil
		})
		if err != nil {
			panic(err)
		}
		return v
	case TupleTy:
		values := make(Tuple, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			values[i] = g.value(elem)
		}
		return values
	}
	panic(fmt.Sprintf("no generator for %s", t))
}

func TestRandomRoundTrip(t *testing.T) {
	g := newTypeGen(20250214)
	for i := 0; i < 300; i++ {
		elems := make([]string, 1+g.rnd.Intn(4))
		for j := range elems {
			elems[j] = g.signature(3)
		}
		sig := "(" + strings.Join(elems, ",") + ")"
		typ, err := ParseTupleType(sig)
		require.NoError(t, err, sig)

		for j := 0; j < 10; j++ {
			values := g.value(typ).(Tuple)

			size, err := typ.MeasureEncodedLength(values)
			require.NoError(t, err, "%s %s", sig, values)
			enc, err := typ.Encode(values)
			require.NoError(t, err, "%s %s", sig, values)
			require.Len(t, enc, size, sig)
			require.Equal(t, len(enc), cap(enc), sig)

			dec, err := typ.Decode(enc)
			require.NoError(t, err, "%s %x", sig, enc)
			requireTupleEqual(t, values, dec)

			packed, err := typ.EncodePacked(values)
			require.NoError(t, err, "%s %s", sig, values)
			plen, err := typ.PackedLength(values)
			require.NoError(t, err)
			require.Len(t, packed, plen, sig)

			dec, err = typ.DecodePacked(packed)
			if errors.Is(err, ErrAmbiguousPacked) {
				continue
			}
			require.NoError(t, err, "%s %x", sig, packed)
			requireTupleEqual(t, values, dec)
		}
	}
}
