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
	"fmt"
	"math/big"

	"github.com/sunyihoo/abicodec/common/math"
)

// PackedLength returns the length of the packed encoding of a tuple value.
// PackedLength 返回元组值紧凑编码的长度。
func (t *Type) PackedLength(values Tuple) (int, error) {
	if _, err := t.MeasureEncodedLength(values); err != nil {
		return 0, err
	}
	return t.packedLength(values), nil
}

// EncodePacked returns the non-standard packed encoding of a tuple value:
// integers and fixed point numbers take their declared width in bytes, bools
// one byte, addresses twenty; bytes and strings are copied raw; array
// elements and tuple fields follow each other with no padding, offsets or
// length prefixes.
// EncodePacked 返回元组值的非标准紧凑编码：没有填充、偏移量或长度前缀。
func (t *Type) EncodePacked(values Tuple) ([]byte, error) {
	n, err := t.PackedLength(values)
	if err != nil {
		return nil, err
	}
	return t.encodePacked(values, make([]byte, 0, n)), nil
}

func (t *Type) packedLength(v interface{}) int {
	if t.packedSize >= 0 {
		return t.packedSize
	}
	switch t.T {
	case BytesTy:
		return len(v.([]byte))
	case StringTy:
		return len(v.(string))
	case ArrayTy, SliceTy:
		return t.packedArrayLength(v)
	case TupleTy:
		n := 0
		for i, elem := range t.TupleElems {
			n += elem.packedLength(v.(Tuple)[i])
		}
		return n
	}
	panic(fmt.Sprintf("abi: cannot measure %T as %s", v, t))
}

func (t *Type) packedArrayLength(v interface{}) int {
	switch vals := v.(type) {
	case [][]byte:
		return packedElemsLength(t.Elem, vals)
	case []string:
		return packedElemsLength(t.Elem, vals)
	case []Tuple:
		return packedElemsLength(t.Elem, vals)
	case []interface{}:
		return packedElemsLength(t.Elem, vals)
	case []bool:
		return len(vals) * t.Elem.packedSize
	case []int64:
		return len(vals) * t.Elem.packedSize
	case []uint64:
		return len(vals) * t.Elem.packedSize
	case []*big.Int:
		return len(vals) * t.Elem.packedSize
	case []*Decimal:
		return len(vals) * t.Elem.packedSize
	}
	panic(fmt.Sprintf("abi: cannot measure %T as %s", v, t))
}

func packedElemsLength[E any](elem *Type, vals []E) int {
	if elem.packedSize >= 0 {
		return len(vals) * elem.packedSize
	}
	n := 0
	for _, v := range vals {
		n += elem.packedLength(v)
	}
	return n
}

func (t *Type) encodePacked(v interface{}, buf []byte) []byte {
	switch t.T {
	case BoolTy:
		if v.(bool) {
			return append(buf, 1)
		}
		return append(buf, 0)
	case IntTy, UintTy, AddressTy, FixedPointTy:
		buf = append(buf, zeroWord[:t.packedSize]...)
		dst := buf[len(buf)-t.packedSize:]
		switch x := v.(type) {
		case int64:
			math.PutInt64(dst, x)
		case uint64:
			math.PutUint64(dst, x)
		case *big.Int:
			math.PutBig(dst, x)
		case *Decimal:
			math.PutBig(dst, x.Unscaled)
		}
		return buf
	case BytesTy, FixedBytesTy, FunctionTy:
		return append(buf, v.([]byte)...)
	case StringTy:
		return append(buf, v.(string)...)
	case ArrayTy, SliceTy:
		switch vals := v.(type) {
		case []bool:
			return encodePackedElems(t.Elem, vals, buf)
		case []int64:
			return encodePackedElems(t.Elem, vals, buf)
		case []uint64:
			return encodePackedElems(t.Elem, vals, buf)
		case []*big.Int:
			return encodePackedElems(t.Elem, vals, buf)
		case []*Decimal:
			return encodePackedElems(t.Elem, vals, buf)
		case [][]byte:
			return encodePackedElems(t.Elem, vals, buf)
		case []string:
			return encodePackedElems(t.Elem, vals, buf)
		case []Tuple:
			return encodePackedElems(t.Elem, vals, buf)
		case []interface{}:
			return encodePackedElems(t.Elem, vals, buf)
		}
	case TupleTy:
		for i, elem := range t.TupleElems {
			buf = elem.encodePacked(v.(Tuple)[i], buf)
		}
		return buf
	}
	panic(fmt.Sprintf("abi: cannot encode %T as %s", v, t))
}

func encodePackedElems[E any](elem *Type, vals []E, buf []byte) []byte {
	for _, v := range vals {
		buf = elem.encodePacked(v, buf)
	}
	return buf
}
