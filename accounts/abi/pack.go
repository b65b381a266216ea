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
	"fmt"
	"math/big"

	"github.com/sunyihoo/abicodec/common"
	"github.com/sunyihoo/abicodec/common/math"
)

var zeroWord [wordSize]byte

// Encode returns the standard encoding of a tuple value. The value is
// validated in full before any byte is written, and the output buffer is
// allocated once at its exact size.
// Encode 返回元组值的标准编码。在写入任何字节之前会完整验证该值，输出缓冲区按精确大小一次性分配。
func (t *Type) Encode(values Tuple) ([]byte, error) {
	n, err := t.MeasureEncodedLength(values)
	if err != nil {
		return nil, err
	}
	return t.encode(values, make([]byte, 0, n)), nil
}

// encode appends the encoding of a validated value to buf. For dynamic types
// this is the tail, for static types the value itself.
// encode 将已验证值的编码追加到 buf。动态类型为尾部，静态类型为值本身。
func (t *Type) encode(v interface{}, buf []byte) []byte {
	switch t.T {
	case BoolTy:
		if v.(bool) {
			return appendUint64Word(buf, 1)
		}
		return append(buf, zeroWord[:]...)
	case IntTy, UintTy, AddressTy:
		switch x := v.(type) {
		case int64:
			return appendInt64Word(buf, x)
		case uint64:
			return appendUint64Word(buf, x)
		case *big.Int:
			return appendBigWord(buf, x)
		}
	case FixedPointTy:
		return appendBigWord(buf, v.(*Decimal).Unscaled)
	case FixedBytesTy, FunctionTy:
		return appendPadded(buf, v.([]byte))
	case BytesTy:
		b := v.([]byte)
		return appendPadded(appendUint64Word(buf, uint64(len(b))), b)
	case StringTy:
		s := v.(string)
		return appendPadded(appendUint64Word(buf, uint64(len(s))), []byte(s))
	case ArrayTy, SliceTy:
		return t.encodeArray(v, buf)
	case TupleTy:
		return t.encodeTuple(v.(Tuple), buf)
	}
	// unreachable for validated values
	panic(fmt.Sprintf("abi: cannot encode %T as %s", v, t))
}

// encodeTuple writes the head region and then the tails of the dynamic
// elements in declaration order:
//
//	enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
//
// A dynamic element's head is the offset of its tail from the start of the
// tuple encoding. Heads are written with a zero placeholder and patched once
// the tail position is known.
// encodeTuple 先写入头部区域，然后按声明顺序写入动态元素的尾部。
func (t *Type) encodeTuple(values Tuple, buf []byte) []byte {
	start := len(buf)
	for i, elem := range t.TupleElems {
		if elem.dynamic {
			buf = append(buf, zeroWord[:]...)
		} else {
			buf = elem.encode(values[i], buf)
		}
	}
	if !t.dynamic {
		return buf
	}
	head := start
	for i, elem := range t.TupleElems {
		if elem.dynamic {
			math.PutUint64(buf[head:head+wordSize], uint64(len(buf)-start))
			buf = elem.encode(values[i], buf)
		}
		head += elem.headSize
	}
	return buf
}

// encodeArray writes an array body, preceded by the element count for
// dynamic-length arrays.
func (t *Type) encodeArray(v interface{}, buf []byte) []byte {
	switch vals := v.(type) {
	case []bool:
		return encodeElems(t, vals, buf)
	case []int64:
		return encodeElems(t, vals, buf)
	case []uint64:
		return encodeElems(t, vals, buf)
	case []*big.Int:
		return encodeElems(t, vals, buf)
	case []*Decimal:
		return encodeElems(t, vals, buf)
	case [][]byte:
		return encodeElems(t, vals, buf)
	case []string:
		return encodeElems(t, vals, buf)
	case []Tuple:
		return encodeElems(t, vals, buf)
	case []interface{}:
		return encodeElems(t, vals, buf)
	}
	panic(fmt.Sprintf("abi: cannot encode %T as %s", v, t))
}

// encodeElems lays out array elements like the fields of a tuple of
// len(vals) copies of the element type. Offsets of dynamic elements are
// relative to the first element, after the count word.
func encodeElems[E any](t *Type, vals []E, buf []byte) []byte {
	if t.T == SliceTy {
		buf = appendUint64Word(buf, uint64(len(vals)))
	}
	elem := t.Elem
	if !elem.dynamic {
		for _, v := range vals {
			buf = elem.encode(v, buf)
		}
		return buf
	}
	start := len(buf)
	for range vals {
		buf = append(buf, zeroWord[:]...)
	}
	for i, v := range vals {
		head := start + i*wordSize
		math.PutUint64(buf[head:head+wordSize], uint64(len(buf)-start))
		buf = elem.encode(v, buf)
	}
	return buf
}

func appendUint64Word(buf []byte, v uint64) []byte {
	buf = append(buf, zeroWord[:]...)
	math.PutUint64(buf[len(buf)-wordSize:], v)
	return buf
}

func appendInt64Word(buf []byte, v int64) []byte {
	buf = append(buf, zeroWord[:]...)
	math.PutInt64(buf[len(buf)-wordSize:], v)
	return buf
}

func appendBigWord(buf []byte, v *big.Int) []byte {
	buf = append(buf, zeroWord[:]...)
	math.PutBig(buf[len(buf)-wordSize:], v)
	return buf
}

// appendPadded appends b right-padded with zeros to a word boundary.
func appendPadded(buf []byte, b []byte) []byte {
	buf = append(buf, b...)
	return append(buf, zeroWord[:common.PaddedLength(len(b))-len(b)]...)
}
