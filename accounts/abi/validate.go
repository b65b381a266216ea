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
	"unicode/utf8"

	"github.com/sunyihoo/abicodec/common"
	"github.com/sunyihoo/abicodec/common/math"
)

// Validate checks that v is a well-formed value of t and returns the exact
// length of its standard encoding. The check covers the Go representation,
// numeric ranges, fixed lengths and UTF-8 validity of strings.
// Validate 检查 v 是否为 t 的格式正确的值，并返回其标准编码的精确长度。
func (t *Type) Validate(v interface{}) (int, error) {
	n, err := t.validate(v)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// MeasureEncodedLength returns the length of the standard encoding of a tuple
// value without encoding it.
func (t *Type) MeasureEncodedLength(values Tuple) (int, error) {
	if t.T != TupleTy {
		return 0, fmt.Errorf("abi: %s is not a tuple type", t)
	}
	return t.Validate(values)
}

func (t *Type) validate(v interface{}) (int, *ValidationError) {
	switch t.T {
	case BoolTy:
		if _, ok := v.(bool); !ok {
			return 0, typeErr(t, v)
		}
		return wordSize, nil
	case IntTy, UintTy, AddressTy:
		return wordSize, t.validateInteger(v)
	case FixedPointTy:
		d, ok := v.(*Decimal)
		if !ok || d == nil || d.Unscaled == nil {
			return 0, typeErr(t, v)
		}
		if d.Scale != t.Scale {
			return 0, invalid(t, "scale mismatch: %d != %d", d.Scale, t.Scale)
		}
		return wordSize, t.checkBig(d.Unscaled)
	case FixedBytesTy, FunctionTy:
		b, ok := v.([]byte)
		if !ok {
			return 0, typeErr(t, v)
		}
		if len(b) != t.Size {
			return 0, invalid(t, "length mismatch: %d != %d", len(b), t.Size)
		}
		return wordSize, nil
	case BytesTy:
		b, ok := v.([]byte)
		if !ok {
			return 0, typeErr(t, v)
		}
		return wordSize + common.PaddedLength(len(b)), nil
	case StringTy:
		s, ok := v.(string)
		if !ok {
			return 0, typeErr(t, v)
		}
		if !utf8.ValidString(s) {
			return 0, invalid(t, "invalid utf-8")
		}
		return wordSize + common.PaddedLength(len(s)), nil
	case ArrayTy, SliceTy:
		return t.validateArray(v)
	case TupleTy:
		tuple, ok := v.(Tuple)
		if !ok {
			return 0, typeErr(t, v)
		}
		return t.validateTuple(tuple)
	default:
		return 0, invalid(t, "unknown type code %d", t.T)
	}
}

func (t *Type) validateInteger(v interface{}) *ValidationError {
	switch t.Kind {
	case KindInt64:
		x, ok := v.(int64)
		if !ok {
			return typeErr(t, v)
		}
		if t.Size < 64 {
			if limit := int64(1) << (t.Size - 1); x < -limit || x >= limit {
				return invalid(t, "value %d out of range", x)
			}
		}
	case KindUint64:
		x, ok := v.(uint64)
		if !ok {
			return typeErr(t, v)
		}
		if t.Size < 64 && x>>t.Size != 0 {
			return invalid(t, "value %d out of range", x)
		}
	default:
		x, ok := v.(*big.Int)
		if !ok || x == nil {
			return typeErr(t, v)
		}
		return t.checkBig(x)
	}
	return nil
}

// checkBig verifies that x fits the declared width: the two's complement bit
// length for signed types, the plain bit length of a non-negative value for
// unsigned ones.
// checkBig 验证 x 是否符合声明的位宽。
func (t *Type) checkBig(x *big.Int) *ValidationError {
	if t.Unsigned {
		if x.Sign() < 0 {
			return invalid(t, "negative value %s for unsigned type", x)
		}
		if x.BitLen() > t.Size {
			return invalid(t, "value %s exceeds %d bits", x, t.Size)
		}
		return nil
	}
	if bitlen := math.SignedBitLen(x); bitlen > t.Size-1 {
		return invalid(t, "value %s exceeds %d bits", x, t.Size)
	}
	return nil
}

// validateArray dispatches on the Go slice type, which must agree with the
// element type of t.
func (t *Type) validateArray(v interface{}) (int, *ValidationError) {
	var (
		body int
		err  *ValidationError
		elem = t.Elem
	)
	switch vals := v.(type) {
	case []bool:
		body, err = validateElems(t, vals, elem.T == BoolTy)
	case []int64:
		body, err = validateElems(t, vals, elem.Kind == KindInt64)
	case []uint64:
		body, err = validateElems(t, vals, elem.Kind == KindUint64)
	case []*big.Int:
		body, err = validateElems(t, vals, elem.Kind == KindBigInt)
	case []*Decimal:
		body, err = validateElems(t, vals, elem.Kind == KindDecimal)
	case [][]byte:
		body, err = validateElems(t, vals, elem.isByteString())
	case []string:
		body, err = validateElems(t, vals, elem.T == StringTy)
	case []Tuple:
		body, err = validateElems(t, vals, elem.T == TupleTy)
	case []interface{}:
		body, err = validateElems(t, vals, elem.T == ArrayTy || elem.T == SliceTy)
	default:
		return 0, typeErr(t, v)
	}
	if err != nil {
		return 0, err
	}
	if t.T == SliceTy {
		return wordSize + body, nil
	}
	return body, nil
}

func validateElems[E any](t *Type, vals []E, match bool) (int, *ValidationError) {
	if !match {
		return 0, typeErr(t, vals)
	}
	if t.T == ArrayTy && len(vals) != t.Size {
		return 0, invalid(t, "array length mismatch: %d != %d", len(vals), t.Size)
	}
	if t.Elem.headSize == 0 && len(vals) > maxZeroSizeElems {
		return 0, invalid(t, "%d zero-length elements exceed %d", len(vals), maxZeroSizeElems)
	}
	body := 0
	for i, v := range vals {
		n, err := t.Elem.validate(v)
		if err != nil {
			return 0, err.at(i)
		}
		if t.Elem.dynamic {
			body += wordSize
		}
		body += n
	}
	return body, nil
}

func (t *Type) validateTuple(values Tuple) (int, *ValidationError) {
	if len(values) != len(t.TupleElems) {
		err := invalid(t, "tuple length mismatch: %d != %d", len(values), len(t.TupleElems))
		return 0, err.at(min(len(values), len(t.TupleElems)))
	}
	total := 0
	for i, elem := range t.TupleElems {
		n, err := elem.validate(values[i])
		if err != nil {
			return 0, err.at(i)
		}
		if elem.dynamic {
			total += wordSize
		}
		total += n
	}
	return total, nil
}
