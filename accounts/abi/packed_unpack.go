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
	"unicode/utf8"

	"github.com/sunyihoo/abicodec/common"
	"github.com/sunyihoo/abicodec/common/math"
)

// DecodePacked decodes a packed tuple encoding. Packed data carries no
// boundaries, so the layout is only decodable when at most one element in the
// whole type tree has a content dependent size and no array has such
// elements. That element receives whatever the fixed size siblings leave:
// those before it are read from the front, those after it from the back.
// Other layouts fail with ErrAmbiguousPacked regardless of the input.
// DecodePacked 解码紧凑元组编码。只有当整个类型树中至多一个元素的大小取决于内容、且没有数组包含此类元素时，布局才可解码。
func (t *Type) DecodePacked(data []byte) (Tuple, error) {
	if t.T != TupleTy {
		return nil, fmt.Errorf("abi: %s is not a tuple type", t)
	}
	n, err := t.packedDynamicCount()
	if err != nil {
		return nil, err
	}
	if n > 1 {
		return nil, decodeErr(t, 0, ErrAmbiguousPacked, "multiple dynamic elements")
	}
	return t.decodePackedTuple(data, 0, len(data))
}

// packedDynamicCount counts the elements of content dependent packed size
// in the type tree.
func (t *Type) packedDynamicCount() (int, error) {
	switch t.T {
	case BytesTy, StringTy:
		return 1, nil
	case ArrayTy, SliceTy:
		if t.Elem.packedSize < 0 {
			return 0, decodeErr(t, 0, ErrAmbiguousPacked, "array of dynamic elements")
		}
		if t.T == ArrayTy {
			return 0, nil
		}
		if t.Elem.packedSize == 0 {
			return 0, decodeErr(t, 0, ErrAmbiguousPacked, "can't decode dynamic number of zero-length elements")
		}
		return 1, nil
	case TupleTy:
		total := 0
		for _, elem := range t.TupleElems {
			n, err := elem.packedDynamicCount()
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	}
	return 0, nil
}

// decodePacked decodes exactly data[start:end] as a value of t.
func (t *Type) decodePacked(data []byte, start, end int) (interface{}, error) {
	switch t.T {
	case BoolTy:
		return t.fromWord(math.SignExtend(data[start:end], false), start)
	case IntTy, UintTy, AddressTy, FixedPointTy:
		return t.fromWord(math.SignExtend(data[start:end], !t.Unsigned), start)
	case BytesTy, FixedBytesTy, FunctionTy:
		return common.CopyBytes(data[start:end]), nil
	case StringTy:
		if !utf8.Valid(data[start:end]) {
			return nil, decodeErr(t, start, errBadString, "")
		}
		return string(data[start:end]), nil
	case ArrayTy, SliceTy:
		size := t.Elem.packedSize
		n := t.Size
		if t.T == SliceTy {
			if (end-start)%size != 0 {
				return nil, decodeErr(t, start, errBadOffset, "%d bytes is not a multiple of element size %d", end-start, size)
			}
			n = (end - start) / size
		}
		return t.newArray(n, func(i int) (interface{}, error) {
			at := start + i*size
			return t.Elem.decodePacked(data, at, at+size)
		})
	case TupleTy:
		return t.decodePackedTuple(data, start, end)
	}
	return nil, decodeErr(t, start, errUnknownType, "type code %d", t.T)
}

func (t *Type) decodePackedTuple(data []byte, start, end int) (Tuple, error) {
	var (
		values = make(Tuple, len(t.TupleElems))
		dyn    = -1
		pos    = start
		err    error
	)
	for i, elem := range t.TupleElems {
		if elem.packedSize < 0 {
			dyn = i
			break
		}
		if elem.packedSize > end-pos {
			return nil, decodeErr(elem, pos, ErrShortInput, "need %d bytes, have %d", elem.packedSize, end-pos)
		}
		if values[i], err = elem.decodePacked(data, pos, pos+elem.packedSize); err != nil {
			return nil, err
		}
		pos += elem.packedSize
	}
	if dyn < 0 {
		if pos != end {
			return nil, decodeErr(t, pos, errUnconsumed, "%d remaining", end-pos)
		}
		return values, nil
	}
	back := end
	for i := len(t.TupleElems) - 1; i > dyn; i-- {
		elem := t.TupleElems[i]
		if elem.packedSize > back-pos {
			return nil, decodeErr(elem, pos, ErrShortInput, "need %d bytes, have %d", elem.packedSize, back-pos)
		}
		back -= elem.packedSize
		if values[i], err = elem.decodePacked(data, back, back+elem.packedSize); err != nil {
			return nil, err
		}
	}
	if values[dyn], err = t.TupleElems[dyn].decodePacked(data, pos, back); err != nil {
		return nil, err
	}
	return values, nil
}
