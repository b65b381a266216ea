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

	"github.com/holiman/uint256"
	"github.com/sunyihoo/abicodec/common"
	"github.com/sunyihoo/abicodec/common/math"
)

// maxLength bounds offsets and lengths read from the input to the
// non-negative int32 range.
const maxLength = 1<<31 - 1

// decoder is a read cursor over an encoding. It never reads past the end of
// data.
type decoder struct {
	data []byte
	pos  int
}

// take returns the next n bytes and advances the cursor.
func (d *decoder) take(t *Type, n int) ([]byte, error) {
	if n > len(d.data)-d.pos {
		return nil, decodeErr(t, d.pos, ErrShortInput, "need %d bytes, have %d", n, len(d.data)-d.pos)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readLength reads an offset or length word, which must fit a non-negative
// int32.
// readLength 读取偏移量或长度字，其值必须在非负 int32 范围内。
func (d *decoder) readLength(t *Type) (int, error) {
	at := d.pos
	word, err := d.take(t, wordSize)
	if err != nil {
		return 0, err
	}
	u := math.ReadWord(word)
	if !u.IsUint64() || u.Uint64() > maxLength {
		return 0, decodeErr(t, at, errBadOffset, "%s exceeds %d", u.Dec(), maxLength)
	}
	return int(u.Uint64()), nil
}

// checkPadding rejects non-zero bytes after the first n bytes of a padded
// byte string, which the encoder never writes.
func checkPadding(t *Type, padded []byte, n, at int) error {
	for i, b := range padded[n:] {
		if b != 0 {
			return decodeErr(t, at+n+i, errBadPadding, "byte %#x", b)
		}
	}
	return nil
}

// Decode decodes the standard encoding of a tuple value. Decoding is strict
// and sequential: the tails of dynamic elements must follow the head region
// in declaration order with no gaps, as the encoder writes them. Offset words
// are range checked but not followed. An offset of exactly zero marks the
// element as absent and leaves it nil; canonical encodings never contain one.
// The padding of byte strings must be zero. Input left over after the tuple
// is an error.
// Decode 解码元组值的标准编码。解码是严格且顺序的：动态元素的尾部必须按声明顺序紧跟在头部区域之后，中间没有间隙。
// 偏移字只做范围检查，不会跳转。恰好为零的偏移量表示该元素缺失并保留为 nil。
func (t *Type) Decode(data []byte) (Tuple, error) {
	if t.T != TupleTy {
		return nil, fmt.Errorf("abi: %s is not a tuple type", t)
	}
	d := &decoder{data: data}
	values, err := t.decodeTuple(d)
	if err != nil {
		return nil, err
	}
	if remaining := len(data) - d.pos; remaining != 0 {
		return nil, decodeErr(t, d.pos, errUnconsumed, "%d remaining", remaining)
	}
	return values, nil
}

func (t *Type) decode(d *decoder) (interface{}, error) {
	switch t.T {
	case BoolTy, IntTy, UintTy, AddressTy, FixedPointTy:
		at := d.pos
		word, err := d.take(t, wordSize)
		if err != nil {
			return nil, err
		}
		return t.fromWord(math.ReadWord(word), at)
	case FixedBytesTy, FunctionTy:
		at := d.pos
		word, err := d.take(t, wordSize)
		if err != nil {
			return nil, err
		}
		if err := checkPadding(t, word, t.Size, at); err != nil {
			return nil, err
		}
		return common.CopyBytes(word[:t.Size]), nil
	case BytesTy, StringTy:
		n, err := d.readLength(t)
		if err != nil {
			return nil, err
		}
		at := d.pos
		content, err := d.take(t, common.PaddedLength(n))
		if err != nil {
			return nil, err
		}
		if err := checkPadding(t, content, n, at); err != nil {
			return nil, err
		}
		if t.T == BytesTy {
			return common.CopyBytes(content[:n]), nil
		}
		if !utf8.Valid(content[:n]) {
			return nil, decodeErr(t, at, errBadString, "")
		}
		return string(content[:n]), nil
	case SliceTy:
		n, err := d.readLength(t)
		if err != nil {
			return nil, err
		}
		return t.decodeArray(d, n)
	case ArrayTy:
		return t.decodeArray(d, t.Size)
	case TupleTy:
		return t.decodeTuple(d)
	default:
		return nil, decodeErr(t, d.pos, errUnknownType, "type code %d", t.T)
	}
}

// fromWord converts an elementary word to its Go value, rejecting words with
// more significant bits than the type allows. Signed types read the word as
// two's complement.
// fromWord 将基本类型的字转换为其 Go 值，拒绝有效位数超过类型允许范围的字。有符号类型按二进制补码读取。
func (t *Type) fromWord(u *uint256.Int, at int) (interface{}, error) {
	if t.T == BoolTy {
		if !u.IsUint64() || u.Uint64() > 1 {
			return nil, decodeErr(t, at, errBadBool, "")
		}
		return u.Uint64() == 1, nil
	}
	signed := !t.Unsigned
	bitlen := math.WordBitLen(u, signed)
	if (signed && bitlen > t.Size-1) || (!signed && bitlen > t.Size) {
		return nil, decodeErr(t, at, errBadInteger, "%d significant bits", bitlen)
	}
	switch t.Kind {
	case KindInt64:
		return int64(u.Uint64()), nil
	case KindUint64:
		return u.Uint64(), nil
	case KindDecimal:
		return &Decimal{Unscaled: math.WordToBig(u, signed), Scale: t.Scale}, nil
	default:
		return math.WordToBig(u, signed), nil
	}
}

// decodeTuple reads the head region, then the tails of the dynamic elements
// from the current position in declaration order.
// decodeTuple 读取头部区域，然后从当前位置按声明顺序读取动态元素的尾部。
func (t *Type) decodeTuple(d *decoder) (Tuple, error) {
	values := make(Tuple, len(t.TupleElems))
	if !t.dynamic {
		for i, elem := range t.TupleElems {
			v, err := elem.decode(d)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	}
	offsets := make([]int, len(t.TupleElems))
	for i, elem := range t.TupleElems {
		var err error
		if elem.dynamic {
			offsets[i], err = d.readLength(elem)
		} else {
			values[i], err = elem.decode(d)
		}
		if err != nil {
			return nil, err
		}
	}
	for i, elem := range t.TupleElems {
		if offsets[i] == 0 {
			continue
		}
		v, err := elem.decode(d)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// decodeArray reads n elements with the same head/tail rules as tuple
// fields. A zero offset leaves the zero value of the element in place.
func (t *Type) decodeArray(d *decoder, n int) (interface{}, error) {
	elem := t.Elem
	if elem.headSize > 0 {
		if n > (len(d.data)-d.pos)/elem.headSize {
			return nil, decodeErr(t, d.pos, ErrShortInput, "%d elements need %d bytes, have %d", n, n*elem.headSize, len(d.data)-d.pos)
		}
	} else if n > maxZeroSizeElems {
		return nil, decodeErr(t, d.pos, errBadOffset, "%d zero-length elements exceed %d", n, maxZeroSizeElems)
	}
	if !elem.dynamic {
		return t.newArray(n, func(int) (interface{}, error) {
			return elem.decode(d)
		})
	}
	offsets := make([]int, n)
	for i := range offsets {
		off, err := d.readLength(elem)
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}
	return t.newArray(n, func(i int) (interface{}, error) {
		if offsets[i] == 0 {
			return nil, nil
		}
		return elem.decode(d)
	})
}

// newArray collects n decoded elements into the slice type matching the
// element kind of t. next returns nil to leave an element at its zero value.
// newArray 将 n 个解码后的元素收集到与 t 的元素种类匹配的切片类型中。
func (t *Type) newArray(n int, next func(i int) (interface{}, error)) (interface{}, error) {
	elem := t.Elem
	switch elem.T {
	case BoolTy:
		return collect[bool](n, next)
	case IntTy, UintTy, AddressTy:
		switch elem.Kind {
		case KindInt64:
			return collect[int64](n, next)
		case KindUint64:
			return collect[uint64](n, next)
		default:
			return collect[*big.Int](n, next)
		}
	case FixedPointTy:
		return collect[*Decimal](n, next)
	case BytesTy, FixedBytesTy, FunctionTy:
		return collect[[]byte](n, next)
	case StringTy:
		return collect[string](n, next)
	case TupleTy:
		return collect[Tuple](n, next)
	case ArrayTy, SliceTy:
		return collect[interface{}](n, next)
	default:
		return nil, decodeErr(elem, 0, errUnknownType, "type code %d", elem.T)
	}
}

func collect[E any](n int, next func(i int) (interface{}, error)) (interface{}, error) {
	out := make([]E, n)
	for i := range out {
		v, err := next(i)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out[i] = v.(E)
		}
	}
	return out, nil
}
