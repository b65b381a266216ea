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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FixedPointTy
	FunctionTy
	ByteTy
)

// Kind is the Go value representation a type encodes from and decodes to.
// Kind 是类型编码来源和解码目标的 Go 值表示。
type Kind uint8

const (
	KindBool Kind = iota
	KindByte
	KindInt64
	KindUint64
	KindBigInt
	KindDecimal
	KindArray
	KindTuple
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindByte:    "byte",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindBigInt:  "*big.Int",
	KindDecimal: "*abi.Decimal",
	KindArray:   "array",
	KindTuple:   "abi.Tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

const (
	// DynamicLength is the Size of an array whose length is carried by a
	// count word in front of its elements.
	DynamicLength = -1

	wordSize = 32

	// maxStaticSize bounds the encoded length of a static type, so that the
	// length arithmetic of nested fixed arrays cannot overflow.
	maxStaticSize = 1 << 31

	// maxZeroSizeElems bounds the length of arrays whose elements encode to
	// nothing, such as ()[] or uint8[0][]. Their count word is the only input,
	// so encoder and decoder share this limit instead of the input length.
	maxZeroSizeElems = 1 << 16
)

// Type is the description of one ABI type. Types are built once, by ParseType
// or the New*Type constructors, and never change afterwards.
// Type 是对一个 ABI 类型的描述。类型只构建一次（通过 ParseType 或 New*Type 构造函数），之后不再改变。
type Type struct {
	T    byte // 我们的自定义类型检查 Our own type checking
	Kind Kind // Go 值表示 Go value representation

	// Size is the bit width of numeric types, the byte length of bytesN and
	// function, and the element count of arrays (DynamicLength if unbounded).
	// Size 是数值类型的位宽、bytesN 和 function 的字节长度，以及数组的元素数量。
	Size     int
	Unsigned bool
	Scale    int // 定点数的小数位数 decimal digits of fixed point types

	Elem       *Type   // 数组或字节串的元素类型 element type of arrays and byte strings
	TupleElems []*Type // 所有元组字段的类型信息 Type information of all tuple fields

	dynamic    bool
	headSize   int // 在头部区域占用的字节数 bytes occupied in the head region
	packedSize int // 紧凑编码的字节数，内容相关时为 -1 packed byte length, -1 if content dependent
	stringKind string
}

// String implements Stringer, returning the canonical type name.
// String 实现 Stringer 接口，返回规范类型名称。
func (t *Type) String() string {
	return t.stringKind
}

// IsDynamic reports whether the encoded length of the type depends on the value.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
// IsDynamic 报告类型的编码长度是否取决于值。
func (t *Type) IsDynamic() bool {
	return t.dynamic
}

// StaticLength returns the number of bytes the type occupies in the head
// region of its enclosing tuple: the full encoding for static types and a
// single offset word for dynamic ones.
// StaticLength 返回类型在外层元组头部区域占用的字节数：静态类型为完整编码，动态类型为一个偏移字。
func (t *Type) StaticLength() int {
	return t.headSize
}

// isByteString reports whether values of t are carried as []byte.
func (t *Type) isByteString() bool {
	return t.T == BytesTy || t.T == FixedBytesTy || t.T == FunctionTy
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
// requiresLengthPrefix 返回该类型是否需要某种长度前缀。
func (t *Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// byteType is the element of the byte string types. It never appears on its
// own in a signature.
var byteType = &Type{T: ByteTy, Kind: KindByte, Size: 8, headSize: 1, packedSize: 1, stringKind: "byte"}

func newBoolType() *Type {
	return &Type{T: BoolTy, Kind: KindBool, headSize: wordSize, packedSize: 1, stringKind: "bool"}
}

func newIntType(bits int, unsigned bool) *Type {
	typ := &Type{T: IntTy, Kind: KindBigInt, Size: bits, Unsigned: unsigned, headSize: wordSize, packedSize: bits / 8}
	if unsigned {
		typ.T = UintTy
		typ.stringKind = "uint" + strconv.Itoa(bits)
	} else {
		typ.stringKind = "int" + strconv.Itoa(bits)
	}
	if bits <= 64 {
		if unsigned {
			typ.Kind = KindUint64
		} else {
			typ.Kind = KindInt64
		}
	}
	return typ
}

func newAddressType() *Type {
	return &Type{T: AddressTy, Kind: KindBigInt, Size: 160, Unsigned: true, headSize: wordSize, packedSize: 20, stringKind: "address"}
}

func newFixedType(bits, scale int, unsigned bool) *Type {
	name := "fixed" + strconv.Itoa(bits) + "x" + strconv.Itoa(scale)
	if unsigned {
		name = "u" + name
	}
	return &Type{T: FixedPointTy, Kind: KindDecimal, Size: bits, Unsigned: unsigned, Scale: scale, headSize: wordSize, packedSize: bits / 8, stringKind: name}
}

func newByteStringType(code byte, size int) *Type {
	typ := &Type{T: code, Kind: KindArray, Size: size, Elem: byteType, headSize: wordSize}
	switch code {
	case BytesTy:
		typ.stringKind, typ.dynamic, typ.packedSize = "bytes", true, -1
	case StringTy:
		typ.stringKind, typ.dynamic, typ.packedSize = "string", true, -1
	case FixedBytesTy:
		typ.stringKind, typ.packedSize = "bytes"+strconv.Itoa(size), size
	case FunctionTy:
		typ.stringKind, typ.packedSize = "function", size
	}
	return typ
}

// NewBoolType returns the bool type.
func NewBoolType() *Type {
	return mustLookup("bool")
}

// NewAddressType returns the address type, an unsigned 160 bit integer.
func NewAddressType() *Type {
	return mustLookup("address")
}

// NewIntType returns the intN (or uintN if unsigned is set) type. The width
// must be a multiple of 8 between 8 and 256.
// NewIntType 返回 intN（unsigned 为真时返回 uintN）类型。位宽必须是 8 到 256 之间 8 的倍数。
func NewIntType(bits int, unsigned bool) (*Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return nil, fmt.Errorf("abi: unsupported integer width %d", bits)
	}
	name := "int" + strconv.Itoa(bits)
	if unsigned {
		name = "u" + name
	}
	return mustLookup(name), nil
}

// NewFixedType returns the fixedMxN (or ufixedMxN) type with M the bit width
// and N the number of decimal digits after the point.
// NewFixedType 返回 fixedMxN（或 ufixedMxN）类型，M 为位宽，N 为小数点后的十进制位数。
func NewFixedType(bits, scale int, unsigned bool) (*Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return nil, fmt.Errorf("abi: unsupported fixed point width %d", bits)
	}
	if scale < 1 || scale > 80 {
		return nil, fmt.Errorf("abi: unsupported fixed point scale %d", scale)
	}
	return intern(newFixedType(bits, scale, unsigned)), nil
}

// NewBytesType returns the dynamic bytes type.
func NewBytesType() *Type {
	return mustLookup("bytes")
}

// NewFixedBytesType returns the bytesN type, 1 <= N <= 32.
func NewFixedBytesType(n int) (*Type, error) {
	if n < 1 || n > 32 {
		return nil, fmt.Errorf("abi: unsupported fixed bytes length %d", n)
	}
	return mustLookup("bytes" + strconv.Itoa(n)), nil
}

// NewFunctionType returns the function type: an address followed by a
// selector, 24 bytes in total.
func NewFunctionType() *Type {
	return mustLookup("function")
}

// NewStringType returns the string type.
func NewStringType() *Type {
	return mustLookup("string")
}

// NewArrayType returns the array type T[length], or T[] when length is
// DynamicLength.
// NewArrayType 返回数组类型 T[length]，当 length 为 DynamicLength 时返回 T[]。
func NewArrayType(elem *Type, length int) (*Type, error) {
	if elem == nil {
		return nil, errors.New("abi: array of nil element type")
	}
	if length < 0 && length != DynamicLength {
		return nil, fmt.Errorf("abi: negative array length %d", length)
	}
	typ := &Type{T: ArrayTy, Kind: KindArray, Size: length, Elem: elem}
	if length == DynamicLength {
		typ.T = SliceTy
		typ.stringKind = elem.stringKind + "[]"
	} else {
		typ.stringKind = elem.stringKind + "[" + strconv.Itoa(length) + "]"
	}
	typ.dynamic = length == DynamicLength || elem.dynamic
	if typ.dynamic {
		typ.headSize = wordSize
	} else {
		if length > 0 && elem.headSize > maxStaticSize/length {
			return nil, fmt.Errorf("abi: static array type %s too large", typ.stringKind)
		}
		if elem.headSize == 0 && length > maxZeroSizeElems {
			return nil, fmt.Errorf("abi: static array type %s has more than %d zero-length elements", typ.stringKind, maxZeroSizeElems)
		}
		typ.headSize = length * elem.headSize
	}
	if length == DynamicLength || elem.packedSize < 0 {
		typ.packedSize = -1
	} else {
		typ.packedSize = length * elem.packedSize
	}
	return typ, nil
}

// NewTupleType returns the tuple type (T1,...,Tn). The element list is
// copied, the caller may reuse elems.
// NewTupleType 返回元组类型 (T1,...,Tn)。元素列表会被复制，调用方可以复用 elems。
func NewTupleType(elems ...*Type) (*Type, error) {
	elems = slices.Clone(elems)
	typ := &Type{T: TupleTy, Kind: KindTuple, TupleElems: elems}
	var name strings.Builder
	name.WriteByte('(')
	for i, elem := range elems {
		if elem == nil {
			return nil, fmt.Errorf("abi: nil tuple element %d", i)
		}
		if i > 0 {
			name.WriteByte(',')
		}
		name.WriteString(elem.stringKind)
		typ.dynamic = typ.dynamic || elem.dynamic
		typ.headSize += elem.headSize
		if typ.packedSize >= 0 {
			if elem.packedSize < 0 {
				typ.packedSize = -1
			} else {
				typ.packedSize += elem.packedSize
			}
		}
	}
	name.WriteByte(')')
	typ.stringKind = name.String()
	if typ.dynamic {
		typ.headSize = wordSize
	} else if typ.headSize > maxStaticSize {
		return nil, fmt.Errorf("abi: static tuple type %s too large", typ.stringKind)
	}
	return typ, nil
}

// SubTuple returns the tuple of the elements selected by manifest, or of the
// elements not selected when negate is set. The manifest must have one entry
// per element.
// SubTuple 返回由 manifest 选中的元素组成的元组；当 negate 为真时返回未选中的元素。
func (t *Type) SubTuple(manifest []bool, negate bool) (*Type, error) {
	if t.T != TupleTy {
		return nil, fmt.Errorf("abi: %s is not a tuple type", t)
	}
	if len(manifest) != len(t.TupleElems) {
		return nil, fmt.Errorf("abi: manifest length mismatch: %d != %d", len(manifest), len(t.TupleElems))
	}
	var selected []*Type
	for i, elem := range t.TupleElems {
		if manifest[i] != negate {
			selected = append(selected, elem)
		}
	}
	return NewTupleType(selected...)
}
