// Copyright 2016 The go-ethereum Authors
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
	"strconv"
	"strings"
)

var (
	// ErrShortInput is wrapped by decode errors raised when a field would
	// read past the end of the input. More data may make the input valid.
	// ErrShortInput 在字段读取超出输入末尾时被解码错误包装。更多的数据可能使输入有效。
	ErrShortInput = errors.New("abi: short input")

	// ErrAmbiguousPacked is returned when a packed layout cannot be split
	// into its elements without guessing.
	// ErrAmbiguousPacked 在紧凑布局无法在不猜测的情况下拆分为元素时返回。
	ErrAmbiguousPacked = errors.New("abi: ambiguous packed layout")

	// ErrSelectorMismatch is returned when call data starts with the selector
	// of a different function.
	ErrSelectorMismatch = errors.New("abi: selector mismatch")

	// errBadBool is returned when a boolean value is improperly encoded.
	// errBadBool 在布尔值编码不正确时返回。
	errBadBool = errors.New("abi: improperly encoded boolean value")

	// errBadInteger is returned when a word holds more significant bits than
	// the declared width allows.
	// errBadInteger 在字中包含的有效位多于声明宽度所允许的位数时返回。
	errBadInteger = errors.New("abi: improperly encoded integer value")

	errBadOffset   = errors.New("abi: offset or length out of range")
	errBadPadding  = errors.New("abi: non-zero padding")
	errBadString   = errors.New("abi: invalid utf-8 string")
	errUnconsumed  = errors.New("abi: unconsumed bytes")
	errUnknownType = errors.New("abi: unknown type")
)

// ValidationError reports a value that does not match its type, either in Go
// representation or in numeric range. Path holds the element indices from the
// outermost tuple down to the offending value.
// ValidationError 报告与其类型不匹配的值（Go 表示或数值范围）。Path 保存从最外层元组到出错值的元素索引。
type ValidationError struct {
	Type string
	Path []int
	Msg  string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("abi: invalid ")
	b.WriteString(e.Type)
	b.WriteString(" value")
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		for _, i := range e.Path {
			b.WriteString("[" + strconv.Itoa(i) + "]")
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	return b.String()
}

// at records that the error happened inside element i of its container.
func (e *ValidationError) at(i int) *ValidationError {
	e.Path = append([]int{i}, e.Path...)
	return e
}

func invalid(t *Type, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Type: t.String(), Msg: fmt.Sprintf(format, args...)}
}

// typeErr returns a formatted type casting error.
// typeErr 返回格式化的类型转换错误。
func typeErr(t *Type, got interface{}) *ValidationError {
	return invalid(t, "cannot use %T as %s", got, expectedGoType(t))
}

// DecodeError reports malformed input. Offset is the position in the input
// at which the problem was detected.
// DecodeError 报告格式错误的输入。Offset 是检测到问题的输入位置。
type DecodeError struct {
	Type   string
	Offset int
	Msg    string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("abi: cannot decode %s at offset %d", e.Type, e.Offset)
	if e.Err != nil {
		msg += ": " + strings.TrimPrefix(e.Err.Error(), "abi: ")
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(t *Type, offset int, cause error, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Type: t.String(), Offset: offset, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// expectedGoType names the Go type a value of t must have.
func expectedGoType(t *Type) string {
	switch t.T {
	case BoolTy:
		return "bool"
	case IntTy, UintTy, AddressTy, FixedPointTy:
		return t.Kind.String()
	case StringTy:
		return "string"
	case BytesTy, FixedBytesTy, FunctionTy:
		return "[]byte"
	case TupleTy:
		return "abi.Tuple"
	case ArrayTy, SliceTy:
		switch t.Elem.T {
		case ArrayTy, SliceTy:
			return "[]interface{}"
		default:
			return "[]" + expectedGoType(t.Elem)
		}
	}
	return "unknown"
}
