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
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Tuple is an ordered list of values, one per element of a tuple type.
// Tuple 是值的有序列表，每个元组类型元素对应一个值。
type Tuple []interface{}

// Equal reports whether both tuples hold the same values. Big integers and
// decimals are compared by value, byte slices by content.
// Equal 报告两个元组是否持有相同的值。大整数和小数按值比较，字节切片按内容比较。
func (t Tuple) Equal(other Tuple) bool {
	return slices.EqualFunc(t, other, valuesEqual)
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = formatValue(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func valuesEqual(a, b interface{}) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *big.Int:
		y, ok := b.(*big.Int)
		return ok && bigEqual(x, y)
	case *Decimal:
		y, ok := b.(*Decimal)
		return ok && x.Equal(y)
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case Tuple:
		y, ok := b.(Tuple)
		return ok && x.Equal(y)
	case []bool:
		y, ok := b.([]bool)
		return ok && slices.Equal(x, y)
	case []int64:
		y, ok := b.([]int64)
		return ok && slices.Equal(x, y)
	case []uint64:
		y, ok := b.([]uint64)
		return ok && slices.Equal(x, y)
	case []string:
		y, ok := b.([]string)
		return ok && slices.Equal(x, y)
	case []*big.Int:
		y, ok := b.([]*big.Int)
		return ok && slices.EqualFunc(x, y, bigEqual)
	case []*Decimal:
		y, ok := b.([]*Decimal)
		return ok && slices.EqualFunc(x, y, (*Decimal).Equal)
	case [][]byte:
		y, ok := b.([][]byte)
		return ok && slices.EqualFunc(x, y, bytes.Equal)
	case []Tuple:
		y, ok := b.([]Tuple)
		return ok && slices.EqualFunc(x, y, Tuple.Equal)
	case []interface{}:
		y, ok := b.([]interface{})
		return ok && slices.EqualFunc(x, y, valuesEqual)
	case bool, int64, uint64, string:
		return a == b
	}
	return false
}

func bigEqual(x, y *big.Int) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Cmp(y) == 0
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case []byte:
		return fmt.Sprintf("%#x", x)
	case string:
		return fmt.Sprintf("%q", x)
	case Tuple:
		return x.String()
	}
	return fmt.Sprint(v)
}

// Decimal is a fixed point number: Unscaled * 10^-Scale.
// Decimal 是定点数：Unscaled * 10^-Scale。
type Decimal struct {
	Unscaled *big.Int
	Scale    int
}

// NewDecimal returns the decimal unscaled * 10^-scale.
func NewDecimal(unscaled *big.Int, scale int) *Decimal {
	return &Decimal{Unscaled: unscaled, Scale: scale}
}

// ParseDecimal parses a plain decimal literal such as "-12.50". The scale of
// the result is the number of digits after the point.
// ParseDecimal 解析形如 "-12.50" 的十进制字面量。结果的小数位数等于小数点后的位数。
func ParseDecimal(s string) (*Decimal, error) {
	digits, scale := s, 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits, scale = s[:i]+s[i+1:], len(s)-i-1
		if scale == 0 || i == 0 || s[i-1] == '-' || s[i-1] == '+' {
			return nil, fmt.Errorf("abi: invalid decimal %q", s)
		}
	}
	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("abi: invalid decimal %q", s)
	}
	return &Decimal{Unscaled: unscaled, Scale: scale}, nil
}

// Rescale returns the same number expressed with the given scale. Reducing the
// scale fails if it would drop non-zero digits.
// Rescale 返回以给定小数位数表示的同一个数。若减少小数位数会丢弃非零位，则失败。
func (d *Decimal) Rescale(scale int) (*Decimal, error) {
	switch {
	case scale == d.Scale:
		return d, nil
	case scale > d.Scale:
		f := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale-d.Scale)), nil)
		return &Decimal{Unscaled: f.Mul(f, d.Unscaled), Scale: scale}, nil
	default:
		f := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale-scale)), nil)
		q, r := new(big.Int).QuoRem(d.Unscaled, f, new(big.Int))
		if r.Sign() != 0 {
			return nil, errors.New("abi: rescaling would lose precision")
		}
		return &Decimal{Unscaled: q, Scale: scale}, nil
	}
}

// Equal reports whether both decimals denote the same number.
func (d *Decimal) Equal(other *Decimal) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Unscaled == nil || other.Unscaled == nil {
		return d.Unscaled == other.Unscaled && d.Scale == other.Scale
	}
	x, y := d, other
	if x.Scale > y.Scale {
		x, y = y, x
	}
	wide, _ := x.Rescale(y.Scale)
	return wide.Unscaled.Cmp(y.Unscaled) == 0
}

// String returns the plain decimal notation, e.g. "-0.05".
func (d *Decimal) String() string {
	if d == nil || d.Unscaled == nil {
		return "<nil>"
	}
	s := new(big.Int).Abs(d.Unscaled).String()
	if d.Scale > 0 {
		if len(s) <= d.Scale {
			s = strings.Repeat("0", d.Scale-len(s)+1) + s
		}
		s = s[:len(s)-d.Scale] + "." + s[len(s)-d.Scale:]
	}
	if d.Unscaled.Sign() < 0 {
		s = "-" + s
	}
	return s
}
