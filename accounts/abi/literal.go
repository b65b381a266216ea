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
	"strconv"
	"strings"

	"github.com/sunyihoo/abicodec/common"
	"github.com/sunyihoo/abicodec/common/hexutil"
)

// ParseLiteral parses the text form of a value of t:
//
//	bool                  true, false
//	intN, uintN           decimal, or 0x/0o/0b prefixed
//	address               0x followed by 40 hex digits
//	fixedMxN, ufixedMxN   plain decimal, e.g. -1.25
//	bytes, bytesN         0x prefixed hex
//	string                a Go quoted string, or the raw text at top level
//	T[k], T[]             [v1,v2,...]
//	(T1,...,Tn)           (v1,...,vn)
//
// The result is validated against t.
// ParseLiteral 解析 t 类型值的文本形式，结果会针对 t 进行校验。
func (t *Type) ParseLiteral(s string) (interface{}, error) {
	v, err := t.parseLiteral(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("abi: cannot parse %s literal %q: %v", t, s, err)
	}
	if _, verr := t.validate(v); verr != nil {
		return nil, verr
	}
	return v, nil
}

func (t *Type) parseLiteral(s string) (interface{}, error) {
	switch t.T {
	case BoolTy:
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, errors.New("expected true or false")
	case IntTy, UintTy:
		x, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, errors.New("invalid integer")
		}
		if err := t.checkBig(x); err != nil {
			return nil, errors.New(err.Msg)
		}
		switch t.Kind {
		case KindInt64:
			return x.Int64(), nil
		case KindUint64:
			return x.Uint64(), nil
		}
		return x, nil
	case AddressTy:
		var addr common.Address
		if err := addr.UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return addr.Big(), nil
	case FixedPointTy:
		d, err := ParseDecimal(s)
		if err != nil {
			return nil, err
		}
		if d.Scale > t.Scale {
			return nil, fmt.Errorf("more than %d decimal digits", t.Scale)
		}
		return d.Rescale(t.Scale)
	case BytesTy, FixedBytesTy, FunctionTy:
		return hexutil.Decode(s)
	case StringTy:
		if strings.HasPrefix(s, "\"") {
			return strconv.Unquote(s)
		}
		return s, nil
	case ArrayTy, SliceTy:
		parts, err := splitLiteral(s, '[', ']')
		if err != nil {
			return nil, err
		}
		return t.newArray(len(parts), func(i int) (interface{}, error) {
			return t.Elem.parseLiteral(parts[i])
		})
	case TupleTy:
		parts, err := splitLiteral(s, '(', ')')
		if err != nil {
			return nil, err
		}
		if len(parts) != len(t.TupleElems) {
			return nil, fmt.Errorf("%d values for %d elements", len(parts), len(t.TupleElems))
		}
		values := make(Tuple, len(parts))
		for i, elem := range t.TupleElems {
			if values[i], err = elem.parseLiteral(parts[i]); err != nil {
				return nil, fmt.Errorf("element %d: %v", i, err)
			}
		}
		return values, nil
	}
	return nil, fmt.Errorf("unknown type code %d", t.T)
}

// splitLiteral strips the enclosing brackets and splits the content at the
// commas that are neither nested nor quoted.
func splitLiteral(s string, open, close byte) ([]string, error) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return nil, fmt.Errorf("expected %c...%c", open, close)
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	var (
		parts  []string
		depth  int
		quoted bool
		start  int
	)
	for i := 0; i < len(body); i++ {
		c := body[i]
		if quoted {
			switch c {
			case '\\':
				i++
			case '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case '(', '[':
			depth++
		case ')', ']':
			if depth--; depth < 0 {
				return nil, fmt.Errorf("unbalanced %c", c)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 || quoted {
		return nil, errors.New("unterminated literal")
	}
	return append(parts, strings.TrimSpace(body[start:])), nil
}

// FormatLiteral returns the text form of v as accepted by ParseLiteral.
// FormatLiteral 返回 v 的文本形式，可被 ParseLiteral 解析。
func (t *Type) FormatLiteral(v interface{}) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case *big.Int:
		if t.T == AddressTy && x != nil {
			return common.BigToAddress(x).Hex()
		}
		return x.String()
	case *Decimal:
		return x.String()
	case []byte:
		return hexutil.Encode(x)
	case string:
		return strconv.Quote(x)
	case Tuple:
		if t.T != TupleTy || len(x) != len(t.TupleElems) {
			break
		}
		parts := make([]string, len(x))
		for i, elem := range t.TupleElems {
			parts[i] = elem.FormatLiteral(x[i])
		}
		return "(" + strings.Join(parts, ",") + ")"
	}
	if t.Elem != nil && t.Kind == KindArray {
		if elems, ok := arrayValues(v); ok {
			parts := make([]string, len(elems))
			for i, e := range elems {
				parts[i] = t.Elem.FormatLiteral(e)
			}
			return "[" + strings.Join(parts, ",") + "]"
		}
	}
	return fmt.Sprint(v)
}

// arrayValues boxes the elements of a decoded array value.
func arrayValues(v interface{}) ([]interface{}, bool) {
	switch x := v.(type) {
	case []bool:
		return boxed(x), true
	case []int64:
		return boxed(x), true
	case []uint64:
		return boxed(x), true
	case []*big.Int:
		return boxed(x), true
	case []*Decimal:
		return boxed(x), true
	case [][]byte:
		return boxed(x), true
	case []string:
		return boxed(x), true
	case []Tuple:
		return boxed(x), true
	case []interface{}:
		return x, true
	}
	return nil, false
}

func boxed[E any](s []E) []interface{} {
	out := make([]interface{}, len(s))
	for i, e := range s {
		out[i] = e
	}
	return out
}
