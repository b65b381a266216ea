// Copyright 2022 The go-ethereum Authors
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
	"strings"
)

// isDigit checks if the given byte is a digit (0-9).
// isDigit 检查给定字节是否为数字字符（0-9）。
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha checks if the given byte is an alphabet character (a-z or A-Z).
// isAlpha 检查给定字节是否为字母字符（a-z 或 A-Z）。
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierSymbol checks if the given byte is a valid identifier symbol ($ or _).
func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

// parseToken splits a leading token off the input. Identifiers may also
// contain '$' and '_'; type names are letters and digits only.
// parseToken 从输入中分离出开头的标记。标识符还可以包含 '$' 和 '_'；类型名称只包含字母和数字。
func parseToken(input string, isIdent bool) (string, string, error) {
	if len(input) == 0 {
		return "", "", errors.New("empty token")
	}
	firstChar := input[0]
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", fmt.Errorf("illegal character %q", firstChar)
	}
	position := 1
	for position < len(input) {
		char := input[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return input[:position], input[position:], nil
}

// parseElementary resolves an elementary type name, canonicalising the
// int, uint, fixed and ufixed shorthands.
func parseElementary(input string) (*Type, string, error) {
	name, rest, err := parseToken(input, false)
	if err != nil {
		return nil, "", err
	}
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	if typ, ok := lookup(name); ok {
		return typ, rest, nil
	}
	if strings.Contains(name, "fixed") {
		typ, err := parseFixed(name)
		if err != nil {
			return nil, "", err
		}
		return typ, rest, nil
	}
	return nil, "", fmt.Errorf("unrecognized type %q", name)
}

// parseTupleElems parses "(T1,...,Tn)" with the opening parenthesis at the
// start of the input.
func parseTupleElems(input string) (*Type, string, error) {
	rest := input[1:]
	var elems []*Type
	if len(rest) > 0 && rest[0] == ')' {
		typ, err := NewTupleType()
		return typ, rest[1:], err
	}
	for {
		elem, next, err := parseType(rest)
		if err != nil {
			return nil, "", err
		}
		elems = append(elems, elem)
		if len(next) == 0 {
			return nil, "", errors.New("unterminated tuple")
		}
		switch next[0] {
		case ',':
			rest = next[1:]
		case ')':
			typ, err := NewTupleType(elems...)
			return typ, next[1:], err
		default:
			return nil, "", fmt.Errorf("illegal character %q", next[0])
		}
	}
}

// parseType parses one type, elementary or tuple, followed by any number of
// array suffixes, and returns the unparsed remainder.
// parseType 解析一个类型（基本类型或元组）及其后任意数量的数组后缀，并返回未解析的剩余部分。
func parseType(input string) (*Type, string, error) {
	if len(input) == 0 || input[0] == ',' || input[0] == ')' {
		return nil, "", errors.New("empty parameter")
	}
	var (
		typ  *Type
		rest string
		err  error
	)
	if input[0] == '(' {
		typ, rest, err = parseTupleElems(input)
	} else {
		typ, rest, err = parseElementary(input)
	}
	if err != nil {
		return nil, "", err
	}
	for len(rest) > 0 && rest[0] == '[' {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, "", errors.New("unterminated array")
		}
		length := DynamicLength
		if digits := rest[1:end]; digits != "" {
			if length, err = parseDecimalDigits(digits); err != nil {
				return nil, "", fmt.Errorf("illegal array length %q", digits)
			}
		}
		if typ, err = NewArrayType(typ, length); err != nil {
			return nil, "", err
		}
		rest = rest[end+1:]
	}
	return typ, rest, nil
}

// ParseType parses a type signature such as "uint8", "(bool,bytes)[3]" or
// "(int16)[2][][1]". The shorthands int, uint, fixed and ufixed are accepted
// and canonicalised to int256, uint256, fixed128x18 and ufixed128x18.
// ParseType 解析类型签名，例如 "uint8"、"(bool,bytes)[3]" 或 "(int16)[2][][1]"。
func ParseType(signature string) (*Type, error) {
	typ, rest, err := parseType(signature)
	if err != nil {
		return nil, fmt.Errorf("abi: failed to parse type '%s': %v", signature, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("abi: failed to parse type '%s': unexpected string '%s'", signature, rest)
	}
	return typ, nil
}

// ParseTupleType parses a signature that must describe a tuple.
func ParseTupleType(signature string) (*Type, error) {
	typ, err := ParseType(signature)
	if err != nil {
		return nil, err
	}
	if typ.T != TupleTy {
		return nil, fmt.Errorf("abi: '%s' is not a tuple type", signature)
	}
	return typ, nil
}

// TupleTypeOf parses the tuple made of the given element signatures.
func TupleTypeOf(elems ...string) (*Type, error) {
	return ParseTupleType("(" + strings.Join(elems, ",") + ")")
}
