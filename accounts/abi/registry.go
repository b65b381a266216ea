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
	"strconv"
	"sync"

	"github.com/sunyihoo/abicodec/log"
)

// registry holds the elementary types keyed by canonical name. It is filled
// with every non-parametric elementary type when the package is initialised
// and only ever grows afterwards, when a fixed point type is first requested.
// registry 按规范名称保存基本类型。包初始化时填入所有非参数化的基本类型，之后只会增长。
var registry = newRegistry()

type typeRegistry struct {
	sync.RWMutex
	types map[string]*Type
}

// aliases maps the shorthand names accepted in signatures to canonical ones.
var aliases = map[string]string{
	"int":    "int256",
	"uint":   "uint256",
	"fixed":  "fixed128x18",
	"ufixed": "ufixed128x18",
}

func newRegistry() *typeRegistry {
	r := &typeRegistry{types: make(map[string]*Type)}
	add := func(t *Type) { r.types[t.stringKind] = t }

	add(newBoolType())
	add(newAddressType())
	add(newByteStringType(BytesTy, DynamicLength))
	add(newByteStringType(StringTy, DynamicLength))
	add(newByteStringType(FunctionTy, 24))
	for n := 1; n <= 32; n++ {
		add(newByteStringType(FixedBytesTy, n))
	}
	for bits := 8; bits <= 256; bits += 8 {
		add(newIntType(bits, false))
		add(newIntType(bits, true))
	}
	add(newFixedType(128, 18, false))
	add(newFixedType(128, 18, true))
	return r
}

// lookup returns the registered type for an elementary name.
func lookup(name string) (*Type, bool) {
	registry.RLock()
	defer registry.RUnlock()

	t, ok := registry.types[name]
	return t, ok
}

func mustLookup(name string) *Type {
	t, ok := lookup(name)
	if !ok {
		panic(fmt.Sprintf("abi: elementary type %s not registered", name))
	}
	return t
}

// intern registers t unless a type of the same name exists, and returns the
// registered instance.
func intern(t *Type) *Type {
	if existing, ok := lookup(t.stringKind); ok {
		return existing
	}
	registry.Lock()
	defer registry.Unlock()

	if existing, ok := registry.types[t.stringKind]; ok {
		return existing
	}
	registry.types[t.stringKind] = t
	log.Trace("Registered ABI type", "type", t.stringKind, "count", len(registry.types))
	return t
}

// registeredTypes returns the number of registered elementary types.
func registeredTypes() int {
	registry.RLock()
	defer registry.RUnlock()
	return len(registry.types)
}

// parseFixed resolves fixedMxN and ufixedMxN names, registering the type on
// first use. Leading zeros are rejected so that each type has one name.
func parseFixed(name string) (*Type, error) {
	unsigned := false
	rest := name
	if len(rest) > 0 && rest[0] == 'u' {
		unsigned, rest = true, rest[1:]
	}
	if len(rest) < len("fixed") || rest[:len("fixed")] != "fixed" {
		return nil, fmt.Errorf("abi: unrecognized type %q", name)
	}
	rest = rest[len("fixed"):]
	x := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] == 'x' {
			x = i
			break
		}
	}
	if x < 0 {
		return nil, fmt.Errorf("abi: unrecognized type %q", name)
	}
	bits, err := parseDecimalDigits(rest[:x])
	if err != nil {
		return nil, fmt.Errorf("abi: illegal fixed point width in %q", name)
	}
	scale, err := parseDecimalDigits(rest[x+1:])
	if err != nil {
		return nil, fmt.Errorf("abi: illegal fixed point scale in %q", name)
	}
	return NewFixedType(bits, scale, unsigned)
}

// parseDecimalDigits parses a non-empty run of ASCII digits without a leading
// zero (a lone "0" is allowed).
func parseDecimalDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
