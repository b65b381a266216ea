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
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/abicodec/common/hexutil"
	"github.com/sunyihoo/abicodec/crypto"
)

// SelectorLength is the length of the function selector in front of call data.
const SelectorLength = 4

// Function represents a callable function: its name, its input and output
// tuple types and the selector derived from its canonical signature.
// Function 表示一个可调用的函数：名称、输入输出元组类型以及从规范签名派生的选择器。
type Function struct {
	Name string
	// Sig is the canonical signature, e.g. "transfer(address,uint256)".
	// Sig 是规范签名，例如 "transfer(address,uint256)"。
	Sig string
	// ID is the first 4 bytes of the Keccak-256 hash of Sig.
	// ID 是 Sig 的 Keccak-256 哈希的前 4 个字节。
	ID []byte

	Inputs  *Type
	Outputs *Type
}

// NewFunction creates a function from its name and tuple types. A nil
// outputs type stands for the empty tuple.
// NewFunction 根据名称和元组类型创建函数。outputs 为 nil 时表示空元组。
func NewFunction(name string, inputs, outputs *Type) (*Function, error) {
	if ident, rest, err := parseToken(name, true); err != nil || rest != "" || ident != name {
		return nil, fmt.Errorf("abi: illegal function name %q", name)
	}
	if inputs == nil || inputs.T != TupleTy {
		return nil, fmt.Errorf("abi: inputs of %s must be a tuple type", name)
	}
	if outputs == nil {
		outputs, _ = NewTupleType()
	} else if outputs.T != TupleTy {
		return nil, fmt.Errorf("abi: outputs of %s must be a tuple type", name)
	}
	sig := name + inputs.String()
	return &Function{
		Name:    name,
		Sig:     sig,
		ID:      crypto.Keccak256([]byte(sig))[:SelectorLength],
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// ParseFunction parses a signature such as "transfer(address,uint)" along
// with an optional output tuple signature such as "(bool)". Shorthand type
// names are canonicalised before the selector is computed.
// ParseFunction 解析形如 "transfer(address,uint)" 的签名以及可选的输出元组签名。
func ParseFunction(signature, outputs string) (*Function, error) {
	name, rest, err := parseToken(signature, true)
	if err != nil {
		return nil, fmt.Errorf("abi: failed to parse function '%s': %v", signature, err)
	}
	inputs, err := ParseTupleType(rest)
	if err != nil {
		return nil, err
	}
	var out *Type
	if outputs != "" {
		if out, err = ParseTupleType(outputs); err != nil {
			return nil, err
		}
	}
	return NewFunction(name, inputs, out)
}

func (f *Function) String() string {
	if len(f.Outputs.TupleElems) == 0 {
		return f.Sig
	}
	return f.Sig + " returns " + f.Outputs.String()
}

// CallLength returns the length of the call data for the given arguments.
func (f *Function) CallLength(args Tuple) (int, error) {
	n, err := f.Inputs.MeasureEncodedLength(args)
	if err != nil {
		return 0, err
	}
	return SelectorLength + n, nil
}

// EncodeCall returns the selector followed by the standard encoding of args.
// EncodeCall 返回选择器及其后 args 的标准编码。
func (f *Function) EncodeCall(args Tuple) ([]byte, error) {
	n, err := f.CallLength(args)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, n)
	buf = append(buf, f.ID...)
	return f.Inputs.encode(args, buf), nil
}

// DecodeCall checks the selector of call data and decodes the arguments.
// DecodeCall 检查调用数据的选择器并解码参数。
func (f *Function) DecodeCall(data []byte) (Tuple, error) {
	if len(data) < SelectorLength {
		return nil, decodeErr(f.Inputs, 0, ErrShortInput, "missing selector")
	}
	if !bytes.Equal(data[:SelectorLength], f.ID) {
		return nil, fmt.Errorf("%w: have %x, want %x (%s)", ErrSelectorMismatch, data[:SelectorLength], f.ID, f.Sig)
	}
	return f.Inputs.Decode(data[SelectorLength:])
}

// EncodeReturn returns the standard encoding of the return values.
func (f *Function) EncodeReturn(values Tuple) ([]byte, error) {
	return f.Outputs.Encode(values)
}

// DecodeReturn decodes return data, which carries no selector.
func (f *Function) DecodeReturn(data []byte) (Tuple, error) {
	return f.Outputs.Decode(data)
}

// FormatCall renders call data one line per word: the selector first, then
// each 32 byte word prefixed with its offset into the arguments.
// FormatCall 逐字渲染调用数据：首先是选择器，然后是以参数内偏移量为前缀的每个 32 字节字。
func FormatCall(data []byte) (string, error) {
	if len(data) < SelectorLength {
		return "", fmt.Errorf("abi: call data too short: %d bytes", len(data))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ID       %s\n", hexutil.Encode(data[:SelectorLength]))
	rest, err := Format(data[SelectorLength:])
	if err != nil {
		return "", err
	}
	b.WriteString(rest)
	return b.String(), nil
}

// Format renders a standard encoding one 32 byte word per line, each line
// prefixed with the word's offset.
// Format 将标准编码逐行渲染为 32 字节字，每行以该字的偏移量为前缀。
func Format(data []byte) (string, error) {
	if len(data)%wordSize != 0 {
		return "", fmt.Errorf("abi: length %d is not a multiple of %d", len(data), wordSize)
	}
	var b strings.Builder
	for i := 0; i < len(data); i += wordSize {
		fmt.Fprintf(&b, "%-8x %x\n", i, data[i:i+wordSize])
	}
	return b.String(), nil
}
