// Copyright 2019 The go-ethereum Authors
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

package fourbyte

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/abicodec/accounts/abi"
)

// DecodedCall is a method call parsed according to a function signature.
// DecodedCall 表示根据函数签名解析的方法调用。
type DecodedCall struct {
	Function *abi.Function
	Args     abi.Tuple
}

// String renders the call as name(type: value,...).
// 返回格式为 "方法名(参数1, 参数2)" 的字符串
func (cd *DecodedCall) String() string {
	args := make([]string, len(cd.Args))
	for i, elem := range cd.Function.Inputs.TupleElems {
		args[i] = fmt.Sprintf("%v: %v", elem, elem.FormatLiteral(cd.Args[i]))
	}
	return fmt.Sprintf("%s(%s)", cd.Function.Name, strings.Join(args, ","))
}

// parseSignature resolves a stored signature into a function.
func parseSignature(signature string) (*abi.Function, error) {
	fn, err := abi.ParseFunction(signature, "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse selector: %v", err)
	}
	return fn, nil
}

// VerifySelector checks whether the ABI encoded data blob matches the requested
// function signature.
//
// VerifySelector 检查 ABI 编码的数据块是否与请求的函数签名匹配。
func VerifySelector(signature string, calldata []byte) (*DecodedCall, error) {
	fn, err := parseSignature(signature)
	if err != nil {
		return nil, err
	}
	return parseCallData(calldata, fn)
}

// DecodeCall looks up the selector of the call data and decodes the arguments
// with the matching signature.
// DecodeCall 查找调用数据的选择器，并用匹配的签名解码参数。
func (db *Database) DecodeCall(calldata []byte) (*DecodedCall, error) {
	signature, err := db.Selector(calldata)
	if err != nil {
		return nil, err
	}
	return VerifySelector(signature, calldata)
}

// parseCallData matches the provided call data against the function and
// returns the decoded arguments.
//
// parseCallData 将提供的调用数据与函数进行匹配，并返回解码后的参数。
func parseCallData(calldata []byte, fn *abi.Function) (*DecodedCall, error) {
	// Validate the call data that it has the 4byte prefix and the rest divisible by 32 bytes
	// 验证调用数据，确保它有 4 字节的前缀，其余部分可被 32 字节整除
	if len(calldata) < abi.SelectorLength {
		return nil, fmt.Errorf("invalid call data, incomplete method signature (%d bytes < 4)", len(calldata))
	}
	argdata := calldata[abi.SelectorLength:]
	if len(argdata)%32 != 0 {
		return nil, fmt.Errorf("invalid call data; length should be a multiple of 32 bytes (was %d)", len(argdata))
	}
	args, err := fn.DecodeCall(calldata)
	if err != nil {
		return nil, fmt.Errorf("signature %q matches, but arguments mismatch: %v", fn.Sig, err)
	}
	// The decoder does not follow offsets, so re-encode the arguments to make
	// sure no data was hidden behind them.
	// 解码器不会跟随偏移量，因此重新编码参数以确保其中没有隐藏数据。
	encoded, err := fn.Inputs.Encode(args)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(encoded, argdata) {
		return nil, fmt.Errorf("WARNING: Supplied data is not canonically encoded.\nWant %x\nHave %x\nfor method %v", encoded, argdata, fn.Sig)
	}
	return &DecodedCall{Function: fn, Args: args}, nil
}
