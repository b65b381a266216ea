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
	"errors"
	"fmt"
	"math/big"

	"github.com/sunyihoo/abicodec/crypto"
)

// revertSelector is a special function selector for revert reason unpacking.
// revertSelector 是用于解包 revert 原因的特殊函数选择器。
var revertSelector = crypto.Keccak256([]byte("Error(string)"))[:SelectorLength]

// panicSelector is a special function selector for panic reason unpacking.
// panicSelector 是用于解包 panic 原因的特殊函数选择器。
var panicSelector = crypto.Keccak256([]byte("Panic(uint256)"))[:SelectorLength]

// panicReasons map is for readable panic codes
// see this linkage for the details
// https://docs.soliditylang.org/en/v0.8.21/control-structures.html#panic-via-assert-and-error-via-require
// panicReasons 映射用于可读的 panic 代码
var panicReasons = map[uint64]string{
	0x00: "generic panic",                                         // 通用 panic
	0x01: "assert(false)",                                         // assert(false)
	0x11: "arithmetic underflow or overflow",                      // 算术下溢或溢出
	0x12: "division or modulo by zero",                            // 除以零或模零
	0x21: "enum overflow",                                         // 枚举溢出
	0x22: "invalid encoded storage byte array accessed",           // 访问无效编码的存储字节数组
	0x31: "out-of-bounds array access; popping on an empty array", // 数组越界访问；在空数组上弹出
	0x32: "out-of-bounds access of an array or bytesN",            // 数组或 bytesN 越界访问
	0x41: "out of memory",                                         // 内存不足
	0x51: "uninitialized function",                                // 未初始化函数
}

var (
	revertArgs = mustTuple("(string)")
	panicArgs  = mustTuple("(uint256)")
)

func mustTuple(signature string) *Type {
	t, err := ParseTupleType(signature)
	if err != nil {
		panic(err)
	}
	return t
}

// UnpackRevert resolves the abi-encoded revert reason. As documented at
// https://solidity.readthedocs.io/en/latest/control-structures.html#revert,
// the provided revert reason is abi-encoded as if it were a call to function
// `Error(string)` or `Panic(uint256)`.
// UnpackRevert 解析 ABI 编码的 revert 原因。提供的 revert 原因被 ABI 编码为如同调用函数
// `Error(string)` 或 `Panic(uint256)`。
func UnpackRevert(data []byte) (string, error) {
	if len(data) < SelectorLength {
		return "", errors.New("invalid data for unpacking")
	}
	switch {
	case bytes.Equal(data[:SelectorLength], revertSelector):
		unpacked, err := revertArgs.Decode(data[SelectorLength:])
		if err != nil {
			return "", err
		}
		return unpacked[0].(string), nil
	case bytes.Equal(data[:SelectorLength], panicSelector):
		unpacked, err := panicArgs.Decode(data[SelectorLength:])
		if err != nil {
			return "", err
		}
		pCode := unpacked[0].(*big.Int)
		// uint64 safety check for future
		// but the code is not bigger than MAX(uint64) now
		if pCode.IsUint64() {
			if reason, ok := panicReasons[pCode.Uint64()]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %#x", pCode), nil
	default:
		return "", errors.New("invalid data for unpacking")
	}
}
