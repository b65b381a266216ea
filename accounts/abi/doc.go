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
// Package abi implements the Ethereum Contract ABI (Application Binary
// Interface) wire format.
//
// A Type describes one ABI type: an elementary value (bool, intN, uintN,
// address, fixedMxN, ufixedMxN), a byte or text string (bytes, bytesN,
// function, string), an array T[k] or T[], or a tuple (T1,...,Tn). Types are
// immutable once built and may be shared freely between goroutines.
//
// Values are plain Go data, one representation per type:
//
//	bool                          bool
//	intN, N <= 64                 int64
//	uintN, N <= 64                uint64
//	intN/uintN, N > 64; address   *big.Int
//	fixedMxN, ufixedMxN           *Decimal
//	bytes, bytesN, function       []byte
//	string                        string
//	tuple                         Tuple
//
// Arrays use the matching slice type ([]bool, []int64, []uint64, []*big.Int,
// []*Decimal, [][]byte, []string, []Tuple) and []interface{} when the
// elements are themselves arrays.
//
// The standard encoding writes every value into 32 byte words. Dynamic values
// are referenced from the head region by an offset and stored in the tail
// region in declaration order. Decoding is strict: tails are read in order
// from the current position and the offset word is only checked for range, so
// only the canonical layout produced by this package (and by solc) is
// accepted.
//
// The packed encoding drops padding, offsets and length prefixes. It can only
// be decoded when the layout has at most one element whose size depends on
// its content.
// abi 包实现了以太坊合约 ABI（应用二进制接口）的线路格式。
//
// 标准编码将每个值写入 32 字节的字。动态值在头部区域以偏移量引用，并按声明顺序存储在尾部区域。
// 解码是严格的：按顺序从当前位置读取尾部，偏移字只做范围检查。
package abi
