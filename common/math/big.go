// Copyright 2014 The go-ethereum Authors
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
// Package math provides integer math utilities.
// Package math 提供整数数学工具。
package math

import (
	"math/big"

	"github.com/holiman/uint256"
)

// WordBytes is the size of an EVM word in bytes.
// WordBytes 是 EVM 字的字节大小。
const WordBytes = 32

// PutBig writes x into the last len(dst) bytes of its 256 bit two's complement
// representation. dst is usually a full word; shorter slices receive the
// low-order bytes, which keeps the sign extension for values that fit.
// PutBig 将 x 的 256 位二进制补码表示的最低 len(dst) 字节写入 dst。
func PutBig(dst []byte, x *big.Int) {
	var u uint256.Int
	u.SetFromBig(x)
	word := u.Bytes32()
	copy(dst, word[WordBytes-len(dst):])
}

// PutUint64 writes v right aligned into dst, zero-filling the remaining bytes.
func PutUint64(dst []byte, v uint64) {
	clear(dst)
	for i := len(dst) - 1; i >= 0 && v != 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// PutInt64 writes v right aligned into dst, sign-extending it to the full
// length of dst.
// PutInt64 将 v 右对齐写入 dst，并符号扩展到 dst 的完整长度。
func PutInt64(dst []byte, v int64) {
	var fill byte
	if v < 0 {
		fill = 0xff
	}
	for i := len(dst) - 1; i >= 0; i-- {
		if len(dst)-1-i < 8 {
			dst[i] = byte(v >> (8 * (len(dst) - 1 - i)))
		} else {
			dst[i] = fill
		}
	}
}

// ReadWord interprets a 32 byte big-endian slice as an unsigned word.
func ReadWord(word []byte) *uint256.Int {
	return new(uint256.Int).SetBytes32(word)
}

// SignExtend widens a big-endian integer of up to 32 bytes into a full word.
// Signed inputs with the top bit set are padded with 0xff, all others with zero.
// SignExtend 将最多 32 字节的大端整数扩展为完整的字。
func SignExtend(b []byte, signed bool) *uint256.Int {
	var word [WordBytes]byte
	if signed && len(b) > 0 && b[0]&0x80 != 0 {
		for i := 0; i < WordBytes-len(b); i++ {
			word[i] = 0xff
		}
	}
	copy(word[WordBytes-len(b):], b)
	return new(uint256.Int).SetBytes32(word[:])
}

// WordBitLen returns the number of significant bits in u. For signed
// interpretation this is the two's complement bit length, excluding the sign bit.
// WordBitLen 返回 u 中的有效位数。对于有符号解释，这是不包括符号位的二进制补码位长度。
func WordBitLen(u *uint256.Int, signed bool) int {
	if signed && u.Sign() < 0 {
		return new(uint256.Int).Not(u).BitLen()
	}
	return u.BitLen()
}

// WordToBig converts a word to a big integer, treating it as two's complement
// when signed is set.
func WordToBig(u *uint256.Int, signed bool) *big.Int {
	if signed && u.Sign() < 0 {
		b := new(uint256.Int).Neg(u).ToBig()
		return b.Neg(b)
	}
	return u.ToBig()
}

// SignedBitLen returns the bit length of the two's complement representation of
// x, excluding the sign bit. For non-negative x this equals x.BitLen().
// SignedBitLen 返回 x 的二进制补码表示（不含符号位）的位长度。
func SignedBitLen(x *big.Int) int {
	if x.Sign() >= 0 {
		return x.BitLen()
	}
	return new(big.Int).Not(x).BitLen()
}
