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
package crypto

import (
	"encoding/hex"
	"testing"
)

func TestKeccak256(t *testing.T) {
	const exp = "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"
	if got := hex.EncodeToString(Keccak256([]byte("abc"))); got != exp {
		t.Fatalf("hash mismatch: want: %s have: %s", exp, got)
	}
	// split input hashes the same as the joined input
	if got := hex.EncodeToString(Keccak256([]byte("a"), []byte("bc"))); got != exp {
		t.Fatalf("hash mismatch: want: %s have: %s", exp, got)
	}
}

func TestSelectorDerivation(t *testing.T) {
	if got := hex.EncodeToString(Keccak256([]byte("transfer(address,uint256)"))[:4]); got != "a9059cbb" {
		t.Fatalf("got selector %s", got)
	}
}
