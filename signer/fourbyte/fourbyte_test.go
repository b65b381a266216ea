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
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/abicodec/accounts/abi"
	"github.com/sunyihoo/abicodec/common/hexutil"
)

func word(v uint64) string {
	return fmt.Sprintf("%064x", v)
}

// Tests that all the selectors contained in the 4byte database are valid.
// 测试 4byte 数据库中包含的所有选择器是否有效。
func TestEmbeddedDatabase(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	for id, selector := range db.embedded {
		fn, err := abi.ParseFunction(selector, "")
		if err != nil {
			t.Errorf("Failed to parse selector %s: %v", selector, err)
			continue
		}
		assert.Equal(t, selector, fn.Sig, "selector not canonical")
		assert.Equal(t, id, hex.EncodeToString(fn.ID), "selector %s", selector)
	}
}

// Tests that custom 4byte datasets can be handled too.
// 测试自定义 4byte 数据集也可以被处理。
func TestCustomDatabase(t *testing.T) {
	// Create a new custom 4byte database with no embedded component
	// 创建一个没有嵌入组件的新自定义 4byte 数据库
	filename := filepath.Join(t.TempDir(), "4byte_custom.json")

	db, err := NewWithFile(filename)
	require.NoError(t, err)
	db.embedded = make(map[string]string)

	// Ensure the database is empty, insert and verify
	// 确保数据库为空，插入并验证
	calldata := hexutil.MustDecode("0xa52c101edeadbeef")
	_, err = db.Selector(calldata)
	require.Error(t, err, "Should not find a match on empty database")

	sig, err := db.AddSelector("send(uint)")
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", sig)

	got, err := db.Selector(calldata)
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", got)

	// Check that the file was persisted and reopens with the entry
	// 检查文件已持久化，重新打开后包含该条目
	_, err = os.Stat(filename)
	require.NoError(t, err)

	db, err = NewWithFile(filename)
	require.NoError(t, err)
	embedded, custom := db.Size()
	assert.NotZero(t, embedded)
	assert.Equal(t, 1, custom)
	got, err = db.Selector(calldata)
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", got)
}

func TestAddKnownSelector(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	sig, err := db.AddSelector("transfer(address,uint)")
	require.NoError(t, err)
	assert.Equal(t, "transfer(address,uint256)", sig)

	_, custom := db.Size()
	assert.Zero(t, custom)

	_, err = db.AddSelector("transfer(address,")
	assert.Error(t, err)
}

func TestInvalidCustomDatabase(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(filename, []byte("{"), 0600))

	_, err := NewWithFile(filename)
	assert.ErrorContains(t, err, "invalid 4byte database")
}

func TestSelectorShortID(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	_, err = db.Selector([]byte{0xa9, 0x05})
	assert.EqualError(t, err, "expected 4-byte id, got 2")
}

func TestDecodeCall(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	calldata := hexutil.MustDecode("0xa9059cbb" + word(1) + word(100))
	call, err := db.DecodeCall(calldata)
	require.NoError(t, err)

	assert.Equal(t, "transfer", call.Function.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "1", call.Args[0].(*big.Int).String())
	assert.Equal(t, "100", call.Args[1].(*big.Int).String())
	assert.Equal(t, "transfer(address: 0x0000000000000000000000000000000000000001,uint256: 100)", call.String())

	// Calls without arguments carry only the selector
	call, err = db.DecodeCall(hexutil.MustDecode("0xd0e30db0"))
	require.NoError(t, err)
	assert.Equal(t, "deposit()", call.String())

	_, err = db.DecodeCall(hexutil.MustDecode("0xdeadbeef"))
	assert.ErrorContains(t, err, "signature deadbeef not found")
}

func TestVerifySelector(t *testing.T) {
	// sam("dave", true, [1,2,3])
	dave := "6461766500000000000000000000000000000000000000000000000000000000"
	canonical := []string{
		"a5643bf2",
		word(0x60), word(1), word(0xa0),
		word(4), dave,
		word(3), word(1), word(2), word(3),
	}
	call, err := VerifySelector("sam(bytes,bool,uint256[])", hexutil.MustDecode("0x"+strings.Join(canonical, "")))
	require.NoError(t, err)
	assert.Equal(t, `sam(bytes: 0x64617665,bool: true,uint256[]: [1,2,3])`, call.String())

	tests := []struct {
		name     string
		sig      string
		calldata string
		err      string
	}{
		{
			name:     "bad signature",
			sig:      "sam(bytes,",
			calldata: "a5643bf2",
			err:      "failed to parse selector",
		},
		{
			name:     "short selector",
			sig:      "deposit()",
			calldata: "d0e3",
			err:      "incomplete method signature (2 bytes < 4)",
		},
		{
			name:     "unaligned arguments",
			sig:      "withdraw(uint256)",
			calldata: "2e1a7d4d" + word(1) + "00",
			err:      "length should be a multiple of 32 bytes (was 33)",
		},
		{
			name:     "other selector",
			sig:      "withdraw(uint256)",
			calldata: "a9059cbb" + word(1),
			err:      "arguments mismatch",
		},
		{
			name:     "truncated arguments",
			sig:      "transfer(address,uint256)",
			calldata: "a9059cbb" + word(1),
			err:      "arguments mismatch",
		},
		{
			// The first offset points past a gap; the decoder reads the tails
			// in order so only the re-encoding notices.
			name: "non-canonical offset",
			sig:  "sam(bytes,bool,uint256[])",
			calldata: strings.Join([]string{
				"a5643bf2",
				word(0x80), word(1), word(0xa0),
				word(4), dave,
				word(3), word(1), word(2), word(3),
			}, ""),
			err: "not canonically encoded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifySelector(tt.sig, hexutil.MustDecode("0x"+tt.calldata))
			assert.ErrorContains(t, err, tt.err)
		})
	}
}
