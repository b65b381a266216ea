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
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandlerFormat(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelInfo, false))
	l.Info("encoded", "size", 68, "data", []byte{0xa9, 0x05}, "value", big.NewInt(-7))

	have := out.String()
	// the timestamp is variable, check the parts around it
	assert.True(t, strings.HasPrefix(have, "INFO ["), have)
	assert.Contains(t, have, "] encoded")
	assert.Contains(t, have, "size=68")
	assert.Contains(t, have, "data=0xa905")
	assert.Contains(t, have, "value=-7")
	assert.True(t, strings.HasSuffix(have, "\n"))
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelInfo, false))
	l.Debug("hidden")
	l.Trace("hidden")
	assert.Empty(t, out.String())

	l.Warn("shown")
	assert.Contains(t, out.String(), "WARN ")
}

func TestTerminalHandlerWithAttrs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false)).With("cmd", "encode")
	l.Trace("x")
	assert.Contains(t, out.String(), "cmd=encode")
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandlerWithLevel(out, LevelTrace))
	l.Trace("registered", "type", "uint8[]", "n", big.NewInt(5))

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "trace", rec["lvl"])
	assert.Equal(t, "registered", rec["msg"])
	assert.Equal(t, "5", rec["n"])
}

func TestOddArguments(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Info("odd", "key")
	assert.Contains(t, out.String(), errorKey)
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
	assert.Equal(t, slog.LevelError, FromLegacyLevel(1))
}

func TestRootDiscardsByDefault(t *testing.T) {
	assert.False(t, Root().Enabled(context.Background(), LevelCrit))
}
