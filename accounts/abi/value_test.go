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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  string
		scale int
	}{
		{"0", "0", 0},
		{"-12.50", "-12.50", 2},
		{"0.05", "0.05", 2},
		{"-0.005", "-0.005", 3},
		{"+7.1", "7.1", 1},
	}
	for _, tt := range tests {
		d, err := ParseDecimal(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, d.String())
		assert.Equal(t, tt.scale, d.Scale)
	}
	for _, bad := range []string{"", "1.", ".1", "-.1", "1.2.3", "1e5", "abc"} {
		_, err := ParseDecimal(bad)
		assert.Error(t, err, bad)
	}
}

func TestDecimalRescale(t *testing.T) {
	d := NewDecimal(big.NewInt(-1250), 2)

	wide, err := d.Rescale(4)
	require.NoError(t, err)
	assert.Equal(t, "-12.5000", wide.String())
	assert.True(t, wide.Equal(d))

	narrow, err := d.Rescale(1)
	require.NoError(t, err)
	assert.Equal(t, "-12.5", narrow.String())

	_, err = d.Rescale(0)
	assert.Error(t, err)
	assert.False(t, d.Equal(NewDecimal(big.NewInt(-125), 0)))
}

func TestTupleEqual(t *testing.T) {
	a := Tuple{big.NewInt(5), []byte{1}, []*big.Int{big.NewInt(1)}, nil, Tuple{"x"}}
	b := Tuple{big.NewInt(5), []byte{1}, []*big.Int{big.NewInt(1)}, nil, Tuple{"x"}}
	assert.True(t, a.Equal(b))

	b[0] = int64(5)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a[:4]))
	assert.Equal(t, `(5, 0x01, [1], <nil>, ("x"))`, a.String())
}
