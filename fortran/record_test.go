/*
 * record_test.go, part of chemtraj.
 *
 * Copyright 2021 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 */

package fortran

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frame appends one record with the given lengths around payload.
func frame(buf *bytes.Buffer, order binary.ByteOrder, pre int32, payload []byte, post int32) {
	binary.Write(buf, order, pre)
	buf.Write(payload)
	binary.Write(buf, order, post)
}

func record(buf *bytes.Buffer, order binary.ByteOrder, payload []byte) {
	frame(buf, order, int32(len(payload)), payload, int32(len(payload)))
}

func TestReadRecords(Te *testing.T) {
	payloads := [][]byte{
		[]byte("CORD"),
		{},
		bytes.Repeat([]byte{0xAB, 0x00, 0xFF}, 1000),
		[]byte("test run"),
		{1, 2, 3, 4},
	}
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		var buf bytes.Buffer
		for _, p := range payloads {
			record(&buf, order, p)
		}
		total := int64(buf.Len())
		F := NewFramer(&buf, order)
		for i, want := range payloads {
			assert.Equal(Te, i, F.Index())
			got, err := F.ReadRecord()
			require.NoError(Te, err)
			assert.Equal(Te, want, got)
		}
		assert.Equal(Te, len(payloads), F.Index())
		assert.Equal(Te, total, F.Offset())

		_, err := F.ReadRecord()
		var trunc *TruncatedStreamError
		require.ErrorAs(Te, err, &trunc)
		assert.True(Te, trunc.AtBoundary())
		assert.ErrorIs(Te, err, io.EOF)
		assert.Equal(Te, len(payloads), trunc.RecordIndex)
	}
}

func TestFramingMismatch(Te *testing.T) {
	for good := 0; good < 4; good++ {
		var buf bytes.Buffer
		for i := 0; i < good; i++ {
			record(&buf, binary.LittleEndian, []byte{byte(i), 1, 2})
		}
		frame(&buf, binary.LittleEndian, 3, []byte{9, 9, 9}, 4)
		F := NewFramer(&buf, binary.LittleEndian)
		var err error
		for err == nil {
			_, err = F.ReadRecord()
		}
		var ferr *FramingError
		require.ErrorAs(Te, err, &ferr)
		assert.Equal(Te, good, ferr.RecordIndex)
		assert.Equal(Te, int32(3), ferr.PreLen)
		assert.Equal(Te, int32(4), ferr.PostLen)
		assert.Equal(Te, good, F.Index(), "failed records do not advance the index")
	}
}

func TestTruncated(Te *testing.T) {
	full := new(bytes.Buffer)
	record(full, binary.LittleEndian, []byte("abcdefgh"))
	b := full.Bytes()
	cases := []struct {
		name  string
		cut   int
		stage Stage
		got   int
	}{
		{"empty", 0, LeadingLength, 0},
		{"partial leading length", 2, LeadingLength, 2},
		{"partial payload", 7, Payload, 3},
		{"no trailing length", 12, TrailingLength, 0},
		{"partial trailing length", 14, TrailingLength, 2},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			F := NewFramer(bytes.NewReader(b[:c.cut]), binary.LittleEndian)
			got, err := F.ReadRecord()
			assert.Nil(Te, got)
			var trunc *TruncatedStreamError
			require.ErrorAs(Te, err, &trunc)
			assert.Equal(Te, c.stage, trunc.Stage)
			assert.Equal(Te, c.got, trunc.Got)
			assert.Equal(Te, c.cut == 0, trunc.AtBoundary())
			var ferr *FramingError
			assert.False(Te, errors.As(err, &ferr))
		})
	}
}

func TestLengthLimits(Te *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int32(-8))
	F := NewFramer(&buf, binary.LittleEndian)
	_, err := F.ReadRecord()
	var lerr *LengthError
	require.ErrorAs(Te, err, &lerr)
	assert.Equal(Te, int32(-8), lerr.Length)

	buf.Reset()
	record(&buf, binary.LittleEndian, make([]byte, 64))
	F = NewFramer(&buf, binary.LittleEndian)
	F.SetMaxRecordLen(32)
	_, err = F.ReadRecord()
	require.ErrorAs(Te, err, &lerr)
	assert.Equal(Te, int32(64), lerr.Length)
	assert.Equal(Te, int32(32), lerr.Max)
}

func TestPeekLength(Te *testing.T) {
	var buf bytes.Buffer
	record(&buf, binary.BigEndian, make([]byte, 84))
	F := NewFramer(&buf, nil)
	n, err := F.PeekLength(binary.BigEndian)
	require.NoError(Te, err)
	assert.Equal(Te, int32(84), n)
	n, err = F.PeekLength(binary.LittleEndian)
	require.NoError(Te, err)
	assert.Equal(Te, int32(84<<24), n)

	F.SetOrder(binary.BigEndian)
	p, err := F.ReadRecord()
	require.NoError(Te, err)
	assert.Len(Te, p, 84)

	_, err = F.PeekLength(binary.BigEndian)
	var trunc *TruncatedStreamError
	require.ErrorAs(Te, err, &trunc)
	assert.True(Te, trunc.AtBoundary())
}

func TestReset(Te *testing.T) {
	var buf bytes.Buffer
	record(&buf, binary.LittleEndian, []byte{1})
	record(&buf, binary.LittleEndian, []byte{2})
	data := buf.Bytes()
	F := NewFramer(bytes.NewReader(data), binary.LittleEndian)
	_, err := F.ReadRecord()
	require.NoError(Te, err)
	F.Reset(bytes.NewReader(data[9:]), 1, 9)
	p, err := F.ReadRecord()
	require.NoError(Te, err)
	assert.Equal(Te, []byte{2}, p)
	assert.Equal(Te, 2, F.Index())
	assert.Equal(Te, int64(18), F.Offset())
}
