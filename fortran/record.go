/*
 * record.go, part of chemtraj.
 *
 * Copyright 2021 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package fortran

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MarkerSize is the size in bytes of each of the two length fields
// around a record.
const MarkerSize = 4

// Overhead is the number of framing bytes per record.
const Overhead = 2 * MarkerSize

// DefaultMaxRecordLen is the largest record a new Framer accepts (1 GiB).
const DefaultMaxRecordLen int32 = 1 << 30

// Framer reads length-delimited records from a stream.
type Framer struct {
	r      *bufio.Reader
	order  binary.ByteOrder
	index  int   //records read successfully
	offset int64 //bytes consumed by those records
	maxLen int32
}

// NewFramer returns a Framer reading from r with the given byte order
// for the length fields. A nil order means the native byte order.
func NewFramer(r io.Reader, order binary.ByteOrder) *Framer {
	if order == nil {
		order = binary.NativeEndian
	}
	return &Framer{r: bufio.NewReader(r), order: order, maxLen: DefaultMaxRecordLen}
}

// Index returns the zero-based index of the next record, which is the
// number of records read so far.
func (F *Framer) Index() int { return F.index }

// Offset returns the number of stream bytes consumed by the records read so far.
func (F *Framer) Offset() int64 { return F.offset }

// Order returns the byte order used for the length fields.
func (F *Framer) Order() binary.ByteOrder { return F.order }

// SetOrder changes the byte order used for the length fields.
// It is meant to be called before the first record is read.
func (F *Framer) SetOrder(order binary.ByteOrder) {
	if order == nil {
		order = binary.NativeEndian
	}
	F.order = order
}

// SetMaxRecordLen sets the largest accepted record length. n<=0 removes the limit.
func (F *Framer) SetMaxRecordLen(n int32) {
	F.maxLen = n
}

// MaxRecordLen returns the largest accepted record length, 0 or less if
// there is no limit.
func (F *Framer) MaxRecordLen() int32 { return F.maxLen }

// Reset discards any buffered data and the cursor, and makes F read
// from r. offset is the stream position r is at, so Offset stays meaningful
// after a seek; index is the number of records before that position.
func (F *Framer) Reset(r io.Reader, index int, offset int64) {
	F.r.Reset(r)
	F.index = index
	F.offset = offset
}

// PeekLength returns the next leading length decoded with order, without
// consuming anything.
func (F *Framer) PeekLength(order binary.ByteOrder) (int32, error) {
	b, err := F.r.Peek(MarkerSize)
	if err != nil {
		return 0, F.truncated(LeadingLength, MarkerSize, len(b), err)
	}
	return int32(order.Uint32(b)), nil
}

// ReadRecord reads the next record and returns its payload.
// The stream is left just past the trailing length.
func (F *Framer) ReadRecord() ([]byte, error) {
	pre, err := F.readLength(LeadingLength)
	if err != nil {
		return nil, err
	}
	if pre < 0 || (F.maxLen > 0 && pre > F.maxLen) {
		return nil, &LengthError{RecordIndex: F.index, Length: pre, Max: F.maxLen}
	}
	payload := make([]byte, pre)
	if n, err := io.ReadFull(F.r, payload); err != nil {
		return nil, F.truncated(Payload, int(pre), n, err)
	}
	post, err := F.readLength(TrailingLength)
	if err != nil {
		return nil, err
	}
	if pre != post {
		return nil, &FramingError{RecordIndex: F.index, PreLen: pre, PostLen: post}
	}
	F.index++
	F.offset += int64(pre) + Overhead
	return payload, nil
}

func (F *Framer) readLength(stage Stage) (int32, error) {
	var b [MarkerSize]byte
	if n, err := io.ReadFull(F.r, b[:]); err != nil {
		return 0, F.truncated(stage, MarkerSize, n, err)
	}
	return int32(F.order.Uint32(b[:])), nil
}

// truncated turns a short read into a TruncatedStreamError. Errors other than
// EOF are I/O failures and are returned wrapped, as they are.
func (F *Framer) truncated(stage Stage, want, got int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &TruncatedStreamError{RecordIndex: F.index, Stage: stage, Want: want, Got: got, Err: err}
	}
	return fmt.Errorf("fortran: reading %s of record %d: %w", stage, F.index, err)
}
