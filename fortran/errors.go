/*
 * errors.go, part of chemtraj.
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

import "fmt"

// Stage is the part of a record a Framer was reading when it failed.
type Stage int

const (
	LeadingLength Stage = iota
	Payload
	TrailingLength
)

func (s Stage) String() string {
	switch s {
	case LeadingLength:
		return "leading length"
	case Payload:
		return "payload"
	case TrailingLength:
		return "trailing length"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// TruncatedStreamError is returned when the stream ends before a framing
// step could read all the bytes it needs.
type TruncatedStreamError struct {
	RecordIndex int
	Stage       Stage
	Want        int
	Got         int
	Err         error //io.EOF or io.ErrUnexpectedEOF
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("fortran: record %d truncated reading %s: want %d bytes, got %d", e.RecordIndex, e.Stage, e.Want, e.Got)
}

func (e *TruncatedStreamError) Unwrap() error { return e.Err }

// AtBoundary reports whether the stream ended exactly where a new record
// would begin, i.e. no byte of the record was available.
func (e *TruncatedStreamError) AtBoundary() bool {
	return e.Stage == LeadingLength && e.Got == 0
}

// FramingError is returned when the leading and trailing lengths of a record
// differ.
type FramingError struct {
	RecordIndex int
	PreLen      int32
	PostLen     int32
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("fortran: record %d size mismatch: leading length %d, trailing length %d", e.RecordIndex, e.PreLen, e.PostLen)
}

// LengthError is returned when a leading length is negative or larger than
// the Framer's limit. Nothing past the length is read.
type LengthError struct {
	RecordIndex int
	Length      int32
	Max         int32
}

func (e *LengthError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("fortran: record %d has negative length %d", e.RecordIndex, e.Length)
	}
	return fmt.Sprintf("fortran: record %d length %d exceeds limit %d", e.RecordIndex, e.Length, e.Max)
}
