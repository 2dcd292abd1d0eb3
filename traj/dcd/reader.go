/*
 * reader.go, part of chemtraj
 *
 * Copyright 2012 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
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

package dcd

import (
	"io"
	"iter"

	chem "github.com/rmera/chemtraj"
	"github.com/rmera/chemtraj/fortran"
)

// Reader decodes a DCD stream: the header when it is created, then one
// snapshot per call to Next. Reading is strictly sequential.
type Reader struct {
	f        *fortran.Framer
	header   Header
	snaps    *SnapshotReader
	filename string
}

// NewReader decodes the header of the DCD stream in r and returns a
// Reader positioned at the first snapshot. O may be nil, in which case
// DefaultOptions is used.
func NewReader(r io.Reader, O *Options) (*Reader, error) {
	if O == nil {
		O = DefaultOptions()
	}
	F := fortran.NewFramer(r, O.order)
	F.SetMaxRecordLen(O.maxRecordLen)
	if O.order == nil {
		order, err := DetectByteOrder(F)
		if err != nil {
			return nil, err
		}
		F.SetOrder(order)
	}
	H, err := DecodeHeader(F)
	if err != nil {
		return nil, err
	}
	O.logger.Debug().
		Int32("atoms", H.NumAtoms).
		Int32("snapshots", H.NumSnapshots).
		Float64("version", H.Version).
		Bool("unitcell", H.HasUnitCell).
		Str("byteorder", H.ByteOrder.String()).
		Msg("decoded DCD header")
	R := &Reader{f: F, header: H}
	R.snaps = NewSnapshotReader(F, H.NumAtoms, H.HasUnitCell)
	R.snaps.SetCellFirst(O.cellFirst)
	R.snaps.SetFourDims(H.FourDims)
	return R, nil
}

// Header returns the decoded header.
func (R *Reader) Header() Header { return R.header }

// Validate compares the layout declared in the header with fileSize,
// the total size of the stream.
func (R *Reader) Validate(fileSize int64) LayoutReport {
	return ValidateLayout(R.header, fileSize)
}

// Next returns the next snapshot. See SnapshotReader.Next.
func (R *Reader) Next() (*Snapshot, error) {
	return R.snaps.Next()
}

// NextInto reads the next snapshot into dst. See SnapshotReader.NextInto.
func (R *Reader) NextInto(dst *Snapshot) error {
	return R.snaps.NextInto(dst)
}

// Read returns the number of snapshots read so far.
func (R *Reader) Read() int { return R.snaps.Read() }

// Snapshots returns an iterator over the remaining snapshots. It stops
// silently at the end of the data; any other error is yielded once, with a
// nil snapshot, and ends the sequence. Each snapshot is freshly allocated.
// The iterator consumes the stream and can not be restarted.
func (R *Reader) Snapshots() iter.Seq2[*Snapshot, error] {
	return func(yield func(*Snapshot, error) bool) {
		for {
			s, err := R.Next()
			if err != nil {
				if _, ok := err.(chem.LastFrameError); !ok {
					yield(nil, err)
				}
				return
			}
			if !yield(s, nil) {
				return
			}
		}
	}
}

// reset makes R read snapshots from r, which must be positioned right
// after the header.
func (R *Reader) reset(r io.Reader) {
	R.f.Reset(r, 3, R.header.HeaderBytes)
	R.snaps.read = 0
}

func (R *Reader) setFilename(name string) {
	R.filename = name
	R.snaps.filename = name
}
