/*
 * snapshot.go, part of chemtraj
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
	"encoding/binary"
	"errors"
	"math"

	"github.com/rmera/chemtraj/fortran"
	v3 "github.com/rmera/chemtraj/v3"
)

// Snapshot is one frame of a trajectory: the x, y and z coordinates of
// every atom and, if the trajectory has them, the 6 unit cell values.
type Snapshot struct {
	Index   int //zero-based position of the snapshot in the trajectory
	X, Y, Z []float32
	Cell    []float64
}

// NewSnapshot allocates a snapshot for natoms atoms. A negative natoms
// gives a snapshot without atoms.
func NewSnapshot(natoms int, hasCell bool) *Snapshot {
	natoms = max(natoms, 0)
	S := &Snapshot{
		X: make([]float32, natoms),
		Y: make([]float32, natoms),
		Z: make([]float32, natoms),
	}
	if hasCell {
		S.Cell = make([]float64, 6)
	}
	return S
}

// Len returns the number of atoms in the snapshot.
func (S *Snapshot) Len() int { return len(S.X) }

// Coords puts the coordinates of S in the first Len() vectors of dst.
func (S *Snapshot) Coords(dst *v3.Matrix) error {
	if dst.NVecs() < S.Len() {
		return &Error{NotEnoughSpace, "", []string{"Coords"}, true, nil}
	}
	for i := range S.X {
		dst.SetVec(i, float64(S.X[i]), float64(S.Y[i]), float64(S.Z[i]))
	}
	return nil
}

// Matrix returns a new Matrix with the coordinates of S, or nil for
// a snapshot without atoms.
func (S *Snapshot) Matrix() *v3.Matrix {
	data := make([]float64, 0, 3*S.Len())
	for i := range S.X {
		data = append(data, float64(S.X[i]), float64(S.Y[i]), float64(S.Z[i]))
	}
	M, err := v3.NewMatrix(data)
	if err != nil {
		//data always has 3 values per atom, so only an empty snapshot fails
		return nil
	}
	return M
}

type recordKind int

const (
	xRecord recordKind = iota
	yRecord
	zRecord
	cellRecord
	fourDRecord
)

// SnapshotReader reads snapshots with a Framer positioned after the header.
type SnapshotReader struct {
	f         *fortran.Framer
	natoms    int32
	hasCell   bool
	cellFirst bool
	fourDims  bool
	read      int
	filename  string
}

// NewSnapshotReader returns a reader for snapshots of natoms atoms, with a
// unit cell record after the coordinates if hasCell is true.
func NewSnapshotReader(F *fortran.Framer, natoms int32, hasCell bool) *SnapshotReader {
	return &SnapshotReader{f: F, natoms: natoms, hasCell: hasCell}
}

// SetCellFirst makes S expect the unit cell record before the coordinates.
func (S *SnapshotReader) SetCellFirst(b bool) { S.cellFirst = b }

// SetFourDims makes S skip the fourth dimension record after z.
func (S *SnapshotReader) SetFourDims(b bool) { S.fourDims = b }

// Read returns the number of snapshots read so far.
func (S *SnapshotReader) Read() int { return S.read }

func (S *SnapshotReader) records() []recordKind {
	r := make([]recordKind, 0, 5)
	if S.hasCell && S.cellFirst {
		r = append(r, cellRecord)
	}
	r = append(r, xRecord, yRecord, zRecord)
	if S.fourDims {
		r = append(r, fourDRecord)
	}
	if S.hasCell && !S.cellFirst {
		r = append(r, cellRecord)
	}
	return r
}

// Next reads and returns the next snapshot. At the end of the data it
// returns an error that implements chem.LastFrameError and matches io.EOF.
func (S *SnapshotReader) Next() (*Snapshot, error) {
	ret := NewSnapshot(int(S.natoms), S.hasCell)
	if err := S.NextInto(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// NextInto reads the next snapshot into dst, reusing its slices when they
// have the right length. If an error is returned, the content of dst is
// undefined.
func (S *SnapshotReader) NextInto(dst *Snapshot) error {
	n := int(S.natoms)
	if n < 0 {
		return &FormatError{Reason: BadAtomCount, Record: S.f.Index()}
	}
	if len(dst.X) != n || len(dst.Y) != n || len(dst.Z) != n {
		dst.X = make([]float32, n)
		dst.Y = make([]float32, n)
		dst.Z = make([]float32, n)
	}
	if !S.hasCell {
		dst.Cell = nil
	} else if len(dst.Cell) != 6 {
		dst.Cell = make([]float64, 6)
	}
	order := S.f.Order()
	for i, kind := range S.records() {
		index := S.f.Index()
		rec, err := S.f.ReadRecord()
		if err != nil {
			var trunc *fortran.TruncatedStreamError
			if i == 0 && errors.As(err, &trunc) && trunc.AtBoundary() {
				return newlastFrameError(S.filename, "NextInto")
			}
			return err
		}
		switch kind {
		case xRecord, yRecord, zRecord, fourDRecord:
			if len(rec) != 4*n {
				return &FormatError{Reason: CoordSizeMismatch, Record: index}
			}
			switch kind {
			case xRecord:
				decodeFloat32s(dst.X, rec, order)
			case yRecord:
				decodeFloat32s(dst.Y, rec, order)
			case zRecord:
				decodeFloat32s(dst.Z, rec, order)
			}
		case cellRecord:
			if len(rec) != cellBytes {
				return &FormatError{Reason: CellSizeMismatch, Record: index}
			}
			for j := range dst.Cell {
				dst.Cell[j] = math.Float64frombits(order.Uint64(rec[8*j:]))
			}
		}
	}
	dst.Index = S.read
	S.read++
	return nil
}

func decodeFloat32s(dst []float32, b []byte, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = math.Float32frombits(order.Uint32(b[4*i:]))
	}
}
