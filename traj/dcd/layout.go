/*
 * layout.go, part of chemtraj
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

import "github.com/rmera/chemtraj/fortran"

// cellBytes is the payload of a unit cell record: 6 float64.
const cellBytes = 6 * 8

// LayoutReport compares the size a header implies for its file with the
// actual size of the file.
type LayoutReport struct {
	BytesPerSnapshot  int64
	ExpectedFileSize  int64
	ActualFileSize    int64
	Matches           bool
	HeaderBytes       int64
	DeclaredSnapshots int64
}

// SnapshotBytes returns the bytes one snapshot of natoms atoms takes on disk,
// framing included.
func SnapshotBytes(natoms int32, hasCell, fourDims bool) int64 {
	coords := int64(natoms) * 4
	n := 3 * (coords + fortran.Overhead)
	if hasCell {
		n += cellBytes + fortran.Overhead
	}
	if fourDims {
		n += coords + fortran.Overhead
	}
	return n
}

// ValidateLayout computes the file size implied by H and compares it
// with actualFileSize. It does no I/O. A mismatch is reported in the
// returned value, not as an error: headers often get the snapshot count wrong.
func ValidateLayout(H Header, actualFileSize int64) LayoutReport {
	var L LayoutReport
	L.BytesPerSnapshot = SnapshotBytes(H.NumAtoms, H.HasUnitCell, H.FourDims)
	L.DeclaredSnapshots = int64(H.NumSnapshots)
	L.HeaderBytes = H.HeaderBytes
	L.ExpectedFileSize = L.BytesPerSnapshot*L.DeclaredSnapshots + H.HeaderBytes
	L.ActualFileSize = actualFileSize
	L.Matches = L.ExpectedFileSize == L.ActualFileSize
	return L
}

// Err returns nil if the layout matches, and a *LayoutMismatchError otherwise.
func (L LayoutReport) Err() error {
	if L.Matches {
		return nil
	}
	return &LayoutMismatchError{Report: L}
}

// ImpliedSnapshots returns the number of whole snapshots that fit in the
// actual file after the header, and whether they fill it exactly.
func (L LayoutReport) ImpliedSnapshots() (int64, bool) {
	body := L.ActualFileSize - L.HeaderBytes
	if body < 0 || L.BytesPerSnapshot <= 0 {
		return 0, false
	}
	return body / L.BytesPerSnapshot, body%L.BytesPerSnapshot == 0
}
