/*
 * layout_test.go, part of chemtraj
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLayout(Te *testing.T) {
	H := Header{NumAtoms: 100, NumSnapshots: 5, HasUnitCell: true, HeaderBytes: 100}
	L := ValidateLayout(H, 6500)
	assert.Equal(Te, int64(24+1200+56), L.BytesPerSnapshot)
	assert.Equal(Te, int64(1280), L.BytesPerSnapshot)
	assert.Equal(Te, int64(6500), L.ExpectedFileSize)
	assert.True(Te, L.Matches)
	assert.NoError(Te, L.Err())
	n, exact := L.ImpliedSnapshots()
	assert.Equal(Te, int64(5), n)
	assert.True(Te, exact)

	L = ValidateLayout(H, 6499)
	assert.False(Te, L.Matches)
	assert.Equal(Te, int64(6500), L.ExpectedFileSize)
	assert.Equal(Te, int64(6499), L.ActualFileSize)
	var lerr *LayoutMismatchError
	assert.True(Te, errors.As(L.Err(), &lerr))
	assert.Equal(Te, L, lerr.Report)
	n, exact = L.ImpliedSnapshots()
	assert.Equal(Te, int64(4), n)
	assert.False(Te, exact)
}

func TestValidateLayoutVariants(Te *testing.T) {
	cases := []struct {
		name     string
		H        Header
		actual   int64
		perSnap  int64
		expected int64
		implied  int64
	}{
		{"no cell", Header{NumAtoms: 10, NumSnapshots: 3, HeaderBytes: 120}, 120 + 3*144, 144, 120 + 3*144, 3},
		{"header over-reports", Header{NumAtoms: 10, NumSnapshots: 9, HeaderBytes: 120}, 120 + 3*144, 144, 120 + 9*144, 3},
		{"header under-reports", Header{NumAtoms: 10, NumSnapshots: 0, HeaderBytes: 120}, 120 + 7*144, 144, 120, 7},
		{"four dims", Header{NumAtoms: 10, NumSnapshots: 2, HeaderBytes: 120, FourDims: true}, 120 + 2*192, 192, 120 + 2*192, 2},
		{"no atoms", Header{NumAtoms: 0, NumSnapshots: 2, HeaderBytes: 100, HasUnitCell: true}, 100 + 2*80, 80, 100 + 2*80, 2},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			L := ValidateLayout(c.H, c.actual)
			assert.Equal(Te, c.perSnap, L.BytesPerSnapshot)
			assert.Equal(Te, c.expected, L.ExpectedFileSize)
			assert.Equal(Te, c.expected == c.actual, L.Matches)
			n, exact := L.ImpliedSnapshots()
			assert.Equal(Te, c.implied, n)
			assert.True(Te, exact)
		})
	}
}

func TestImpliedSnapshotsShortFile(Te *testing.T) {
	L := ValidateLayout(Header{NumAtoms: 10, NumSnapshots: 1, HeaderBytes: 120}, 50)
	n, exact := L.ImpliedSnapshots()
	assert.Zero(Te, n)
	assert.False(Te, exact)
}
