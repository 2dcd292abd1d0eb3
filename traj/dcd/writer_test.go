/*
 * writer_test.go, part of chemtraj
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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testFrame is one snapshot to be written by testDCD.
type testFrame struct {
	x, y, z []float32
	cell    []float64
}

// testDCD writes DCD files the way a CHARMM-compatible writer does,
// for the tests to read back.
type testDCD struct {
	order     binary.ByteOrder
	icntrl    ControlBlock
	title     []byte
	natoms    int32
	frames    []testFrame
	cellFirst bool
}

func (T *testDCD) record(buf *bytes.Buffer, data any) {
	size := int32(binary.Size(data))
	binary.Write(buf, T.order, size)
	binary.Write(buf, T.order, data)
	binary.Write(buf, T.order, size)
}

func (T *testDCD) headerBytes() []byte {
	var buf bytes.Buffer
	first := make([]byte, 0, 84)
	first = append(first, []byte(Magic)...)
	for _, v := range T.icntrl {
		first = appendUint32(T.order, first, uint32(v))
	}
	T.record(&buf, first)
	T.record(&buf, T.title)
	T.record(&buf, T.natoms)
	return buf.Bytes()
}

func (T *testDCD) frameBytes(f testFrame) []byte {
	var buf bytes.Buffer
	if f.cell != nil && T.cellFirst {
		T.record(&buf, f.cell)
	}
	T.record(&buf, f.x)
	T.record(&buf, f.y)
	T.record(&buf, f.z)
	if f.cell != nil && !T.cellFirst {
		T.record(&buf, f.cell)
	}
	return buf.Bytes()
}

func (T *testDCD) bytes() []byte {
	out := T.headerBytes()
	for _, f := range T.frames {
		out = append(out, T.frameBytes(f)...)
	}
	return out
}

func (T *testDCD) write(Te *testing.T, name string) string {
	path := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(path, T.bytes(), 0o644))
	return path
}

func appendUint32(order binary.ByteOrder, b []byte, v uint32) []byte {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// charmmTitle returns a title of n 80-character lines, prefixed with
// the line count.
func charmmTitle(order binary.ByteOrder, lines ...string) []byte {
	out := appendUint32(order, nil, uint32(len(lines)))
	for _, l := range lines {
		line := make([]byte, TitleLineLen)
		for i := range line {
			line[i] = ' '
		}
		copy(line, l)
		out = append(out, line...)
	}
	return out
}

// chainDCD builds the trajectory of nchains linear chains of nbeads beads,
// like write_dcd_header/write_dcd_snapshot do: bead b of chain c is at
// (100c+10b+1, 100c+10b+2, 100c+10b+3) shifted by the frame number,
// in an orthorhombic 11x12x13 box.
func chainDCD(nchains, nbeads, nframes int, cell bool) *testDCD {
	natoms := nchains * nbeads
	T := &testDCD{order: binary.LittleEndian, natoms: int32(natoms)}
	T.icntrl[IcntrlSnapshots] = int32(nframes)
	T.icntrl[IcntrlStepInterval] = 1
	T.icntrl[IcntrlTotalSnapshots] = int32(nframes)
	if cell {
		T.icntrl[IcntrlUnitCell] = 1
	}
	T.icntrl[IcntrlVersion] = 24
	T.title = charmmTitle(T.order, "Created by dcd_tools", "linear chains")
	for f := 0; f < nframes; f++ {
		fr := testFrame{
			x: make([]float32, natoms),
			y: make([]float32, natoms),
			z: make([]float32, natoms),
		}
		for c := 0; c < nchains; c++ {
			for b := 0; b < nbeads; b++ {
				i := c*nbeads + b
				base := float32(c*100 + b*10 + f)
				fr.x[i] = base + 1
				fr.y[i] = base + 2
				fr.z[i] = base + 3
			}
		}
		if cell {
			fr.cell = []float64{11, 90, 12, 90, 90, 13}
		}
		T.frames = append(T.frames, fr)
	}
	return T
}
