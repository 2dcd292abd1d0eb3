/*
 * header.go, part of chemtraj
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
	"math"
	"strings"

	"github.com/rmera/chemtraj/fortran"
)

// Magic is the tag that opens the first header record.
const Magic = "CORD"

// ControlBlockLen is the number of int32 in the ICNTRL array.
const ControlBlockLen = 20

// TitleLineLen is the length of each line of a CHARMM title.
const TitleLineLen = 80

// headerRecordLen is the payload length of the first header record.
const headerRecordLen = int32(len(Magic) + 4*ControlBlockLen)

// ControlBlock is the ICNTRL array of a DCD header.
type ControlBlock [ControlBlockLen]int32

// Indexes of the ICNTRL fields.
const (
	IcntrlSnapshots      = 0  //snapshots declared when the header was written
	IcntrlFirstStep      = 1  //timestep of the first snapshot
	IcntrlStepInterval   = 2  //integration steps between snapshots
	IcntrlTotalSnapshots = 3  //snapshots present, corrected after the fact
	IcntrlFixedAtoms     = 8  //number of fixed atoms
	IcntrlDelta          = 9  //timestep, a float32 stored in place
	IcntrlUnitCell       = 10 //1 if each snapshot has a unit cell record
	IcntrlFourDims       = 11 //1 if each snapshot has a fourth dimension record
	IcntrlVersion        = 19 //CHARMM version times 10. 0 for X-PLOR files
)

// Header contains the metadata from the three header records of a
// DCD file. It is a value: DecodeHeader builds it and nothing modifies it
// afterwards.
type Header struct {
	Magic          string
	Control        ControlBlock
	NumSnapshots   int32
	TotalSnapshots int32
	FirstStep      int32
	StepInterval   int32
	FixedAtoms     int32
	Delta          float32
	Version        float64
	HasUnitCell    bool
	FourDims       bool
	Title          string //the whole title record, undecoded
	NumAtoms       int32
	HeaderBytes    int64 //bytes taken by the three records, framing included
	ByteOrder      binary.ByteOrder
}

// DecodeHeader reads the three header records from F: the magic tag with
// the control block, the title, and the number of atoms.
// A negative number of atoms, or one whose coordinate records would be
// longer than the record limit of F, is a BadAtomCount FormatError.
// On error, the zero Header is returned.
func DecodeHeader(F *fortran.Framer) (Header, error) {
	var H Header
	var total int64

	index := F.Index()
	rec, err := F.ReadRecord()
	if err != nil {
		return Header{}, err
	}
	if len(rec) < len(Magic) || string(rec[:len(Magic)]) != Magic {
		return Header{}, &FormatError{Reason: BadMagic, Record: index}
	}
	if len(rec) != int(headerRecordLen) {
		return Header{}, &FormatError{Reason: BadControlBlock, Record: index}
	}
	order := F.Order()
	H.Magic = Magic
	for i := range H.Control {
		H.Control[i] = int32(order.Uint32(rec[len(Magic)+4*i:]))
	}
	total += int64(len(rec)) + fortran.Overhead

	rec, err = F.ReadRecord()
	if err != nil {
		return Header{}, err
	}
	H.Title = string(rec)
	total += int64(len(rec)) + fortran.Overhead

	index = F.Index()
	rec, err = F.ReadRecord()
	if err != nil {
		return Header{}, err
	}
	if len(rec) != 4 {
		return Header{}, &FormatError{Reason: BadAtomCount, Record: index}
	}
	H.NumAtoms = int32(order.Uint32(rec))
	//each coordinate record holds 4*NumAtoms bytes, so it must fit in a record
	if limit := F.MaxRecordLen(); H.NumAtoms < 0 || (limit > 0 && 4*int64(H.NumAtoms) > int64(limit)) {
		return Header{}, &FormatError{Reason: BadAtomCount, Record: index}
	}
	total += int64(len(rec)) + fortran.Overhead

	c := H.Control
	H.NumSnapshots = c[IcntrlSnapshots]
	H.FirstStep = c[IcntrlFirstStep]
	H.StepInterval = c[IcntrlStepInterval]
	H.TotalSnapshots = c[IcntrlTotalSnapshots]
	H.FixedAtoms = c[IcntrlFixedAtoms]
	H.Delta = math.Float32frombits(uint32(c[IcntrlDelta]))
	H.HasUnitCell = c[IcntrlUnitCell] == 1
	H.FourDims = c[IcntrlFourDims] == 1
	H.Version = float64(c[IcntrlVersion]) / 10.0
	H.HeaderBytes = total
	H.ByteOrder = order
	return H, nil
}

// TitleLines splits the title into lines. CHARMM titles are an int32 line
// count followed by that many 80-byte lines; any other title is taken as a
// single line. Each line ends at its first NUL byte, and is trimmed of blanks.
func (H Header) TitleLines() []string {
	raw := []byte(H.Title)
	var lines [][]byte
	if H.ByteOrder != nil && len(raw) >= 4 {
		n := int(int32(H.ByteOrder.Uint32(raw)))
		if n > 0 && len(raw)-4 == n*TitleLineLen {
			for i := 0; i < n; i++ {
				lines = append(lines, raw[4+i*TitleLineLen:4+(i+1)*TitleLineLen])
			}
		}
	}
	if lines == nil {
		lines = [][]byte{raw}
	}
	ret := make([]string, 0, len(lines))
	for _, l := range lines {
		if i := bytes.IndexByte(l, 0); i >= 0 {
			l = l[:i]
		}
		ret = append(ret, strings.TrimSpace(string(l)))
	}
	return ret
}

// IsCharmm reports whether the header was written by CHARMM or a
// CHARMM-compatible program (NAMD, LAMMPS). X-PLOR headers have version 0.
func (H Header) IsCharmm() bool {
	return H.Control[IcntrlVersion] != 0
}

// DetectByteOrder finds the byte order of the stream F is reading by peeking
// the first length, which is 84 for a DCD file. If neither order gives 84 the
// native order is returned, and decoding will fail later.
func DetectByteOrder(F *fortran.Framer) (binary.ByteOrder, error) {
	native := nativeOrder()
	n, err := F.PeekLength(native)
	if err != nil {
		return nil, err
	}
	if n == headerRecordLen {
		return native, nil
	}
	other := binary.ByteOrder(binary.BigEndian)
	if native == binary.BigEndian {
		other = binary.LittleEndian
	}
	if m, _ := F.PeekLength(other); m == headerRecordLen {
		return other, nil
	}
	return native, nil
}

func nativeOrder() binary.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
