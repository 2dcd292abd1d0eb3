/*
 * dcd.go, part of chemtraj
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
	"os"

	chem "github.com/rmera/chemtraj"
	v3 "github.com/rmera/chemtraj/v3"
)

// DCDObj is a Charmm/NAMD/LAMMPS binary trajectory file opened for reading.
type DCDObj struct {
	filename   string
	readable   bool //Is it ready to be read?
	compressed bool
	fhandle    *os.File
	src        io.ReadCloser //fhandle itself, or a decompressor reading from it
	reader     *Reader
	frame      *Snapshot //buffer for Next
	layout     *LayoutReport
	options    *Options
}

// New opens filename, decodes its header and checks that the header agrees
// with the size of the file. A disagreement is logged as a warning and
// available through Layout; it is only an error if the StrictLayout option
// is set. For compressed files the check requires decompressing the whole
// file, so it is only done at this point if StrictLayout is set.
// Only the first options given are used.
func New(filename string, options ...*Options) (*DCDObj, error) {
	O := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		O = options[0]
	}
	traj := &DCDObj{filename: filename, options: O}
	if err := traj.initRead(); err != nil {
		traj.Close()
		return nil, errDecorate(err, "New")
	}
	return traj, nil
}

// initRead opens the file and reads the header.
// It supports big and little endianness, charmm or (namd>=2.1) and no
// fixed atoms.
func (D *DCDObj) initRead() error {
	var err error
	D.fhandle, D.src, D.compressed, err = openSource(D.filename, D.options.format, D.options.logger)
	if err != nil {
		return &Error{UnableToOpen, D.filename, []string{"openSource", "initRead"}, true, err}
	}
	D.reader, err = NewReader(D.src, D.options)
	if err != nil {
		return &Error{HeaderFailed, D.filename, []string{"NewReader", "initRead"}, true, err}
	}
	D.reader.setFilename(D.filename)
	H := D.reader.Header()
	if H.FixedAtoms != 0 {
		return &Error{HeaderFailed, D.filename, []string{"initRead"}, true, &FormatError{Reason: FixedAtoms, Record: 0}}
	}
	if !D.compressed || D.options.strictLayout {
		L, err := D.Layout()
		if err != nil {
			return errDecorate(err, "initRead")
		}
		if !L.Matches {
			n, exact := L.ImpliedSnapshots()
			D.options.logger.Warn().
				Str("file", D.filename).
				Int64("expected", L.ExpectedFileSize).
				Int64("actual", L.ActualFileSize).
				Int64("declared_snapshots", L.DeclaredSnapshots).
				Int64("implied_snapshots", n).
				Bool("exact", exact).
				Msg("DCD header does not match file size")
			if D.options.strictLayout {
				return &Error{LayoutMismatch, D.filename, []string{"initRead"}, true, L.Err()}
			}
		}
	}
	D.frame = NewSnapshot(int(H.NumAtoms), H.HasUnitCell)
	D.readable = true
	return nil
}

// Readable returns true if the object is ready to be read from
// false otherwise. It doesnt guarantee that there is something
// to read.
func (D *DCDObj) Readable() bool {
	return D.readable
}

// Len returns the number of atoms per frame.
// 0 means an uninitialized object.
func (D *DCDObj) Len() int {
	if D.reader == nil {
		return 0
	}
	return int(D.reader.Header().NumAtoms)
}

// Header returns the header of the trajectory.
func (D *DCDObj) Header() Header {
	if D.reader == nil {
		return Header{}
	}
	return D.reader.Header()
}

// Layout returns the comparison between the header and the size of the file.
// For compressed files the size is that of the decompressed data, which is
// obtained, only once, by decompressing the whole file.
func (D *DCDObj) Layout() (LayoutReport, error) {
	if D.layout != nil {
		return *D.layout, nil
	}
	if D.reader == nil {
		return LayoutReport{}, &Error{TrajUnIni, D.filename, []string{"Layout"}, true, nil}
	}
	var size int64
	if D.compressed {
		var err error
		size, err = uncompressedSize(D.filename, D.options.format, D.options.logger)
		if err != nil {
			return LayoutReport{}, &Error{LayoutUnavailable, D.filename, []string{"Layout"}, true, err}
		}
	} else {
		info, err := D.fhandle.Stat()
		if err != nil {
			return LayoutReport{}, &Error{LayoutUnavailable, D.filename, []string{"Stat", "Layout"}, true, err}
		}
		size = info.Size()
	}
	L := D.reader.Validate(size)
	D.layout = &L
	return L, nil
}

// Next reads the next frame into output, or discards it if output is nil.
// If box is given and the trajectory has a unit cell, the 6 cell values are
// copied into box[0]. After the last frame, Next returns an error that
// implements chem.LastFrameError.
func (D *DCDObj) Next(output *v3.Matrix, box ...[]float64) error {
	if !D.readable {
		return &Error{TrajUnIni, D.filename, []string{"Next"}, true, nil}
	}
	if output != nil && output.NVecs() < D.Len() {
		return &Error{NotEnoughSpace, D.filename, []string{"Next"}, true, nil}
	}
	if err := D.reader.NextInto(D.frame); err != nil {
		D.readable = false
		if _, ok := err.(chem.LastFrameError); ok {
			return errDecorate(err, "Next")
		}
		return &Error{ReadError, D.filename, []string{"NextInto", "Next"}, true, err}
	}
	if output != nil {
		D.frame.Coords(output)
	}
	if len(box) > 0 && box[0] != nil && D.frame.Cell != nil {
		copy(box[0], D.frame.Cell)
	}
	return nil
}

// Snapshots returns an iterator over the remaining snapshots.
// See Reader.Snapshots. Once the sequence is exhausted, or an error is
// yielded, D is no longer readable, as after Next.
func (D *DCDObj) Snapshots() iter.Seq2[*Snapshot, error] {
	if !D.readable {
		return func(yield func(*Snapshot, error) bool) {
			yield(nil, &Error{TrajUnIni, D.filename, []string{"Snapshots"}, true, nil})
		}
	}
	return func(yield func(*Snapshot, error) bool) {
		for s, err := range D.reader.Snapshots() {
			if err != nil {
				D.readable = false
			}
			if !yield(s, err) {
				return
			}
		}
		//the reader's sequence only ends by itself at the end of the data
		D.readable = false
	}
}

// Rewind puts the trajectory back at its first snapshot. Plain files are
// seeked; compressed files are reopened and the header skipped.
func (D *DCDObj) Rewind() error {
	if D.reader == nil {
		return &Error{TrajUnIni, D.filename, []string{"Rewind"}, true, nil}
	}
	hb := D.reader.Header().HeaderBytes
	if !D.compressed {
		if _, err := D.fhandle.Seek(hb, io.SeekStart); err != nil {
			return &Error{RewindFailed, D.filename, []string{"Seek", "Rewind"}, true, err}
		}
	} else {
		D.closeFiles()
		var err error
		D.fhandle, D.src, D.compressed, err = openSource(D.filename, D.options.format, D.options.logger)
		if err != nil {
			D.readable = false
			return &Error{RewindFailed, D.filename, []string{"openSource", "Rewind"}, true, err}
		}
		if _, err := io.CopyN(io.Discard, D.src, hb); err != nil {
			D.readable = false
			return &Error{RewindFailed, D.filename, []string{"CopyN", "Rewind"}, true, err}
		}
	}
	D.reader.reset(D.src)
	D.readable = true
	return nil
}

func (D *DCDObj) closeFiles() error {
	var err error
	if D.src != nil && D.src != io.ReadCloser(D.fhandle) {
		err = D.src.Close()
	}
	if D.fhandle != nil {
		if err2 := D.fhandle.Close(); err == nil {
			err = err2
		}
	}
	D.src = nil
	D.fhandle = nil
	return err
}

// Close closes the trajectory. It can not be read after this call.
// Calling Close more than once is harmless.
func (D *DCDObj) Close() error {
	D.readable = false
	return D.closeFiles()
}

var _ chem.Traj = (*DCDObj)(nil)
