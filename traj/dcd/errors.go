/*
 * errors.go, part of chemtraj
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
	"fmt"
	"io"

	chem "github.com/rmera/chemtraj"
)

// Reasons for a FormatError.
const (
	BadMagic          = "bad magic"
	BadControlBlock   = "bad control block"
	BadAtomCount      = "bad atom-count record"
	CoordSizeMismatch = "coordinate record size mismatch"
	CellSizeMismatch  = "unit-cell record size mismatch"
	FixedAtoms        = "fixed atoms not supported"
)

// FormatError is returned when a record is well framed but its content is
// not what the DCD layout requires at that position.
type FormatError struct {
	Reason string
	Record int //zero-based index of the offending record in the stream
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dcd: record %d: %s", e.Record, e.Reason)
}

// LayoutMismatchError reports a header whose declared layout does not add up
// to the actual file size. It is only an error when the caller wants it to be,
// see LayoutReport.Err.
type LayoutMismatchError struct {
	Report LayoutReport
}

func (e *LayoutMismatchError) Error() string {
	return fmt.Sprintf("dcd: header implies %d bytes (%d per snapshot), file has %d",
		e.Report.ExpectedFileSize, e.Report.BytesPerSnapshot, e.Report.ActualFileSize)
}

//Errors

// errDecorate is a helper function that, if the error implements chem.Error,
// decorates it with the caller's name before returning it. Other errors are
// returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// Error is the general structure for DCD trajectory errors. It fullfills  chem.Error and chem.TrajError
// The underlying cause, if any, is available through errors.Unwrap.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

func (err *Error) Error() string {
	if err.err != nil {
		return fmt.Sprintf("dcd file %s error: %s: %v", err.filename, err.message, err.err)
	}
	return fmt.Sprintf("dcd file %s error: %s", err.filename, err.message)
}

// Unwrap returns the error that caused err, if any.
func (err *Error) Unwrap() error { return err.err }

// Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Filename returns the file to which the failing trajectory was associated
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file (always "dcd") associated to the error
func (err *Error) Format() string { return "dcd" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	TrajUnIni         = "Traj object uninitialized to read"
	UnableToOpen      = "Unable to open file"
	HeaderFailed      = "Unable to decode the header"
	ReadError         = "Error reading frame"
	NotEnoughSpace    = "Not enough space in passed matrix"
	LayoutMismatch    = "Header and file size disagree"
	LayoutUnavailable = "Unable to obtain the uncompressed size"
	RewindFailed      = "Unable to rewind trajectory"
)

// lastFrameError implements chem.LastFrameError. It also matches io.EOF
// with errors.Is.
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "dcd" }

func (E *lastFrameError) Is(target error) bool { return target == io.EOF }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}

var (
	_ chem.TrajError      = (*Error)(nil)
	_ chem.LastFrameError = (*lastFrameError)(nil)
)
