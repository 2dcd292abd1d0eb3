/*
 * options.go, part of chemtraj
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

	"github.com/rmera/chemtraj/fortran"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options contains the settings used to open and read DCD trajectories.
// The zero value is not ready to use, call DefaultOptions.
type Options struct {
	order        binary.ByteOrder //nil means detect it from the first record
	cellFirst    bool             //unit cell record before the coordinates, as CHARMM and NAMD write it
	strictLayout bool             //a header/file size mismatch is an error instead of a warning
	maxRecordLen int32
	format       string //compression: "dcd", "gz", "zst", "lzw". Empty means use the file extension
	logger       zerolog.Logger
}

// DefaultOptions returns options that detect the byte order, expect
// the unit cell after the coordinates, only warn on layout mismatches and log
// through the global zerolog logger.
func DefaultOptions() *Options {
	r := new(Options)
	r.maxRecordLen = fortran.DefaultMaxRecordLen
	r.logger = log.Logger
	return r
}

// ByteOrder returns the byte order of the files to read, and sets it
// to a new value, if given. nil means the order is detected.
func (O *Options) ByteOrder(order ...binary.ByteOrder) binary.ByteOrder {
	if len(order) > 0 {
		O.order = order[0]
	}
	return O.order
}

// CellFirst returns whether the unit cell record precedes the coordinate
// records of each snapshot, and sets it to a new value, if given.
func (O *Options) CellFirst(b ...bool) bool {
	if len(b) > 0 {
		O.cellFirst = b[0]
	}
	return O.cellFirst
}

// StrictLayout returns whether a layout mismatch makes New fail,
// and sets it to a new value, if given.
func (O *Options) StrictLayout(b ...bool) bool {
	if len(b) > 0 {
		O.strictLayout = b[0]
	}
	return O.strictLayout
}

// MaxRecordLen returns the largest record length accepted, and sets it
// to a new value, if given. Values <=0 remove the limit.
func (O *Options) MaxRecordLen(n ...int32) int32 {
	if len(n) > 0 {
		O.maxRecordLen = n[0]
	}
	return O.maxRecordLen
}

// Format returns the compression format forced on the files, and sets it
// to a new value, if given.
func (O *Options) Format(f ...string) string {
	if len(f) > 0 {
		O.format = f[0]
	}
	return O.format
}

// Logger returns the logger used, and sets it to a new value, if given.
func (O *Options) Logger(l ...zerolog.Logger) zerolog.Logger {
	if len(l) > 0 {
		O.logger = l[0]
	}
	return O.logger
}
