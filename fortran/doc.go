/*
 * doc.go, part of chemtraj.
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

/*
Package fortran reads Fortran unformatted sequential records.

Each record on disk is

	int32 length | length bytes of payload | int32 length

and the two lengths must agree. A Framer reads one record at a time from a
stream and keeps a cursor (the number of records read so far) that is
reported in every error it returns:

	F := fortran.NewFramer(f, binary.LittleEndian)
	for {
		payload, err := F.ReadRecord()
		if err != nil {
			var trunc *fortran.TruncatedStreamError
			if errors.As(err, &trunc) && trunc.AtBoundary() {
				break //clean end of data
			}
			return err
		}
		...
	}

A Framer is not safe for concurrent use. Framers over different streams are
independent.
*/
package fortran
