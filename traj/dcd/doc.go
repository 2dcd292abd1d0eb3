/*
 * doc.go, part of chemtraj
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

/*
Package dcd reads CHARMM/NAMD/LAMMPS DCD binary trajectories.

A DCD file is a sequence of Fortran unformatted records (see package
fortran). The first three make up the header:

 1. "CORD" followed by the 20 int32 of the ICNTRL control block (84 bytes).
 2. The title, of any length.
 3. The number of atoms, one int32.

Each snapshot follows as three records with the x, y and z coordinates
(natoms float32 each) and, if ICNTRL[10] is 1, one record with the 6 float64
of the unit cell. CHARMM and NAMD write the unit cell before the
coordinates; see Options.CellFirst.

The pieces can be used separately:

	F := fortran.NewFramer(r, binary.LittleEndian)
	H, err := dcd.DecodeHeader(F)
	report := dcd.ValidateLayout(H, size)
	snaps := dcd.NewSnapshotReader(F, H.NumAtoms, H.HasUnitCell)

or through a Reader, for any stream, or a DCDObj, for files:

	traj, err := dcd.New("run.dcd.gz")
	if err != nil {
		return err
	}
	defer traj.Close()
	for s, err := range traj.Snapshots() {
		if err != nil {
			return err
		}
		//use s.X, s.Y, s.Z, s.Cell
	}

The size check never fails a read on its own: headers often declare the
wrong number of snapshots. DCDObj logs the mismatch and exposes it through
Layout, unless Options.StrictLayout is set.
*/
package dcd
