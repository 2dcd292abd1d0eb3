/*
 * doc.go, part of chemtraj.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package chem holds the interfaces shared by the trajectory readers of
chemtraj.

	**Layout**

    fortran    Fortran unformatted sequential records (the framing DCD is built on).

    traj/dcd   CHARMM/NAMD/LAMMPS DCD trajectories: header, size check and snapshots,
	           from plain, gzip, zstd or lzw compressed files.

    v3         Nx3 coordinate matrices on top of gonum.

A trajectory is read frame by frame through the Traj interface. Reaching the
end of the data is signaled by an error that implements LastFrameError, so
callers can tell it apart from a corrupt file with a type switch:

	traj, err := dcd.New("run.dcd")
	if err != nil {
		return err
	}
	defer traj.Close()
	coords := v3.Zeros(traj.Len())
	for {
		if err := traj.Next(coords); err != nil {
			if _, ok := err.(chem.LastFrameError); ok {
				break
			}
			return err
		}
		//use coords
	}
*/
package chem
