/*
 * atom.go, part of goptm.
 *
 * Copyright 2025 Raul Mera rauldotmeraatusachdotcl
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

package ptm

//Atom represents one atom of a residue. Coordinates are in Angstrom.
type Atom struct {
	Name      string
	Symbol    string
	Serial    int
	X, Y, Z   float64
	Occupancy float64
	Bfactor   float64
	AltLoc    string
	Het       bool
}

//Copy returns an independent copy of the atom.
func (a *Atom) Copy() *Atom {
	na := *a
	return &na
}
