/*
 * hydrogens.go, part of goptm.
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

import "strings"

//RemoveHydrogens deletes every atom of the residue whose name begins
//with H, and returns how many were deleted. Grafted side chains come
//with their own hydrogens, so the old ones go before any rule runs.
func (r *Residue) RemoveHydrogens() int {
	kept := r.atoms[:0]
	removed := 0
	for _, a := range r.atoms {
		if strings.HasPrefix(a.Name, "H") {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.atoms = kept
	return removed
}
