/*
 * atomicdata.go, part of goptm.
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

//The elements that turn up in biomolecular PDB files. Two-letter symbols
//are stored in canonical case.
var bioSymbols = map[string]bool{
	"H": true, "C": true, "N": true, "O": true, "S": true, "P": true,
	"Se": true, "Fe": true, "Zn": true, "Mg": true, "Mn": true,
	"Na": true, "K": true, "Cl": true, "Ca": true, "F": true,
	"Br": true, "I": true, "Cu": true,
}

//symbolFromName guesses an element symbol from a PDB atom name when the
//element column is blank. Leading digits are stripped (4HB style names);
//a two-letter match is preferred only when it is a real two-letter
//element, so CA (an alpha carbon) stays carbon.
func symbolFromName(name string) string {
	name = strings.TrimLeft(name, "0123456789 ")
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		two := strings.ToUpper(name[:1]) + strings.ToLower(name[1:2])
		one := strings.ToUpper(name[:1])
		if bioSymbols[two] && !bioSymbols[one] {
			return two
		}
	}
	one := strings.ToUpper(name[:1])
	if bioSymbols[one] {
		return one
	}
	return one
}
