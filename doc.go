/*
 * doc.go, part of goptm.
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

//Package ptm provides the structure model for the goptm post-translational
//modification engine: a chain/residue/atom hierarchy read from and written
//to PDB files, residue-level editing primitives, and the error and
//modification-log conventions shared by the rest of the module.
//
//The actual engine lives in goptm/modify; weighted superpositions in
//goptm/align; optional post-modification minimization in goptm/relax.
package ptm
