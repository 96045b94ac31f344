/*
 * structure_test.go, part of goptm.
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

import (
	"strings"
	"testing"
)

func testResidue() *Residue {
	r := &Residue{Name: "VAL", Num: 7}
	for _, n := range []string{"N", "CA", "C", "O", "CB", "CG1", "CG2", "H", "HA", "HG11"} {
		r.AddAtom(&Atom{Name: n, Symbol: symbolFromName(n)})
	}
	return r
}

func TestLookupErrors(Te *testing.T) {
	s := &Structure{}
	c := s.EnsureChain('A')
	c.AddResidue(testResidue())
	if _, err := s.Chain('Z'); !Is(err, NotFound) {
		Te.Errorf("missing chain should be not-found, got %v", err)
	}
	if _, err := s.Residue('A', 1250); !Is(err, NotFound) {
		Te.Errorf("missing residue should be not-found, got %v", err)
	}
	r, err := s.Residue('A', 7)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := r.Atom("XX"); !Is(err, MissingAtom) {
		Te.Errorf("missing atom should be missing-atom, got %v", err)
	}
}

func TestDeleteAndRename(Te *testing.T) {
	r := testResidue()
	n := r.Len()
	if !r.DeleteAtom("CG2") {
		Te.Fatal("CG2 should be deletable")
	}
	if r.DeleteAtom("CG2") {
		Te.Error("deleting an absent atom should report false")
	}
	if r.Len() != n-1 {
		Te.Errorf("length %d after one deletion from %d", r.Len(), n)
	}
	if !r.RenameAtom("CG1", "OG1") {
		Te.Fatal("CG1 should be renamable")
	}
	if r.HasAtom("CG1") || !r.HasAtom("OG1") {
		Te.Error("rename left the old name behind")
	}
	//order of the remaining atoms is preserved
	names := make([]string, 0, r.Len())
	for _, a := range r.Atoms() {
		names = append(names, a.Name)
	}
	want := "N CA C O CB OG1 H HA HG11"
	if strings.Join(names, " ") != want {
		Te.Errorf("atom order %q, want %q", strings.Join(names, " "), want)
	}
}

func TestRemoveHydrogens(Te *testing.T) {
	r := testResidue()
	if got := r.RemoveHydrogens(); got != 3 {
		Te.Errorf("removed %d hydrogens, want 3", got)
	}
	for _, a := range r.Atoms() {
		if strings.HasPrefix(a.Name, "H") {
			Te.Errorf("hydrogen %s survived", a.Name)
		}
	}
	if got := r.RemoveHydrogens(); got != 0 {
		Te.Errorf("second pass removed %d", got)
	}
}

func TestStructureCopy(Te *testing.T) {
	s := &Structure{}
	s.EnsureChain('A').AddResidue(testResidue())
	s.LogModified(Modified{Chain: 'A', ResNum: 7, From: "VAL", To: "V3H"})
	cp := s.Copy()
	r, _ := cp.Residue('A', 7)
	r.DeleteAtom("N")
	r.Atoms()[0].X = 42
	orig, _ := s.Residue('A', 7)
	if orig.Len() == r.Len() || orig.Atoms()[0].X == 42 {
		Te.Error("copy shares atoms with the original")
	}
	log := cp.Modifications()
	if len(log) != 1 || log[0].To != "V3H" {
		Te.Errorf("log not carried over: %v", log)
	}
	log[0].To = "XXX"
	if cp.Modifications()[0].To != "V3H" {
		Te.Error("mutating a returned log leaked into the structure")
	}
}
