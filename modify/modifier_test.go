/*
 * modifier_test.go, part of goptm.
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

package modify

import (
	"math"
	"strings"
	"testing"

	"github.com/rmera/goptm"
)

const tol = 1e-5

func testStructure(Te *testing.T) *ptm.Structure {
	s, err := ptm.ReadPDB("testdata/mini.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	return s
}

//The V3H template holds the VAL heavy atoms shifted by a constant
//vector, so the branch alignment is a pure translation and the grafted
//hydrogen lands at an exactly known spot.
func TestApplyValToV3H(Te *testing.T) {
	lib := testLibrary(Te)
	s := testStructure(Te)
	before := s.NAtoms()
	mod := NewModifier(lib)
	out, err := mod.Apply(s, 'A', 1, "VAL", "V3H")
	if err != nil {
		Te.Fatal(err)
	}
	//not in-place: the input keeps its hydrogens and its name
	if s.NAtoms() != before {
		Te.Error("the input structure was mutated")
	}
	orig, _ := s.Residue('A', 1)
	if orig.Name != "VAL" || !orig.HasAtom("HG11") {
		Te.Error("the input residue was mutated")
	}
	r, err := out.Residue('A', 1)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Name != "V3H" {
		Te.Errorf("residue relabeled to %s, want V3H", r.Name)
	}
	names := make([]string, 0, r.Len())
	for _, a := range r.Atoms() {
		names = append(names, a.Name)
	}
	want := "N CA C O CB CG1 OG2 HG3"
	if strings.Join(names, " ") != want {
		Te.Fatalf("atoms %q, want %q", strings.Join(names, " "), want)
	}
	hg3, _ := r.Atom("HG3")
	if math.Abs(hg3.X-2.0) > tol || math.Abs(hg3.Y-3.0) > tol || math.Abs(hg3.Z-3.0) > tol {
		Te.Errorf("HG3 at (%f, %f, %f), want (2, 3, 3)", hg3.X, hg3.Y, hg3.Z)
	}
	if hg3.Occupancy != 1.0 || hg3.Bfactor != 0.0 || hg3.Symbol != "H" {
		Te.Errorf("added atom fields wrong: %+v", hg3)
	}
	//renamed OG2 keeps the old coordinates
	og2, err := r.Atom("OG2")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(og2.X-1.5) > tol || math.Abs(og2.Y+2.1) > tol {
		Te.Errorf("OG2 moved during rename: %+v", og2)
	}
	log := out.Modifications()
	if len(log) != 1 || log[0] != (ptm.Modified{Chain: 'A', ResNum: 1, From: "VAL", To: "V3H"}) {
		Te.Errorf("modification log wrong: %v", log)
	}
}

func TestApplyArgToGSA(Te *testing.T) {
	lib := testLibrary(Te)
	s := testStructure(Te)
	mod := NewModifier(lib, InPlace())
	out, err := mod.Apply(s, 'A', 2, "ARG", "GSA")
	if err != nil {
		Te.Fatal(err)
	}
	if out != s {
		Te.Error("in-place application should return the input structure")
	}
	r, _ := s.Residue('A', 2)
	if r.Name != "GSA" {
		Te.Errorf("residue relabeled to %s", r.Name)
	}
	for _, gone := range []string{"NE", "CZ", "NH1", "NH2"} {
		if r.HasAtom(gone) {
			Te.Errorf("%s should have been deleted", gone)
		}
	}
	oe, err := r.Atom("OE")
	if err != nil {
		Te.Fatal(err)
	}
	//template offset is (-2, 1, 0.5), so OE comes back by the inverse
	if math.Abs(oe.X-10.3) > tol || math.Abs(oe.Y+2.8) > tol || math.Abs(oe.Z+1.15) > tol {
		Te.Errorf("OE at (%f, %f, %f), want (10.3, -2.8, -1.15)", oe.X, oe.Y, oe.Z)
	}
}

func TestApplyErrors(Te *testing.T) {
	lib := testLibrary(Te)
	s := testStructure(Te)
	mod := NewModifier(lib)
	if _, err := mod.Apply(s, 'A', 1, "VAL", "NOPE"); !ptm.Is(err, ptm.NotFound) {
		Te.Errorf("unknown rule: want not-found, got %v", err)
	}
	if _, err := mod.Apply(s, 'Z', 1, "VAL", "V3H"); !ptm.Is(err, ptm.NotFound) {
		Te.Errorf("unknown chain: want not-found, got %v", err)
	}
	if _, err := mod.Apply(s, 'A', 99, "VAL", "V3H"); !ptm.Is(err, ptm.NotFound) {
		Te.Errorf("unknown residue: want not-found, got %v", err)
	}
	//residue 2 is an ARG, not a VAL
	if _, err := mod.Apply(s, 'A', 2, "VAL", "V3H"); !ptm.Is(err, ptm.Mapping) {
		Te.Errorf("kind mismatch: want mapping, got %v", err)
	}
}

//With several branches the mapping still applies exactly once: a later
//branch anchored on a renamed atom resolves it by its original name, and
//an atom added by more than one branch ends up in the residue once, with
//the last branch's coordinates.
func TestMultiBranchApply(Te *testing.T) {
	dir := Te.TempDir()
	//branch 2 is anchored on OG2, which only exists as CG2 until the
	//mapping runs, and re-adds HG3 on a different anchor set.
	rule := `{"metadata": {}, "modifications": {"VAL_V3H": {
		"atom_mapping": [
			["N", "N"], ["CA", "CA"], ["C", "C"], ["O", "O"],
			["CB", "CB"], ["CG1", "CG1"], ["CG2", "OG2"], [null, "HG3"]],
		"add_branches": [
			{"anchor_atoms": ["CB", "CA", "CG1", "C", "N"], "add_atoms": ["HG3"]},
			{"anchor_atoms": ["OG2", "CB", "CA"], "add_atoms": ["HG3"]}]}}}`
	path := writeLib(Te, dir, rule)
	lib, err := LoadLibrary(path, "testdata/templates")
	if err != nil {
		Te.Fatal(err)
	}
	s := testStructure(Te)
	mod := NewModifier(lib, InPlace())
	if _, err := mod.Apply(s, 'A', 1, "VAL", "V3H"); err != nil {
		Te.Fatal(err)
	}
	r, _ := s.Residue('A', 1)
	if r.HasAtom("CG2") {
		Te.Error("CG2 survived: the rename ran less than once")
	}
	og2, hg3 := 0, 0
	for _, a := range r.Atoms() {
		switch a.Name {
		case "OG2":
			og2++
		case "HG3":
			hg3++
		}
	}
	if og2 != 1 {
		Te.Errorf("%d OG2 atoms, want 1: the rename ran more than once", og2)
	}
	if hg3 != 1 {
		Te.Fatalf("%d HG3 atoms, want 1: duplicate additions were not collapsed", hg3)
	}
	//both branch transforms are the same pure translation here, so the
	//survivor still sits at the known spot
	a, _ := r.Atom("HG3")
	if math.Abs(a.X-2.0) > tol || math.Abs(a.Y-3.0) > tol || math.Abs(a.Z-3.0) > tol {
		Te.Errorf("HG3 at (%f, %f, %f), want (2, 3, 3)", a.X, a.Y, a.Z)
	}
	//one residue's worth of additions, not one per branch
	reps := mod.Reports()
	if len(reps) != 1 || reps[0].Added != 1 || reps[0].Renamed != 1 {
		Te.Errorf("report wrong for a multi-branch rule: %+v", reps)
	}
}

//A branch anchor absent from the atom mapping is a rule defect, caught
//before any alignment runs.
func TestUnmappedAnchor(Te *testing.T) {
	dir := Te.TempDir()
	bad := `{"metadata": {}, "modifications": {"VAL_V3H": {
		"atom_mapping": [["CA", "CA"]],
		"add_branches": [{"anchor_atoms": ["CB"], "add_atoms": ["HG3"]}]}}}`
	path := writeLib(Te, dir, bad)
	lib, err := LoadLibrary(path, "testdata/templates")
	if err != nil {
		Te.Fatal(err)
	}
	mod := NewModifier(lib)
	if _, err := mod.Apply(testStructure(Te), 'A', 1, "VAL", "V3H"); !ptm.Is(err, ptm.Mapping) {
		Te.Errorf("unmapped anchor should be a mapping error, got %v", err)
	}
}

//A failed application must not leave a half-modified residue, even when
//the Modifier is in-place.
func TestFailedApplyIsAtomic(Te *testing.T) {
	lib := testLibrary(Te)
	s := testStructure(Te)
	r, _ := s.Residue('A', 1)
	r.DeleteAtom("CG1") //one branch anchor is now gone
	before := r.Len()
	mod := NewModifier(lib, InPlace())
	if _, err := mod.Apply(s, 'A', 1, "VAL", "V3H"); !ptm.Is(err, ptm.MissingAtom) {
		Te.Fatalf("want a missing-atom error, got %v", err)
	}
	if r.Name != "VAL" || r.Len() != before {
		Te.Errorf("failed apply touched the residue: %s with %d atoms", r.Name, r.Len())
	}
	if !r.HasAtom("HG11") {
		Te.Error("failed apply stripped hydrogens")
	}
	if len(mod.Reports()) != 0 {
		Te.Error("failed apply produced a report")
	}
}

func TestReports(Te *testing.T) {
	lib := testLibrary(Te)
	s := testStructure(Te)
	mod := NewModifier(lib, InPlace())
	if _, err := mod.Apply(s, 'A', 1, "VAL", "V3H"); err != nil {
		Te.Fatal(err)
	}
	if _, err := mod.Apply(s, 'A', 2, "ARG", "GSA"); err != nil {
		Te.Fatal(err)
	}
	reps := mod.Reports()
	if len(reps) != 2 {
		Te.Fatalf("expected 2 reports, got %d", len(reps))
	}
	v := reps[0]
	if v.Target != "V3H" || v.Added != 1 || v.Deleted != 0 || v.Renamed != 1 {
		Te.Errorf("V3H report wrong: %+v", v)
	}
	g := reps[1]
	if g.Target != "GSA" || g.Added != 1 || g.Deleted != 4 || g.Renamed != 0 {
		Te.Errorf("GSA report wrong: %+v", g)
	}
	t := Totals(reps)
	if t.Added != 2 || t.Deleted != 4 || t.Renamed != 1 {
		Te.Errorf("totals wrong: %+v", t)
	}
	//both applications are in the structure's log, in order
	log := s.Modifications()
	if len(log) != 2 || log[0].To != "V3H" || log[1].To != "GSA" {
		Te.Errorf("log wrong: %v", log)
	}
}
