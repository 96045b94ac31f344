/*
 * modifier.go, part of goptm.
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
	"fmt"
	"log/slog"

	"github.com/rmera/goptm"
	"github.com/rmera/goptm/align"
)

//Modifier applies library rules to residues of a structure. The zero
//value is not usable; build one with NewModifier.
type Modifier struct {
	lib     *Library
	inplace bool
	log     *slog.Logger
	reports []Report
}

//Option configures a Modifier.
type Option func(*Modifier)

//InPlace makes Apply mutate the given structure instead of a copy.
//Failed applications leave the structure untouched either way.
func InPlace() Option {
	return func(m *Modifier) { m.inplace = true }
}

//Logger sets the logger used for per-modification records and errors.
func Logger(l *slog.Logger) Option {
	return func(m *Modifier) { m.log = l }
}

//NewModifier returns a Modifier over the given library.
func NewModifier(lib *Library, opts ...Option) *Modifier {
	m := &Modifier{lib: lib, log: slog.Default()}
	for _, o := range opts {
		o(m)
	}
	return m
}

//A placed atom, ready to be committed to the residue.
type plannedAtom struct {
	name    string
	symbol  string
	x, y, z float64
}

//Apply turns residue resnum of the given chain from kind orig into kind
//target, following the library rule ORIG_TARGET. orig must equal the
//residue's stored label; a disagreement (a stale job file, a structure
//already modified) is a Mapping-kind error rather than a silent relabel.
//All branch alignments are computed before the residue is touched, so an
//error never leaves a half-modified residue.
//
//By default the input structure is left untouched and a modified deep
//copy is returned; build the Modifier with InPlace to mutate and return
//the input instead.
func (m *Modifier) Apply(s *ptm.Structure, chain byte, resnum int, orig, target string) (*ptm.Structure, error) {
	mod, err := m.lib.Get(orig, target)
	if err != nil {
		return nil, m.fail(err, chain, resnum)
	}
	tmpl, err := m.lib.Template(target)
	if err != nil {
		return nil, m.fail(err, chain, resnum)
	}
	res, err := s.Residue(chain, resnum)
	if err != nil {
		return nil, m.fail(err, chain, resnum)
	}
	if res.Name != orig {
		err := ptm.NewError(ptm.Mapping, "Modifier.Apply", fmt.Sprintf("residue %d of chain %c is a %s, not a %s", resnum, chain, res.Name, orig))
		return nil, m.fail(err, chain, resnum)
	}
	//Plan phase: every branch is aligned against the pristine residue and
	//its new atoms buffered. Nothing is mutated yet.
	inv := mod.inverseMapping()
	var order []string
	planned := make(map[string]plannedAtom)
	for bi, branch := range mod.AddBranches {
		refNames := make([]string, len(branch.AnchorAtoms))
		for i, tn := range branch.AnchorAtoms {
			on, ok := inv[tn]
			if !ok {
				err := ptm.NewError(ptm.Mapping, "Modifier.Apply", fmt.Sprintf("branch %d anchor %s has no atom mapping entry in %s", bi, tn, mod.Key()))
				return nil, m.fail(err, chain, resnum)
			}
			refNames[i] = on
		}
		refCoords, err := res.Coords(refNames)
		if err != nil {
			return nil, m.fail(errDecorate(err, fmt.Sprintf("Modifier.Apply: branch %d anchors", bi)), chain, resnum)
		}
		tmplCoords, err := tmpl.Coords(branch.AnchorAtoms)
		if err != nil {
			return nil, m.fail(errDecorate(err, fmt.Sprintf("Modifier.Apply: branch %d template anchors", bi)), chain, resnum)
		}
		rot, trans, err := align.RotationTranslation(refCoords, tmplCoords, branch.Weights)
		if err != nil {
			return nil, m.fail(errDecorate(err, fmt.Sprintf("Modifier.Apply: branch %d", bi)), chain, resnum)
		}
		addCoords, err := tmpl.Coords(branch.AddAtoms)
		if err != nil {
			return nil, m.fail(errDecorate(err, fmt.Sprintf("Modifier.Apply: branch %d additions", bi)), chain, resnum)
		}
		placed := align.Apply(addCoords, rot, trans)
		for i, name := range branch.AddAtoms {
			ta, err := tmpl.Atom(name)
			if err != nil {
				return nil, m.fail(errDecorate(err, "Modifier.Apply"), chain, resnum)
			}
			if _, dup := planned[name]; !dup {
				order = append(order, name)
			}
			planned[name] = plannedAtom{
				name:   name,
				symbol: ta.Symbol,
				x:      placed.At(i, 0),
				y:      placed.At(i, 1),
				z:      placed.At(i, 2),
			}
		}
	}
	//Commit phase. From here on nothing can fail.
	if !m.inplace {
		s = s.Copy()
		res, _ = s.Residue(chain, resnum)
	}
	hydrogens := res.RemoveHydrogens()
	rep := Report{Chain: chain, ResNum: resnum, From: orig, Target: target, Added: len(planned)}
	for _, p := range mod.AtomMapping {
		switch {
		case p.From == nil:
			//supplied by a branch
		case p.To == nil:
			if res.DeleteAtom(*p.From) {
				rep.Deleted++
			}
		case *p.From != *p.To:
			//absent sources were usually hydrogens removed above
			if res.RenameAtom(*p.From, *p.To) {
				rep.Renamed++
			}
		}
	}
	for _, name := range order {
		p := planned[name]
		res.DeleteAtom(p.name)
		res.AddAtom(&ptm.Atom{
			Name:      p.name,
			Symbol:    p.symbol,
			X:         p.x,
			Y:         p.y,
			Z:         p.z,
			Occupancy: 1.0,
			Bfactor:   0.0,
		})
	}
	res.Name = target
	s.LogModified(ptm.Modified{Chain: chain, ResNum: resnum, From: orig, To: target})
	m.reports = append(m.reports, rep)
	m.log.Info("modified residue",
		"chain", string(chain), "resnum", resnum, "from", orig, "to", target,
		"added", rep.Added, "deleted", rep.Deleted, "renamed", rep.Renamed,
		"hydrogens_removed", hydrogens)
	return s, nil
}

//fail logs the error before handing it up, so every failure appears in
//the log exactly once, at the point it happened.
func (m *Modifier) fail(err error, chain byte, resnum int) error {
	m.log.Error("modification failed", "chain", string(chain), "resnum", resnum, "error", err.Error())
	return err
}
