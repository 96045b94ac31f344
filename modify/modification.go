/*
 * modification.go, part of goptm.
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
	"encoding/json"
	"fmt"

	"github.com/rmera/goptm"
)

//AtomPair relates one atom of the original residue to one of the target.
//A nil To marks a deletion; a nil From marks an atom the target gains
//through an add branch, recorded for completeness only.
type AtomPair struct {
	From *string
	To   *string
}

//Pairs are stored in the library as two-element JSON arrays.
func (p *AtomPair) UnmarshalJSON(b []byte) error {
	var pair []*string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("an atom pair needs exactly 2 elements, got %d", len(pair))
	}
	p.From, p.To = pair[0], pair[1]
	return nil
}

func (p AtomPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]*string{p.From, p.To})
}

//AddBranch places a group of new atoms by superimposing the template's
//anchor atoms onto their counterparts in the residue being modified.
//AnchorAtoms are template names. Empty Weights means uniform weighting.
type AddBranch struct {
	AnchorAtoms []string  `json:"anchor_atoms"`
	Weights     []float64 `json:"weights"`
	AddAtoms    []string  `json:"add_atoms"`
}

//Modification is one rule of the library: how to turn a residue of kind
//Original into one of kind Target.
type Modification struct {
	Original    string      `json:"-"`
	Target      string      `json:"-"`
	AtomMapping []AtomPair  `json:"atom_mapping"`
	AddBranches []AddBranch `json:"add_branches"`
}

//Key returns the library key of the rule, ORIGINAL_TARGET.
func (m *Modification) Key() string {
	return m.Original + "_" + m.Target
}

//Deletions returns the original-residue atom names the rule removes.
func (m *Modification) Deletions() []string {
	var out []string
	for _, p := range m.AtomMapping {
		if p.From != nil && p.To == nil {
			out = append(out, *p.From)
		}
	}
	return out
}

//Renames returns the {from, to} name pairs the rule renames.
func (m *Modification) Renames() [][2]string {
	var out [][2]string
	for _, p := range m.AtomMapping {
		if p.From != nil && p.To != nil && *p.From != *p.To {
			out = append(out, [2]string{*p.From, *p.To})
		}
	}
	return out
}

//Additions returns the atom names contributed by all add branches, in
//branch order, without duplicates.
func (m *Modification) Additions() []string {
	var out []string
	seen := make(map[string]bool)
	for _, b := range m.AddBranches {
		for _, n := range b.AddAtoms {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

//inverseMapping maps template atom names back to the original names, for
//anchors that the rule renames.
func (m *Modification) inverseMapping() map[string]string {
	inv := make(map[string]string, len(m.AtomMapping))
	for _, p := range m.AtomMapping {
		if p.From != nil && p.To != nil {
			inv[*p.To] = *p.From
		}
	}
	return inv
}

//validate checks the rule's internal consistency and fills in uniform
//branch weights where the library omitted them.
func (m *Modification) validate() error {
	seen := make(map[string]bool)
	for _, p := range m.AtomMapping {
		if p.From == nil && p.To == nil {
			return ptm.NewError(ptm.Schema, "Modification.validate", fmt.Sprintf("%s: atom pair with both sides null", m.Key()))
		}
		if p.From != nil {
			if seen[*p.From] {
				return ptm.NewError(ptm.Schema, "Modification.validate", fmt.Sprintf("%s: atom %s mapped twice", m.Key(), *p.From))
			}
			seen[*p.From] = true
		}
	}
	for i := range m.AddBranches {
		b := &m.AddBranches[i]
		if len(b.AnchorAtoms) == 0 {
			return ptm.NewError(ptm.Schema, "Modification.validate", fmt.Sprintf("%s: add branch %d has no anchor atoms", m.Key(), i))
		}
		if len(b.AddAtoms) == 0 {
			return ptm.NewError(ptm.Schema, "Modification.validate", fmt.Sprintf("%s: add branch %d adds no atoms", m.Key(), i))
		}
		if len(b.Weights) == 0 {
			b.Weights = make([]float64, len(b.AnchorAtoms))
			for j := range b.Weights {
				b.Weights[j] = 1.0
			}
		} else if len(b.Weights) != len(b.AnchorAtoms) {
			return ptm.NewError(ptm.Schema, "Modification.validate", fmt.Sprintf("%s: add branch %d has %d weights for %d anchors", m.Key(), i, len(b.Weights), len(b.AnchorAtoms)))
		}
	}
	return nil
}
