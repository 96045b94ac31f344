/*
 * structure.go, part of goptm.
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
	"fmt"

	"github.com/rmera/goptm/v3"
)

//Residue is an ordered set of atoms under one residue name and number.
type Residue struct {
	Name  string
	Num   int
	ICode string
	atoms []*Atom
}

//Atoms returns the residue's atoms in order. The slice is shared; do not
//reorder it directly.
func (r *Residue) Atoms() []*Atom { return r.atoms }

//Len returns the number of atoms in the residue.
func (r *Residue) Len() int { return len(r.atoms) }

//Atom returns the atom with the given name.
func (r *Residue) Atom(name string) (*Atom, error) {
	for _, a := range r.atoms {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, NewError(MissingAtom, "Residue.Atom", fmt.Sprintf("no atom %s in residue %s %d", name, r.Name, r.Num))
}

//HasAtom reports whether the residue contains an atom with the given name.
func (r *Residue) HasAtom(name string) bool {
	_, err := r.Atom(name)
	return err == nil
}

//AddAtom appends an atom to the residue.
func (r *Residue) AddAtom(a *Atom) {
	r.atoms = append(r.atoms, a)
}

//DeleteAtom removes the named atom, preserving the order of the rest.
//It reports whether an atom was removed.
func (r *Residue) DeleteAtom(name string) bool {
	for i, a := range r.atoms {
		if a.Name == name {
			r.atoms = append(r.atoms[:i], r.atoms[i+1:]...)
			return true
		}
	}
	return false
}

//RenameAtom changes the name of the atom old to new, keeping its position
//and every other field. It reports whether the atom was present.
func (r *Residue) RenameAtom(old, new string) bool {
	for _, a := range r.atoms {
		if a.Name == old {
			a.Name = new
			return true
		}
	}
	return false
}

//Coords collects the coordinates of the named atoms, in the given order,
//into an Nx3 matrix.
func (r *Residue) Coords(names []string) (*v3.Matrix, error) {
	out := v3.Zeros(len(names))
	for i, n := range names {
		a, err := r.Atom(n)
		if err != nil {
			return nil, errDecorate(err, "Residue.Coords")
		}
		out.Set(i, 0, a.X)
		out.Set(i, 1, a.Y)
		out.Set(i, 2, a.Z)
	}
	return out, nil
}

//Copy returns a deep copy of the residue.
func (r *Residue) Copy() *Residue {
	nr := &Residue{Name: r.Name, Num: r.Num, ICode: r.ICode}
	nr.atoms = make([]*Atom, 0, len(r.atoms))
	for _, a := range r.atoms {
		nr.atoms = append(nr.atoms, a.Copy())
	}
	return nr
}

//Chain is an ordered set of residues under one chain identifier.
type Chain struct {
	ID       byte
	residues []*Residue
}

//Residues returns the chain's residues in order.
func (c *Chain) Residues() []*Residue { return c.residues }

//Residue returns the residue with the given number.
func (c *Chain) Residue(num int) (*Residue, error) {
	for _, r := range c.residues {
		if r.Num == num {
			return r, nil
		}
	}
	return nil, NewError(NotFound, "Chain.Residue", fmt.Sprintf("no residue %d in chain %c", num, c.ID))
}

//AddResidue appends a residue to the chain.
func (c *Chain) AddResidue(r *Residue) {
	c.residues = append(c.residues, r)
}

//Copy returns a deep copy of the chain.
func (c *Chain) Copy() *Chain {
	nc := &Chain{ID: c.ID}
	nc.residues = make([]*Residue, 0, len(c.residues))
	for _, r := range c.residues {
		nc.residues = append(nc.residues, r.Copy())
	}
	return nc
}

//Modified is one entry of a structure's modification log.
type Modified struct {
	Chain  byte
	ResNum int
	From   string
	To     string
}

//Structure is a hierarchy of chains, residues and atoms, plus the log of
//the modifications applied to it.
type Structure struct {
	chains []*Chain
	log    []Modified
}

//Chains returns the structure's chains in order.
func (s *Structure) Chains() []*Chain { return s.chains }

//Chain returns the chain with the given identifier.
func (s *Structure) Chain(id byte) (*Chain, error) {
	for _, c := range s.chains {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, NewError(NotFound, "Structure.Chain", fmt.Sprintf("no chain %c in structure", id))
}

//Residue returns the residue num of chain id.
func (s *Structure) Residue(id byte, num int) (*Residue, error) {
	c, err := s.Chain(id)
	if err != nil {
		return nil, errDecorate(err, "Structure.Residue")
	}
	r, err := c.Residue(num)
	if err != nil {
		return nil, errDecorate(err, "Structure.Residue")
	}
	return r, nil
}

//AddChain appends a chain to the structure.
func (s *Structure) AddChain(c *Chain) {
	s.chains = append(s.chains, c)
}

//EnsureChain returns the chain with the given identifier, creating and
//appending it when absent.
func (s *Structure) EnsureChain(id byte) *Chain {
	if c, err := s.Chain(id); err == nil {
		return c
	}
	c := &Chain{ID: id}
	s.chains = append(s.chains, c)
	return c
}

//NAtoms returns the total number of atoms in the structure.
func (s *Structure) NAtoms() int {
	n := 0
	for _, c := range s.chains {
		for _, r := range c.residues {
			n += len(r.atoms)
		}
	}
	return n
}

//LogModified appends an entry to the modification log.
func (s *Structure) LogModified(m Modified) {
	s.log = append(s.log, m)
}

//Modifications returns a copy of the modification log, in the order the
//modifications were applied.
func (s *Structure) Modifications() []Modified {
	out := make([]Modified, len(s.log))
	copy(out, s.log)
	return out
}

//Copy returns a deep copy of the structure, including its log.
func (s *Structure) Copy() *Structure {
	ns := &Structure{}
	ns.chains = make([]*Chain, 0, len(s.chains))
	for _, c := range s.chains {
		ns.chains = append(ns.chains, c.Copy())
	}
	ns.log = make([]Modified, len(s.log))
	copy(ns.log, s.log)
	return ns
}
