/*
 * library.go, part of goptm.
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

//Package modify implements the post-translational modification engine:
//the rule library, the template index and the Modifier that grafts
//template side chains onto residues of a structure.
package modify

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rmera/goptm"
)

//Library holds the modification rules and the directory of template
//residues they graft from. It has no package-level default; callers
//build one and hand it to NewModifier.
type Library struct {
	Metadata      map[string]string
	mods          map[string]*Modification
	keys          []string //sorted, for stable positional access
	templateFiles map[string]string
	mu            sync.Mutex //guards the template cache; rules are read-only after load
	templates     map[string]*ptm.Residue
}

//LoadLibrary reads a rule library from a JSON file and indexes the
//template PDB files (plain or gzipped) found in templateDir. Templates
//are parsed lazily, on first use.
func LoadLibrary(jsonPath, templateDir string) (*Library, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, ptm.NewError(ptm.Resource, "LoadLibrary", err.Error())
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, ptm.NewError(ptm.Schema, "LoadLibrary", fmt.Sprintf("%s: %s", jsonPath, err.Error()))
	}
	lib := &Library{
		mods:      make(map[string]*Modification),
		templates: make(map[string]*ptm.Residue),
	}
	meta, ok := top["metadata"]
	if !ok {
		return nil, ptm.NewError(ptm.Schema, "LoadLibrary", jsonPath+`: missing top-level "metadata" key`)
	}
	if err := json.Unmarshal(meta, &lib.Metadata); err != nil {
		return nil, ptm.NewError(ptm.Schema, "LoadLibrary", fmt.Sprintf("%s: metadata: %s", jsonPath, err.Error()))
	}
	rawmods, ok := top["modifications"]
	if !ok {
		return nil, ptm.NewError(ptm.Schema, "LoadLibrary", jsonPath+`: missing top-level "modifications" key`)
	}
	var mods map[string]*Modification
	if err := json.Unmarshal(rawmods, &mods); err != nil {
		return nil, ptm.NewError(ptm.Schema, "LoadLibrary", fmt.Sprintf("%s: modifications: %s", jsonPath, err.Error()))
	}
	for key, m := range mods {
		parts := strings.Split(key, "_")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, ptm.NewError(ptm.Schema, "LoadLibrary", fmt.Sprintf("%s: key %q is not of the form ORIGINAL_TARGET", jsonPath, key))
		}
		m.Original, m.Target = parts[0], parts[1]
		if err := m.validate(); err != nil {
			return nil, errDecorate(err, "LoadLibrary")
		}
		lib.mods[key] = m
		lib.keys = append(lib.keys, key)
	}
	sort.Strings(lib.keys)
	if err := lib.indexTemplates(templateDir); err != nil {
		return nil, errDecorate(err, "LoadLibrary")
	}
	return lib, nil
}

func (l *Library) indexTemplates(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ptm.NewError(ptm.Resource, "Library.indexTemplates", err.Error())
	}
	l.templateFiles = make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		stem := ""
		switch {
		case strings.HasSuffix(name, ".pdb"):
			stem = strings.TrimSuffix(name, ".pdb")
		case strings.HasSuffix(name, ".pdb.gz"):
			stem = strings.TrimSuffix(name, ".pdb.gz")
		default:
			continue
		}
		l.templateFiles[strings.ToUpper(stem)] = filepath.Join(dir, name)
	}
	if len(l.templateFiles) == 0 {
		return ptm.NewError(ptm.Resource, "Library.indexTemplates", "no template PDB files in "+dir)
	}
	return nil
}

//Len returns the number of rules in the library.
func (l *Library) Len() int { return len(l.keys) }

//Names returns the library keys in sorted order.
func (l *Library) Names() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

//Get returns the rule that turns orig into target.
func (l *Library) Get(orig, target string) (*Modification, error) {
	m, ok := l.mods[orig+"_"+target]
	if !ok {
		return nil, ptm.NewError(ptm.NotFound, "Library.Get", fmt.Sprintf("no rule %s_%s in the library", orig, target))
	}
	return m, nil
}

//At returns the i-th rule in sorted-key order.
func (l *Library) At(i int) (*Modification, error) {
	if i < 0 || i >= len(l.keys) {
		return nil, ptm.NewError(ptm.OutOfRange, "Library.At", fmt.Sprintf("index %d outside a library of %d rules", i, len(l.keys)))
	}
	return l.mods[l.keys[i]], nil
}

//Template returns the template residue for the given target, parsing and
//caching it on first use. The stored residue label must match target.
func (l *Library) Template(target string) (*ptm.Residue, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok := l.templates[target]; ok {
		return r, nil
	}
	path, ok := l.templateFiles[strings.ToUpper(target)]
	if !ok {
		return nil, ptm.NewError(ptm.Resource, "Library.Template", "no template PDB for "+target)
	}
	s, err := ptm.ReadPDB(path)
	if err != nil {
		return nil, errDecorate(err, "Library.Template")
	}
	chains := s.Chains()
	if len(chains) != 1 || len(chains[0].Residues()) != 1 {
		return nil, ptm.NewError(ptm.Schema, "Library.Template", path+" must hold exactly one residue")
	}
	res := chains[0].Residues()[0]
	if res.Name != target {
		return nil, ptm.NewError(ptm.Schema, "Library.Template", fmt.Sprintf("%s holds a %s residue, expected %s", path, res.Name, target))
	}
	l.templates[target] = res
	return res, nil
}

func errDecorate(err error, caller string) error {
	var e *ptm.Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return ptm.NewError(ptm.Resource, caller, err.Error())
}
