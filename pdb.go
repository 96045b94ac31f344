/*
 * pdb.go, part of goptm.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//ReadPDB reads a structure from a PDB file. Files ending in .gz are
//decompressed transparently.
func ReadPDB(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewError(Resource, "ReadPDB", err.Error())
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, NewError(Resource, "ReadPDB", fmt.Sprintf("%s: %s", path, err.Error()))
		}
		defer gz.Close()
		r = gz
	}
	s, err := ReadPDBFrom(r)
	if err != nil {
		return nil, errDecorate(err, "ReadPDB "+path)
	}
	return s, nil
}

//ReadPDBFrom reads a structure from PDB-formatted text. Only ATOM and
//HETATM records are interpreted; the first MODEL is read and ENDMDL
//stops the parse.
func ReadPDBFrom(r io.Reader) (*Structure, error) {
	s := &Structure{}
	scan := bufio.NewScanner(r)
	lineno := 0
	var res *Residue
	var chain *Chain
	for scan.Scan() {
		lineno++
		line := scan.Text()
		switch {
		case strings.HasPrefix(line, "ATOM"), strings.HasPrefix(line, "HETATM"):
			a, chainID, resName, resNum, iCode, err := parsePDBLine(line)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("ReadPDBFrom: line %d", lineno))
			}
			if chain == nil || chain.ID != chainID {
				chain = s.EnsureChain(chainID)
				res = nil
			}
			if res == nil || res.Num != resNum || res.ICode != iCode {
				res = &Residue{Name: resName, Num: resNum, ICode: iCode}
				chain.AddResidue(res)
			}
			res.AddAtom(a)
		case strings.HasPrefix(line, "ENDMDL"):
			return s, nil
		}
	}
	if err := scan.Err(); err != nil {
		return nil, NewError(Resource, "ReadPDBFrom", err.Error())
	}
	if len(s.chains) == 0 {
		return nil, NewError(Resource, "ReadPDBFrom", "no ATOM or HETATM records found")
	}
	return s, nil
}

//Column offsets per the PDB fixed-width format.
func parsePDBLine(line string) (a *Atom, chainID byte, resName string, resNum int, iCode string, err error) {
	if len(line) < 54 {
		return nil, 0, "", 0, "", NewError(Schema, "parsePDBLine", fmt.Sprintf("record too short (%d columns)", len(line)))
	}
	if len(line) < 80 {
		line = line + strings.Repeat(" ", 80-len(line))
	}
	a = &Atom{Het: strings.HasPrefix(line, "HETATM")}
	errs := make([]error, 6)
	a.Serial, errs[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	a.Name = strings.TrimSpace(line[12:16])
	a.AltLoc = strings.TrimSpace(line[16:17])
	resName = strings.TrimSpace(line[17:20])
	chainID = line[21]
	resNum, errs[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	iCode = strings.TrimSpace(line[26:27])
	a.X, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	a.Y, errs[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	a.Z, errs[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if occ := strings.TrimSpace(line[54:60]); occ != "" {
		a.Occupancy, errs[5] = strconv.ParseFloat(occ, 64)
	} else {
		a.Occupancy = 1.0
	}
	if b := strings.TrimSpace(line[60:66]); b != "" {
		a.Bfactor, _ = strconv.ParseFloat(b, 64)
	}
	a.Symbol = strings.TrimSpace(line[76:78])
	if a.Symbol == "" {
		a.Symbol = symbolFromName(a.Name)
	}
	for _, e := range errs {
		if e != nil {
			return nil, 0, "", 0, "", NewError(Schema, "parsePDBLine", e.Error())
		}
	}
	return a, chainID, resName, resNum, iCode, nil
}

//WritePDB writes the structure to a PDB file. Files ending in .gz are
//compressed transparently.
func WritePDB(s *Structure, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewError(Resource, "WritePDB", err.Error())
	}
	defer f.Close()
	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}
	if err := WritePDBTo(s, w); err != nil {
		return errDecorate(err, "WritePDB "+path)
	}
	return nil
}

//WritePDBTo writes the structure as PDB-formatted text, one TER per
//chain and a final END. Atom serials are renumbered sequentially.
func WritePDBTo(s *Structure, w io.Writer) error {
	out := bufio.NewWriter(w)
	serial := 0
	for _, c := range s.chains {
		var last *Residue
		for _, r := range c.Residues() {
			last = r
			for _, a := range r.Atoms() {
				serial++
				tag := "ATOM"
				if a.Het {
					tag = "HETATM"
				}
				name := a.Name
				if len(name) < 4 {
					name = " " + name
				}
				_, err := fmt.Fprintf(out, "%-6s%5d %-4s%1s%3s %1c%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
					tag, serial, name, blankIfEmpty(a.AltLoc), r.Name, c.ID, r.Num, blankIfEmpty(r.ICode),
					a.X, a.Y, a.Z, a.Occupancy, a.Bfactor, a.Symbol)
				if err != nil {
					return NewError(Resource, "WritePDBTo", err.Error())
				}
			}
		}
		if last != nil {
			serial++
			fmt.Fprintf(out, "TER   %5d      %3s %1c%4d\n", serial, last.Name, c.ID, last.Num)
		}
	}
	fmt.Fprintf(out, "END\n")
	if err := out.Flush(); err != nil {
		return NewError(Resource, "WritePDBTo", err.Error())
	}
	return nil
}

func blankIfEmpty(s string) string {
	if s == "" {
		return " "
	}
	return s
}
