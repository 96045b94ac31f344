/*
 * relax.go, part of goptm.
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

//Package relax drives a GROMACS energy minimization over a modified
//structure. Grafted side chains are placed by rigid superposition, so
//they can clash with their surroundings; a short steepest-descent run
//settles them. GROMACS must be installed; nothing here links against it.
package relax

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rmera/goptm"
)

//Options controls the minimization. The zero value is usable; empty
//fields fall back to gmx, amber99sb-ildn and tip3p.
type Options struct {
	Gmx        string //the GROMACS wrapper binary
	ForceField string
	Water      string
	MDP        string //path to an .mdp file; empty means a builtin steepest-descent setup
	Dirty      bool   //keep the scratch directory around
}

func (o *Options) fill() {
	if o.Gmx == "" {
		o.Gmx = "gmx"
	}
	if o.ForceField == "" {
		o.ForceField = "amber99sb-ildn"
	}
	if o.Water == "" {
		o.Water = "tip3p"
	}
}

//The builtin minimization setup, enough to relieve clashes in vacuo.
const defaultMDP = `integrator  = steep
emtol       = 1000.0
emstep      = 0.01
nsteps      = 5000
cutoff-scheme = Verlet
coulombtype = PME
rcoulomb    = 1.0
rvdw        = 1.0
pbc         = xyz
`

//Minimize runs pdb2gmx, editconf, grompp, mdrun and trjconv over pdbIn
//and writes the minimized coordinates to pdbOut. All the intermediate
//files live in a scratch directory, removed on return unless o.Dirty.
//The context cancels whichever step is running.
func Minimize(ctx context.Context, pdbIn, pdbOut string, o *Options) error {
	if o == nil {
		o = &Options{}
	}
	o.fill()
	in, err := filepath.Abs(pdbIn)
	if err != nil {
		return ptm.NewError(ptm.Resource, "relax.Minimize", err.Error())
	}
	out, err := filepath.Abs(pdbOut)
	if err != nil {
		return ptm.NewError(ptm.Resource, "relax.Minimize", err.Error())
	}
	scratch, err := os.MkdirTemp("", "goptm-relax-")
	if err != nil {
		return ptm.NewError(ptm.Resource, "relax.Minimize", err.Error())
	}
	if !o.Dirty {
		defer os.RemoveAll(scratch)
	}
	mdp := o.MDP
	if mdp == "" {
		mdp = filepath.Join(scratch, "em.mdp")
		if err := os.WriteFile(mdp, []byte(defaultMDP), 0644); err != nil {
			return ptm.NewError(ptm.Resource, "relax.Minimize", err.Error())
		}
	}
	steps := [][]string{
		pdb2gmxArgs(in, o),
		editconfArgs(),
		gromppArgs(mdp),
		mdrunArgs(),
		trjconvArgs(out),
	}
	stdins := []string{"", "", "", "", "System\n"}
	for i, args := range steps {
		if err := run(ctx, scratch, o.Gmx, args, stdins[i]); err != nil {
			return errDecorate(err, "relax.Minimize")
		}
	}
	return nil
}

func pdb2gmxArgs(pdbIn string, o *Options) []string {
	return []string{"pdb2gmx", "-f", pdbIn, "-o", "conf.gro", "-p", "topol.top",
		"-ff", o.ForceField, "-water", o.Water, "-ignh"}
}

func editconfArgs() []string {
	return []string{"editconf", "-f", "conf.gro", "-o", "box.gro", "-c", "-d", "1.0", "-bt", "cubic"}
}

func gromppArgs(mdp string) []string {
	return []string{"grompp", "-f", mdp, "-c", "box.gro", "-p", "topol.top", "-o", "em.tpr", "-maxwarn", "1"}
}

func mdrunArgs() []string {
	return []string{"mdrun", "-deffnm", "em"}
}

func trjconvArgs(pdbOut string) []string {
	return []string{"trjconv", "-f", "em.gro", "-s", "em.tpr", "-o", pdbOut}
}

//run executes one gmx subcommand in dir, feeding stdin when non-empty.
//On failure the tail of stderr goes into the error, which is usually
//where gmx explains itself.
func run(ctx context.Context, dir, gmx string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, gmx, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = io.Discard
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if err := cmd.Run(); err != nil {
		return ptm.NewError(ptm.Resource, "relax.run",
			fmt.Sprintf("%s %s: %s: %s", gmx, args[0], err.Error(), tail(stderr.String(), 400)))
	}
	return nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

func errDecorate(err error, caller string) error {
	var e *ptm.Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return ptm.NewError(ptm.Resource, caller, err.Error())
}
