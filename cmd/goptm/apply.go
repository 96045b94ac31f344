/*
 * apply.go, part of goptm.
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

package main

import (
	"context"
	"fmt"

	"github.com/rmera/goptm"
	"github.com/rmera/goptm/modify"
	"github.com/rmera/goptm/ptmplot"
	"github.com/rmera/goptm/relax"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var applyFlags struct {
	in       string
	out      string
	chain    string
	resnum   int
	from     string
	to       string
	job      string
	parallel int
	minimize bool
	plot     string
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "apply one modification, or a batch from a job file",
	Long: `Apply modifies residues of PDB structures. With --job, a YAML file
describes several structures and their modifications; independent
structures run concurrently. Without it, the single modification given
by --in/--out/--chain/--resnum/--from/--to is applied.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		if applyFlags.job != "" {
			return runJob(cmd.Context(), lib)
		}
		return runSingle(cmd.Context(), lib)
	},
}

func init() {
	f := applyCmd.Flags()
	f.StringVar(&applyFlags.in, "in", "", "input PDB file")
	f.StringVar(&applyFlags.out, "out", "", "output PDB file")
	f.StringVar(&applyFlags.chain, "chain", "A", "chain identifier of the residue")
	f.IntVar(&applyFlags.resnum, "resnum", 0, "residue number")
	f.StringVar(&applyFlags.from, "from", "", "current residue kind (e.g. VAL)")
	f.StringVar(&applyFlags.to, "to", "", "target residue kind (e.g. V3H)")
	f.StringVar(&applyFlags.job, "job", "", "YAML job file for batch application")
	f.IntVar(&applyFlags.parallel, "parallel", 4, "concurrent structures in batch mode")
	f.BoolVar(&applyFlags.minimize, "minimize", false, "energy-minimize the output with GROMACS")
	f.StringVar(&applyFlags.plot, "plot", "", "write a summary chart of the run to this file")
	rootCmd.AddCommand(applyCmd)
}

func relaxOptions() *relax.Options {
	return &relax.Options{
		Gmx:        viper.GetString(relaxGmxKey),
		ForceField: viper.GetString(relaxForceFieldKey),
		Water:      viper.GetString(relaxWaterKey),
	}
}

func runSingle(ctx context.Context, lib *modify.Library) error {
	if applyFlags.in == "" || applyFlags.out == "" {
		return fmt.Errorf("apply needs --in and --out (or --job)")
	}
	if len(applyFlags.chain) != 1 {
		return fmt.Errorf("chain must be a single character, got %q", applyFlags.chain)
	}
	if applyFlags.from == "" || applyFlags.to == "" {
		return fmt.Errorf("apply needs --from and --to")
	}
	s, err := ptm.ReadPDB(applyFlags.in)
	if err != nil {
		return err
	}
	mod := modify.NewModifier(lib, modify.InPlace())
	s, err = mod.Apply(s, applyFlags.chain[0], applyFlags.resnum, applyFlags.from, applyFlags.to)
	if err != nil {
		return err
	}
	if err := ptm.WritePDB(s, applyFlags.out); err != nil {
		return err
	}
	if applyFlags.minimize {
		if err := relax.Minimize(ctx, applyFlags.out, applyFlags.out, relaxOptions()); err != nil {
			return err
		}
	}
	if applyFlags.plot != "" {
		return ptmplot.ReportBars(mod.Reports(), applyFlags.plot)
	}
	return nil
}

//runJob applies a batch job. Structures are independent, so each gets
//its own goroutine and its own Modifier; modifications within one
//structure stay sequential.
func runJob(ctx context.Context, lib *modify.Library) error {
	job, err := LoadJob(applyFlags.job)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(applyFlags.parallel)
	reports := make([][]modify.Report, len(job.Structures))
	for i, sj := range job.Structures {
		i, sj := i, sj
		g.Go(func() error {
			s, err := ptm.ReadPDB(sj.In)
			if err != nil {
				return err
			}
			mod := modify.NewModifier(lib, modify.InPlace())
			for _, rj := range sj.Modifications {
				if s, err = mod.Apply(s, rj.Chain[0], rj.ResNum, rj.From, rj.To); err != nil {
					return err
				}
			}
			if err := ptm.WritePDB(s, sj.Out); err != nil {
				return err
			}
			if applyFlags.minimize {
				if err := relax.Minimize(ctx, sj.Out, sj.Out, relaxOptions()); err != nil {
					return err
				}
			}
			reports[i] = mod.Reports()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if applyFlags.plot != "" {
		var all []modify.Report
		for _, r := range reports {
			all = append(all, r...)
		}
		return ptmplot.ReportBars(all, applyFlags.plot)
	}
	return nil
}
