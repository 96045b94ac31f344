/*
 * root.go, part of goptm.
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

//goptm applies post-translational modifications to residues of PDB
//structures, from a library of modification rules and template residues.
package main

import (
	"fmt"
	"os"

	"github.com/rmera/goptm/modify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "goptm",
	Short: "apply post-translational modifications to PDB structures",
	Long: `goptm grafts modified side chains onto residues of a PDB structure.
Each modification rule maps the atoms of the original residue to those of
the target and places the new atoms by weighted rigid-body superposition
of pre-built template residues.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := initConfig(cfgFile); err != nil {
			return err
		}
		configureLogger()
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./goptm.yaml)")
	rootCmd.PersistentFlags().String("library", defaultRules, "path to the rule library JSON")
	rootCmd.PersistentFlags().String("templates", defaultTemplates, "directory of template PDB files")
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup("library"), rulesKey)
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup("templates"), templatesKey)
}

//bindFlagToConfig wires a cobra flag to a viper key so config file and
//environment values feed the flag's default.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func loadLibrary() (*modify.Library, error) {
	return modify.LoadLibrary(viper.GetString(rulesKey), viper.GetString(templatesKey))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
