/*
 * list.go, part of goptm.
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
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listLong bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the modifications available in the library",
	RunE: func(cmd *cobra.Command, _ []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		if listLong {
			table.SetHeader([]string{"From", "To", "Branches", "Adds", "Deletes", "Renames"})
		} else {
			table.SetHeader([]string{"From", "To", "Branches"})
		}
		for i := 0; i < lib.Len(); i++ {
			m, err := lib.At(i)
			if err != nil {
				return err
			}
			if listLong {
				renames := make([]string, 0, len(m.Renames()))
				for _, rn := range m.Renames() {
					renames = append(renames, rn[0]+">"+rn[1])
				}
				table.Append([]string{m.Original, m.Target,
					strconv.Itoa(len(m.AddBranches)),
					strings.Join(m.Additions(), " "),
					strings.Join(m.Deletions(), " "),
					strings.Join(renames, " ")})
			} else {
				table.Append([]string{m.Original, m.Target, strconv.Itoa(len(m.AddBranches))})
			}
		}
		table.Render()
		fmt.Fprintf(cmd.OutOrStdout(), "%d modifications\n", lib.Len())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listLong, "long", false, "show atom-level detail per rule")
	rootCmd.AddCommand(listCmd)
}
