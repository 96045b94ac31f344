/*
 * job.go, part of goptm.
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
	"os"

	"gopkg.in/yaml.v3"
)

//A Job describes one batch of modifications: several structures, each
//with its own list of residue changes, applied in order.
type Job struct {
	Structures []StructureJob `yaml:"structures"`
}

//StructureJob is one input/output structure pair and its modifications.
type StructureJob struct {
	In            string       `yaml:"in"`
	Out           string       `yaml:"out"`
	Modifications []ResidueJob `yaml:"modifications"`
}

//ResidueJob is one residue change within a structure.
type ResidueJob struct {
	Chain  string `yaml:"chain"`
	ResNum int    `yaml:"resnum"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

//LoadJob reads and validates a YAML job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	if err := j.validate(); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	return &j, nil
}

func (j *Job) validate() error {
	if len(j.Structures) == 0 {
		return fmt.Errorf("no structures in job")
	}
	for i, s := range j.Structures {
		if s.In == "" || s.Out == "" {
			return fmt.Errorf("structure %d: in and out are both required", i)
		}
		if len(s.Modifications) == 0 {
			return fmt.Errorf("structure %d (%s): no modifications", i, s.In)
		}
		for k, m := range s.Modifications {
			if len(m.Chain) != 1 {
				return fmt.Errorf("structure %d modification %d: chain must be a single character, got %q", i, k, m.Chain)
			}
			if m.From == "" || m.To == "" {
				return fmt.Errorf("structure %d modification %d: from and to are both required", i, k)
			}
		}
	}
	return nil
}
