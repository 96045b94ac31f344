/*
 * job_test.go, part of goptm.
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
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJob(t *testing.T) {
	path := writeJob(t, `
structures:
  - in: a.pdb
    out: a_mod.pdb
    modifications:
      - {chain: A, resnum: 5, from: VAL, to: V3H}
      - {chain: B, resnum: 12, from: ARG, to: GSA}
  - in: b.pdb
    out: b_mod.pdb
    modifications:
      - {chain: A, resnum: 1, from: MET, to: MSX}
`)
	job, err := LoadJob(path)
	require.NoError(t, err)
	require.Len(t, job.Structures, 2)
	first := job.Structures[0]
	assert.Equal(t, "a.pdb", first.In)
	assert.Equal(t, "a_mod.pdb", first.Out)
	require.Len(t, first.Modifications, 2)
	assert.Equal(t, ResidueJob{Chain: "A", ResNum: 5, From: "VAL", To: "V3H"}, first.Modifications[0])
	assert.Equal(t, "GSA", first.Modifications[1].To)
}

func TestLoadJobErrors(t *testing.T) {
	cases := map[string]string{
		"empty":         `structures: []`,
		"missing out":   "structures:\n  - in: a.pdb\n    modifications:\n      - {chain: A, resnum: 1, from: A, to: B}\n",
		"no mods":       "structures:\n  - in: a.pdb\n    out: b.pdb\n    modifications: []\n",
		"long chain":    "structures:\n  - in: a.pdb\n    out: b.pdb\n    modifications:\n      - {chain: AB, resnum: 1, from: A, to: B}\n",
		"missing kinds": "structures:\n  - in: a.pdb\n    out: b.pdb\n    modifications:\n      - {chain: A, resnum: 1}\n",
		"not yaml":      `{{{`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadJob(writeJob(t, content))
			assert.Error(t, err)
		})
	}
	_, err := LoadJob(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel(""))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseSlogLevel("error"))
	assert.Equal(t, slog.Level(-4), parseSlogLevel("-4"))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("bogus"))
}
