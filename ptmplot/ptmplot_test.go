/*
 * ptmplot_test.go, part of goptm.
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

package ptmplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/goptm/modify"
)

func TestReportBars(Te *testing.T) {
	reports := []modify.Report{
		{Chain: 'A', ResNum: 1, From: "VAL", Target: "V3H", Added: 1, Renamed: 1},
		{Chain: 'A', ResNum: 2, From: "ARG", Target: "GSA", Added: 1, Deleted: 4},
	}
	path := filepath.Join(Te.TempDir(), "report.png")
	if err := ReportBars(reports, path); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("an empty chart was written")
	}
}

func TestReportBarsEmpty(Te *testing.T) {
	if err := ReportBars(nil, filepath.Join(Te.TempDir(), "x.png")); err == nil {
		Te.Error("plotting nothing should fail")
	}
}
