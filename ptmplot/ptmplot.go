/*
 * ptmplot.go, part of goptm.
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

//Package ptmplot renders small summary charts of modification runs.
package ptmplot

import (
	"fmt"

	"github.com/rmera/goptm"
	"github.com/rmera/goptm/modify"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//ReportBars draws a grouped bar chart of atoms added, deleted and
//renamed per applied modification, and saves it to path. The format
//follows the file extension (png, pdf, svg...).
func ReportBars(reports []modify.Report, path string) error {
	if len(reports) == 0 {
		return ptm.NewError(ptm.Resource, "ptmplot.ReportBars", "nothing to plot")
	}
	added := make(plotter.Values, len(reports))
	deleted := make(plotter.Values, len(reports))
	renamed := make(plotter.Values, len(reports))
	labels := make([]string, len(reports))
	for i, r := range reports {
		added[i] = float64(r.Added)
		deleted[i] = float64(r.Deleted)
		renamed[i] = float64(r.Renamed)
		labels[i] = fmt.Sprintf("%c%d %s", r.Chain, r.ResNum, r.Target)
	}
	p := plot.New()
	p.Title.Text = "Applied modifications"
	p.Y.Label.Text = "atoms"
	w := vg.Points(15)
	series := []struct {
		name string
		vals plotter.Values
		off  vg.Length
	}{
		{"added", added, -w},
		{"deleted", deleted, 0},
		{"renamed", renamed, w},
	}
	for i, s := range series {
		bars, err := plotter.NewBarChart(s.vals, w)
		if err != nil {
			return ptm.NewError(ptm.Resource, "ptmplot.ReportBars", err.Error())
		}
		bars.Offset = s.off
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}
	p.Legend.Top = true
	p.NominalX(labels...)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return ptm.NewError(ptm.Resource, "ptmplot.ReportBars", err.Error())
	}
	return nil
}
