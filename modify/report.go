/*
 * report.go, part of goptm.
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

package modify

//Report counts what one successful Apply did to its residue.
type Report struct {
	Chain   byte
	ResNum  int
	From    string
	Target  string
	Added   int
	Deleted int
	Renamed int
}

//Reports returns the accumulated reports of every successful Apply, in
//order of application.
func (m *Modifier) Reports() []Report {
	out := make([]Report, len(m.reports))
	copy(out, m.reports)
	return out
}

//Totals sums a set of reports into one.
func Totals(reports []Report) Report {
	var t Report
	for _, r := range reports {
		t.Added += r.Added
		t.Deleted += r.Deleted
		t.Renamed += r.Renamed
	}
	return t
}
