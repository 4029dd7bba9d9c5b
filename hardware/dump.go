// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump writes a graph of the machine and its connected components to w, in
// graphviz dot format. Useful for visualising how the components reference
// one another when chasing a wiring problem.
//
//	dot -Tsvg < dump.dot > dump.svg
func (dmg *DMG) Dump(w io.Writer) {
	memviz.Map(w, dmg)
}
