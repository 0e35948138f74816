// This file is part of Tapedeck.
//
// Tapedeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapedeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapedeck.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"github.com/jetsetilly/tapedeck/paths"
	"github.com/jetsetilly/tapedeck/prefs"
	"github.com/jetsetilly/tapedeck/tape"
)

// Preferences that are saved between sessions.
type Preferences struct {
	dsk *prefs.Disk

	// number of cells in the tape
	Cells prefs.Int

	// echo characters typed at the console
	Echo prefs.Bool

	// terminal type used in the debugger. one of PLAIN, COLOR or LINER
	Term prefs.String

	// number of lines of command history kept by the LINER terminal
	HistoryLength prefs.Int
}

// list of default preference values
const (
	defaultTerm          = "COLOR"
	defaultHistoryLength = 500
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the prefs file in the resource
// directory.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("engine.cells", &p.Cells); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("engine.echo", &p.Echo); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("debugger.term", &p.Term); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("debugger.historylength", &p.HistoryLength); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Cells.Set(tape.DefaultCapacity)
	_ = p.Echo.Set(false)
	_ = p.Term.Set(defaultTerm)
	_ = p.HistoryLength.Set(defaultHistoryLength)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
