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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "prefs.toml"

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# preferences file. values not understood by this version are kept"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path given")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the disk under key.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: %s: already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the keys of every preference on the disk in sorted order.
func (dsk *Disk) Keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Reset every preference to its zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.Keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the file into a flat map of dotted keys. a missing file is not an
// error and results in an empty map
func (dsk *Disk) read() (map[string]any, error) {
	var data map[string]any
	_, err := toml.DecodeFile(dsk.path, &data)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	flat := make(map[string]any)
	flatten("", data, flat)
	return flat, nil
}

func flatten(prefix string, data map[string]any, flat map[string]any) {
	for k, v := range data {
		if prefix != "" {
			k = prefix + "." + k
		}
		if m, ok := v.(map[string]any); ok {
			flatten(k, m, flat)
			continue
		}
		flat[k] = v
	}
}

// Load preference values from disk. Values on the command line stack take
// precedence over values in the file.
func (dsk *Disk) Load() error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.Keys() {
		p := dsk.entries[k]
		if v, ok := flat[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Entries already in the file that
// have not been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		flat[k] = p.Get()
	}

	data := make(map[string]any)
	for k, v := range flat {
		parts := strings.Split(k, ".")
		m := data
		for _, t := range parts[:len(parts)-1] {
			n, ok := m[t].(map[string]any)
			if !ok {
				n = make(map[string]any)
				m[t] = n
			}
			m = n
		}
		m[parts[len(parts)-1]] = v
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%s\n\n", WarningBoilerPlate); err != nil {
		_ = f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	enc := toml.NewEncoder(f)
	enc.Indent = ""
	if err := enc.Encode(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
