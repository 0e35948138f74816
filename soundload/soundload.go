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

package soundload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/logger"
)

// SoundloadError is the pattern for all errors returned by the package.
const SoundloadError = "soundload: %v"

const soundloadLogTag = "soundload"

// IsSoundFile returns true if the filename has an extension that Load() can
// decode.
func IsSoundFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// Load decodes the named file. Log entries are sent to the supplied
// observer, which can be nil.
func Load(filename string, log logger.Observer) ([]byte, error) {
	if log == nil {
		log = logger.Discard
	}

	if !IsSoundFile(filename) {
		return nil, curated.Errorf(SoundloadError, fmt.Sprintf("not a sound file (%s)", filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SoundloadError, err)
	}
	defer f.Close()

	var data []byte

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, err = fromWav(f, log)
	case ".mp3":
		data, err = fromMP3(f, log)
	}
	if err != nil {
		return nil, curated.Errorf(SoundloadError, err)
	}

	log.Logf(logger.Allow, soundloadLogTag, "%d samples loaded from %s", len(data), filepath.Base(filename))

	return data, nil
}

func fromWav(r io.ReadSeeker, log logger.Observer) ([]byte, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}

	log.Log(logger.Allow, soundloadLogTag, "loading from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	numChans := int(dec.NumChans)
	if numChans == 0 {
		return nil, fmt.Errorf("wav: no channels")
	}

	depth := int(dec.BitDepth)
	log.Logf(logger.Allow, soundloadLogTag, "sample rate: %dHz", dec.SampleRate)
	log.Logf(logger.Allow, soundloadLogTag, "bit depth: %d", depth)

	// copy first channel only of data stream
	data := make([]byte, 0, len(buf.Data)/numChans)
	for i := 0; i < len(buf.Data); i += numChans {
		v := buf.Data[i]

		// 8bit wav data is already unsigned. greater bit depths are signed
		if depth > 8 {
			v = (v >> (depth - 8)) + 128
		}

		data = append(data, uint8(v))
	}

	return data, nil
}

func fromMP3(r io.Reader, log logger.Observer) ([]byte, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	log.Log(logger.Allow, soundloadLogTag, "loading from mp3 file")
	log.Logf(logger.Allow, soundloadLogTag, "sample rate: %dHz", dec.SampleRate())

	var data []byte

	// the decoded stream is always 16bit little endian stereo so every sample
	// is four bytes. only the left channel is used
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, uint8((int(s)>>8)+128))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("mp3: %w", err)
		}
	}

	return data, nil
}
