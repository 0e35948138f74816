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

// Package wavwriter records the output of a program as a WAV file. Every
// byte written is treated as a single unsigned 8-bit mono sample.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/logger"
)

// DefaultSampleRate is used if the sample rate given to New() is zero.
const DefaultSampleRate = 8000

// WavWriterError is the pattern for all errors returned by the package.
const WavWriterError = "wavwriter: %v"

// WavWriter implements io.Writer and io.ByteWriter. Samples are kept in
// memory until Close() is called.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
	closed     bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavWriterError, "no filename")
	}
	if sampleRate < 0 {
		return nil, curated.Errorf(WavWriterError, "sample rate cannot be negative")
	}
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}, nil
}

// Write implements the io.Writer interface.
func (aw *WavWriter) Write(p []byte) (int, error) {
	if aw.closed {
		return 0, curated.Errorf(WavWriterError, "write after close")
	}
	for _, b := range p {
		aw.buffer = append(aw.buffer, int(b))
	}
	return len(p), nil
}

// WriteByte implements the io.ByteWriter interface.
func (aw *WavWriter) WriteByte(b byte) error {
	if aw.closed {
		return curated.Errorf(WavWriterError, "write after close")
	}
	aw.buffer = append(aw.buffer, int(b))
	return nil
}

// Len returns the number of samples written so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the samples to the WAV file. Further writes will fail.
func (aw *WavWriter) Close() (rerr error) {
	if aw.closed {
		return nil
	}
	aw.closed = true

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, aw.sampleRate, 8, 1, 1)

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
