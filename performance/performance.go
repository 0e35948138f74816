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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jetsetilly/tapedeck/curated"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/logger"
	"github.com/jetsetilly/tapedeck/program"
)

// CheckError is returned by Check() if the performance run failed.
const CheckError = "performance: %v"

// the number of instructions executed between checks of the timer
const performanceBrake = 1024

var timedOut = errors.New("performance timed out")

// zeros satisfies every read with a zero byte.
type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func (zeros) ReadByte() (byte, error) {
	return 0, nil
}

// Result of a performance check.
type Result struct {
	Instructions uint64
	Completions  int
	Duration     time.Duration
}

// PerSecond is the number of instructions executed per second.
func (r Result) PerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%s instructions per second (%s instructions in %.2f seconds, %d completions)",
		humanize.Commaf(float64(int64(r.PerSecond()))),
		humanize.Comma(int64(r.Instructions)),
		r.Duration.Seconds(),
		r.Completions)
}

// Measure runs the program for the specified duration and returns the
// result. Measure does not print anything or profile the run.
func Measure(prog *program.Program, cells int, duration time.Duration) (Result, error) {
	var res Result

	if duration <= 0 {
		return res, curated.Errorf(CheckError, fmt.Sprintf("duration must be positive (%v)", duration))
	}

	eng, err := engine.New(prog, engine.Config{
		Cells:  cells,
		Input:  zeros{},
		Output: io.Discard,
	})
	if err != nil {
		return res, curated.Errorf(CheckError, err)
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	start := time.Now()

	err = func() error {
		for {
			for i := 0; i < performanceBrake; i++ {
				ok, err := eng.Step()
				if err != nil {
					return err
				}
				if !ok {
					res.Completions++
					eng.Reset()

					// an empty program never advances. a single completion is
					// all there is to measure
					if prog.Len() == 0 {
						return timedOut
					}
					continue
				}
				res.Instructions++
			}

			select {
			case <-timer.C:
				return timedOut
			default:
			}
		}
	}()

	res.Duration = time.Since(start)

	if err != nil && !errors.Is(err, timedOut) {
		return res, curated.Errorf(CheckError, err)
	}

	return res, nil
}

// Check runs the program for the specified duration, through the profiler if
// requested, and writes the result to output.
func Check(output io.Writer, profile Profile, prog *program.Program, cells int, duration time.Duration) error {
	var res Result

	err := RunProfiler(profile, "performance", func() error {
		var err error
		res, err = Measure(prog, cells, duration)
		return err
	})
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "performance", "%d instructions in %v", res.Instructions, res.Duration)

	_, err = fmt.Fprintln(output, res.String())
	return err
}
