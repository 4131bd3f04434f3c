// seehuhn.de/go/lambert - modified Lambert projections for pole figures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lambert

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

// ProjectionPair holds the northern and southern grids of a modified
// Lambert projection. Both grids always share dimension and resolution.
//
// The pair is owned by its creator. It is filled first (by
// [BuildProjection] or [ProjectionPair.AddDirection]), then optionally
// normalized, and afterwards only read. Concurrent reads are safe once
// all modifications have finished.
type ProjectionPair struct {
	North *SquareGrid
	South *SquareGrid
}

// NewProjectionPair returns a pair of zero-filled grids.
func NewProjectionPair(dimension int, resolution float64) (*ProjectionPair, error) {
	if err := checkShape(dimension, resolution); err != nil {
		return nil, err
	}
	return newProjectionPair(dimension, resolution), nil
}

func newProjectionPair(dimension int, resolution float64) *ProjectionPair {
	return &ProjectionPair{
		North: newSquareGrid(dimension, resolution),
		South: newSquareGrid(dimension, resolution),
	}
}

// Dimension returns the number of cells along each side of the grids.
func (p *ProjectionPair) Dimension() int {
	return p.North.dimension
}

// Resolution returns the edge length of a grid cell.
func (p *ProjectionPair) Resolution() float64 {
	return p.North.resolution
}

// MaxCoord returns the half-width of the grids.
func (p *ProjectionPair) MaxCoord() float64 {
	return p.North.maxCoord
}

// Grid returns the grid of the given hemisphere.
func (p *ProjectionPair) Grid(h Hemisphere) *SquareGrid {
	if h == South {
		return p.South
	}
	return p.North
}

// Clone returns an independent copy of the pair.
func (p *ProjectionPair) Clone() *ProjectionPair {
	return &ProjectionPair{
		North: p.North.Clone(),
		South: p.South.Clone(),
	}
}

// Merge adds the grids of other to the grids of p, cell by cell.
// If any of the four grids differ in shape, p is left unchanged and
// Merge returns ErrGridMismatch.
func (p *ProjectionPair) Merge(other *ProjectionPair) error {
	if !p.North.sameShape(other.North) || !p.South.sameShape(other.South) ||
		!p.North.sameShape(p.South) {
		return ErrGridMismatch
	}
	if err := p.North.Add(other.North); err != nil {
		return err
	}
	return p.South.Add(other.South)
}

// AddDirection adds 1 to the cell which contains the direction d and
// reports the hemisphere it was added to.
func (p *ProjectionPair) AddDirection(d r3.Vector) (Hemisphere, error) {
	c, h, err := ForwardProject(d, p.MaxCoord())
	if err != nil {
		return h, err
	}
	g := p.Grid(h)
	g.values[g.SquareIndex(c)]++
	return h, nil
}

// DegeneratePolicy decides how [BuildProjection] treats directions which
// cannot be projected.
type DegeneratePolicy int

const (
	// SkipDegenerate leaves degenerate directions out and counts them in
	// AccumulateStats.Skipped.
	SkipDegenerate DegeneratePolicy = iota

	// RejectDegenerate makes BuildProjection fail with a *DirectionError.
	RejectDegenerate
)

// AccumulateOptions controls [BuildProjection].
// The zero value (or a nil pointer) uses one worker per CPU, skips
// degenerate directions and does not log.
type AccumulateOptions struct {
	Workers    int // <= 0 means runtime.NumCPU()
	Degenerate DegeneratePolicy
	Logger     *zap.Logger
}

// AccumulateStats summarizes a call to [BuildProjection].
type AccumulateStats struct {
	Added   int // directions added to one of the grids
	Skipped int // degenerate directions left out
	North   int // directions added to the northern grid
	South   int // directions added to the southern grid
}

func (s *AccumulateStats) merge(other AccumulateStats) {
	s.Added += other.Added
	s.Skipped += other.Skipped
	s.North += other.North
	s.South += other.South
}

// BuildProjection bins the given directions into a new projection pair
// with the given grid shape. Each direction adds 1 to one cell.
//
// Large inputs are split into contiguous partitions which are binned
// concurrently into private pairs and then added together. The result
// does not depend on the number of workers.
func BuildProjection(dirs []r3.Vector, dimension int, resolution float64, opts *AccumulateOptions) (*ProjectionPair, AccumulateStats, error) {
	if opts == nil {
		opts = &AccumulateOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	pair, err := NewProjectionPair(dimension, resolution)
	if err != nil {
		return nil, AccumulateStats{}, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, (len(dirs)+minPartition-1)/minPartition)

	var stats AccumulateStats
	if workers <= 1 {
		stats, err = pair.accumulate(dirs, 0, opts.Degenerate)
		if err != nil {
			return nil, stats, err
		}
	} else {
		chunk := (len(dirs) + workers - 1) / workers
		log.Debug("accumulating directions",
			zap.Int("directions", len(dirs)),
			zap.Int("workers", workers),
			zap.Int("partition", chunk))

		partial := make([]*ProjectionPair, workers)
		partialStats := make([]AccumulateStats, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for w := range workers {
			lo := w * chunk
			hi := min(lo+chunk, len(dirs))
			if lo >= hi {
				break
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				q := newProjectionPair(dimension, resolution)
				partialStats[w], errs[w] = q.accumulate(dirs[lo:hi], lo, opts.Degenerate)
				partial[w] = q
			}()
		}
		wg.Wait()

		// Report the failure with the lowest input index.
		for _, err := range errs {
			if err != nil {
				return nil, AccumulateStats{}, err
			}
		}
		for w, q := range partial {
			if q == nil {
				continue
			}
			if err := pair.Merge(q); err != nil {
				return nil, AccumulateStats{}, err
			}
			stats.merge(partialStats[w])
		}
	}

	if stats.Skipped > 0 {
		log.Warn("skipped degenerate directions",
			zap.Int("skipped", stats.Skipped),
			zap.Int("added", stats.Added))
	}
	return pair, stats, nil
}

// accumulate adds dirs to p. offset is the position of dirs[0] in the
// caller's input and is used for error reporting.
func (p *ProjectionPair) accumulate(dirs []r3.Vector, offset int, policy DegeneratePolicy) (AccumulateStats, error) {
	var stats AccumulateStats
	maxCoord := p.MaxCoord()
	for i, d := range dirs {
		c, h, err := ForwardProject(d, maxCoord)
		if err != nil {
			if policy == RejectDegenerate {
				return stats, &DirectionError{Index: offset + i, Dir: d}
			}
			stats.Skipped++
			continue
		}

		g := p.Grid(h)
		g.values[g.SquareIndex(c)]++

		stats.Added++
		if h == North {
			stats.North++
		} else {
			stats.South++
		}
	}
	return stats, nil
}

// String formats the statistics for log messages.
func (s AccumulateStats) String() string {
	return fmt.Sprintf("%d added (%d north, %d south), %d skipped",
		s.Added, s.North, s.South, s.Skipped)
}
