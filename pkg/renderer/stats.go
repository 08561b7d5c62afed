package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Number of completed rows
	PrimaryHits int           // Primary rays that hit a surface
	Workers     int           // Number of workers that rendered the frame
	Duration    time.Duration // Wall time of the render
}

// RowStats is what a single rendered row reports back
type RowStats struct {
	Pixels      int
	PrimaryHits int
}

// add folds a finished row into the frame totals
func (rs *RenderStats) add(row RowStats) {
	rs.Rows++
	rs.TotalPixels += row.Pixels
	rs.PrimaryHits += row.PrimaryHits
}

// Coverage returns the fraction of pixels whose primary ray hit geometry
func (rs RenderStats) Coverage() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.PrimaryHits) / float64(rs.TotalPixels)
}

func (rs RenderStats) String() string {
	return fmt.Sprintf("%d pixels in %d rows, %.1f%% coverage, %d workers, %v",
		rs.TotalPixels, rs.Rows, rs.Coverage()*100, rs.Workers, rs.Duration)
}
