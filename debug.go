package park

import "time"

// RenderStats holds per-frame timing and counts.
type RenderStats struct {
	buildTime  time.Duration
	sortTime   time.Duration
	submitTime time.Duration
	parts      int
	faces      int
	triangles  int
	culled     int
	clipped    int
	batches    int
}

// Triangles returns how many triangles were drawn.
func (s RenderStats) Triangles() int { return s.triangles }

// Batches returns how many DrawTriangles calls were made.
func (s RenderStats) Batches() int { return s.batches }

// Total returns the CPU time spent building, sorting and submitting.
func (s RenderStats) Total() time.Duration {
	return s.buildTime + s.sortTime + s.submitTime
}

// debugLog writes the stats every StatsInterval frames when Debug is set.
func (r *Renderer) debugLog() {
	if !r.Debug {
		return
	}
	if r.StatsInterval > 1 && r.frames%r.StatsInterval != 0 {
		return
	}
	s := r.stats
	r.logger.Debug("frame",
		"build", s.buildTime, "sort", s.sortTime, "submit", s.submitTime, "total", s.Total(),
		"parts", s.parts, "faces", s.faces, "triangles", s.triangles,
		"culled", s.culled, "clipped", s.clipped, "draw_calls", s.batches)
}
