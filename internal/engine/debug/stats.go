package debug

// FrameStats keeps a rolling window of frame times for the debug overlay.
type FrameStats struct {
	samples []float32
	next    int
	filled  int
}

// NewFrameStats creates a stats tracker over the given window size.
func NewFrameStats(window int) *FrameStats {
	if window < 1 {
		window = 1
	}
	return &FrameStats{
		samples: make([]float32, window),
	}
}

// Record adds one frame time in seconds.
func (fs *FrameStats) Record(dt float32) {
	fs.samples[fs.next] = dt
	fs.next = (fs.next + 1) % len(fs.samples)
	if fs.filled < len(fs.samples) {
		fs.filled++
	}
}

// AverageFrameTime returns the mean frame time in seconds over the window.
func (fs *FrameStats) AverageFrameTime() float32 {
	if fs.filled == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < fs.filled; i++ {
		sum += fs.samples[i]
	}
	return sum / float32(fs.filled)
}

// FPS returns the average frames per second over the window.
func (fs *FrameStats) FPS() float32 {
	avg := fs.AverageFrameTime()
	if avg <= 0 {
		return 0
	}
	return 1 / avg
}

// WorstFrameTime returns the longest frame time in the window.
func (fs *FrameStats) WorstFrameTime() float32 {
	var worst float32
	for i := 0; i < fs.filled; i++ {
		if fs.samples[i] > worst {
			worst = fs.samples[i]
		}
	}
	return worst
}
