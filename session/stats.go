package session

import "time"

// FrameStats is a frames-per-second counter over one-second windows.
type FrameStats struct {
	FPS    float64
	Frames uint64

	windowStart time.Duration
	windowCount int
	started     bool
}

func (fs *FrameStats) record(now time.Duration) {
	fs.Frames++
	if !fs.started {
		fs.started = true
		fs.windowStart = now
		return
	}
	fs.windowCount++
	if elapsed := now - fs.windowStart; elapsed >= time.Second {
		fs.FPS = float64(fs.windowCount) / elapsed.Seconds()
		fs.windowStart = now
		fs.windowCount = 0
	}
}
