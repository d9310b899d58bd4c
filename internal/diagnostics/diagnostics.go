package diagnostics

import (
	"time"

	"go.uber.org/zap"

	"pinball/internal/logger"
)

// FrameStats accumulates frame times and logs a summary once per interval.
type FrameStats struct {
	Interval time.Duration

	frames  int
	elapsed time.Duration
	max     time.Duration
	last    Summary

	log *zap.Logger
}

// Summary is one reporting window.
type Summary struct {
	Frames   int
	FPS      float64
	AvgFrame time.Duration
	MaxFrame time.Duration
}

func New(interval time.Duration, log *zap.Logger) *FrameStats {
	if interval <= 0 {
		interval = time.Second
	}
	return &FrameStats{
		Interval: interval,
		log:      logger.OrNop(log).Named("diagnostics"),
	}
}

// Record adds one frame and reports whether a window was closed and logged.
func (s *FrameStats) Record(frameTime time.Duration) bool {
	s.frames++
	s.elapsed += frameTime
	if frameTime > s.max {
		s.max = frameTime
	}
	if s.elapsed < s.Interval {
		return false
	}

	s.last = Summary{
		Frames:   s.frames,
		FPS:      float64(s.frames) / s.elapsed.Seconds(),
		AvgFrame: s.elapsed / time.Duration(s.frames),
		MaxFrame: s.max,
	}
	s.log.Info("frame time",
		zap.Float64("fps", s.last.FPS),
		zap.Duration("avg", s.last.AvgFrame),
		zap.Duration("max", s.last.MaxFrame),
	)

	s.frames = 0
	s.elapsed = 0
	s.max = 0
	return true
}

// Last returns the most recently closed window.
func (s *FrameStats) Last() Summary {
	return s.last
}
