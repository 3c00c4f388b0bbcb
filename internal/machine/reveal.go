package machine

import (
	"time"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/slots"
)

// RevealConfig shapes the "fast then slow" reveal
type RevealConfig struct {
	FastDelay  time.Duration
	SlowDelay  time.Duration
	FastFrames int
	SlowFrames int
}

// DefaultRevealConfig returns the stock pacing
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{
		FastDelay:  DefaultFastDelay,
		SlowDelay:  DefaultSlowDelay,
		FastFrames: DefaultFastFrames,
		SlowFrames: DefaultSlowFrames,
	}
}

// BuildSchedule lays out the frames that reveal result. Fast frames show
// random faces on every reel; slow frames stop the reels left to right.
// The last frame always shows result with every reel stopped. cosmetic only
// picks the faces of reels that are still spinning.
func BuildSchedule(result domain.SpinResult, alphabet slots.Alphabet, cosmetic slots.RNG, cfg RevealConfig) []domain.RevealFrame {
	fast, slow := max(cfg.FastFrames, 0), max(cfg.SlowFrames, 0)
	frames := make([]domain.RevealFrame, 0, fast+slow+1)

	blur := func(stopped int) [slots.ReelCount]domain.Symbol {
		var reels [slots.ReelCount]domain.Symbol
		for i := range reels {
			if i < stopped {
				reels[i] = result.Symbols[i]
			} else {
				reels[i] = alphabet[cosmetic.IntN(len(alphabet))]
			}
		}
		return reels
	}

	add := func(stopped int, delay time.Duration) {
		var mask [slots.ReelCount]bool
		for i := 0; i < stopped; i++ {
			mask[i] = true
		}
		frames = append(frames, domain.RevealFrame{
			Index:   len(frames),
			Reels:   blur(stopped),
			Stopped: mask,
			Delay:   delay,
		})
	}

	for i := 0; i < fast; i++ {
		add(0, cfg.FastDelay)
	}
	for k := 0; k < slow; k++ {
		add((k+1)*slots.ReelCount/slow, cfg.SlowDelay)
	}
	if slow == 0 {
		add(slots.ReelCount, 0)
	}
	return frames
}

// TotalDuration is the wall time a schedule takes to play
func TotalDuration(frames []domain.RevealFrame) time.Duration {
	var d time.Duration
	for _, f := range frames {
		d += f.Delay
	}
	return d
}
