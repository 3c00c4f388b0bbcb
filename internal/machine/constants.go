package machine

import "time"

// Reveal defaults
const (
	DefaultFastDelay  = 50 * time.Millisecond
	DefaultSlowDelay  = 150 * time.Millisecond
	DefaultFastFrames = 10
	DefaultSlowFrames = 6
)

// Log Messages
const (
	LogMsgSpinStarted  = "Spin started"
	LogMsgSpinRejected = "Spin rejected"
	LogMsgSpinSettled  = "Spin settled"
)
