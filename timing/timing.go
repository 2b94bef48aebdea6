package timing

import "time"

var (
	initTime       time.Time
	frameStartTime time.Time

	dt         float32
	frameCount uint64
)

func Init() {
	initTime = time.Now()
	frameStartTime = initTime
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {
	dt = float32(time.Since(frameStartTime).Seconds())
	frameCount++
}

// DT returns the duration of the last finished frame in seconds
func DT() float32 {
	return dt
}

func FrameCount() uint64 {
	return frameCount
}

func ElapsedTime() float32 {
	return float32(time.Since(initTime).Seconds())
}
