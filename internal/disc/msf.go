package disc

import "fmt"

// Red Book sector geometry: 75 sectors per second of playback time.
const (
	SecondsPerMinute = 60
	FramesPerSecond  = 75
)

// MSF is a minute:second:frame disc position, the drive's native addressing.
type MSF struct {
	Minute uint8
	Second uint8
	Frame  uint8
}

// Sector flattens the position into an absolute sector offset.
func (m MSF) Sector() int {
	return int(m.Minute)*SecondsPerMinute*FramesPerSecond +
		int(m.Second)*FramesPerSecond +
		int(m.Frame)
}

// SectorToMSF converts an absolute sector offset back into its
// minute:second:frame components. It inverts MSF.Sector for any position
// with Second < SecondsPerMinute and Frame < FramesPerSecond.
func SectorToMSF(sector int) MSF {
	return MSF{
		Minute: uint8(sector / FramesPerSecond / SecondsPerMinute),
		Second: uint8(sector / FramesPerSecond % SecondsPerMinute),
		Frame:  uint8(sector % FramesPerSecond),
	}
}

// String formats the position as mm:ss:ff.
func (m MSF) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", m.Minute, m.Second, m.Frame)
}
