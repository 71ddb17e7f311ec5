package ebustl

import (
	"fmt"
	"time"
)

// Timecode is a frame-accurate timestamp as stored in TTI blocks: binary
// hours, minutes, seconds and a frame count within the second.
type Timecode struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
	Frames  uint8
}

// String formats the timecode as "HH:MM:SS:FF".
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds, t.Frames)
}

// Duration converts the timecode to wall-clock time at the given frame
// rate. Rates are nominal, so an STL30.01 file counts 30 frames per second
// even when the underlying video runs at 29.97.
func (t Timecode) Duration(rate int) time.Duration {
	d := time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
	if rate > 0 {
		d += time.Duration(t.Frames) * time.Second / time.Duration(rate)
	}
	return d
}

// frameCount flattens the timecode to a total frame count for ordering
// comparisons.
func (t Timecode) frameCount(rate int) int {
	return ((int(t.Hours)*60+int(t.Minutes))*60+int(t.Seconds))*rate + int(t.Frames)
}

// check validates component ranges against the file's frame rate. Hours are
// unchecked; day-wrapping timecodes occur in broadcast material.
func (t Timecode) check(rate int) error {
	if t.Minutes > 59 {
		return fmt.Errorf("minutes %d out of range", t.Minutes)
	}
	if t.Seconds > 59 {
		return fmt.Errorf("seconds %d out of range", t.Seconds)
	}
	if int(t.Frames) >= rate {
		return fmt.Errorf("frame %d outside rate %d", t.Frames, rate)
	}
	return nil
}
