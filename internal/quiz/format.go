package quiz

import (
	"fmt"
	"time"
)

// FormatElapsed renders d as MM:SS.cc (minutes, seconds, centiseconds).
// Minutes keep counting past 59.
func FormatElapsed(d time.Duration) string {
	return FormatMillis(d.Milliseconds())
}

// FormatMillis renders a millisecond count as MM:SS.cc.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

// FormatBestTime renders a millisecond count as M:SS.cc with unpadded minutes.
func FormatBestTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d.%02d", ms/60000, (ms%60000)/1000, (ms%1000)/10)
}
