package stats

import (
	"fmt"
	"math"
	"strconv"
)

// Words-per-minute rates for the timing estimates. Both are fixed
// averages for silent reading and speaking aloud.
const (
	ReadingWPM  = 238
	SpeakingWPM = 158
)

// FormatTime renders the estimated time to read or speak wordCount words
// at the given rate as a compact duration: "30 sec", "1 min",
// "2 min 6 sec". Zero words renders as "0 min".
func FormatTime(wordCount, wpm int) string {
	if wordCount == 0 {
		return "0 min"
	}

	totalSeconds := int(math.Round(float64(wordCount) / float64(wpm) * 60))
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60

	switch {
	case minutes == 0:
		return fmt.Sprintf("%d sec", seconds)
	case seconds == 0:
		return fmt.Sprintf("%d min", minutes)
	default:
		return fmt.Sprintf("%d min %d sec", minutes, seconds)
	}
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st, and so on.
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
