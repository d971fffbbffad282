package git

import (
	"fmt"
	"strings"
	"time"
)

const shortHashLen = 7

func shortHash(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}

// Commit is one history entry as the views consume it.
type Commit struct {
	Hash        string
	ShortHash   string
	Author      string
	AuthorEmail string
	When        time.Time
	Summary     string
	Message     string
	// Refs holds decoration labels for this commit: "HEAD -> main",
	// branch names, "tag: v1.0".
	Refs []string
}

// RelativeWhen renders the commit age in coarse buckets relative to now.
func (c Commit) RelativeWhen(now time.Time) string {
	return relativeTime(now.Sub(c.When))
}

func relativeTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	const day = 24 * time.Hour
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return agoUnits(int(d/time.Minute), "minute")
	case d < day:
		return agoUnits(int(d/time.Hour), "hour")
	case d < 7*day:
		return agoUnits(int(d/day), "day")
	case d < 30*day:
		return agoUnits(int(d/(7*day)), "week")
	case d < 365*day:
		return agoUnits(int(d/(30*day)), "month")
	default:
		return agoUnits(int(d/(365*day)), "year")
	}
}

func agoUnits(n int, unit string) string {
	if n <= 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// summaryLine extracts the first line of a commit message.
func summaryLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
