package stream

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

const barWidth = 20

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func progressBar(percent float64, width int) string {
	filled := int(float64(width) * percent / 100)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func humanCount(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.SIWithDigits(float64(n), 2, "")
	}
	return humanize.Comma(int64(n))
}

func humanRate(rate float64) string {
	return humanize.SIWithDigits(rate, 2, "") + "/s"
}

// humanExpected prints exact counts while they stay readable.
func humanExpected(v float64) string {
	if v < 1e15 {
		return humanize.Commaf(v)
	}
	return fmt.Sprintf("%.3e", v)
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	if d < 24*time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	days := int64(d.Hours()) / 24
	h := int64(d.Hours()) % 24
	return fmt.Sprintf("%dd%02dh", days, h)
}
