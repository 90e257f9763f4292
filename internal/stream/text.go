package stream

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"VanityGen/internal/search"
	"VanityGen/pkg/config"
	"VanityGen/pkg/i18n"
)

const ruleLine = "======================================================================"

type TextOptions struct {
	Language    string
	ShowSecrets bool   // print private keys and mnemonics in completion lines
	OutputPath  string // shown in the summary
	Terminal    bool   // redraw progress in place with \r
}

// Text renders the event stream as human readable lines.
type Text struct {
	relay *Relay
	msg   i18n.Messages
	opt   TextOptions

	green  *color.Color
	yellow *color.Color
	bold   *color.Color

	combinations float64
	inline       bool // a progress line without trailing newline is on screen
}

func NewText(w io.Writer, opt TextOptions) *Text {
	t := &Text{
		relay:  NewRelay(w, DefaultBuffer),
		msg:    i18n.Get(opt.Language),
		opt:    opt,
		green:  color.New(color.FgGreen, color.Bold),
		yellow: color.New(color.FgYellow),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{t.green, t.yellow, t.bold} {
		if opt.Terminal {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *Text) Started(spec config.SearchSpec, combinations float64) {
	t.combinations = combinations
	m := t.msg

	var b strings.Builder
	fmt.Fprintln(&b, ruleLine)
	fmt.Fprintln(&b, t.bold.Sprint(m.Title))
	fmt.Fprintln(&b, ruleLine)
	fmt.Fprintf(&b, m.Prefix, t.orNone(spec.Prefix))
	fmt.Fprintf(&b, m.Suffix, t.orNone(spec.Suffix))
	fmt.Fprintf(&b, m.Contains, t.orNone(spec.Contains))
	fmt.Fprintf(&b, m.CaseSensitive, t.yesNo(spec.CaseSensitive))
	fmt.Fprintf(&b, m.Target, spec.TargetCount)
	fmt.Fprintf(&b, m.Workers, spec.Workers)
	fmt.Fprintf(&b, m.Source, spec.Source)
	fmt.Fprintf(&b, m.Expected, humanExpected(combinations))
	fmt.Fprintf(&b, m.Chance, 100/combinations)
	fmt.Fprintln(&b, ruleLine)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, m.StartedAt, time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, m.Launching, spec.Workers)
	t.relay.Send(b.String(), true)
}

func (t *Text) Progress(p search.ProgressSample) {
	eta := t.msg.Imminent
	if !p.Imminent {
		eta = humanDuration(p.ETA)
	}
	line := fmt.Sprintf(t.msg.ProgressFmt,
		progressBar(p.Percent, barWidth),
		p.Percent,
		humanCount(p.RoundAttempts),
		humanRate(p.Rate),
		eta,
	)
	if t.opt.Terminal {
		t.inline = true
		t.relay.Send("\r"+line, false)
		return
	}
	t.relay.Send(line+"\n", false)
}

func (t *Text) Found(m search.Match, st search.MatchStats) {
	msg := t.msg

	var b strings.Builder
	t.breakLine(&b)
	fmt.Fprintln(&b)
	b.WriteString(t.green.Sprintf(msg.FoundAddress, m.Address))
	if t.opt.ShowSecrets {
		fmt.Fprintf(&b, msg.FoundKey, m.PrivateHex())
		if m.Mnemonic != "" {
			fmt.Fprintf(&b, msg.FoundMnemonic, m.Mnemonic, m.Path)
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, msg.FoundCount, st.Found, st.Target)
	fmt.Fprintf(&b, msg.Elapsed, humanDuration(st.Elapsed))
	fmt.Fprintf(&b, msg.Attempts, humanCount(st.RoundAttempts))

	switch luck := st.Luck(); {
	case luck < 0.5:
		b.WriteString(t.yellow.Sprintf(msg.LuckGreat, luck*100))
	case luck < 1:
		b.WriteString(msg.LuckGood)
	default:
		b.WriteString(msg.LuckKeepGoing)
	}
	fmt.Fprintln(&b)
	t.relay.Send(b.String(), true)
}

func (t *Text) Finished(s search.Summary) {
	msg := t.msg

	var b strings.Builder
	t.breakLine(&b)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, ruleLine)
	if s.Cancelled {
		b.WriteString(t.yellow.Sprint(msg.Cancelled))
	} else if s.Found >= s.Target {
		b.WriteString(t.green.Sprint(msg.Done))
	}
	fmt.Fprintln(&b, ruleLine)
	fmt.Fprintf(&b, msg.TotalTime, humanDuration(s.Elapsed))
	fmt.Fprintf(&b, msg.TotalAttempts, humanCount(s.Attempts))
	fmt.Fprintf(&b, msg.AvgRate, humanRate(s.AvgRate))
	fmt.Fprintf(&b, msg.Count, s.Found)
	if t.opt.OutputPath != "" && s.Found > 0 {
		fmt.Fprintf(&b, msg.SavedTo, t.opt.OutputPath)
	}

	if s.Found > 0 && t.combinations > 0 {
		switch overall := float64(s.Attempts) / (t.combinations * float64(s.Found)); {
		case overall < 0.5:
			b.WriteString(msg.OverallGreat)
		case overall < 1:
			b.WriteString(msg.OverallGood)
		case overall < 1.5:
			b.WriteString(msg.OverallNormal)
		default:
			b.WriteString(msg.OverallPatient)
		}
		b.WriteString(t.yellow.Sprint(msg.Reminder))
	}
	fmt.Fprintln(&b, ruleLine)
	t.relay.Send(b.String(), true)
}

// Close flushes queued lines.
func (t *Text) Close() error { return t.relay.Close() }

func (t *Text) breakLine(b *strings.Builder) {
	if t.inline {
		b.WriteString("\n")
		t.inline = false
	}
}

func (t *Text) orNone(v string) string {
	if v == "" {
		return t.msg.None
	}
	return v
}

func (t *Text) yesNo(v bool) string {
	if v {
		return t.msg.Yes
	}
	return t.msg.No
}
