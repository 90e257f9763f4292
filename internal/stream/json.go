package stream

import (
	"encoding/json"
	"io"
	"time"

	"VanityGen/internal/search"
	"VanityGen/pkg/config"
	"VanityGen/pkg/logx"
)

// JSON renders the event stream as one JSON object per line for dashboards.
type JSON struct {
	relay       *Relay
	showSecrets bool
}

func NewJSON(w io.Writer, showSecrets bool) *JSON {
	return &JSON{relay: NewRelay(w, DefaultBuffer), showSecrets: showSecrets}
}

type startedEvent struct {
	Event         string  `json:"event"`
	Prefix        string  `json:"prefix"`
	Suffix        string  `json:"suffix"`
	Contains      string  `json:"contains"`
	CaseSensitive bool    `json:"case_sensitive"`
	TargetCount   int     `json:"target_count"`
	Workers       int     `json:"workers"`
	Source        string  `json:"source"`
	Combinations  float64 `json:"combinations"`
	StartedAt     string  `json:"started_at"`
}

type progressEvent struct {
	Event         string  `json:"event"`
	ElapsedMS     int64   `json:"elapsed_ms"`
	RoundAttempts uint64  `json:"round_attempts"`
	TotalAttempts uint64  `json:"total_attempts"`
	Rate          float64 `json:"rate"`
	Percent       float64 `json:"percent"`
	ETASeconds    float64 `json:"eta_seconds,omitempty"`
	Imminent      bool    `json:"imminent"`
	Found         int     `json:"found"`
	Target        int     `json:"target"`
}

type matchEvent struct {
	Event         string  `json:"event"`
	Index         int     `json:"index"`
	Address       string  `json:"address"`
	PrivateKey    string  `json:"private_key,omitempty"`
	Mnemonic      string  `json:"mnemonic,omitempty"`
	Path          string  `json:"path,omitempty"`
	Worker        int     `json:"worker"`
	FoundAt       string  `json:"found_at"`
	ElapsedMS     int64   `json:"elapsed_ms"`
	RoundAttempts uint64  `json:"round_attempts"`
	Luck          float64 `json:"luck"`
	Found         int     `json:"found"`
	Target        int     `json:"target"`
}

type summaryEvent struct {
	Event     string  `json:"event"`
	ElapsedMS int64   `json:"elapsed_ms"`
	Attempts  uint64  `json:"attempts"`
	AvgRate   float64 `json:"avg_rate"`
	Found     int     `json:"found"`
	Target    int     `json:"target"`
	Cancelled bool    `json:"cancelled"`
}

func (j *JSON) Started(spec config.SearchSpec, combinations float64) {
	j.send(startedEvent{
		Event:         "started",
		Prefix:        spec.Prefix,
		Suffix:        spec.Suffix,
		Contains:      spec.Contains,
		CaseSensitive: spec.CaseSensitive,
		TargetCount:   spec.TargetCount,
		Workers:       spec.Workers,
		Source:        string(spec.Source),
		Combinations:  combinations,
		StartedAt:     time.Now().Format(time.RFC3339),
	}, true)
}

func (j *JSON) Progress(p search.ProgressSample) {
	ev := progressEvent{
		Event:         "progress",
		ElapsedMS:     p.Elapsed.Milliseconds(),
		RoundAttempts: p.RoundAttempts,
		TotalAttempts: p.TotalAttempts,
		Rate:          p.Rate,
		Percent:       p.Percent,
		Imminent:      p.Imminent,
		Found:         p.Found,
		Target:        p.Target,
	}
	if !p.Imminent {
		ev.ETASeconds = p.ETA.Seconds()
	}
	j.send(ev, false)
}

func (j *JSON) Found(m search.Match, st search.MatchStats) {
	ev := matchEvent{
		Event:         "match",
		Index:         m.Index,
		Address:       m.Address,
		Worker:        m.Worker,
		FoundAt:       m.FoundAt.Format(time.RFC3339Nano),
		ElapsedMS:     st.Elapsed.Milliseconds(),
		RoundAttempts: st.RoundAttempts,
		Luck:          st.Luck(),
		Found:         st.Found,
		Target:        st.Target,
	}
	if j.showSecrets {
		ev.PrivateKey = m.PrivateHex()
		ev.Mnemonic = m.Mnemonic
		ev.Path = m.Path
	}
	j.send(ev, true)
}

func (j *JSON) Finished(s search.Summary) {
	j.send(summaryEvent{
		Event:     "summary",
		ElapsedMS: s.Elapsed.Milliseconds(),
		Attempts:  s.Attempts,
		AvgRate:   s.AvgRate,
		Found:     s.Found,
		Target:    s.Target,
		Cancelled: s.Cancelled,
	}, true)
}

func (j *JSON) Close() error { return j.relay.Close() }

func (j *JSON) send(v any, critical bool) {
	b, err := json.Marshal(v)
	if err != nil {
		logx.S().Errorw("marshal event failed", "err", err)
		return
	}
	j.relay.Send(string(b)+"\n", critical)
}
