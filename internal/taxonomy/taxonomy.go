package taxonomy

import (
	"fmt"
	"strings"
)

type SentimentGroup string

const (
	SentimentPositive SentimentGroup = "Positive"
	SentimentNeutral  SentimentGroup = "Neutral"
	SentimentNegative SentimentGroup = "Negative"
)

// SentimentGroups lists the sentiment groups in declaration order.
var SentimentGroups = []SentimentGroup{SentimentPositive, SentimentNeutral, SentimentNegative}

type ProfileGroup string

const (
	ProfilePositive ProfileGroup = "Positive"
	ProfileNeutral  ProfileGroup = "Neutral"
	ProfileAnxiety  ProfileGroup = "Anxiety"
	ProfileSadness  ProfileGroup = "Sadness"
	ProfileAnger    ProfileGroup = "Anger"
	ProfileShame    ProfileGroup = "Shame"
)

// ProfileGroups lists the six radar groups in declaration order.
var ProfileGroups = []ProfileGroup{ProfilePositive, ProfileNeutral, ProfileAnxiety, ProfileSadness, ProfileAnger, ProfileShame}

// Scheme selects which grouping an aggregation uses.
type Scheme int

const (
	SchemeSentiment Scheme = iota
	SchemeProfile
)

func (s Scheme) String() string {
	switch s {
	case SchemeSentiment:
		return "sentiment"
	case SchemeProfile:
		return "profile"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Groups returns the group names of the scheme in declaration order.
func (s Scheme) Groups() []string {
	var out []string
	switch s {
	case SchemeSentiment:
		for _, g := range SentimentGroups {
			out = append(out, string(g))
		}
	case SchemeProfile:
		for _, g := range ProfileGroups {
			out = append(out, string(g))
		}
	}
	return out
}

const (
	MinValence     = 0
	MaxValence     = 10
	DefaultValence = 5
)

// Entry tags one mood label in both grouping schemes.
type Entry struct {
	Mood      string
	Sentiment SentimentGroup
	Profile   ProfileGroup
	Valence   int
}

// Taxonomy is an immutable mood lookup table. Lookups never fail: labels
// missing from the table resolve to Neutral with DefaultValence.
type Taxonomy struct {
	entries map[string]Entry
	order   []string
}

// New validates entries and builds a Taxonomy.
func New(entries []Entry) (*Taxonomy, error) {
	t := &Taxonomy{entries: make(map[string]Entry, len(entries))}
	for i, e := range entries {
		if e.Mood == "" {
			return nil, fmt.Errorf("entry %d: empty mood", i)
		}
		if e.Mood != strings.ToLower(strings.TrimSpace(e.Mood)) {
			return nil, fmt.Errorf("entry %d: mood %q must be trimmed lowercase", i, e.Mood)
		}
		if _, dup := t.entries[e.Mood]; dup {
			return nil, fmt.Errorf("entry %d: duplicate mood %q", i, e.Mood)
		}
		if !validSentiment(e.Sentiment) {
			return nil, fmt.Errorf("mood %q: unknown sentiment group %q", e.Mood, e.Sentiment)
		}
		if !validProfile(e.Profile) {
			return nil, fmt.Errorf("mood %q: unknown profile group %q", e.Mood, e.Profile)
		}
		if e.Valence < MinValence || e.Valence > MaxValence {
			return nil, fmt.Errorf("mood %q: valence %d outside %d..%d", e.Mood, e.Valence, MinValence, MaxValence)
		}
		// Positive and Neutral are shared by both schemes and must agree.
		if (e.Sentiment == SentimentPositive) != (e.Profile == ProfilePositive) ||
			(e.Sentiment == SentimentNeutral) != (e.Profile == ProfileNeutral) {
			return nil, fmt.Errorf("mood %q: sentiment %s disagrees with profile %s", e.Mood, e.Sentiment, e.Profile)
		}
		t.entries[e.Mood] = e
		t.order = append(t.order, e.Mood)
	}
	return t, nil
}

// MustNew is New that panics on a malformed table.
func MustNew(entries []Entry) *Taxonomy {
	t, err := New(entries)
	if err != nil {
		panic("taxonomy: " + err.Error())
	}
	return t
}

func validSentiment(g SentimentGroup) bool {
	for _, s := range SentimentGroups {
		if s == g {
			return true
		}
	}
	return false
}

func validProfile(g ProfileGroup) bool {
	for _, p := range ProfileGroups {
		if p == g {
			return true
		}
	}
	return false
}

// Normalize trims and lowercases a mood label.
func Normalize(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}

func (t *Taxonomy) lookup(mood string) (Entry, bool) {
	e, ok := t.entries[Normalize(mood)]
	return e, ok
}

func (t *Taxonomy) Known(mood string) bool {
	_, ok := t.lookup(mood)
	return ok
}

func (t *Taxonomy) Sentiment(mood string) SentimentGroup {
	if e, ok := t.lookup(mood); ok {
		return e.Sentiment
	}
	return SentimentNeutral
}

func (t *Taxonomy) Profile(mood string) ProfileGroup {
	if e, ok := t.lookup(mood); ok {
		return e.Profile
	}
	return ProfileNeutral
}

func (t *Taxonomy) Valence(mood string) int {
	if e, ok := t.lookup(mood); ok {
		return e.Valence
	}
	return DefaultValence
}

// Group resolves the mood's group name under the given scheme.
func (t *Taxonomy) Group(s Scheme, mood string) string {
	if s == SchemeProfile {
		return string(t.Profile(mood))
	}
	return string(t.Sentiment(mood))
}

// Moods returns the known labels in table order.
func (t *Taxonomy) Moods() []string {
	return append([]string(nil), t.order...)
}
