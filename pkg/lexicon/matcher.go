package lexicon

import (
	"strings"

	"VoicePlay/internal/entity"

	"golang.org/x/text/unicode/norm"
)

const defaultLocale = "en"

type IMatcher interface {
	Match(utterance string, locale string) entity.Command
	Describe(command entity.Command, locale string) string
	Locales() []string
}

// Matcher maps free-form utterance text to a canonical command using
// ordered per-locale trigger tables. It is immutable after construction
// and safe for concurrent use.
type Matcher struct {
	tables       map[string][]Trigger
	descriptions map[string]map[entity.Command]string
}

func NewMatcher() *Matcher {
	return NewMatcherWithTables(DefaultTables(), DefaultDescriptions())
}

// NewMatcherWithTables builds a matcher over caller-supplied tables,
// which keeps tests free of the default vocabulary. Phrases are
// normalized up front so matching stays a plain substring check.
func NewMatcherWithTables(tables map[string][]Trigger, descriptions map[string]map[entity.Command]string) *Matcher {
	normalized := make(map[string][]Trigger, len(tables))
	for locale, triggers := range tables {
		out := make([]Trigger, 0, len(triggers))
		for _, t := range triggers {
			if t.Phrase == "" {
				continue
			}
			out = append(out, Trigger{Phrase: normalize(t.Phrase), Command: t.Command})
		}
		normalized[locale] = out
	}

	return &Matcher{
		tables:       normalized,
		descriptions: descriptions,
	}
}

// Match resolves the locale, normalizes the utterance and returns the
// command of the first trigger phrase contained in it. Earliest table
// entry wins when several phrases match; no trigger means CommandUnknown.
func (m *Matcher) Match(utterance string, locale string) entity.Command {
	text := normalize(utterance)
	if text == "" {
		return entity.CommandUnknown
	}

	for _, trigger := range m.resolveTable(locale) {
		if strings.Contains(text, trigger.Phrase) {
			return trigger.Command
		}
	}

	return entity.CommandUnknown
}

// Describe returns the display label for a command. Missing locales fall
// back the same way as Match; a command without an entry gets the
// resolved table's unknown label, so the result is never empty.
func (m *Matcher) Describe(command entity.Command, locale string) string {
	var table map[entity.Command]string
	for _, candidate := range localeCandidates(locale) {
		if t, ok := m.descriptions[candidate]; ok {
			table = t
			break
		}
	}
	if table == nil {
		return ""
	}

	if label, ok := table[command]; ok {
		return label
	}
	return table[entity.CommandUnknown]
}

func (m *Matcher) Locales() []string {
	locales := make([]string, 0, len(m.tables))
	for locale := range m.tables {
		locales = append(locales, locale)
	}
	return locales
}

func (m *Matcher) resolveTable(locale string) []Trigger {
	for _, candidate := range localeCandidates(locale) {
		if table, ok := m.tables[candidate]; ok {
			return table
		}
	}
	return nil
}

// localeCandidates is the resolution chain: exact tag, primary subtag,
// then the fixed default. Kept as data so adding a tier is not a code
// change elsewhere.
func localeCandidates(locale string) []string {
	candidates := []string{locale}

	if i := strings.IndexAny(locale, "-_"); i > 0 {
		candidates = append(candidates, locale[:i])
	}

	return append(candidates, defaultLocale)
}

// normalize applies NFKC so full-width and composed variants compare
// equal, then lowercases and trims. Applied to phrases and utterances
// alike, so substring semantics are unaffected.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
