// Package normalizer turns free text into a ResolvedIntent.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

// Registry is the subset of the prefecture registry the normalizer reads.
type Registry interface {
	LookupByRomanized(name string) (models.PrefectureID, bool)
	LookupByKanji(name string) (models.PrefectureID, bool)
	LookupByKanjiStem(stem string) (models.PrefectureID, bool)
	LookupByAlias(name string) (models.PrefectureID, bool)
}

var helpTokens = map[string]struct{}{
	"help": {},
	"ヘルプ":  {},
}

// 都 is deliberately absent: Tokyo's suffix belongs to its canonical name.
// The stripped suffix is not checked against the entry's own, so 大阪県 is Osaka.
var strippableSuffixes = map[rune]struct{}{
	'道': {},
	'府': {},
	'県': {},
}

var romanizedQualifier = regexp.MustCompile(`[\s\-‐]+(to|do|fu|ken|prefecture|metropolis)$`)

var romanizedSeparators = strings.NewReplacer("-", "", "‐", "", " ", "", "　", "")

// Normalizer resolves user text against the prefecture registry.
// It holds no mutable state; one instance serves all requests.
type Normalizer struct {
	registry Registry
}

func New(registry Registry) *Normalizer {
	return &Normalizer{registry: registry}
}

// Normalize maps raw text to Help, PrefectureQuery or Unrecognized. It never fails.
func (n *Normalizer) Normalize(raw string) models.ResolvedIntent {
	text := strings.TrimSpace(raw)
	if text == "" {
		return models.Unrecognized()
	}

	if _, ok := helpTokens[strings.ToLower(text)]; ok {
		return models.Help()
	}

	if id, ok := n.resolveKanji(text); ok {
		return models.PrefectureQuery(id)
	}

	if id, ok := n.resolveRomanized(text); ok {
		return models.PrefectureQuery(id)
	}

	return models.Unrecognized()
}

// ResolveRegionName resolves a geocoder region token. The romanized path runs
// first; kanji tokens fall through to the kanji path. It never returns Help.
func (n *Normalizer) ResolveRegionName(token string) models.ResolvedIntent {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Unrecognized()
	}
	if id, ok := n.resolveRomanized(token); ok {
		return models.PrefectureQuery(id)
	}
	if id, ok := n.resolveKanji(token); ok {
		return models.PrefectureQuery(id)
	}
	return models.Unrecognized()
}

// ResolveKanji resolves a kanji prefecture name as stored in address data ("東京都", "京都府", "大阪").
func (n *Normalizer) ResolveKanji(name string) models.ResolvedIntent {
	if id, ok := n.resolveKanji(strings.TrimSpace(name)); ok {
		return models.PrefectureQuery(id)
	}
	return models.Unrecognized()
}

func (n *Normalizer) resolveKanji(text string) (models.PrefectureID, bool) {
	if id, ok := n.registry.LookupByKanji(text); ok {
		return id, true
	}

	last, size := utf8.DecodeLastRuneInString(text)
	if _, ok := strippableSuffixes[last]; ok {
		stem := text[:len(text)-size]
		if stem == "" {
			return "", false
		}
		if id, ok := n.registry.LookupByKanjiStem(stem); ok {
			return id, true
		}
	}

	return n.registry.LookupByKanjiStem(text)
}

func (n *Normalizer) resolveRomanized(text string) (models.PrefectureID, bool) {
	folded := Fold(text)
	if !isLatin(folded) {
		return "", false
	}

	candidates := []string{folded, romanizedSeparators.Replace(folded)}
	if stripped := romanizedQualifier.ReplaceAllString(folded, ""); stripped != folded {
		candidates = append(candidates, stripped, romanizedSeparators.Replace(stripped))
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if id, ok := n.registry.LookupByRomanized(c); ok {
			return id, true
		}
	}
	for _, c := range candidates {
		if id, ok := n.registry.LookupByAlias(c); ok {
			return id, true
		}
	}
	return "", false
}

func isLatin(s string) bool {
	for _, r := range s {
		if r > unicode.MaxLatin1 && !unicode.IsSpace(r) && r != '‐' {
			return false
		}
	}
	return true
}
