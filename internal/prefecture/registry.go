package prefecture

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

// Registry is the immutable bijection between canonical prefecture ids and their names.
// It is safe for concurrent reads.
type Registry struct {
	entries     []models.PrefectureEntry
	byID        map[models.PrefectureID]models.PrefectureEntry
	byRomanized map[string]models.PrefectureID
	byKanji     map[string]models.PrefectureID
	byStem      map[string]models.PrefectureID
	aliases     map[string]models.PrefectureID
}

// NewRegistry validates entries and aliases and builds the lookup indexes.
// It fails if the table is incomplete or if any id, romanized name, kanji name,
// kanji stem or alias is shared by two prefectures.
func NewRegistry(entries []models.PrefectureEntry, aliases map[string]models.PrefectureID) (*Registry, error) {
	if len(entries) != Count {
		return nil, fmt.Errorf("prefecture: registry needs %d entries, got %d", Count, len(entries))
	}

	r := &Registry{
		entries:     make([]models.PrefectureEntry, 0, len(entries)),
		byID:        make(map[models.PrefectureID]models.PrefectureEntry, len(entries)),
		byRomanized: make(map[string]models.PrefectureID, len(entries)),
		byKanji:     make(map[string]models.PrefectureID, len(entries)),
		byStem:      make(map[string]models.PrefectureID, len(entries)),
		aliases:     make(map[string]models.PrefectureID, len(aliases)),
	}

	for _, e := range entries {
		if e.ID == "" || e.RomanizedName == "" || e.KanjiName == "" {
			return nil, fmt.Errorf("prefecture: incomplete entry %+v", e)
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("prefecture: duplicate id %q", e.ID)
		}
		last, _ := utf8.DecodeLastRuneInString(e.KanjiName)
		if e.Suffix.Rune() == 0 || last != e.Suffix.Rune() {
			return nil, fmt.Errorf("prefecture: %q does not end with its %s suffix", e.KanjiName, e.Suffix)
		}

		romanized := strings.ToLower(e.RomanizedName)
		if other, dup := r.byRomanized[romanized]; dup {
			return nil, fmt.Errorf("prefecture: romanized name %q shared by %q and %q", e.RomanizedName, other, e.ID)
		}
		if other, dup := r.byKanji[e.KanjiName]; dup {
			return nil, fmt.Errorf("prefecture: kanji name %q shared by %q and %q", e.KanjiName, other, e.ID)
		}
		stem := e.KanjiStem()
		if other, dup := r.byStem[stem]; dup {
			return nil, fmt.Errorf("prefecture: kanji stem %q shared by %q and %q", stem, other, e.ID)
		}

		r.entries = append(r.entries, e)
		r.byID[e.ID] = e
		r.byRomanized[romanized] = e.ID
		r.byKanji[e.KanjiName] = e.ID
		r.byStem[stem] = e.ID
	}

	for alias, id := range aliases {
		key := strings.ToLower(alias)
		if _, ok := r.byID[id]; !ok {
			return nil, fmt.Errorf("prefecture: alias %q points to unknown id %q", alias, id)
		}
		if other, clash := r.byRomanized[key]; clash {
			return nil, fmt.Errorf("prefecture: alias %q collides with romanized name of %q", alias, other)
		}
		r.aliases[key] = id
	}

	return r, nil
}

// Default builds the registry from the built-in table.
func Default() (*Registry, error) {
	return NewRegistry(Table, HistoricRomanizations)
}

// LookupByRomanized matches a romanized name case-insensitively.
func (r *Registry) LookupByRomanized(name string) (models.PrefectureID, bool) {
	id, ok := r.byRomanized[strings.ToLower(name)]
	return id, ok
}

// LookupByKanji matches a full kanji name, suffix included, exactly.
func (r *Registry) LookupByKanji(name string) (models.PrefectureID, bool) {
	id, ok := r.byKanji[name]
	return id, ok
}

// LookupByKanjiStem matches a kanji name with its suffix removed ("京都", "東京").
func (r *Registry) LookupByKanjiStem(stem string) (models.PrefectureID, bool) {
	id, ok := r.byStem[stem]
	return id, ok
}

// LookupByAlias matches a historic romanization case-insensitively.
func (r *Registry) LookupByAlias(name string) (models.PrefectureID, bool) {
	id, ok := r.aliases[strings.ToLower(name)]
	return id, ok
}

// Entry returns the full entry for id.
func (r *Registry) Entry(id models.PrefectureID) (models.PrefectureEntry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// KanjiNameOf returns the kanji name of id including its suffix ("東京都").
// It returns "" for an id not in the registry.
func (r *Registry) KanjiNameOf(id models.PrefectureID) string {
	return r.byID[id].KanjiName
}

// RomanizedNameOf returns the display romanization of id ("Tokyo").
// It returns "" for an id not in the registry.
func (r *Registry) RomanizedNameOf(id models.PrefectureID) string {
	return r.byID[id].RomanizedName
}

// Entries returns the entries in table order. The slice is a copy.
func (r *Registry) Entries() []models.PrefectureEntry {
	out := make([]models.PrefectureEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
