// Package voice tracks the synthesis voices offered by the speech
// engine and the per-language selection.
package voice

import "strings"

// Descriptor is a snapshot of one synthesis voice.
type Descriptor struct {
	DisplayName string
	LanguageTag string
	ID          string
}

// preferredChineseMarker names the one Chinese voice that is
// empirically best for Taiwanese Mandarin pronunciation. Platforms
// ship several zh voices of uneven quality, so a zh-TW voice carrying
// this marker wins over any other.
const preferredChineseMarker = "meijia"

// Catalog holds the current voice list and the selected voice per
// language. The list may be replaced wholesale when the engine reports
// a change; an explicit user selection survives refreshes.
type Catalog struct {
	voices []Descriptor

	english       string
	chinese       string
	englishChosen bool
	chineseChosen bool
}

// NewCatalog creates a catalog over the given voices and applies the
// default selection for both languages.
func NewCatalog(voices []Descriptor) *Catalog {
	c := &Catalog{}
	c.Refresh(voices)
	return c
}

// Voices returns the current voice list.
func (c *Catalog) Voices() []Descriptor {
	return c.voices
}

// Refresh replaces the voice list. Defaults are re-applied only for
// languages the user has not selected explicitly.
func (c *Catalog) Refresh(voices []Descriptor) {
	c.voices = voices
	if !c.englishChosen {
		c.english = defaultEnglish(voices)
	}
	if !c.chineseChosen {
		c.chinese = defaultChinese(voices)
	}
}

// English returns the selected English voice ID, or "" when no voice
// is available.
func (c *Catalog) English() string { return c.english }

// Chinese returns the selected Chinese voice ID, or "" when no voice
// is available.
func (c *Catalog) Chinese() string { return c.chinese }

// SelectEnglish records an explicit English voice choice.
func (c *Catalog) SelectEnglish(id string) {
	c.english = id
	c.englishChosen = true
}

// SelectChinese records an explicit Chinese voice choice.
func (c *Catalog) SelectChinese(id string) {
	c.chinese = id
	c.chineseChosen = true
}

// CycleEnglish selects the voice after the current English one,
// wrapping around the list. Counts as an explicit choice.
func (c *Catalog) CycleEnglish() {
	c.SelectEnglish(c.next(c.english))
}

// CycleChinese selects the voice after the current Chinese one,
// wrapping around the list. Counts as an explicit choice.
func (c *Catalog) CycleChinese() {
	c.SelectChinese(c.next(c.chinese))
}

// Find returns the descriptor for a voice ID.
func (c *Catalog) Find(id string) (Descriptor, bool) {
	for _, v := range c.voices {
		if v.ID == id {
			return v, true
		}
	}
	return Descriptor{}, false
}

func (c *Catalog) next(id string) string {
	if len(c.voices) == 0 {
		return ""
	}
	for i, v := range c.voices {
		if v.ID == id {
			return c.voices[(i+1)%len(c.voices)].ID
		}
	}
	return c.voices[0].ID
}

func defaultEnglish(voices []Descriptor) string {
	for _, v := range voices {
		if hasTagPrefix(v, "en-") {
			return v.ID
		}
	}
	if len(voices) > 0 {
		return voices[0].ID
	}
	return ""
}

func defaultChinese(voices []Descriptor) string {
	for _, v := range voices {
		if hasTagPrefix(v, "zh-tw") && strings.Contains(strings.ToLower(v.DisplayName), preferredChineseMarker) {
			return v.ID
		}
	}
	for _, v := range voices {
		if hasTagPrefix(v, "zh-") {
			return v.ID
		}
	}
	if len(voices) > 0 {
		return voices[0].ID
	}
	return ""
}

func hasTagPrefix(v Descriptor, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(v.LanguageTag), prefix)
}
