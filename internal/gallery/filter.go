// Package gallery renders the sprite catalog as a static web page and
// defines the filtering semantics shared with the page's script.
package gallery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/becked/pinacotheca/internal/manifest"
)

// Aspect classifies a sprite by its width/height ratio.
type Aspect string

const (
	AspectAny       Aspect = ""
	AspectSquare    Aspect = "square"
	AspectPortrait  Aspect = "portrait"
	AspectLandscape Aspect = "landscape"
)

// AspectOf classifies dimensions: square for ratios in [0.9, 1.1],
// portrait below, landscape above. Zero-height records are
// unclassifiable and return AspectAny.
func AspectOf(width, height int) Aspect {
	if height == 0 {
		return AspectAny
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio < 0.9:
		return AspectPortrait
	case ratio > 1.1:
		return AspectLandscape
	default:
		return AspectSquare
	}
}

// FilterState is the complete view state of the gallery. The zero value
// means "no filtering". It is reconstructed from the page address on
// load and reflected back into it on every change.
type FilterState struct {
	Query     string
	Category  string
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
	Aspect    Aspect
	OpenItem  string // sprite id shown in the lightbox
}

// Query parameter names, shared with the gallery script.
const (
	paramQuery     = "q"
	paramCategory  = "category"
	paramMinWidth  = "minw"
	paramMaxWidth  = "maxw"
	paramMinHeight = "minh"
	paramMaxHeight = "maxh"
	paramAspect    = "aspect"
	paramItem      = "item"
)

// ParseValues reconstructs a FilterState from URL query parameters.
// Malformed numbers and unknown aspect classes degrade to unset.
func ParseValues(v url.Values) FilterState {
	s := FilterState{
		Query:     v.Get(paramQuery),
		Category:  v.Get(paramCategory),
		MinWidth:  atoi(v.Get(paramMinWidth)),
		MaxWidth:  atoi(v.Get(paramMaxWidth)),
		MinHeight: atoi(v.Get(paramMinHeight)),
		MaxHeight: atoi(v.Get(paramMaxHeight)),
		OpenItem:  v.Get(paramItem),
	}
	switch Aspect(v.Get(paramAspect)) {
	case AspectSquare, AspectPortrait, AspectLandscape:
		s.Aspect = Aspect(v.Get(paramAspect))
	}
	return s
}

// Values serializes the state back into URL query parameters, omitting
// everything unset so ParseValues(s.Values()) round-trips.
func (s FilterState) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set(paramQuery, s.Query)
	}
	if s.Category != "" {
		v.Set(paramCategory, s.Category)
	}
	if s.MinWidth > 0 {
		v.Set(paramMinWidth, strconv.Itoa(s.MinWidth))
	}
	if s.MaxWidth > 0 {
		v.Set(paramMaxWidth, strconv.Itoa(s.MaxWidth))
	}
	if s.MinHeight > 0 {
		v.Set(paramMinHeight, strconv.Itoa(s.MinHeight))
	}
	if s.MaxHeight > 0 {
		v.Set(paramMaxHeight, strconv.Itoa(s.MaxHeight))
	}
	if s.Aspect != AspectAny {
		v.Set(paramAspect, string(s.Aspect))
	}
	if s.OpenItem != "" {
		v.Set(paramItem, s.OpenItem)
	}
	return v
}

// Normalize lower-cases text and collapses separator runs (underscores,
// hyphens, dots, whitespace) to single spaces, so queries match both raw
// sprite names and their humanized display forms.
func Normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.':
			return ' '
		}
		return r
	}, strings.ToLower(s))
	return strings.Join(strings.Fields(mapped), " ")
}

// Matches reports whether one sprite satisfies every active constraint.
func (s FilterState) Matches(sp manifest.Sprite) bool {
	if s.Query != "" {
		text := Normalize(sp.Name)
		for _, term := range strings.Fields(Normalize(s.Query)) {
			if !strings.Contains(text, term) {
				return false
			}
		}
	}
	if s.Category != "" && sp.Category != s.Category {
		return false
	}
	if s.MinWidth > 0 && sp.Width < s.MinWidth {
		return false
	}
	if s.MaxWidth > 0 && sp.Width > s.MaxWidth {
		return false
	}
	if s.MinHeight > 0 && sp.Height < s.MinHeight {
		return false
	}
	if s.MaxHeight > 0 && sp.Height > s.MaxHeight {
		return false
	}
	if s.Aspect != AspectAny && AspectOf(sp.Width, sp.Height) != s.Aspect {
		return false
	}
	return true
}

// Apply returns the sprites satisfying the state, preserving order.
func Apply(sprites []manifest.Sprite, s FilterState) []manifest.Sprite {
	var out []manifest.Sprite
	for _, sp := range sprites {
		if s.Matches(sp) {
			out = append(out, sp)
		}
	}
	return out
}

// CategoryCounts returns, per category, how many sprites would remain
// with every filter except the category filter applied. This is the
// number of results each category choice would yield.
func CategoryCounts(sprites []manifest.Sprite, s FilterState) map[string]int {
	s.Category = ""
	counts := make(map[string]int)
	for _, sp := range sprites {
		if s.Matches(sp) {
			counts[sp.Category]++
		}
	}
	return counts
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
