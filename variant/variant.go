// Package variant decides which badge a shoe card shows.
//
// A shoe with a sale price is always on sale, even if it was released
// recently. Otherwise a shoe released less than RecencyWindow before now is a
// new release. Everything else gets the default card without a badge.
package variant

import (
	"fmt"
	"time"

	"shoecard/models"
)

// RecencyWindow is how long after release a shoe counts as new.
const RecencyWindow = 30 * 24 * time.Hour

// Variant is the display classification of a shoe card.
type Variant int

const (
	Default Variant = iota
	NewRelease
	OnSale
)

// All lists every variant in priority order.
var All = []Variant{OnSale, NewRelease, Default}

func (v Variant) String() string {
	switch v {
	case OnSale:
		return "on-sale"
	case NewRelease:
		return "new-release"
	case Default:
		return "default"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Parse maps a tag such as "on-sale" back to its Variant.
func Parse(tag string) (Variant, error) {
	for _, v := range All {
		if v.String() == tag {
			return v, nil
		}
	}
	return Default, fmt.Errorf("unknown variant %q", tag)
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Badge returns the label shown over the card image and whether it is shown at all.
func (v Variant) Badge() (text string, visible bool) {
	switch v {
	case OnSale:
		return "Sale", true
	case NewRelease:
		return "Just Released!", true
	case Default:
		return "", false
	}
	return "", false
}

// Result is the outcome of classifying one shoe.
type Result struct {
	Variant      Variant `json:"variant"`
	BadgeText    string  `json:"badge_text,omitempty"`
	BadgeVisible bool    `json:"badge_visible"`
	IsOnSale     bool    `json:"is_on_sale"`
}

// IsNewShoe reports whether releaseDate falls inside the recency window ending at now.
// Release dates after now count as new.
func IsNewShoe(releaseDate, now time.Time) bool {
	return now.Sub(releaseDate) < RecencyWindow
}

// Resolve classifies a shoe. A nil salePrice means the shoe is not discounted;
// any non-nil value, zero included, puts it on sale.
func Resolve(salePrice *int, releaseDate, now time.Time) Result {
	v := Default
	switch {
	case salePrice != nil:
		v = OnSale
	case IsNewShoe(releaseDate, now):
		v = NewRelease
	}

	text, visible := v.Badge()
	return Result{
		Variant:      v,
		BadgeText:    text,
		BadgeVisible: visible,
		IsOnSale:     v == OnSale,
	}
}

// ResolveShoe is Resolve applied to a catalog record.
func ResolveShoe(s models.Shoe, now time.Time) Result {
	return Resolve(s.SalePrice, s.ReleaseDate, now)
}
