// Package card turns catalog shoes into the markup of a storefront shoe card.
package card

import (
	"embed"
	"fmt"
	"net/url"
	"time"

	"github.com/osteele/liquid"

	"shoecard/models"
	"shoecard/utils"
	"shoecard/variant"
)

//go:embed templates/*.liquid
var templates embed.FS

// View is everything the card template needs, already formatted.
type View struct {
	Slug          string          `json:"slug"`
	Href          string          `json:"href"`
	ImageSrc      string          `json:"image_src"`
	Name          string          `json:"name"`
	Variant       variant.Variant `json:"variant"`
	BadgeText     string          `json:"badge_text,omitempty"`
	BadgeVisible  bool            `json:"badge_visible"`
	IsOnSale      bool            `json:"is_on_sale"`
	PriceText     string          `json:"price_text"`
	SalePriceText string          `json:"sale_price_text,omitempty"`
	ColorText     string          `json:"color_text"`
}

// Builder turns shoes into views. The zero value formats prices in dollars.
type Builder struct {
	CurrencySymbol string
}

func (b Builder) formatPrice(cents int) string {
	if b.CurrencySymbol == "" {
		return utils.FormatPrice(cents)
	}
	return utils.FormatPriceWith(b.CurrencySymbol, cents)
}

// Build classifies s at now and formats its prices and colour count.
func (b Builder) Build(s models.Shoe, now time.Time) View {
	r := variant.ResolveShoe(s, now)

	v := View{
		Slug:         s.Slug,
		Href:         "/shoe/" + url.PathEscape(s.Slug),
		ImageSrc:     s.ImageSrc,
		Name:         s.Name,
		Variant:      r.Variant,
		BadgeText:    r.BadgeText,
		BadgeVisible: r.BadgeVisible,
		IsOnSale:     r.IsOnSale,
		PriceText:    b.formatPrice(s.Price),
		ColorText:    utils.Pluralize("Color", s.NumOfColors),
	}
	if r.IsOnSale {
		v.SalePriceText = b.formatPrice(*s.SalePrice)
	}
	return v
}

// BuildAll builds one view per shoe, all against the same now.
func (b Builder) BuildAll(shoes []models.Shoe, now time.Time) []View {
	views := make([]View, 0, len(shoes))
	for _, s := range shoes {
		views = append(views, b.Build(s, now))
	}
	return views
}

// Build is Builder.Build with dollar prices.
func Build(s models.Shoe, now time.Time) View { return Builder{}.Build(s, now) }

// BuildAll is Builder.BuildAll with dollar prices.
func BuildAll(shoes []models.Shoe, now time.Time) []View { return Builder{}.BuildAll(shoes, now) }

func (v View) bindings() liquid.Bindings {
	return liquid.Bindings{
		"href":            v.Href,
		"image_src":       v.ImageSrc,
		"name":            v.Name,
		"variant":         v.Variant.String(),
		"badge_text":      v.BadgeText,
		"badge_visible":   v.BadgeVisible,
		"is_on_sale":      v.IsOnSale,
		"price_text":      v.PriceText,
		"sale_price_text": v.SalePriceText,
		"color_text":      v.ColorText,
	}
}

// Renderer holds the parsed card templates. It is safe for concurrent use.
type Renderer struct {
	card *liquid.Template
	grid *liquid.Template
}

// NewRenderer parses the embedded card and grid templates.
func NewRenderer() (*Renderer, error) {
	engine := liquid.NewEngine()

	card, err := parse(engine, "templates/card.liquid")
	if err != nil {
		return nil, err
	}
	grid, err := parse(engine, "templates/grid.liquid")
	if err != nil {
		return nil, err
	}
	return &Renderer{card: card, grid: grid}, nil
}

func parse(engine *liquid.Engine, name string) (*liquid.Template, error) {
	src, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	tpl, perr := engine.ParseTemplate(src)
	if perr != nil {
		return nil, fmt.Errorf("parse %s: %w", name, perr)
	}
	return tpl, nil
}

// Render produces the markup of a single card.
func (r *Renderer) Render(v View) (string, error) {
	out, err := r.card.RenderString(v.bindings())
	if err != nil {
		return "", fmt.Errorf("render card %s: %w", v.Slug, err)
	}
	return out, nil
}

// RenderGrid renders every view and wraps the cards in the grid section.
func (r *Renderer) RenderGrid(views []View) (string, error) {
	cards := make([]string, 0, len(views))
	for _, v := range views {
		html, err := r.Render(v)
		if err != nil {
			return "", err
		}
		cards = append(cards, html)
	}

	out, err := r.grid.RenderString(liquid.Bindings{"cards": cards})
	if err != nil {
		return "", fmt.Errorf("render grid: %w", err)
	}
	return out, nil
}
