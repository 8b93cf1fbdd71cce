package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// Fragment holds enrichment data pulled from one schedule event card. Cards
// never create games on their own; their fields refine a base record matched
// by opponent name.
type Fragment struct {
	OpponentName string
	Marker       string
	City         string
	Venue        string
	LogoURL      string
	Broadcaster  string // raw alt text, normalized during merge
}

const cardSelector = "div.schedule-event-item-default, div.schedule-event-item, li.schedule__list-item"

// parseCards extracts one fragment per event card. Missing sub-elements
// leave the corresponding field empty; cards are never skipped outright.
func (e *Extractor) parseCards(doc *goquery.Document) []Fragment {
	var fragments []Fragment
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		fragments = append(fragments, e.parseCard(card))
	})
	return fragments
}

func (e *Extractor) parseCard(card *goquery.Selection) Fragment {
	f := Fragment{
		OpponentName: cleanText(card.Find(".schedule-event-item-default__opponent-name, .opponent, .team").First().Text()),
		Marker:       parseDivider(card.Find(".schedule-event-item-default__divider, .schedule-event-item__divider").First().Text()),
	}

	f.City, f.Venue = splitLocation(card.Find(".schedule-event-item-default__location, .location").First().Text())
	f.LogoURL = e.opponentLogo(card, f.OpponentName)
	f.Broadcaster = e.broadcasterAlt(card)
	return f
}

// parseDivider normalizes the small vs/at divider between the two team
// logos. Anything unrecognized defaults to "vs.".
func parseDivider(text string) string {
	switch strings.ToLower(strings.Trim(cleanText(text), ".")) {
	case "at", "@":
		return schedule.MarkerAt
	default:
		return schedule.MarkerVs
	}
}

// opponentLogo finds the best-guess logo URL for the card's opponent. The
// images wrapper holds the home logo first and the opponent second, so the
// last image wins. When that fails, any image whose alt text loosely matches
// the opponent name is accepted, skipping the home program's own marks.
func (e *Extractor) opponentLogo(card *goquery.Selection, opponentName string) string {
	imgs := card.Find(".schedule-event-item-default__images img")
	if imgs.Length() == 0 {
		imgs = card.Find("img")
	}
	if imgs.Length() > 0 {
		if url := imageURL(imgs.Last()); url != "" {
			return url
		}
	}

	if opponentName == "" {
		return ""
	}
	oppSlug := schedule.Slugify(opponentName)

	var url string
	card.Find("img[alt]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt := cleanText(img.AttrOr("alt", ""))
		if alt == "" || strings.Contains(strings.ToLower(alt), e.HomeTeam) {
			return true
		}
		altSlug := schedule.Slugify(alt)
		if altSlug != oppSlug && !strings.Contains(altSlug, oppSlug) && !strings.Contains(oppSlug, altSlug) {
			return true
		}
		if u := imageURL(img); u != "" {
			url = u
			return false
		}
		return true
	})
	return url
}

// imageURL resolves an image's real source, preferring lazy-load attributes
// over the plain src and skipping inline data: placeholders.
func imageURL(img *goquery.Selection) string {
	if u := img.AttrOr("data-src", ""); !isPlaceholder(u) {
		return u
	}
	if u := firstFromSrcset(img.AttrOr("data-srcset", "")); !isPlaceholder(u) {
		return u
	}
	if u := firstFromSrcset(img.AttrOr("srcset", "")); !isPlaceholder(u) {
		return u
	}
	if u := img.AttrOr("src", ""); !isPlaceholder(u) {
		return u
	}
	return ""
}

// firstFromSrcset takes the first URL token of a "url 1x, url2 2x" srcset.
func firstFromSrcset(s string) string {
	if s == "" {
		return ""
	}
	first, _, _ := strings.Cut(s, ",")
	url, _, _ := strings.Cut(strings.TrimSpace(first), " ")
	return url
}

func isPlaceholder(u string) bool {
	return u == "" || strings.HasPrefix(u, "data:image")
}

// broadcasterAlt pulls the TV network logo's alt text from the card's bottom
// link list. The search stays scoped to the card (or its immediate wrapper)
// so a neighboring card's broadcaster can't leak in.
func (e *Extractor) broadcasterAlt(card *goquery.Selection) string {
	const sel = ".schedule-event-bottom__link-list img[alt], .schedule-event-item-bottom__link-list img[alt]"
	if alt := card.Find(sel).First().AttrOr("alt", ""); alt != "" {
		return cleanText(alt)
	}
	// Some revisions render the link list as a sibling of the card inside a
	// shared wrapper.
	if alt := card.Parent().Find(sel).First().AttrOr("alt", ""); alt != "" {
		return cleanText(alt)
	}
	return ""
}
