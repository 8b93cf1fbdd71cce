package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestFragmentsFromFixture(t *testing.T) {
	html := loadFixture(t, "schedule_table.html")

	fragments, err := testExtractor().Fragments(html)
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, expected 2", len(fragments))
	}

	cincy := fragments[0]
	if cincy.OpponentName != "Cincinnati Bearcats" {
		t.Errorf("opponent = %q", cincy.OpponentName)
	}
	if cincy.Marker != "vs." {
		t.Errorf("marker = %q", cincy.Marker)
	}
	if cincy.LogoURL != "https://cdn.example.com/logos/cincinnati.svg" {
		t.Errorf("logo = %q, expected data-src to beat the data: placeholder src", cincy.LogoURL)
	}
	if cincy.Broadcaster != "FS1" {
		t.Errorf("broadcaster = %q, expected the sibling link list alt text", cincy.Broadcaster)
	}
	if cincy.City != "Lincoln, Neb." || cincy.Venue != "Memorial Stadium" {
		t.Errorf("location = %q/%q", cincy.City, cincy.Venue)
	}

	csu := fragments[1]
	if csu.Marker != "at" {
		t.Errorf("marker = %q", csu.Marker)
	}
	if csu.LogoURL != "https://cdn.example.com/logos/colorado-state.png" {
		t.Errorf("logo = %q, expected the first srcset token", csu.LogoURL)
	}
	if csu.Broadcaster != "CBS" {
		t.Errorf("broadcaster = %q", csu.Broadcaster)
	}
}

func TestParseDivider(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"vs", "vs."},
		{"VS.", "vs."},
		{"at", "at"},
		{"AT", "at"},
		{"@", "at"},
		{"", "vs."},
		{"home", "vs."},
	}
	for _, tt := range tests {
		if got := parseDivider(tt.input); got != tt.expected {
			t.Errorf("parseDivider(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func selectImg(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find("img").First()
}

func TestImageURLPreference(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "data-src beats everything",
			html:     `<img src="https://x/src.png" data-src="https://x/lazy.png" srcset="https://x/set.png 1x">`,
			expected: "https://x/lazy.png",
		},
		{
			name:     "data-srcset beats srcset and src",
			html:     `<img src="https://x/src.png" data-srcset="https://x/lazyset.png 1x, https://x/lazyset@2x.png 2x" srcset="https://x/set.png 1x">`,
			expected: "https://x/lazyset.png",
		},
		{
			name:     "srcset beats src",
			html:     `<img src="https://x/src.png" srcset="https://x/set.png 1x">`,
			expected: "https://x/set.png",
		},
		{
			name:     "plain src as last resort",
			html:     `<img src="https://x/src.png">`,
			expected: "https://x/src.png",
		},
		{
			name:     "data placeholders are skipped",
			html:     `<img src="data:image/gif;base64,R0lGOD" data-src="data:image/gif;base64,R0lGOD" srcset="https://x/set.png 1x">`,
			expected: "https://x/set.png",
		},
		{
			name:     "nothing usable",
			html:     `<img src="data:image/gif;base64,R0lGOD">`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageURL(selectImg(t, tt.html)); got != tt.expected {
				t.Errorf("imageURL = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestOpponentLogoAltFallback(t *testing.T) {
	// No dedicated images wrapper and the last img is unusable, so the alt
	// match has to find the opponent and skip the home logo.
	html := `<div class="schedule-event-item">
  <img alt="Nebraska Cornhuskers" src="https://x/nebraska.png">
  <img alt="Cincinnati Bearcats" src="https://x/cincinnati.png">
  <img alt="decoration" src="data:image/gif;base64,R0lGOD">
</div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	card := doc.Find("div.schedule-event-item").First()

	got := testExtractor().opponentLogo(card, "Cincinnati")
	if got != "https://x/cincinnati.png" {
		t.Errorf("opponentLogo = %q, expected the alt-matched image", got)
	}
}

func TestFirstFromSrcset(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://x/a.png 1x, https://x/a@2x.png 2x", "https://x/a.png"},
		{"https://x/a.png", "https://x/a.png"},
		{"  https://x/a.png 480w", "https://x/a.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := firstFromSrcset(tt.input); got != tt.expected {
			t.Errorf("firstFromSrcset(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
