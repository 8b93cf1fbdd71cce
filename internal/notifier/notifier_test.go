package notifier

import (
	"strings"
	"testing"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

func TestFormatAddedTweet(t *testing.T) {
	g := &schedule.Game{
		VA:            schedule.MarkerVs,
		OpponentName:  "Cincinnati Bearcats",
		DateStr:       "Sat Aug 30",
		TimeLocal:     "6:00 PM",
		LocationCity:  "Lincoln, Neb.",
		LocationVenue: "Memorial Stadium",
	}

	tweet := formatAddedTweet(g)

	for _, want := range []string{
		"New game on the Husker schedule",
		"Nebraska vs. Cincinnati Bearcats",
		"Sat Aug 30",
		"6:00 PM",
		"Memorial Stadium, Lincoln, Neb.",
		"#GBR #Huskers",
	} {
		if !strings.Contains(tweet, want) {
			t.Errorf("tweet missing %q:\n%s", want, tweet)
		}
	}
	if len(tweet) > 280 {
		t.Errorf("tweet too long: %d characters", len(tweet))
	}
}

func TestFormatChangeTweet(t *testing.T) {
	c := schedule.Change{
		OpponentName: "Cincinnati Bearcats",
		OpponentSlug: "cincinnati-bearcats",
		Field:        "time",
		OldValue:     "TBA",
		NewValue:     "6:00 PM",
	}

	tweet := formatChangeTweet(c)

	for _, want := range []string{
		"Schedule update: Cincinnati Bearcats",
		"Kickoff time changed: TBA → 6:00 PM",
		"#GBR #Huskers",
	} {
		if !strings.Contains(tweet, want) {
			t.Errorf("tweet missing %q:\n%s", want, tweet)
		}
	}
}

func TestFormatChangeTweetEmptyValues(t *testing.T) {
	c := schedule.Change{
		OpponentName: "Iowa",
		Field:        "tv",
		OldValue:     "",
		NewValue:     "cbs",
	}

	tweet := formatChangeTweet(c)
	if !strings.Contains(tweet, "TV network changed: TBA → cbs") {
		t.Errorf("empty old value should read as TBA:\n%s", tweet)
	}
}

func TestFormatTweetsOrder(t *testing.T) {
	diff := &schedule.DiffResult{
		Added: []*schedule.Game{
			{VA: schedule.MarkerVs, OpponentName: "Akron"},
		},
		Changes: []schedule.Change{
			{OpponentName: "Iowa", Field: "time", OldValue: "TBA", NewValue: "11:00 AM"},
		},
	}

	tweets := formatTweets(diff)
	if len(tweets) != 2 {
		t.Fatalf("got %d tweets, expected 2", len(tweets))
	}
	if !strings.Contains(tweets[0], "New game") {
		t.Error("added games should come before changes")
	}
	if !strings.Contains(tweets[1], "Schedule update") {
		t.Error("second tweet should be the change")
	}
}

func TestTruncateTweet(t *testing.T) {
	short := "short tweet"
	if got := truncateTweet(short); got != short {
		t.Errorf("short tweet should pass through unchanged, got %q", got)
	}

	long := strings.Repeat("x", 300)
	got := truncateTweet(long)
	if len(got) != 280 {
		t.Errorf("truncated tweet length = %d, expected 280", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated tweet should end with an ellipsis")
	}
}

func TestDryRunNotifier(t *testing.T) {
	diff := &schedule.DiffResult{
		Added: []*schedule.Game{{VA: schedule.MarkerVs, OpponentName: "Akron"}},
	}
	if err := NewDryRunNotifier().Notify(diff); err != nil {
		t.Errorf("dry run should never fail: %v", err)
	}
}

func TestNewTwitterNotifierMissingCredentials(t *testing.T) {
	for _, key := range []string{"TWITTER_API_KEY", "TWITTER_API_SECRET", "TWITTER_ACCESS_TOKEN", "TWITTER_ACCESS_SECRET"} {
		t.Setenv(key, "")
	}
	if _, err := NewTwitterNotifier(); err == nil {
		t.Error("expected an error without credentials")
	}
}
