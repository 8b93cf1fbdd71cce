package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// TwitterNotifier posts schedule changes to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per added game and per detected change
func (n *TwitterNotifier) Notify(diff *schedule.DiffResult) error {
	tweets := formatTweets(diff)

	for i, tweet := range tweets {
		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet %d of %d: %w", i+1, len(tweets), err)
		}

		// Rate limiting: wait between tweets
		if i < len(tweets)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweets renders a diff as individual tweets
func formatTweets(diff *schedule.DiffResult) []string {
	tweets := make([]string, 0, len(diff.Added)+len(diff.Changes))
	for _, g := range diff.Added {
		tweets = append(tweets, formatAddedTweet(g))
	}
	for _, c := range diff.Changes {
		tweets = append(tweets, formatChangeTweet(c))
	}
	return tweets
}

func formatAddedTweet(g *schedule.Game) string {
	tweet := "🏈 New game on the Husker schedule!\n\n"
	tweet += fmt.Sprintf("Nebraska %s %s\n", g.VA, g.OpponentName)

	if g.DateStr != "" {
		tweet += fmt.Sprintf("📅 %s", g.DateStr)
		if g.TimeLocal != "" {
			tweet += fmt.Sprintf(" • %s", g.TimeLocal)
		}
		tweet += "\n"
	}

	if g.LocationVenue != "" {
		tweet += fmt.Sprintf("🏟️ %s", g.LocationVenue)
		if g.LocationCity != "" {
			tweet += fmt.Sprintf(", %s", g.LocationCity)
		}
		tweet += "\n"
	}

	tweet += "\n#GBR #Huskers"
	return truncateTweet(tweet)
}

func formatChangeTweet(c schedule.Change) string {
	label := map[string]string{
		"date":    "Date",
		"time":    "Kickoff time",
		"tv":      "TV network",
		"stadium": "Venue",
	}[c.Field]
	if label == "" {
		label = c.Field
	}

	oldVal := c.OldValue
	if oldVal == "" {
		oldVal = "TBA"
	}
	newVal := c.NewValue
	if newVal == "" {
		newVal = "TBA"
	}

	tweet := fmt.Sprintf("🏈 Schedule update: %s\n\n", c.OpponentName)
	tweet += fmt.Sprintf("%s changed: %s → %s\n", label, oldVal, newVal)
	tweet += "\n#GBR #Huskers"
	return truncateTweet(tweet)
}

// truncateTweet enforces the 280 character limit
func truncateTweet(tweet string) string {
	if len(tweet) > 280 {
		tweet = tweet[:277] + "..."
	}
	return tweet
}
