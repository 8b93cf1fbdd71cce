package notifier

import (
	"fmt"

	"github.com/hyst16/HuskerFB-Schedule/internal/schedule"
)

// DryRunNotifier prints what would be tweeted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the tweets that would be posted
func (n *DryRunNotifier) Notify(diff *schedule.DiffResult) error {
	tweets := formatTweets(diff)
	for i, tweet := range tweets {
		fmt.Printf("--- Tweet %d/%d ---\n", i+1, len(tweets))
		fmt.Println(tweet)
		fmt.Printf("\n(Length: %d characters)\n\n", len(tweet))
	}
	return nil
}
