package notifier

import "github.com/hyst16/HuskerFB-Schedule/internal/schedule"

// Notifier defines the interface for announcing schedule changes
type Notifier interface {
	// Notify posts notifications for the added games and field changes
	Notify(diff *schedule.DiffResult) error
}
