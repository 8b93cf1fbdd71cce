package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer fetches pages through headless Chromium so lazy-loaded content
// (the opponent logo images in particular) is present in the snapshot.
type Renderer struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewRenderer starts a headless browser allocator. Call Close when done.
func NewRenderer() *Renderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Renderer{allocCtx: allocCtx, cancel: cancel}
}

// Close releases the browser allocator.
func (r *Renderer) Close() {
	if r.cancel != nil {
		r.cancel()
	}
}

// Render loads the page, scrolls to the bottom and back so lazy images swap
// their placeholder sources, and returns the post-JS DOM as HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, 60*time.Second)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		var dlCancel context.CancelFunc
		browserCtx, dlCancel = context.WithDeadline(browserCtx, deadline)
		defer dlCancel()
	}

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(1200*time.Millisecond),
		chromedp.Evaluate(`window.scrollTo(0, 0)`, nil),
		chromedp.Sleep(400*time.Millisecond),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	if html == "" {
		return "", fmt.Errorf("empty rendered document")
	}
	return html, nil
}
