package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length to consider a
// plain HTTP fetch successful. Shorter content usually means the posting
// is rendered client-side.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be a
// real posting, indicating a JavaScript-rendered page.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// RenderPosting renders a posting in a headless browser and returns the
// resulting HTML. Requires Chrome or Chromium on the system.
func RenderPosting(ctx context.Context, url string, timeout time.Duration) (string, error) {
	slog.Debug("starting headless browser", "url", url)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Let client-side rendering finish before grabbing the DOM.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when possible; missing buttons are fine.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	slog.Debug("rendered posting HTML", "bytes", len(html))
	return html, nil
}

// PostingText fetches a posting URL and returns its description text,
// falling back to browser rendering when the plain fetch yields too
// little content.
func PostingText(ctx context.Context, url string, opts *Options) (string, error) {
	result, err := Posting(ctx, url, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractPostingText(result.HTML)
	if err != nil {
		return "", err
	}
	if !ShouldUseBrowser(text) {
		return text, nil
	}

	slog.Info("posting content too short, falling back to browser rendering", "url", url)
	html, err := RenderPosting(ctx, url, DefaultTimeout)
	if err != nil {
		// The thin HTTP text is still better than nothing.
		return text, nil
	}
	rendered, err := ExtractPostingText(html)
	if err != nil || strings.TrimSpace(rendered) == "" {
		return text, nil
	}
	return rendered, nil
}
