package preview

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultRenderTimeout bounds a headless-browser render.
const DefaultRenderTimeout = 30 * time.Second

// Render loads the preview HTML in a headless browser and writes a
// full-page screenshot to outPath. Requires Chrome/Chromium on the
// system; callers treat failure as "preview image unavailable", the
// text preview still works.
func Render(ctx context.Context, html, outPath string, timeout time.Duration) error {
	if timeout == 0 {
		timeout = DefaultRenderTimeout
	}

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

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&shot, 90),
	)
	if err != nil {
		return fmt.Errorf("preview render failed: %w", err)
	}

	if err := os.WriteFile(outPath, shot, 0o644); err != nil {
		return fmt.Errorf("failed to write preview image: %w", err)
	}
	return nil
}
