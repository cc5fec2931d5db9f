package crawler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const navTimeout = 60 * time.Second

const (
	countSelector = "#count-position"
	cardSelector  = "a.msklqa-12.edfvgA"
)

// session owns one headless browser for the lifetime of a crawl. Listing
// pages share the main tab; each detail page gets a fresh tab that is closed
// after use regardless of extraction outcome.
type session struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(parent context.Context) (*session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, chromedp.DefaultExecAllocatorOptions[:]...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so a missing Chrome binary surfaces here,
	// not on the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, err
	}

	return &session{
		ctx: browserCtx,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
	}, nil
}

func (s *session) close() {
	s.cancel()
}

// positionCount navigates to the listing front page and reads the total
// result count. The count selector never appearing is fatal to the batch.
func (s *session) positionCount(listingURL string) (int, error) {
	ctx, cancel := context.WithTimeout(s.ctx, navTimeout)
	defer cancel()

	var countText string
	err := chromedp.Run(ctx,
		chromedp.Navigate(listingURL),
		chromedp.WaitVisible(countSelector, chromedp.ByQuery),
		chromedp.Text(countSelector, &countText, chromedp.ByQuery),
	)
	if err != nil {
		return 0, err
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, countText)
	if digits == "" {
		return 0, fmt.Errorf("no digits in count text %q", countText)
	}
	return strconv.Atoi(digits)
}

// renderedHTML navigates the main tab to pageURL, waits for waitSel to render
// and returns the page's outer HTML.
func (s *session) renderedHTML(pageURL, waitSel string) (string, error) {
	ctx, cancel := context.WithTimeout(s.ctx, navTimeout)
	defer cancel()

	var rendered string
	err := chromedp.Run(ctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(waitSel, chromedp.ByQuery),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}
	return rendered, nil
}

// detailPage opens detailURL in a fresh tab and extracts the description and
// qualification items. The tab is always closed.
func (s *session) detailPage(detailURL string) (string, []string, error) {
	tabCtx, closeTab := chromedp.NewContext(s.ctx)
	defer closeTab()

	ctx, cancel := context.WithTimeout(tabCtx, navTimeout)
	defer cancel()

	var rendered string
	err := chromedp.Run(ctx,
		chromedp.Navigate(detailURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	)
	if err != nil {
		return "", nil, err
	}

	description, qualifications, err := parseDetail(rendered)
	if err != nil {
		return "", nil, err
	}
	return description, qualifications, nil
}
