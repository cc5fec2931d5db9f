// Package crawler extracts job postings from jobthai.com listing and detail
// pages using a headless browser.
package crawler

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/logger"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
)

var baseJobThaiDomain = "https://www.jobthai.com"

const (
	pageSize        = 20
	detailWorkers   = 4 // concurrency cap on detail-page fetches
	detailReqPerSec = 2
)

// JobThaiCrawler walks paginated listing pages, then visits each posting's
// detail page through a bounded worker pool.
type JobThaiCrawler struct {
	domain   string
	baseURL  string
	maxPages int // 0 means all pages
	workers  int
	limiter  *rate.Limiter
}

// New creates a crawler for the given search keyword. maxPages limits how
// many listing pages are visited; 0 visits them all.
func New(keyword string, maxPages int) *JobThaiCrawler {
	return &JobThaiCrawler{
		domain:   baseJobThaiDomain,
		baseURL:  fmt.Sprintf("%s/th/jobs?keyword=%s", baseJobThaiDomain, url.QueryEscape(keyword)),
		maxPages: maxPages,
		workers:  detailWorkers,
		limiter:  rate.NewLimiter(rate.Limit(detailReqPerSec), 1),
	}
}

// CrawlAll extracts every posting for the configured keyword. A failure on a
// single posting yields empty fields for that posting only; a failure at the
// listing level (count selector missing, page navigation timeout) aborts the
// whole batch.
func (c *JobThaiCrawler) CrawlAll(ctx context.Context) ([]models.Job, error) {
	log := logger.Get().With().Str("source", "jobthai").Logger()

	s, err := newSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}
	defer s.close()

	total, err := s.positionCount(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("reading position count: %w", err)
	}

	pages := (total + pageSize - 1) / pageSize
	if c.maxPages > 0 && pages > c.maxPages {
		pages = c.maxPages
	}
	log.Info().Int("jobs", total).Int("pages", pages).Msg("Starting crawl")

	var jobs []models.Job
	for page := 1; page <= pages; page++ {
		pageURL := fmt.Sprintf("%s&page=%d", c.baseURL, page)
		rendered, err := s.renderedHTML(pageURL, cardSelector)
		if err != nil {
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}

		cards, err := parseCards(rendered, c.domain)
		if err != nil {
			return nil, fmt.Errorf("parsing listing page %d: %w", page, err)
		}
		log.Debug().Int("page", page).Int("cards", len(cards)).Msg("Parsed listing page")
		jobs = append(jobs, cards...)
	}

	if err := c.fetchDetails(s, jobs); err != nil {
		return nil, fmt.Errorf("fetching detail pages: %w", err)
	}

	log.Info().Int("job_count", len(jobs)).Msg("Completed crawl")
	return jobs, nil
}

// fetchDetails fills description and qualifications for each job in place.
// Workers write to disjoint indices, so listing order is preserved without
// extra bookkeeping. Returns the context error when the session is canceled
// mid-batch; workers stop consuming on cancellation, so the producer must
// also watch the context or it would block on the channel send forever.
func (c *JobThaiCrawler) fetchDetails(s *session, jobs []models.Job) error {
	log := logger.Get().With().Str("source", "jobthai").Logger()

	var wg sync.WaitGroup
	indexes := make(chan int)

	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := c.limiter.Wait(s.ctx); err != nil {
					return
				}
				c.fillDetail(s, &jobs[i], log)
			}
		}()
	}

	var err error
send:
	for i := range jobs {
		select {
		case indexes <- i:
		case <-s.ctx.Done():
			err = s.ctx.Err()
			break send
		}
	}
	close(indexes)
	wg.Wait()
	return err
}

func (c *JobThaiCrawler) fillDetail(s *session, job *models.Job, log zerolog.Logger) {
	description, qualifications, err := s.detailPage(job.URL)
	if err != nil {
		// Empty fields for this posting only; the batch continues.
		log.Warn().Err(err).Str("url", job.URL).Msg("Detail extraction failed, keeping listing fields")
		description = ""
		qualifications = nil
	}

	p1, p2, p3 := splitDescription(description)
	job.DescriptionPart1 = p1
	job.DescriptionPart2 = p2
	job.DescriptionPart3 = p3
	if qualifications == nil {
		qualifications = []string{}
	}
	job.Qualifications = qualifications
}

// canonicalURL joins a card's href with the domain and strips the
// non-canonical "/company" path segment.
func canonicalURL(domain, href string) string {
	if href == "" {
		return ""
	}
	return strings.ReplaceAll(domain+href, "/company", "")
}
