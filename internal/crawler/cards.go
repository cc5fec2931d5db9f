package crawler

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/models"
)

// Selectors for the jobthai.com markup. These are an unstable external
// contract: a site redesign breaks them.
const (
	titleClass   = "hHthyd"
	companyClass = "eecanG"
	dateClass    = "hbrCCy"
	locationID   = "location-text"
	salaryID     = "salary-text"
	detailID     = "job-detail"
	propertiesID = "job-properties-wrapper"
)

// parseCards extracts listing-level fields from a rendered listing page.
// Description and qualifications are filled later from the detail page. A
// card missing an element yields an empty field, never an error.
func parseCards(rendered, domain string) ([]models.Job, error) {
	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "msklqa-12") && hasClass(n, "edfvgA") {
			jobs = append(jobs, parseCard(n, domain))
			return // cards do not nest
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return jobs, nil
}

func parseCard(card *html.Node, domain string) models.Job {
	job := models.Job{
		URL: canonicalURL(domain, attrVal(card, "href")),
	}

	var locations []string
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "h2" && hasClass(n, titleClass):
				job.Title = nodeText(n)
			case n.Data == "h2" && hasClass(n, companyClass):
				job.Company = nodeText(n)
			case attrVal(n, "id") == locationID:
				if text := nodeText(n); text != "" {
					locations = append(locations, text)
				}
			case n.Data == "span" && attrVal(n, "id") == salaryID:
				job.Salary = nodeText(n)
			case n.Data == "span" && hasClass(n, dateClass):
				job.DatePosted = nodeText(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(card)

	job.Location = strings.Join(locations, ", ")
	return job
}

// parseDetail extracts the description text and qualification bullet items
// from a rendered detail page. Missing elements yield empty values.
func parseDetail(rendered string) (string, []string, error) {
	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return "", nil, err
	}

	var description string
	if n := findByID(doc, detailID); n != nil {
		description = nodeText(n)
	}

	var qualifications []string
	if wrapper := findByID(doc, propertiesID); wrapper != nil {
		if list := findElement(wrapper, "ol"); list != nil {
			for c := list.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.Data == "li" {
					if text := nodeText(c); text != "" {
						qualifications = append(qualifications, text)
					}
				}
			}
		}
	}

	return description, qualifications, nil
}
