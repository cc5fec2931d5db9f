package crawler

import (
	"testing"
)

const listingFixture = `
<html><body>
<div id="count-position">1,234 ตำแหน่ง</div>
<div class="results">
  <a class="msklqa-12 edfvgA" href="/th/company/job/12345">
    <h2 class="ohgq7e-0 hHthyd">Data Engineer</h2>
    <h2 class="ohgq7e-0 eecanG">Acme (Thailand) Co., Ltd.</h2>
    <div id="location-text">Bangkok</div>
    <div id="location-text">Nonthaburi</div>
    <span id="salary-text">50,000 - 70,000 THB</span>
    <span class="hbrCCy">17 ส.ค. 68</span>
  </a>
  <a class="msklqa-12 edfvgA" href="/th/job/67890">
    <h2 class="ohgq7e-0 hHthyd">Barista</h2>
    <h2 class="ohgq7e-0 eecanG">Coffee House</h2>
  </a>
</div>
</body></html>`

func TestParseCards(t *testing.T) {
	jobs, err := parseCards(listingFixture, "https://www.jobthai.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.Title != "Data Engineer" {
		t.Errorf("Expected title 'Data Engineer', got %q", first.Title)
	}
	if first.Company != "Acme (Thailand) Co., Ltd." {
		t.Errorf("Unexpected company %q", first.Company)
	}
	if first.Location != "Bangkok, Nonthaburi" {
		t.Errorf("Expected joined locations, got %q", first.Location)
	}
	if first.Salary != "50,000 - 70,000 THB" {
		t.Errorf("Unexpected salary %q", first.Salary)
	}
	if first.DatePosted != "17 ส.ค. 68" {
		t.Errorf("Unexpected date %q", first.DatePosted)
	}
	// The non-canonical "/company" segment must be stripped.
	if first.URL != "https://www.jobthai.com/th/job/12345" {
		t.Errorf("Unexpected URL %q", first.URL)
	}
}

func TestParseCardsMissingFieldsDefaultEmpty(t *testing.T) {
	jobs, err := parseCards(listingFixture, "https://www.jobthai.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second := jobs[1]
	if second.Title != "Barista" || second.Company != "Coffee House" {
		t.Errorf("Unexpected card fields: %+v", second)
	}
	if second.Location != "" || second.Salary != "" || second.DatePosted != "" {
		t.Errorf("Expected empty defaults for missing elements, got %+v", second)
	}
	if second.URL != "https://www.jobthai.com/th/job/67890" {
		t.Errorf("Unexpected URL %q", second.URL)
	}
}

func TestParseCardsNoCards(t *testing.T) {
	jobs, err := parseCards("<html><body><p>maintenance</p></body></html>", "https://www.jobthai.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("Expected no jobs, got %d", len(jobs))
	}
}

const detailFixture = `
<html><body>
<div id="job-detail">
  <p>Design and maintain data pipelines.</p>
  <p>Work with the analytics team.</p>
</div>
<div id="job-properties-wrapper">
  <ol>
    <li>Bachelor's degree</li>
    <li>3+ years with SQL</li>
    <li></li>
  </ol>
</div>
</body></html>`

func TestParseDetail(t *testing.T) {
	description, qualifications, err := parseDetail(detailFixture)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if description != "Design and maintain data pipelines. Work with the analytics team." {
		t.Errorf("Unexpected description %q", description)
	}
	if len(qualifications) != 2 {
		t.Fatalf("Expected 2 qualifications, got %d", len(qualifications))
	}
	if qualifications[0] != "Bachelor's degree" || qualifications[1] != "3+ years with SQL" {
		t.Errorf("Unexpected qualifications %v", qualifications)
	}
}

func TestParseDetailMissingElements(t *testing.T) {
	description, qualifications, err := parseDetail("<html><body></body></html>")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if description != "" {
		t.Errorf("Expected empty description, got %q", description)
	}
	if len(qualifications) != 0 {
		t.Errorf("Expected no qualifications, got %v", qualifications)
	}
}

func TestCanonicalURL(t *testing.T) {
	got := canonicalURL("https://www.jobthai.com", "/th/company/job/555")
	if got != "https://www.jobthai.com/th/job/555" {
		t.Errorf("Unexpected URL %q", got)
	}
	if canonicalURL("https://www.jobthai.com", "") != "" {
		t.Error("Expected empty URL for empty href")
	}
}
