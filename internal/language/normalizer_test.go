package language

import (
	"context"
	"errors"
	"testing"

	"github.com/pemistahl/lingua-go"
)

func TestNormalizeEnglishPassesThrough(t *testing.T) {
	tr := &fakeTranslator{out: "should not be used"}
	n := NewNormalizer(fakeDetector{lang: lingua.English, ok: true}, tr)

	text, outcome := n.Normalize(context.Background(), "data engineer")
	if text != "data engineer" {
		t.Errorf("Expected pass-through, got %q", text)
	}
	if outcome != OutcomeUnchanged {
		t.Errorf("Expected OutcomeUnchanged, got %v", outcome)
	}
	if tr.calls != 0 {
		t.Errorf("Expected no translation call, got %d", tr.calls)
	}
}

func TestNormalizeAmbiguousDetectionPassesThrough(t *testing.T) {
	tr := &fakeTranslator{}
	n := NewNormalizer(fakeDetector{ok: false}, tr)

	text, outcome := n.Normalize(context.Background(), "??!")
	if text != "??!" || outcome != OutcomeUnchanged {
		t.Errorf("Expected unchanged text for ambiguous input, got %q (%v)", text, outcome)
	}
	if tr.calls != 0 {
		t.Errorf("Expected no translation call, got %d", tr.calls)
	}
}

func TestNormalizeThaiTranslates(t *testing.T) {
	tr := &fakeTranslator{out: "data engineer"}
	n := NewNormalizer(fakeDetector{lang: lingua.Thai, ok: true}, tr)

	text, outcome := n.Normalize(context.Background(), "วิศวกรข้อมูล")
	if text != "data engineer" {
		t.Errorf("Expected translated text, got %q", text)
	}
	if outcome != OutcomeTranslated {
		t.Errorf("Expected OutcomeTranslated, got %v", outcome)
	}
	if tr.last != "วิศวกรข้อมูล" {
		t.Errorf("Translator received %q", tr.last)
	}
}

func TestNormalizeTranslationFailureFallsBack(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("rate limited")}
	n := NewNormalizer(fakeDetector{lang: lingua.Thai, ok: true}, tr)

	text, outcome := n.Normalize(context.Background(), "วิศวกรข้อมูล")
	if text != "วิศวกรข้อมูล" {
		t.Errorf("Expected original text on failure, got %q", text)
	}
	if outcome != OutcomeFallback {
		t.Errorf("Expected OutcomeFallback, got %v", outcome)
	}
}

func TestLinguaDetector(t *testing.T) {
	d := NewDetector()

	lang, ok := d.Detect("รับสมัครวิศวกรข้อมูล ประจำกรุงเทพมหานคร")
	if !ok || lang != lingua.Thai {
		t.Errorf("Expected Thai, got %v (ok=%v)", lang, ok)
	}

	lang, ok = d.Detect("We are hiring a senior data engineer in Bangkok")
	if !ok || lang != lingua.English {
		t.Errorf("Expected English, got %v (ok=%v)", lang, ok)
	}
}

type fakeDetector struct {
	lang lingua.Language
	ok   bool
}

func (d fakeDetector) Detect(text string) (lingua.Language, bool) {
	return d.lang, d.ok
}

type fakeTranslator struct {
	out   string
	err   error
	calls int
	last  string
}

func (t *fakeTranslator) TranslateThai(ctx context.Context, text string) (string, error) {
	t.calls++
	t.last = text
	if t.err != nil {
		return "", t.err
	}
	return t.out, nil
}
