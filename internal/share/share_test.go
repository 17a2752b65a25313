package share

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestURLEmbedsScore(t *testing.T) {
	raw := URL(120, "https://example.test/play?x=1")
	if !strings.HasPrefix(raw, "https://x.com/intent/tweet?text=") {
		t.Fatalf("unexpected prefix: %s", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "I scored 120 in SignSnake! Play now at https://example.test/play?x=1 @sign #SignSnake"
	if got := u.Query().Get("text"); got != want {
		t.Fatalf("text: got %q want %q", got, want)
	}
	if strings.Contains(u.RawQuery, "#") {
		t.Fatalf("fragment character left unescaped: %s", u.RawQuery)
	}
}

func TestScoreOpens(t *testing.T) {
	var opened string
	got, err := Score(func(u string) error { opened = u; return nil }, 30, "https://example.test")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if opened != got || opened != URL(30, "https://example.test") {
		t.Fatalf("opened %q, returned %q", opened, got)
	}
}

func TestScoreWrapsOpenError(t *testing.T) {
	boom := errors.New("no browser")
	_, err := Score(func(string) error { return boom }, 0, "https://example.test")
	if !errors.Is(err, boom) {
		t.Fatalf("error not wrapped: %v", err)
	}
}

func TestURLEncodesLikeBrowser(t *testing.T) {
	raw := URL(50, "https://example.test")
	want := "https://x.com/intent/tweet?text=I%20scored%2050%20in%20SignSnake!%20Play%20now%20at%20https%3A%2F%2Fexample.test%20%40sign%20%23SignSnake"
	if raw != want {
		t.Fatalf("url:\n got %s\nwant %s", raw, want)
	}
}
