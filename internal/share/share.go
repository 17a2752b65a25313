package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

const intentURL = "https://x.com/intent/tweet"

// Text is the pre-filled post for score.
func Text(score int, playURL string) string {
	return fmt.Sprintf("I scored %d in SignSnake! Play now at %s @sign #SignSnake", score, playURL)
}

// componentEscaper turns url.QueryEscape output into the browser's
// encodeURIComponent form: spaces as %20 and !'()* left as is.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// URL returns the post intent link embedding score.
func URL(score int, playURL string) string {
	return intentURL + "?text=" + componentEscaper.Replace(url.QueryEscape(Text(score, playURL)))
}

// Opener shows a URL to the user.
type Opener func(rawURL string) error

// Browser opens URLs with the system browser.
var Browser Opener = browser.OpenURL

// Score builds the share link and hands it to open.
func Score(open Opener, score int, playURL string) (string, error) {
	u := URL(score, playURL)
	if err := open(u); err != nil {
		return u, fmt.Errorf("open share link: %w", err)
	}
	return u, nil
}
