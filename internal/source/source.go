// Package source loads raw timesheet text from files, stdin or the portal.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/oauth2"
)

// Options selects where timesheet text is read from.
type Options struct {
	// Path of a text or HTML file. Empty or "-" means stdin.
	Path string
	// URL of the attendance page; takes precedence over Path.
	URL string
	// Token is sent as a bearer token when fetching URL.
	Token string
	// HTML forces HTML text extraction even when the input does not look
	// like markup.
	HTML bool
}

// Read returns the timesheet text described by opts.
func Read(ctx context.Context, opts Options, stdin io.Reader) (string, error) {
	if opts.URL != "" {
		return Fetch(ctx, opts.URL, opts.Token, opts.HTML)
	}

	var (
		data []byte
		err  error
	)
	if opts.Path == "" || opts.Path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", opts.Path, err)
		}
	}

	if opts.HTML || looksLikeHTML(data) {
		return HTMLText(bytes.NewReader(data))
	}
	return string(data), nil
}

// Fetch downloads the attendance page at rawURL. A non-empty token is sent
// as an OAuth2 bearer token. HTML responses are reduced to their text lines.
func Fetch(ctx context.Context, rawURL, token string, forceHTML bool) (string, error) {
	client := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		client = oauth2.NewClient(ctx, ts)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html, text/plain;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("portal request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("portal error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if forceHTML || strings.Contains(resp.Header.Get("Content-Type"), "html") || looksLikeHTML(body) {
		return HTMLText(bytes.NewReader(body))
	}
	return string(body), nil
}

// HTMLText flattens an HTML document into one line per text node, in
// document order, skipping scripts and styles.
func HTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	var lines []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) != "#text" {
				walk(c)
				return
			}
			for _, l := range strings.Split(c.Text(), "\n") {
				if l = strings.TrimSpace(l); l != "" {
					lines = append(lines, l)
				}
			}
		})
	}
	walk(doc.Find("body"))
	return strings.Join(lines, "\n"), nil
}

func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(data[:min(len(data), 512)])))
	return strings.HasPrefix(head, "<!doctype html") ||
		strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<body")
}
