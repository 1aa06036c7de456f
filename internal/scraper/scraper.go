// Package scraper imports submissions from a web server that exposes the
// questions directory as plain HTML listings (nginx autoindex, GitHub Pages
// index, python -m http.server and the like).
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"psp.com/discussion-picker/backend/internal/questionbank"
)

const userAgent = "Discussion-Picker/1.0"

// maxDocumentBytes caps a single markdown download.
const maxDocumentBytes = 1 << 20

var errDocumentTooLarge = errors.New("document exceeds 1 MiB")

// FetchIndex walks baseURL: every linked sub-directory is a week, and every
// .md file linked from a week listing is downloaded.
func FetchIndex(ctx context.Context, client *http.Client, baseURL string) ([]questionbank.Document, error) {
	base, err := url.Parse(ensureSlash(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse index url: %w", err)
	}
	root, err := fetchListing(ctx, client, base)
	if err != nil {
		return nil, err
	}

	var docs []questionbank.Document
	for _, weekURL := range links(root, base, isWeekLink) {
		week := path.Base(strings.TrimSuffix(weekURL.Path, "/"))
		listing, err := fetchListing(ctx, client, weekURL)
		if err != nil {
			return nil, err
		}
		for _, fileURL := range links(listing, weekURL, isMarkdownLink) {
			text, err := fetchText(ctx, client, fileURL)
			if err != nil {
				return nil, err
			}
			docs = append(docs, questionbank.Document{
				Week:     week,
				Filename: path.Base(fileURL.Path),
				Text:     text,
			})
		}
	}
	return docs, nil
}

func fetchListing(ctx context.Context, client *http.Client, u *url.URL) (*goquery.Document, error) {
	resp, err := get(ctx, client, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse listing %s: %w", u, err)
	}
	return doc, nil
}

func fetchText(ctx context.Context, client *http.Client, u *url.URL) (string, error) {
	resp, err := get(ctx, client, u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", u, err)
	}
	if len(data) > maxDocumentBytes {
		return "", fmt.Errorf("read %s: %w", u, errDocumentTooLarge)
	}
	return string(data), nil
}

func get(ctx context.Context, client *http.Client, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: unexpected status %d", u, resp.StatusCode)
	}
	return resp, nil
}

// links resolves every <a href> in doc against base and keeps the ones that
// stay below base and satisfy keep. Duplicates are dropped; order is preserved.
func links(doc *goquery.Document, base *url.URL, keep func(string) bool) []*url.URL {
	seen := map[string]struct{}{}
	var out []*url.URL
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "?") || strings.HasPrefix(href, "#") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		u := base.ResolveReference(ref)
		u.RawQuery, u.Fragment = "", ""
		if u.Host != base.Host || !strings.HasPrefix(u.Path, base.Path) || u.Path == base.Path {
			return
		}
		if !keep(u.Path) {
			return
		}
		if _, dup := seen[u.String()]; dup {
			return
		}
		seen[u.String()] = struct{}{}
		out = append(out, u)
	})
	return out
}

func isWeekLink(p string) bool {
	name := path.Base(strings.TrimSuffix(p, "/"))
	return strings.HasSuffix(p, "/") && !strings.HasPrefix(name, ".")
}

func isMarkdownLink(p string) bool {
	return strings.HasSuffix(strings.ToLower(p), ".md")
}

func ensureSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
