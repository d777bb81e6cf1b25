// ABOUTME: Attribute extraction for image and PDF references in HTML documents
// ABOUTME: Resolves element attributes against a base URL, skipping malformed entries

package assets

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/deltacodepl/RustySEO/core/domain"
)

// ExtractImages returns every image reference in html as an ImageAsset,
// in document order. The img element's src attribute is used, falling back
// to data-src for lazy-loaded images; elements with neither attribute, or
// whose value cannot be resolved against base, are skipped. Alt defaults
// to an empty string. No network access, no deduplication.
func ExtractImages(html string, base *url.URL) []domain.ImageAsset {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var images []domain.ImageAsset

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, exists := s.Attr("src")
		if !exists {
			src, exists = s.Attr("data-src")
		}
		if !exists {
			return
		}

		resolved, err := base.Parse(src)
		if err != nil {
			// Best-effort extraction: a malformed reference drops this
			// element only, never its siblings.
			return
		}

		images = append(images, domain.ImageAsset{
			URL: resolved.String(),
			Alt: s.AttrOr("alt", ""),
		})
	})

	return images
}

// ExtractPDFLinks returns the absolute URLs of anchors whose href ends in
// ".pdf", in document order. An href that already parses as an absolute URL
// is used verbatim, even when it points at another host; otherwise it is
// resolved against base. Returns nil when no PDF links are found, so callers
// can tell "none present" apart from an empty set they built themselves.
func ExtractPDFLinks(html string, base *url.URL) *domain.PdfLinks {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string

	doc.Find(`a[href$='.pdf']`).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}

		if abs, err := url.Parse(href); err == nil && abs.IsAbs() {
			links = append(links, abs.String())
			return
		}

		if full, err := base.Parse(href); err == nil {
			links = append(links, full.String())
		}
	})

	if len(links) == 0 {
		return nil
	}

	return &domain.PdfLinks{Links: links}
}
