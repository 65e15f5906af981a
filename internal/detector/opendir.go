package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/siteprobe/siteprobe/internal/models"
)

var (
	// Apache/nginx style listing header inside a <pre> block.
	listingHeaderRegex = regexp.MustCompile(`(?i)name\s+last modified\s+size(?:\s+description)?`)

	// Cell shapes of a bare file-listing table.
	sizeCellRegex = regexp.MustCompile(`(?i)^\s*(?:\d+(?:\.\d+)?\s*[kmg]?i?b?|-)\s*$`)
	dateCellRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{1,2}-[A-Za-z]{3}-\d{4}`)
)

// minListingRows is how many file-shaped table rows a page needs before
// the table heuristic flags it.
const minListingRows = 3

// OpenDirDetector flags pages that expose a server-generated directory
// listing: an "Index of /" title, a listing header in a <pre> block, or
// a bare table of file names with size and date columns.
type OpenDirDetector struct {
	logger zerolog.Logger
}

// NewOpenDirDetector creates a new open-directory detector.
func NewOpenDirDetector(logger zerolog.Logger) *OpenDirDetector {
	return &OpenDirDetector{logger: logger.With().Str("detector", "opendir").Logger()}
}

// Detect emits at most one indicator per fetched URL. Unparsable pages
// are treated as having no listing.
func (d *OpenDirDetector) Detect(res *models.FetchResult) []models.Indicator {
	if res == nil || res.Failed() || res.Body == "" {
		return nil
	}

	detail, found := d.inspect(res)
	if !found {
		return nil
	}

	d.logger.Debug().Str("url", res.URL).Str("detail", detail).Msg("Open directory detected")
	return []models.Indicator{{
		Category:  models.CategoryOpenDirectory,
		Detail:    detail,
		SourceURL: res.URL,
	}}
}

func (d *OpenDirDetector) inspect(res *models.FetchResult) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		d.logger.Debug().Str("url", res.URL).Err(err).Msg("HTML parse failed, skipping open-directory checks")
		return "", false
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if strings.HasPrefix(strings.ToLower(title), "index of") {
		return fmt.Sprintf("directory listing title: %q", title), true
	}

	headerInPre := false
	doc.Find("pre").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if listingHeaderRegex.MatchString(sel.Text()) {
			headerInPre = true
			return false
		}
		return true
	})
	if headerInPre {
		return "directory index header found in <pre> block", true
	}

	if strings.Contains(strings.ToLower(res.Body), "index of /") {
		return "page contains an 'Index of /' marker", true
	}

	if rows := d.countListingRows(doc); rows >= minListingRows && isBarePage(doc) {
		return fmt.Sprintf("file-listing table with %d entries", rows), true
	}

	return "", false
}

// countListingRows counts table rows that look like directory entries:
// a link plus a size-shaped or date-shaped cell.
func (d *OpenDirDetector) countListingRows(doc *goquery.Document) int {
	rows := 0
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("a[href]").Length() == 0 {
			return
		}
		shaped := false
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			text := cell.Text()
			if sizeCellRegex.MatchString(text) || dateCellRegex.MatchString(text) {
				shaped = true
			}
		})
		if shaped {
			rows++
		}
	})
	return rows
}

// isBarePage reports whether the page lacks application chrome. Real
// directory listings are skeletal; an application page wrapping a data
// table in layout elements is not a listing.
func isBarePage(doc *goquery.Document) bool {
	return doc.Find("div, nav, header, footer, section, article, form").Length() < 5
}
