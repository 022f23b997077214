package license

import (
	"strconv"
	"strings"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

// RenderedLicense is the final license text together with the resolved year
// and author that produced it.
type RenderedLicense struct {
	ID     string
	Author string
	Year   int
	Text   string
}

// Render substitutes the year and author placeholders in the entry's body.
// It is a pure function: identical inputs yield byte-identical text. The
// year is formatted with strconv, never locale-dependent formatting, and the
// author is inserted as literal text. Callers supply the year; defaulting to
// the current calendar year happens at the front end, not here.
func Render(entry Entry, author string, year int) (RenderedLicense, error) {
	if entry.RequiresAuthor && strings.TrimSpace(author) == "" {
		return RenderedLicense{}, repomanerrors.NewPreconditionError("license-render",
			"license "+strconv.Quote(entry.ID)+" requires an author name")
	}

	replacer := strings.NewReplacer(
		"{year}", strconv.Itoa(year),
		"{name}", author,
	)

	return RenderedLicense{
		ID:     entry.ID,
		Author: author,
		Year:   year,
		Text:   replacer.Replace(entry.Body),
	}, nil
}
