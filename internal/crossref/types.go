package crossref

import "time"

// Work is the subset of a Crossref work record the site renders.
type Work struct {
	DOI       string      `json:"DOI"`
	Title     []string    `json:"title"`
	Abstract  string      `json:"abstract"`
	Author    []Author    `json:"author"`
	Reference []Reference `json:"reference"`

	Issued          *PartialDate `json:"issued"`
	Posted          *PartialDate `json:"posted"`
	Accepted        *PartialDate `json:"accepted"`
	PublishedPrint  *PartialDate `json:"published-print"`
	PublishedOnline *PartialDate `json:"published-online"`
}

// Author is one entry of a work's author list.
type Author struct {
	ORCID  string `json:"ORCID"`
	Given  string `json:"given"`
	Family string `json:"family"`
}

// Reference is one entry of a work's reference list.
type Reference struct {
	DOI          string `json:"DOI"`
	Unstructured string `json:"unstructured"`
	Year         string `json:"year"`
}

// PartialDate is Crossref's date-parts representation: rows of
// [year, month, day] where trailing components may be missing and present
// components may be null.
type PartialDate struct {
	DateParts [][]*int `json:"date-parts"`
}

// PrimaryTitle returns the first title, or "" when the work has none.
func (w *Work) PrimaryTitle() string {
	if len(w.Title) == 0 {
		return ""
	}
	return w.Title[0]
}

// PublicationDate derives the work's display date. Candidate fields are
// checked in fixed priority order; downstream display depends on this exact
// order, so do not reorder it. The first field present whose leading
// date-part components are all non-null wins; missing trailing components
// default to 1. No qualifying field means no date, which is not an error.
func (w *Work) PublicationDate() *time.Time {
	for _, field := range []*PartialDate{
		w.Issued,
		w.Posted,
		w.Accepted,
		w.PublishedPrint,
		w.PublishedOnline,
	} {
		if d := field.Date(); d != nil {
			return d
		}
	}
	return nil
}

// Date resolves the first date-parts row into a calendar date, or nil when
// the row is absent, empty, or has a null among its leading components.
func (p *PartialDate) Date() *time.Time {
	if p == nil || len(p.DateParts) == 0 {
		return nil
	}
	parts := p.DateParts[0]
	n := min(len(parts), 3)
	if n == 0 {
		return nil
	}
	vals := [3]int{0, 1, 1}
	for i := 0; i < n; i++ {
		if parts[i] == nil {
			return nil
		}
		vals[i] = *parts[i]
	}
	d := time.Date(vals[0], time.Month(vals[1]), vals[2], 0, 0, 0, 0, time.UTC)
	return &d
}
