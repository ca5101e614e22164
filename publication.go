package orcweb

import (
	"strings"

	"github.com/orcweb/orcweb/internal/crossref"
	"github.com/orcweb/orcweb/internal/view"
)

// pubFromWork maps a Crossref work record into the page view model. Authors
// qualify as contributors only when they carry an ORCID identifier; the
// rest are dropped, not rendered blank.
func pubFromWork(w *crossref.Work) view.Pub {
	pub := view.Pub{
		Title:    w.PrimaryTitle(),
		DOI:      w.DOI,
		Abstract: w.Abstract,
	}
	if d := w.PublicationDate(); d != nil {
		pub.Date = d.Format("2006-01-02")
	}
	for _, a := range w.Author {
		if a.ORCID == "" {
			continue
		}
		pub.Contributors = append(pub.Contributors, view.Contributor{
			ID:   shortORCID(a.ORCID),
			Name: a.Family,
		})
	}
	return pub
}

// refsFromWork keeps only the DOI-bearing references.
func refsFromWork(w *crossref.Work) []view.Ref {
	refs := make([]view.Ref, 0, len(w.Reference))
	for _, r := range w.Reference {
		if r.DOI == "" {
			continue
		}
		refs = append(refs, view.Ref{
			DOI:   r.DOI,
			Title: r.Unstructured,
			Date:  r.Year,
		})
	}
	return refs
}

// shortORCID trims an ORCID URL down to the bare iD.
func shortORCID(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
