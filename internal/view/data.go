package view

// Context shapes supplied by each page handler. Every optional field
// renders empty when unset.

// HomeData feeds the index template.
type HomeData struct {
	Message   string
	Name      string
	Visits    int
	LastVisit string
}

// Pub is the publication view model shared by the detail and search pages.
type Pub struct {
	Title        string
	Date         string
	Abstract     string
	DOI          string
	Contributors []Contributor
}

// Contributor is an author carrying an ORCID identifier.
type Contributor struct {
	ID   string
	Name string
}

// Ref is a DOI-bearing entry of a publication's reference list.
type Ref struct {
	DOI   string
	Title string
	Date  string
}

// PublicationData feeds the publication template.
type PublicationData struct {
	Title   string
	RawPath string
	Name    string
	Pub     Pub
	Refs    []Ref
}

// SearchData feeds the query template.
type SearchData struct {
	Title string
	Name  string
	Pubs  []Pub
}
