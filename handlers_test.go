package orcweb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcweb/orcweb/internal/crossref"
)

const workFixture = `{"message": {
	"DOI": "10.1000/xyz123",
	"title": ["On the Theory of Everything"],
	"abstract": "It is all connected.",
	"author": [
		{"given": "Josiah", "family": "Carberry", "ORCID": "http://orcid.org/0000-0002-1825-0097"},
		{"given": "Anne", "family": "Onymous"}
	],
	"reference": [
		{"DOI": "10.1000/ref1", "unstructured": "Ref One, collected works", "year": "2001"},
		{"unstructured": "A reference nobody registered"}
	],
	"issued": {"date-parts": [[2018, 6, 1]]},
	"published-online": {"date-parts": [[2017, 1, 2]]}
}}`

const searchFixture = `{"message": {"items": [
	{"DOI": "10.1000/xyz123", "title": ["On the Theory of Everything"], "issued": {"date-parts": [[2018, 6, 1]]}},
	{"DOI": "10.1000/abc456", "title": ["A Modest Result"]}
]}}`

func TestHome(t *testing.T) {
	for name, test := range map[string]struct {
		cookies      []string
		wantBody     []string
		wantVisits   string
		wantLastSeen string
	}{
		"first visit": {
			cookies:      nil,
			wantBody:     []string{"Hello World", "Never"},
			wantVisits:   "1",
			wantLastSeen: "2021-01-01 00:00:00",
		},
		"returning visitor": {
			cookies:      []string{"name=Josiah+Carberry", "visits=41", "last_visit=2020-12-25 08:00:00"},
			wantBody:     []string{"Josiah Carberry", "41", "2020-12-25 08:00:00"},
			wantVisits:   "42",
			wantLastSeen: "2021-01-01 00:00:00",
		},
		"garbage counter resets": {
			cookies:      []string{"visits=soon", "last_visit=yesterday"},
			wantBody:     []string{"Never"},
			wantVisits:   "1",
			wantLastSeen: "2021-01-01 00:00:00",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			app := newTestApp(nil)
			resp, err := app.Home()(context.Background(), events.APIGatewayV2HTTPRequest{Cookies: test.cookies})
			require.NoError(err)

			assert.Equal(http.StatusOK, resp.StatusCode)
			assert.Equal("text/html", resp.Headers["Content-Type"])
			for _, want := range test.wantBody {
				assert.Contains(resp.Body, want)
			}

			outgoing := DecodeCookies(resp.Cookies)
			assert.Equal(test.wantVisits, outgoing["visits"])
			assert.Equal(test.wantLastSeen, outgoing["last_visit"])
		})
	}
}

func newBibServer(t *testing.T, handler http.HandlerFunc) *crossref.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return crossref.NewClient(crossref.WithBaseURL(server.URL))
}

func TestPublication(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var requestedPath string
	bib := newBibServer(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(workFixture))
	})

	app := newTestApp(bib)
	req := events.APIGatewayV2HTTPRequest{
		RawPath:        "/publication/10.1000%2Fxyz123",
		PathParameters: map[string]string{"doi": "10.1000/xyz123"},
		Cookies:        []string{"name=Josiah+Carberry"},
	}

	resp, err := app.Publication()(context.Background(), req)
	require.NoError(err)

	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("/works/10.1000/xyz123", requestedPath)

	assert.Contains(resp.Body, "On the Theory of Everything")
	assert.Contains(resp.Body, "It is all connected.")
	assert.Contains(resp.Body, "2018-06-01")
	assert.Contains(resp.Body, "Josiah Carberry")

	// Only the ORCID-bearing author is listed, by the short form of the iD.
	assert.Contains(resp.Body, "0000-0002-1825-0097")
	assert.NotContains(resp.Body, "Onymous")

	// Only the DOI-bearing reference is listed.
	assert.Contains(resp.Body, "Ref One, collected works")
	assert.Contains(resp.Body, "2001")
	assert.NotContains(resp.Body, "A reference nobody registered")

	outgoing := DecodeCookies(resp.Cookies)
	assert.Equal("Josiah Carberry", outgoing["name"])
}

func TestPublicationMissingDOI(t *testing.T) {
	assert := assert.New(t)

	app := newTestApp(nil)
	resp, err := app.Publication()(context.Background(), events.APIGatewayV2HTTPRequest{})
	assert.NoError(err)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
	assert.Equal("Missing doi path parameter", resp.Body)
}

func TestPublicationUpstreamFailure(t *testing.T) {
	assert := assert.New(t)

	bib := newBibServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	app := newTestApp(bib)
	req := events.APIGatewayV2HTTPRequest{PathParameters: map[string]string{"doi": "10.1000/xyz123"}}

	resp, err := app.Publication()(context.Background(), req)
	assert.NoError(err)
	assert.Equal(http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(resp.Body, "Error fetching publication:")
}

func TestSearch(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var receivedQuery string
	bib := newBibServer(t, func(w http.ResponseWriter, r *http.Request) {
		receivedQuery = r.URL.Query().Get("query")
		w.Write([]byte(searchFixture))
	})

	app := newTestApp(bib)
	req := events.APIGatewayV2HTTPRequest{RawQueryString: "query=tree+inference"}

	resp, err := app.Search()(context.Background(), req)
	require.NoError(err)

	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("tree inference", receivedQuery)
	assert.Contains(resp.Body, "tree inference")
	assert.Contains(resp.Body, "On the Theory of Everything")
	assert.Contains(resp.Body, "A Modest Result")
}

func TestSearchUpstreamFailure(t *testing.T) {
	assert := assert.New(t)

	bib := newBibServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	})

	app := newTestApp(bib)
	resp, err := app.Search()(context.Background(), events.APIGatewayV2HTTPRequest{RawQueryString: "query=anything"})
	assert.NoError(err)
	assert.Equal(http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(resp.Body, "Error searching publications:")
}
