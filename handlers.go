package orcweb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"github.com/orcweb/orcweb/internal/view"
)

// Home creates the handler for the landing page. It renders the incoming
// visit counter and last-visit timestamp, then refreshes the session with
// the counter bumped and a fresh timestamp.
func (o *Orcweb) Home() Handler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		o.logRequest("home", req)
		session := SessionFromRequest(req)

		body, err := o.renderer.Render("index", view.HomeData{
			Message:   "Hello World",
			Name:      session.Name(),
			Visits:    session.Visits(),
			LastVisit: session.LastVisit(),
		})
		if err != nil {
			o.logError("render home", "error", fmt.Errorf("%w: %w", ErrFailedRenderingPage, err))
			return errorResponse(http.StatusInternalServerError, "Error rendering page"), nil
		}

		session.RecordVisit(o.now())
		return htmlResponse(body, o.sessionCookies(session)), nil
	}
}

// Publication creates the handler for the publication detail page. The DOI
// comes from the route's path parameter and is looked up verbatim against
// the bibliographic API.
func (o *Orcweb) Publication() Handler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		o.logRequest("publication", req)
		session := SessionFromRequest(req)

		doi := req.PathParameters["doi"]
		if doi == "" {
			o.logError("publication", "error", ErrMissingDOI)
			return errorResponse(http.StatusBadRequest, "Missing doi path parameter"), nil
		}

		work, err := o.bib.WorkByDOI(ctx, doi)
		if err != nil {
			o.logError("fetch work", "doi", doi, "error", fmt.Errorf("%w: %w", ErrFailedFetchingWork, err))
			return errorResponse(http.StatusInternalServerError, "Error fetching publication: "+err.Error()), nil
		}

		body, err := o.renderer.Render("publication", view.PublicationData{
			Title:   work.PrimaryTitle(),
			RawPath: req.RawPath,
			Name:    session.Name(),
			Pub:     pubFromWork(work),
			Refs:    refsFromWork(work),
		})
		if err != nil {
			o.logError("render publication", "error", fmt.Errorf("%w: %w", ErrFailedRenderingPage, err))
			return errorResponse(http.StatusInternalServerError, "Error rendering page"), nil
		}

		return htmlResponse(body, o.sessionCookies(session)), nil
	}
}

// Search creates the handler for the search results page. The query is the
// "query" parameter of the raw query string, defaulting to empty; the
// upstream API decides what an empty query means.
func (o *Orcweb) Search() Handler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		o.logRequest("search", req)
		session := SessionFromRequest(req)

		var query string
		if params, err := url.ParseQuery(req.RawQueryString); err == nil {
			query = params.Get("query")
		}

		works, err := o.bib.SearchWorks(ctx, query)
		if err != nil {
			o.logError("search works", "query", query, "error", fmt.Errorf("%w: %w", ErrFailedFetchingWork, err))
			return errorResponse(http.StatusInternalServerError, "Error searching publications: "+err.Error()), nil
		}

		pubs := make([]view.Pub, 0, len(works))
		for i := range works {
			pubs = append(pubs, pubFromWork(&works[i]))
		}

		body, err := o.renderer.Render("query", view.SearchData{
			Title: query,
			Name:  session.Name(),
			Pubs:  pubs,
		})
		if err != nil {
			o.logError("render search", "error", fmt.Errorf("%w: %w", ErrFailedRenderingPage, err))
			return errorResponse(http.StatusInternalServerError, "Error rendering page"), nil
		}

		return htmlResponse(body, o.sessionCookies(session)), nil
	}
}
