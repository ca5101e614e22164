package orcweb

import "errors"

var (
	ErrMissingAuthCode           = errors.New("missing authorization code")
	ErrMissingDOI                = errors.New("missing doi path parameter")
	ErrFailedFetchingCredentials = errors.New("failed fetching client credentials")
	ErrFailedExchangingToken     = errors.New("failed exchanging token")
	ErrFailedFetchingWork        = errors.New("failed fetching work")
	ErrFailedRenderingPage       = errors.New("failed rendering page")
)
