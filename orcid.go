package orcweb

import (
	"golang.org/x/oauth2"
)

// ORCID's public-API OAuth2 endpoints and the sign-in scope. The token
// response carries the member's name and iD alongside the access token, so
// no further user-info request is needed.
const (
	orcidAuthURL  = "https://orcid.org/oauth/authorize"
	orcidTokenURL = "https://orcid.org/oauth/token"
	orcidScope    = "/authenticate"
)

func (o *Orcweb) oauthConfig(clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{o.scope},
		Endpoint: oauth2.Endpoint{
			AuthURL:   o.authURL,
			TokenURL:  o.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// Identity is the assertion extracted from the ORCID token response.
type Identity struct {
	Name  string
	ORCID string
}

func identityFromToken(token *oauth2.Token) Identity {
	id := Identity{Name: "ORCID User"}
	if v, ok := token.Extra("name").(string); ok && v != "" {
		id.Name = v
	}
	if v, ok := token.Extra("orcid").(string); ok {
		id.ORCID = v
	}
	return id
}
