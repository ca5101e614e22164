package orcweb

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Exactly one of a rendered body or a Location header is meaningful per
// response; redirects carry no HTML.

func htmlResponse(body string, cookies []string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       body,
		Cookies:    cookies,
	}
}

func redirectResponse(location string, cookies []string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusFound,
		Headers:    map[string]string{"Location": location},
		Cookies:    cookies,
	}
}

func errorResponse(status int, message string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       message,
	}
}
