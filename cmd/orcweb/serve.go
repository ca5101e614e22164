package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/orcweb/orcweb"
	"github.com/orcweb/orcweb/internal/config"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the site handlers behind a local HTTP server",
	Long: `Run the site handlers behind a local HTTP server.

Each request is translated into the API-gateway event shape the deployed
handlers receive, so behavior matches production, cookies included.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to server.listen_addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app, err := orcweb.FromConfig(cfg, orcweb.WithLogger(logger))
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Get("/", adapt(app.Home(), nil))
	r.Get("/auth", adapt(app.BeginAuth(), nil))
	r.Get("/callback", adapt(app.Callback(), nil))
	r.Get("/logout", adapt(app.Logout(), nil))
	r.Get("/search", adapt(app.Search(), nil))
	// DOIs contain slashes, so the parameter is a wildcard.
	r.Get("/publication/*", adapt(app.Publication(), func(req *http.Request) map[string]string {
		return map[string]string{"doi": chi.URLParam(req, "*")}
	}))

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.ListenAddr
	}
	logger.Info("serving", "addr", addr)
	return http.ListenAndServe(addr, r)
}

// adapt translates net/http traffic into the API-gateway event shape and
// back. The local server always plays the default stage.
func adapt(h orcweb.Handler, params func(*http.Request) map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event := events.APIGatewayV2HTTPRequest{
			RawPath:               r.URL.Path,
			RawQueryString:        r.URL.RawQuery,
			Cookies:               cookieList(r),
			Headers:               flattenHeaders(r.Header),
			QueryStringParameters: queryParameters(r),
			RequestContext: events.APIGatewayV2HTTPRequestContext{
				DomainName: r.Host,
				Stage:      "$default",
			},
		}
		if params != nil {
			event.PathParameters = params(r)
		}

		resp, err := h(r.Context(), event)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		for _, cookie := range resp.Cookies {
			w.Header().Add("Set-Cookie", cookie)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func cookieList(r *http.Request) []string {
	cookies := r.Cookies()
	list := make([]string, 0, len(cookies))
	for _, c := range cookies {
		list = append(list, c.Name+"="+c.Value)
	}
	return list
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key := range h {
		out[key] = h.Get(key)
	}
	return out
}

func queryParameters(r *http.Request) map[string]string {
	query := r.URL.Query()
	out := make(map[string]string, len(query))
	for key := range query {
		out[key] = query.Get(key)
	}
	return out
}
