package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peopleregistry/backend/internal/common/bootstrap"
	commonhttp "github.com/peopleregistry/backend/internal/common/http"
	srv "github.com/peopleregistry/backend/internal/common/server"
	personhttp "github.com/peopleregistry/backend/internal/person/http"
)

func main() {
	app, err := bootstrap.NewAPIApp()
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to bootstrap: %v\n", err))
		os.Exit(1)
	}
	defer app.Pool.Close()

	log := app.Log

	handler := personhttp.NewHandler(app.PersonService, app.Config, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewPathRateLimiter()
	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	rateLimitMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "/health" || path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			rateLimiter.MiddlewareForRequest(r)(next).ServeHTTP(w, r)
		})
	}

	finalHandler := rateLimitMiddleware(baseHandler)

	serverConfig := srv.DefaultServerConfig(app.Config.HTTPPort)
	server := srv.NewServer(serverConfig, finalHandler)

	srv.StartWithGracefulShutdown(server, log, "people")
}
