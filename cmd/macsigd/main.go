/*
macsigd exposes the macsig digest operations to other backend services over
HTTP, for callers that are trusted with the signing key's output but not with
the key itself. The digest endpoints require requests to be signed with a
separate shared secret (see the sign package); /status is unauthenticated.
*/
package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"

	"github.com/golden-vcr/macsig/entry"
	"github.com/golden-vcr/macsig/mac"
	"github.com/golden-vcr/macsig/sign"
)

type Config struct {
	BindAddr   string `env:"BIND_ADDR"`
	ListenPort uint16 `env:"LISTEN_PORT" envDefault:"5055"`

	// SigningKey initializes the engine that computes and validates message
	// digests on behalf of callers
	SigningKey string `env:"MACSIG_SIGNING_KEY,required"`

	// AuthSharedSecret authenticates the callers themselves: requests to the
	// digest endpoints must be signed with it
	AuthSharedSecret string `env:"MACSIG_AUTH_SHARED_SECRET,required"`
}

func main() {
	app := entry.NewApplication("macsigd")
	defer app.Stop()

	var config Config
	if err := env.Parse(&config); err != nil {
		app.Fail("Failed to load config", err)
	}

	engine, err := mac.NewEngine([]byte(config.SigningKey))
	if err != nil {
		app.Fail("Failed to initialize signing engine", err)
	}
	authEngine, err := mac.NewEngine([]byte(config.AuthSharedSecret))
	if err != nil {
		app.Fail("Failed to initialize auth engine", err)
	}

	srv := &server{engine: engine}

	r := chi.NewRouter()
	r.Get("/status", srv.handleGetStatus)
	r.Group(func(r chi.Router) {
		r.Use(sign.RequireSignature(sign.NewVerifier(authEngine)))
		r.Post("/hash", srv.handlePostHash)
		r.Post("/validate", srv.handlePostValidate)
	})

	entry.RunServer(app, r, config.BindAddr, config.ListenPort)
}
