//go:build wireinject
// +build wireinject

package di

import (
	"CapitolPulse/pkg/config"
	"CapitolPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		ProvideHTTPClient,
		ProvideLoader,

		ProvideStore,
		ProvidePerfCache,

		ProvideAPIHandler,

		ProvideApp,
	)
	return &server.App{}, nil
}
