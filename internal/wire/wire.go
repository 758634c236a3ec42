//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/sevigo/accelerator-pr/internal/app"
)

// InitializeApp builds the application from the config file at configFile,
// or from the default locations when it is empty.
func InitializeApp(configFile string) (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}
