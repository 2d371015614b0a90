package midi

import (
	"github.com/now-its-dark/qxgedit/internal/logger"
	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

const defaultClientName = "qxgedit"

// applyDefaultOptions sets default values for ClientOptions if not
// explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) contracts.ClientOptions {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.ClientName == "" {
		options.ClientName = defaultClientName
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options
}
