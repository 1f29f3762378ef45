package cli

import (
	"github.com/lightworkai/kycmon/internal/config"
	"github.com/lightworkai/kycmon/internal/health"
	"github.com/lightworkai/kycmon/internal/logger"
)

// newProvider picks the dataset file from --data, then data_file, and falls
// back to the built-in sample.
func newProvider(cfg *config.Config, dataFlag string, log logger.Logger) health.Provider {
	if log == nil {
		log = logger.Noop()
	}
	path := cfg.DataFile
	if dataFlag != "" {
		path = config.ExpandTilde(config.Expand(dataFlag))
	}
	if path != "" {
		log.Debug("reading snapshots from %s", path)
		return health.NewFileProvider(path, log)
	}
	return health.NewStaticProvider(log)
}
