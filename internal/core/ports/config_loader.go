package ports

import "github.com/gaecom/arco-cli/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds and reads the configuration. When path is empty the config
	// file is discovered by walking up from cwd.
	Load(cwd, path string) (*domain.Project, error)
}
