package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "arco.yaml"

	// EnvFileName is the name of the optional dotenv file next to the config file.
	EnvFileName = ".env"

	// EnvBuildMode selects the build mode. "development" enables dev mode.
	EnvBuildMode = "ARCO_ENV"

	// EnvDisableMinify disables artifact minification in production builds too.
	EnvDisableMinify = "ARCO_DISABLE_MINIFY"

	// BuildModeDevelopment is the EnvBuildMode value that selects dev mode.
	BuildModeDevelopment = "development"

	// DefaultStyleNamespace is the reserved path prefix whose entries lead the import index.
	DefaultStyleNamespace = "components/style"

	// DefaultOutputExt is the extension given to compiled stylesheets.
	DefaultOutputExt = ".css"

	// DefaultIndexFileName is the default name of the generated import index.
	DefaultIndexFileName = "index.css"

	// DefaultArtifactFileName is the default name of the distributable artifact.
	DefaultArtifactFileName = "index.min.css"

	// DefaultDebounceWindow coalesces bursts of watch events into one rebuild.
	DefaultDebounceWindow = 50 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
