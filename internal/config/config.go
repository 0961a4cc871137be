package config

// RuntimeConfig is the resolved configuration for a single invocation.
type RuntimeConfig struct {
	// ProjectRoot is the registry repository root
	ProjectRoot string

	// AssetsDir is the absolute path of the assets root holding the
	// per-version record directories
	AssetsDir string

	// Debug enables diagnostic output; it has no behavioral effect
	Debug bool
}
