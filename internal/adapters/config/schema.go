package config

// Arcofile represents the structure of the arco.yaml configuration file.
type Arcofile struct {
	Version string     `yaml:"version"`
	Root    string     `yaml:"root"`
	Style   StyleDTO   `yaml:"style"`
	Assets  *AssetsDTO `yaml:"assets"`
}

// StyleDTO represents the style section.
type StyleDTO struct {
	Base      string      `yaml:"base"`
	Entries   []string    `yaml:"entries"`
	Namespace *string     `yaml:"namespace"`
	OutputExt string      `yaml:"outputExt"`
	Watch     []WatchDTO  `yaml:"watch"`
	Output    OutputDTO   `yaml:"output"`
	Compiler  CompilerDTO `yaml:"compiler"`
}

// WatchDTO represents one watch pattern.
type WatchDTO struct {
	Pattern string `yaml:"pattern"`
	Base    string `yaml:"base"`
}

// OutputDTO represents the style output targets.
type OutputDTO struct {
	ES   string   `yaml:"es"`
	CJS  string   `yaml:"cjs"`
	Dist *DistDTO `yaml:"dist"`
}

// DistDTO represents the distributable target.
type DistDTO struct {
	Dir      string `yaml:"dir"`
	Index    string `yaml:"index"`
	Artifact string `yaml:"artifact"`
}

// CompilerDTO represents the compiler options.
type CompilerDTO struct {
	Target   []string `yaml:"target"`
	External []string `yaml:"external"`
}

// AssetsDTO represents the asset section.
type AssetsDTO struct {
	Base    string   `yaml:"base"`
	Entries []string `yaml:"entries"`
	Output  string   `yaml:"output"`
}
