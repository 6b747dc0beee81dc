package domain

import "path/filepath"

// Project is the fully resolved configuration of one component library.
// All directory fields are absolute once produced by the config loader.
type Project struct {
	Root   string
	Style  StyleConfig
	Assets AssetConfig
}

// StyleConfig describes the stylesheet sources and where their outputs go.
type StyleConfig struct {
	// Base is the directory entry paths are made relative to when mirrored
	// into the output trees.
	Base string
	// Entries are the glob patterns of compilable sources, relative to Base.
	Entries []string
	// Namespace is the reserved path prefix (relative to Base) whose entries
	// lead the import index.
	Namespace string
	// OutputExt replaces the source extension of compiled files.
	OutputExt string
	// Watch are the patterns whose changes trigger a rebuild.
	Watch []WatchGlob
	// Output holds the module-format and distributable targets.
	Output StyleOutput
	// Compiler holds the options handed to the stylesheet compiler.
	Compiler CompileOptions
}

// WatchGlob is a watch pattern together with the directory it is relative to.
type WatchGlob struct {
	Pattern string
	Base    string
}

// StyleOutput lists the output targets. An empty directory disables that target.
type StyleOutput struct {
	ESDir  string
	CJSDir string
	Dist   DistOutput
}

// DistOutput describes the aggregated distributable.
type DistOutput struct {
	Dir              string
	IndexFileName    string
	ArtifactFileName string
}

// IndexPath returns the absolute path of the generated import index.
func (d DistOutput) IndexPath() string {
	return filepath.Join(d.Dir, d.IndexFileName)
}

// ArtifactPath returns the absolute path of the distributable artifact.
func (d DistOutput) ArtifactPath() string {
	return filepath.Join(d.Dir, d.ArtifactFileName)
}

// ModuleDirs returns the configured module-format output directories, ESM first.
func (o StyleOutput) ModuleDirs() []string {
	dirs := make([]string, 0, 2)
	if o.ESDir != "" {
		dirs = append(dirs, o.ESDir)
	}
	if o.CJSDir != "" {
		dirs = append(dirs, o.CJSDir)
	}
	return dirs
}

// CompileOptions are passed verbatim to the stylesheet compiler.
type CompileOptions struct {
	// Target lists the engines the output must support, e.g. "chrome80".
	Target []string
	// External lists import paths the compiler must leave untouched, e.g. "*.png".
	External []string
}

// AssetConfig describes static resources copied verbatim.
type AssetConfig struct {
	Base    string
	Entries []string
	Output  string
}
