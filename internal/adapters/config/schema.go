package config

// File represents the structure of the avify.yaml configuration file.
// Absent fields fall back to the documented defaults; out-of-range values
// are normalized rather than rejected so a bad config never aborts a build.
type File struct {
	SourcePaths       []string `yaml:"sourcePaths"`
	Quality           *int     `yaml:"quality"`
	OutputDir         string   `yaml:"outputDir"`
	ImageExtensions   []string `yaml:"imageExtensions"`
	Concurrency       *int     `yaml:"concurrency"`
	CacheDir          string   `yaml:"cacheDir"`
	PreserveStructure *bool    `yaml:"preserveStructure"`
}
