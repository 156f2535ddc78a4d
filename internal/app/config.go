package app

import (
	"errors"

	"github.com/specialistvlad/aarpublish/internal/javadoc"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string // directory or .hcl file

	// Repository and Component override the project's publishing block.
	Repository string
	Component  string

	// Describe prints the publication graph and tasks instead of running them.
	Describe bool

	JavadocTool string
	// Javadoc replaces the external tool; tests inject a fake here.
	Javadoc javadoc.Generator

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 0 {
		return nil, errors.New("WorkerCount must not be negative")
	}
	return &cfg, nil
}
