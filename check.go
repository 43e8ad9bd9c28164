// Package spl wires proof loading, verification and reporting together
// for consumers such as the command line interface.
package spl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
	"github.com/khang200923/simple-propositional-logic/internal/prooffile"
	tt "github.com/khang200923/simple-propositional-logic/internal/types"
)

// CheckEngine is the interface consumed by ProcessFiles.
type CheckEngine interface {
	CheckFile(path string) (tt.CheckResult, error)
	CheckSource(source []byte) (tt.CheckResult, error)
	Accepts(path string) bool
}

// Config represents the checker configuration.
type Config struct {
	Name               string   `yaml:"name"`
	AllowMetaVariables bool     `yaml:"allow_metavariables"`
	Extensions         []string `yaml:"extensions"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Name:       "spl",
		Extensions: []string{".proof", ".yaml", ".yml"},
	}
}

// Engine verifies proof files using a configured verifier.
type Engine struct {
	verifier   *logic.Verifier
	extensions map[string]bool
}

// New creates an engine from the configuration file at
// configurationPath. An empty path selects the defaults.
func New(configurationPath string) (*Engine, error) {
	config := DefaultConfig()
	if configurationPath != "" {
		parsed, err := parseConfigurationFile(configurationPath)
		if err != nil {
			return nil, err
		}
		config = parsed
	}
	return NewWithConfig(config), nil
}

// NewWithConfig creates an engine from an in-memory configuration.
func NewWithConfig(config Config) *Engine {
	extensions := config.Extensions
	if len(extensions) == 0 {
		extensions = DefaultConfig().Extensions
	}
	accepted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		accepted[ext] = true
	}

	return &Engine{
		verifier: logic.NewVerifierWithConfig(logic.VerifyConfig{
			AllowMetaVariables: config.AllowMetaVariables,
		}),
		extensions: accepted,
	}
}

// CheckFile loads and verifies the proof file at path.
func (e *Engine) CheckFile(path string) (tt.CheckResult, error) {
	proof, name, err := prooffile.Load(path)
	if err != nil {
		return tt.CheckResult{}, err
	}
	return tt.CheckResult{
		Filename: path,
		Name:     name,
		Proof:    proof,
		Report:   e.verifier.Verify(proof),
	}, nil
}

// CheckSource verifies proof document bytes.
func (e *Engine) CheckSource(source []byte) (tt.CheckResult, error) {
	proof, name, err := prooffile.Parse(source)
	if err != nil {
		return tt.CheckResult{}, err
	}
	return tt.CheckResult{
		Name:   name,
		Proof:  proof,
		Report: e.verifier.Verify(proof),
	}, nil
}

// Accepts reports whether path looks like a proof file.
func (e *Engine) Accepts(path string) bool {
	return e.extensions[filepath.Ext(path)]
}

// ProcessFile checks a single proof file. It is the processor normally
// passed to ProcessFiles.
func ProcessFile(engine CheckEngine, path string) (tt.CheckResult, error) {
	return engine.CheckFile(path)
}

// ProcessSource checks in-memory proof document bytes.
func ProcessSource(engine CheckEngine, source []byte) (tt.CheckResult, error) {
	return engine.CheckSource(source)
}

// ProcessFiles checks every given path, recursing into directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	paths []string,
	processor func(CheckEngine, string) (tt.CheckResult, error),
) ([]tt.CheckResult, error) {
	var allResults []tt.CheckResult
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

// ProcessPath checks one file, or every accepted proof file under one
// directory. Directory entries are checked by a bounded pool of workers;
// verification is pure, so the results need no coordination beyond
// collection.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	path string,
	processor func(CheckEngine, string) (tt.CheckResult, error),
) ([]tt.CheckResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		result, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []tt.CheckResult{result}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && engine.Accepts(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	resultChan := make(chan tt.CheckResult, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				result, err := processor(engine, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
				} else {
					resultChan <- result
				}
				bar.Add(1)
			}(filePath)
		}
	}

	var results []tt.CheckResult
	var firstErr error
	for range files {
		select {
		case err := <-errorChan:
			if firstErr == nil {
				firstErr = err
			}
		case result := <-resultChan:
			results = append(results, result)
		}
	}

	fmt.Println()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}
