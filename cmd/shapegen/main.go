// Command shapegen regenerates the model, operation, paginator and error
// sources from the embedded Comprehend service description.
//
// Usage:
//
//	shapegen [-out dir] [-check]
//
// With -check nothing is written and the command fails when a generated file
// is out of date.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pricofy/comprehend-go/internal/codegen"
	"github.com/pricofy/comprehend-go/internal/logger"
	"github.com/pricofy/comprehend-go/internal/schema"
)

func main() {
	out := flag.String("out", ".", "module root to write generated files into")
	check := flag.Bool("check", false, "report stale files instead of writing them")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logger.New(logger.Options{Level: *level, Format: "console", Service: "shapegen", Writer: os.Stderr})

	stale, err := run(*out, *check)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
	for _, path := range stale {
		if *check {
			log.Warn().Str("file", path).Msg("out of date")
		} else {
			log.Info().Str("file", path).Msg("wrote")
		}
	}
	if *check && len(stale) > 0 {
		os.Exit(1)
	}
}

// run generates every file under root and returns the paths whose content
// changed. With check set nothing is written.
func run(root string, check bool) ([]string, error) {
	doc, err := schema.Load()
	if err != nil {
		return nil, err
	}
	files, err := codegen.Generate(doc)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if bytes.Equal(current, f.Content) {
			continue
		}
		stale = append(stale, f.Path)
		if check {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return stale, nil
}
