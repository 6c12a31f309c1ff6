package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nihei9/acgtag/acg"
	verr "github.com/nihei9/acgtag/error"
	"github.com/nihei9/acgtag/grammar"
	"github.com/nihei9/acgtag/spec"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) (retErr error) {
	tagPath := args[0]
	outPath := args[1]
	defer func() {
		if retErr != nil {
			specErrs, ok := retErr.(verr.SpecErrors)
			if ok {
				for _, err := range specErrs {
					err.FilePath = tagPath
					err.SourceName = tagPath
				}
			}
		}
	}()

	tag, err := readTAG(tagPath)
	if err != nil {
		return err
	}

	g := acg.Generate(tag)

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Cannot write the output file %s: %w", outPath, err)
	}
	defer f.Close()

	return g.Write(f)
}

func readTAG(path string) (*grammar.TAG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the TAG description file %s: %w", path, err)
	}
	defer f.Close()

	var file *spec.File
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		file, err = spec.ParseYAML(f)
	default:
		file, err = spec.Parse(f)
	}
	if err != nil {
		return nil, err
	}

	b := grammar.Builder{
		File: file,
	}
	return b.Build()
}
