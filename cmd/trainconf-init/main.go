package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomistira/go-trainconf/pkg/wizard"
)

func main() {
	datasetOut := flag.String("dataset", "dataset.yaml", "path for the generated dataset options")
	hypersOut := flag.String("hypers", "hypers.yaml", "path for the generated hyperparameter options")
	flag.Parse()

	ctx := context.Background()

	out, err := wizard.Run(ctx, wizard.NewSurveyDriver(), nil)
	if err != nil {
		if errors.Is(err, wizard.ErrAborted) {
			fmt.Println("Aborted.")
			os.Exit(1)
		}
		log.Fatalf("Failed to scaffold options: %v", err)
	}

	if err := writeYAML(*datasetOut, out.DatasetDocument()); err != nil {
		log.Fatalf("Failed to write dataset options: %v", err)
	}
	if err := writeYAML(*hypersOut, out.HypersDocument()); err != nil {
		log.Fatalf("Failed to write hyperparameter options: %v", err)
	}

	fmt.Printf("Wrote %s and %s for %s\n", *datasetOut, *hypersOut, out.Architecture)
}

func writeYAML(path string, doc map[string]any) error {
	rendered, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, rendered, 0o644)
}
