package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	trainconf "github.com/atomistira/go-trainconf"
)

func main() {
	kind := flag.String("kind", "dataset", "document kind: dataset or hypers")
	source := flag.String("source", "options.yaml", "options document path or URL")
	format := flag.String("format", "yaml", "output format: yaml or json")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	var (
		doc any
		err error
	)
	switch *kind {
	case "dataset":
		var cfg trainconf.DatasetConfig
		cfg, err = trainconf.ResolveDataset(ctx, src)
		if err == nil {
			doc = cfg.Document()
		}
	case "hypers":
		var h trainconf.Hypers
		h, err = trainconf.ResolveHypers(ctx, src)
		if err == nil {
			doc = h.Document()
		}
	default:
		log.Fatalf("unknown kind %q (want dataset or hypers)", *kind)
	}
	if err != nil {
		log.Fatalf("Failed to resolve %s options: %v", *kind, err)
	}

	rendered, err := render(doc, *format)
	if err != nil {
		log.Fatalf("Failed to render output: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Resolved options written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func render(doc any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	case "yaml":
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func parseSource(raw string) trainconf.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return trainconf.SourceFromURL(path)
	}
	return trainconf.SourceFromFile(path)
}
