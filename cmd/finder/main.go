// Command finder runs the clothing analysis on a local image and optionally
// searches for matching products, printing JSON to stdout.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/wichananm65/outfit-finder-backend/internal/analyze"
	"github.com/wichananm65/outfit-finder-backend/internal/config"
	"github.com/wichananm65/outfit-finder-backend/internal/search"
)

func main() {
	imagePath := flag.String("image", "", "path to a clothing photo")
	doSearch := flag.Bool("search", false, "also search for matching products")
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(context.Background(), *imagePath, *doSearch); err != nil {
		fmt.Fprintln(os.Stderr, "finder:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, imagePath string, doSearch bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	payload := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)

	model, err := analyze.NewVisionModel(ctx, cfg, &http.Client{Timeout: cfg.UpstreamTimeout})
	if err != nil {
		return err
	}
	features, err := analyze.NewService(cfg, model).Analyze(ctx, payload)
	if err != nil {
		return err
	}

	out := map[string]any{"features": features}
	if doSearch {
		svc := search.NewService(cfg, search.NewSerpAPI(cfg.SerpAPIURL, cfg.SerpAPIKey, cfg.UpstreamTimeout))
		results, err := svc.Search(ctx, features)
		if err != nil {
			return err
		}
		out["results"] = results
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
