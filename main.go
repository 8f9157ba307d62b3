package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/randresys/magic-pencil-guide/server"
	"github.com/randresys/magic-pencil-guide/store"
	"github.com/randresys/magic-pencil-guide/tutorial"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	addr := flag.String("addr", "", "http listen address (overrides config.server_addr)")
	flag.Parse()

	cfg, err := store.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	model, err := buildModel(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	artifacts, err := store.NewArtifactStore(cfg.UploadDir, cfg.GeneratedDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pipeline, err := tutorial.NewPipeline(model, artifacts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	srv, err := server.New(pipeline, artifacts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	listen := cfg.ServerAddr
	if *addr != "" {
		listen = *addr
	}
	log.Printf("Starting tutorial server on %s", listen)
	if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildModel(cfg store.Config) (tutorial.ModelClient, error) {
	if cfg.Model == nil || cfg.Model.Provider == "" {
		return nil, fmt.Errorf("model config missing; please set model.provider/model/api_key in config")
	}
	settings := &tutorial.ModelSettings{
		Provider: cfg.Model.Provider,
		Model:    cfg.Model.Model,
		APIKey:   cfg.Model.APIKey,
		BaseURL:  cfg.Model.BaseURL,
	}
	switch cfg.Model.Provider {
	case "gemini":
		return tutorial.NewGeminiModel(context.Background(), settings)
	case "openai":
		// Any OpenAI-compatible endpoint works; image-capable gateways need base_url.
		return tutorial.NewOpenAIModelFromConfig(settings)
	default:
		return nil, fmt.Errorf("model provider %s not supported", cfg.Model.Provider)
	}
}
