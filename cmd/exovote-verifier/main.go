package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zkvoting/exovote/api"
	"github.com/zkvoting/exovote/log"
	"github.com/zkvoting/exovote/nodeapi"
	"github.com/zkvoting/exovote/verifier"
	"github.com/zkvoting/exovote/zkproof"
)

func main() {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	log.Init(cfg.Log.Level, cfg.Log.Output)
	log.Infow("starting exovote-verifier", "version", Version)

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Load the signing key material
	signer, err := loadSigner(cfg)
	if err != nil {
		log.Fatalf("failed to load signing keys: %v", err)
	}

	// Load the circuit verification key, the cryptographic context proofs
	// are checked against
	primitive, err := zkproof.NewFromFile(cfg.Keys.VKey)
	if err != nil {
		log.Fatalf("failed to load circuit verification key: %v", err)
	}

	// Set up a client for communicating with the node
	node, err := nodeapi.New(cfg.Node)
	if err != nil {
		log.Fatalf("failed to create node client: %v", err)
	}

	// Assemble the verifier core
	v, err := verifier.New(node, primitive, signer)
	if err != nil {
		log.Fatalf("failed to create verifier: %v", err)
	}

	// Start the API server
	if _, err := api.New(&api.APIConfig{
		Host:     cfg.API.Host,
		Port:     cfg.API.Port,
		Verifier: v,
	}); err != nil {
		log.Fatalf("failed to start API: %v", err)
	}
	log.Infow("verifier ready", "node", cfg.Node,
		"publicKey", fmt.Sprintf("%x", signer.PublicKey()))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Infow("received signal, shutting down", "signal", sig.String())
}

// loadSigner reads the secret key seed from disk and, when a public key
// file is configured, checks that both halves belong together.
func loadSigner(cfg *Config) (*verifier.Signer, error) {
	seed, err := os.ReadFile(cfg.Keys.Secret)
	if err != nil {
		return nil, fmt.Errorf("could not read secret key file: %w", err)
	}
	signer, err := verifier.NewSignerFromSeed(seed)
	if err != nil {
		return nil, err
	}
	if cfg.Keys.Public != "" {
		public, err := os.ReadFile(cfg.Keys.Public)
		if err != nil {
			return nil, fmt.Errorf("could not read public key file: %w", err)
		}
		if !bytes.Equal(public, signer.PublicKey()) {
			return nil, fmt.Errorf("public key file does not match the secret key")
		}
	}
	return signer, nil
}
