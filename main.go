package main

import (
	"log"

	"github.com/abbychau/sqltutor/tutor"
)

const (
	listenAddr = ":8080"
	dataDir    = "data"
)

func main() {
	registry, err := tutor.DefaultRegistry()
	if err != nil {
		log.Fatalf("building lesson registry: %v", err)
	}

	if err := tutor.RunServer(registry, dataDir, listenAddr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
