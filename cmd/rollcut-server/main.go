// rollcut-server exposes the cutting optimizer over HTTP for headless
// use: batch jobs, web frontends, and integration tests.
//
// Build:
//   go build -o rollcut-server ./cmd/rollcut-server
//
// Run:
//   ./rollcut-server -addr :8080

package main

import (
	"flag"
	"log"

	"github.com/rollwise/rollcut/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	router := server.NewRouter()
	log.Printf("rollcut-server listening on %s", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
