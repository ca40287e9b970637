package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
)

// The mock serves canned OMDB-shaped records keyed by exact title, and the
// provider's "Response":"False" payload for anything else.

func main() {
	var (
		port = flag.String("port", "9099", "port to listen on")
		data = flag.String("data", "mock-omdb.json", "path to mock data file")
	)
	flag.Parse()

	file, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read mock data: %v", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(file, &payload); err != nil {
		log.Fatalf("parse mock data: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		title := r.URL.Query().Get("t")
		entry, ok := payload[title]
		if !ok {
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			return
		}
		_, _ = w.Write(entry)
	})

	addr := ":" + *port
	log.Printf("mock omdb listening on %s (%d titles)", addr, len(payload))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
