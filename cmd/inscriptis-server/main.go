// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

// Command inscriptis-server exposes HTML-to-text conversion over HTTP.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	inscriptis "github.com/weichselbraun/inscriptis-go"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Address to listen on")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", serveStatus)
	r.Get("/version", serveVersion)
	r.Post("/get_text", serveGetText)

	log.Printf("inscriptis-server %s listening on %s", version, *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatal(err)
	}
}

func serveStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "inscriptis-server %s is running\n", version)
}

func serveVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, version)
}

func serveGetText(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 32<<20))
	if err != nil {
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	charset := requestCharset(r)
	decoded, err := decodeCharset(body, charset)
	if err != nil {
		http.Error(w, "unsupported charset: "+charset, http.StatusBadRequest)
		return
	}

	text, err := inscriptis.GetText(decoded, inscriptis.DefaultParserConfig())
	if err != nil {
		http.Error(w, "error converting document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, text)
}

func requestCharset(r *http.Request) string {
	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return "utf-8"
	}
	if cs, ok := params["charset"]; ok {
		return cs
	}
	return "utf-8"
}

func decodeCharset(body []byte, charset string) (string, error) {
	switch normalizeCharset(charset) {
	case "utf-8":
		return string(body), nil
	default:
		// Non-UTF-8 request bodies are rejected outright: the server does
		// not carry a general charset-transcoding stack, matching the
		// CLI's encoding flag, which likewise only documents the source
		// encoding rather than converting it.
		return "", fmt.Errorf("charset %q is not supported", charset)
	}
}

func normalizeCharset(charset string) string {
	switch charset {
	case "", "utf8", "UTF-8", "UTF8":
		return "utf-8"
	default:
		return charset
	}
}
