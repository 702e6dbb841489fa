package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const indemnifyResponse = `[
  {
    "word": "indemnify",
    "meanings": [
      {
        "partOfSpeech": "verb",
        "definitions": [
          {"definition": "To secure against loss or damage; to insure."},
          {"definition": "To compensate for loss."}
        ]
      }
    ]
  }
]`

func TestLookup(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(indemnifyResponse))
	}))
	defer server.Close()

	client := New(server.URL)
	def, err := client.Lookup(context.Background(), "Indemnify")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if def != "To secure against loss or damage; to insure." {
		t.Errorf("Lookup() = %q, want first definition", def)
	}
	if gotPath != "/indemnify" {
		t.Errorf("request path = %q, want lowercased /indemnify", gotPath)
	}
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"No Definitions Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Lookup(context.Background(), "zxqvnotaword")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound", err)
	}
}

func TestLookupEmptyTerm(t *testing.T) {
	client := New("http://unused.invalid")
	if _, err := client.Lookup(context.Background(), "   "); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound", err)
	}
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Lookup(context.Background(), "term")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want a non-ErrNotFound failure", err)
	}
}

func TestLookupMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.Lookup(context.Background(), "term"); err == nil {
		t.Error("Lookup() error = nil, want decode failure")
	}
}

func TestLookupNoUsableDefinition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"word":"term","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"  "}]}]}]`))
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.Lookup(context.Background(), "term"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound for blank definitions", err)
	}
}
