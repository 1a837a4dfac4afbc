package source

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// buildArchive assembles an in-memory ZIP holding one Shift_JIS CSV entry,
// the shape every upstream archive has.
func buildArchive(t *testing.T, entryName, csvContent string) []byte {
	t.Helper()

	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), csvContent)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(entryName)
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(encoded)); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestClientOazaCachesDownloads(t *testing.T) {
	archive := buildArchive(t, "13000-17.0a/13000-17.0a.csv", oazaFixture)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/17.0a/13000-17.0a.zip" {
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
		w.Write(archive)
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL:  server.URL,
		CacheDir: t.TempDir(),
	}, zerolog.Nop())

	rows, err := client.Oaza(context.Background(), "13")
	if err != nil {
		t.Fatalf("Oaza() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Oaza() returned %d rows, want 2", len(rows))
	}

	// Second call must be served from the cache.
	if _, err := client.Oaza(context.Background(), "13"); err != nil {
		t.Fatalf("Oaza() second call error = %v", err)
	}
	if requests != 1 {
		t.Errorf("upstream saw %d requests, want 1", requests)
	}
}

func TestClientFetchAllWarmsCache(t *testing.T) {
	archive := buildArchive(t, "data.csv", "fixture\n")

	var mu sync.Mutex
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		w.Write(archive)
	}))
	defer server.Close()

	cache := t.TempDir()
	client := NewClient(Config{
		BaseURL:  server.URL,
		KanaURL:  server.URL + "/kogaki/ken_all.zip",
		RomeURL:  server.URL + "/roman/ken_all_rome.zip",
		CacheDir: cache,
	}, zerolog.Nop())

	if err := client.FetchAll(context.Background(), []string{"01", "13"}); err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	for _, name := range []string{
		"ken_all.zip", "ken_all_rome.zip",
		"01000-17.0a.zip", "13000-17.0a.zip",
		"01000-21.0a.zip", "13000-21.0a.zip",
	} {
		if _, err := os.Stat(filepath.Join(cache, name)); err != nil {
			t.Errorf("cache missing %s: %v", name, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if requests != 6 {
		t.Errorf("upstream saw %d requests, want 6", requests)
	}
}

func TestClientFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(Config{
		KanaURL:  server.URL + "/ken_all.zip",
		CacheDir: t.TempDir(),
	}, zerolog.Nop())

	if _, err := client.Kana(context.Background()); err == nil {
		t.Error("Kana() expected error for 404 response, got nil")
	}
}

func TestOpenArchiveCSVNoEntry(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("readme.txt")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	f.Write([]byte("no data here"))
	w.Close()

	path := filepath.Join(t.TempDir(), "empty.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}

	if _, err := OpenArchiveCSV(path); err == nil {
		t.Error("OpenArchiveCSV() expected error for archive without CSV, got nil")
	}
}
