package fetch

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/tunedeck/tunedeck/internal/model"
)

// pngBytes returns a minimal valid PNG for serving from test servers.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestFetchResource_Success(t *testing.T) {
	data := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	res, err := fetcher.fetchResource(context.Background(), server.URL+"/cover.png")
	if err != nil {
		t.Fatalf("fetchResource returned error: %v", err)
	}
	if res.Name() != "cover.png" {
		t.Errorf("resource name = %s, expected cover.png", res.Name())
	}
	if !bytes.Equal(res.Content(), data) {
		t.Error("resource content should match served bytes")
	}
}

func TestFetchResource_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.png":
			http.NotFound(w, r)
		case "/not-an-image":
			w.Write([]byte("definitely not pixels"))
		}
	}))
	defer server.Close()

	tests := []struct {
		name string
		path string
	}{
		{"http status error", "/missing.png"},
		{"decode error", "/not-an-image"},
	}

	fetcher := NewHTTPFetcher()
	for _, test := range tests {
		if _, err := fetcher.fetchResource(context.Background(), server.URL+test.path); err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
		}
	}
}

func TestSubscribe_DeliversEmptySynchronously(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hold the request so only the synchronous phase can arrive.
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	var phases []model.ArtworkPhase
	cancel := fetcher.Subscribe(server.URL+"/slow.png", func(phase model.ArtworkPhase, _ fyne.Resource) {
		phases = append(phases, phase)
	})
	defer cancel()

	if len(phases) != 1 || phases[0] != model.ArtworkEmpty {
		t.Fatalf("expected exactly [Empty] after Subscribe returns, got %v", phases)
	}
}

func TestSubscribe_TerminalFailure(t *testing.T) {
	test.NewApp()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	terminal := make(chan model.ArtworkPhase, 1)
	cancel := fetcher.Subscribe(server.URL+"/gone.png", func(phase model.ArtworkPhase, _ fyne.Resource) {
		if phase.IsTerminal() {
			terminal <- phase
		}
	})
	defer cancel()

	select {
	case phase := <-terminal:
		if phase != model.ArtworkFailure {
			t.Errorf("terminal phase = %s, expected Failure", phase)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for terminal phase")
	}
}

func TestSubscribe_TerminalSuccess(t *testing.T) {
	test.NewApp()
	data := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	type result struct {
		phase model.ArtworkPhase
		img   fyne.Resource
	}
	terminal := make(chan result, 1)
	cancel := fetcher.Subscribe(server.URL+"/cover.png", func(phase model.ArtworkPhase, img fyne.Resource) {
		if phase.IsTerminal() {
			terminal <- result{phase, img}
		}
	})
	defer cancel()

	select {
	case got := <-terminal:
		if got.phase != model.ArtworkSuccess {
			t.Fatalf("terminal phase = %s, expected Success", got.phase)
		}
		if got.img == nil || !bytes.Equal(got.img.Content(), data) {
			t.Error("success phase should carry the fetched image")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for terminal phase")
	}
}

func TestSubscribe_CancelDiscardsResult(t *testing.T) {
	test.NewApp()
	data := pngBytes(t)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write(data)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	terminal := make(chan model.ArtworkPhase, 1)
	cancel := fetcher.Subscribe(server.URL+"/cover.png", func(phase model.ArtworkPhase, _ fyne.Resource) {
		if phase.IsTerminal() {
			terminal <- phase
		}
	})

	cancel()
	close(release)

	select {
	case phase := <-terminal:
		t.Errorf("cancelled subscription delivered %s", phase)
	case <-time.After(300 * time.Millisecond):
		// Silence is the contract.
	}
}
