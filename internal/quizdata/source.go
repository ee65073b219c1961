package quizdata

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultPath is the relative location of the bundled question document.
const DefaultPath = "data/questions.json"

// EmbeddedLocation selects the question set compiled into the binary.
const EmbeddedLocation = "embedded"

// maxDocumentSize bounds how much of a remote document is read.
const maxDocumentSize = 8 << 20

// ErrDocumentTooLarge is returned for a remote document over maxDocumentSize.
var ErrDocumentTooLarge = errors.New("document exceeds 8 MiB")

//go:embed sample/questions.json
var sampleFS embed.FS

// Source fetches the raw question document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Describe names the source for logs and errors.
	Describe() string
}

// NewSource picks a Source for location: the literal "embedded", an
// http(s) URL, or a file path. An empty location means DefaultPath.
func NewSource(location string, timeout time.Duration) Source {
	switch {
	case location == "":
		return FileSource{Path: DefaultPath}
	case location == EmbeddedLocation:
		return EmbeddedSource{}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return HTTPSource{URL: location, Client: &http.Client{Timeout: timeout}}
	default:
		return FileSource{Path: location}
	}
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.Path)
}

func (s FileSource) Describe() string { return s.Path }

// HTTPSource fetches the document with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxDocumentSize {
		return nil, ErrDocumentTooLarge
	}
	return body, nil
}

func (s HTTPSource) Describe() string { return s.URL }

// EmbeddedSource serves the sample question set built into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sampleFS.ReadFile("sample/questions.json")
}

func (EmbeddedSource) Describe() string { return EmbeddedLocation }
