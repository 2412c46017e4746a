package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source supplies the product catalog. Implemented by *HTTPSource and
// *FileSource; tests may provide their own.
type Source interface {
	FetchCatalog(ctx context.Context) ([]Product, error)
}

var (
	_ Source = (*HTTPSource)(nil)
	_ Source = (*FileSource)(nil)
)

const (
	defaultBaseURL   = "127.0.0.1:8080"
	defaultUserAgent = "storefront/0.1"
	catalogPath      = "products.json"
)

// HTTPSource fetches products.json from a catalog server.
type HTTPSource struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewHTTPSource builds an HTTPSource for base. A zero timeout leaves the
// request bounded only by the caller's context.
func NewHTTPSource(base string, timeout time.Duration) (*HTTPSource, error) {
	u, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &HTTPSource{
		baseURL:   u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCatalog retrieves the product list.
func (s *HTTPSource) FetchCatalog(ctx context.Context) ([]Product, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	rel := &url.URL{Path: catalogPath}
	reqURL := s.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	var items []Product
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return items, nil
}

// FileSource reads the catalog from a local JSON file.
type FileSource struct {
	Path string
}

// FetchCatalog reads and decodes the file. The context is only checked
// before the read starts.
func (s *FileSource) FetchCatalog(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var items []Product
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return items, nil
}

// NewSource picks a source from location: http(s) URLs and host:port values
// use HTTPSource, everything else is treated as a file path.
func NewSource(location string, timeout time.Duration) (Source, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" || isRemote(trimmed) {
		return NewHTTPSource(trimmed, timeout)
	}
	return &FileSource{Path: trimmed}, nil
}

func isRemote(location string) bool {
	if strings.Contains(location, "://") {
		return true
	}
	if strings.ContainsAny(location, `/\`) || strings.HasSuffix(location, ".json") {
		return false
	}
	// Bare host:port
	return strings.Contains(location, ":")
}

// parseBaseURL normalizes base into a directory URL so products.json
// resolves beneath any path prefix ("http://host/shop" -> "/shop/products.json").
func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", base, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/"+catalogPath)
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
