package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Asset is one downloadable data file.
type Asset struct {
	// Name identifies the asset in logs ("votes", "boundaries").
	Name string

	// URL is the source location.
	URL string

	// Target is the local file path to write.
	Target string

	// Unzip extracts the payload as a zip archive into the target's
	// directory instead of writing it verbatim. The first member whose
	// name ends in .geojson or .json is also copied to Target so
	// callers get a stable path.
	Unzip bool
}

// Fetcher downloads assets over HTTP.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger

	// Force re-downloads assets even when the target already exists.
	Force bool
}

// New creates a Fetcher with the given timeout per request.
func New(timeout time.Duration, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Missing returns the assets whose targets do not exist yet.
func Missing(assets []Asset) []Asset {
	var out []Asset
	for _, a := range assets {
		if _, err := os.Stat(a.Target); os.IsNotExist(err) {
			out = append(out, a)
		}
	}
	return out
}

// FetchAll downloads the given assets concurrently. Present targets
// are skipped unless Force is set. The first failure cancels the
// remaining downloads.
func (f *Fetcher) FetchAll(ctx context.Context, assets []Asset) error {
	if !f.Force {
		assets = Missing(assets)
	}
	if len(assets) == 0 {
		f.logger.Info("all data assets already present")
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, a := range assets {
		eg.Go(func() error {
			return f.fetch(ctx, a)
		})
	}
	return eg.Wait()
}

// fetch downloads a single asset.
func (f *Fetcher) fetch(ctx context.Context, a Asset) error {
	f.logger.Info("downloading asset", "name", a.Name, "url", a.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", a.Name, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", a.Name, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Response body

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", a.Name, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(a.Target), 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if a.Unzip {
		return f.extractZip(resp.Body, a)
	}
	return writeFile(a.Target, resp.Body)
}

// extractZip reads the whole payload (zip needs random access) and
// extracts the members next to the target, skipping members that are
// already present so re-runs stay cheap. The first GeoJSON member is
// also written to the target path itself.
func (f *Fetcher) extractZip(r io.Reader, a Asset) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %s archive: %w", a.Name, err)
	}
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return fmt.Errorf("failed to open %s archive: %w", a.Name, err)
	}

	dir := filepath.Dir(a.Target)
	targetWritten := false
	for _, member := range zr.File {
		name := filepath.Base(member.Name)
		if name == "" || member.FileInfo().IsDir() {
			continue
		}
		src, err := member.Open()
		if err != nil {
			return fmt.Errorf("failed to open archive member %s: %w", member.Name, err)
		}

		isGeo := strings.HasSuffix(name, ".geojson") || strings.HasSuffix(name, ".json")
		if isGeo && !targetWritten {
			err = writeFile(a.Target, src)
			targetWritten = true
		} else {
			out := filepath.Join(dir, name)
			if _, statErr := os.Stat(out); statErr == nil {
				_ = src.Close()
				continue
			}
			err = writeFile(out, src)
		}
		_ = src.Close()
		if err != nil {
			return err
		}
	}
	if !targetWritten {
		return fmt.Errorf("archive for %s contains no GeoJSON member", a.Name)
	}
	return nil
}

func writeFile(path string, r io.Reader) error {
	out, err := os.Create(path) //nolint:gosec // Target path comes from configuration
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return out.Close()
}
