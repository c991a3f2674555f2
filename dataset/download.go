package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrNotDataset means the download URL served something other than the file.
var ErrNotDataset = errors.New("dataset: download is not a data file")

// EnsureFile downloads url to path unless path already exists. It reports
// whether a download happened. The file only appears at path once fully
// written.
func EnsureFile(ctx context.Context, client *http.Client, path, url string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		log.Info().Str("path", path).Msg("📄 Dataset file already present, reading it")
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("dataset: stat %q: %w", path, err)
	}

	log.Info().Str("url", url).Msg("⬇️ Downloading dashboard dataset (first run only, may take a few minutes)")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("dataset: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("dataset: download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("dataset: download returned status %d", resp.StatusCode)
	}
	// Google Drive answers large files with an HTML virus-scan page instead of
	// the file; saving it would make every later start skip the download.
	if mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mediaType == "text/html" {
		return false, fmt.Errorf("%w: %s returned an HTML page", ErrNotDataset, url)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("dataset: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dataset-*.csv")
	if err != nil {
		return false, fmt.Errorf("dataset: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("dataset: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("dataset: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, fmt.Errorf("dataset: rename: %w", err)
	}

	log.Info().Str("path", path).Int64("bytes", n).Msg("✅ Dataset downloaded")
	return true, nil
}
