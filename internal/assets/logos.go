package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var logoExtensions = map[string]bool{
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// LogoExt picks a file extension for a logo URL from its path, defaulting to
// .svg when the path carries none of the known image extensions.
func LogoExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".svg"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if logoExtensions[ext] {
		return ext
	}
	return ".svg"
}

// Downloader fetches opponent logo files into an asset directory.
type Downloader struct {
	dir  *Dir
	http *http.Client
}

// NewDownloader creates a Downloader writing into dir.
func NewDownloader(dir *Dir) *Downloader {
	return &Downloader{
		dir:  dir,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Download fetches a logo and writes it as <slug><ext> in the asset
// directory, returning the written path.
func (dl *Downloader) Download(ctx context.Context, logoURL, slug string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := dl.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading logo: %w", err)
	}

	dest := filepath.Join(dl.dir.Path(), slug+LogoExt(logoURL))
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("writing logo: %w", err)
	}
	return dest, nil
}
