package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://nlftp.mlit.go.jp/isj/dls/data"
	defaultKanaURL = "https://www.post.japanpost.jp/zipcode/dl/kogaki/zip/ken_all.zip"
	defaultRomeURL = "https://www.post.japanpost.jp/zipcode/dl/roman/ken_all_rome.zip"

	defaultOazaEdition  = "17.0a"
	defaultGaikuEdition = "21.0a"

	defaultTimeout = 5 * time.Minute

	defaultOazaWorkers  = 2
	defaultGaikuWorkers = 6
)

// Config holds the upstream locations and the local cache directory. Zero
// values fall back to the published defaults.
type Config struct {
	BaseURL      string
	KanaURL      string
	RomeURL      string
	OazaEdition  string
	GaikuEdition string
	CacheDir     string
	Timeout      time.Duration

	// Concurrent download limits for FetchAll. The district server drops
	// connections under load, so its limit stays low.
	OazaWorkers  int
	GaikuWorkers int
}

// Client downloads the upstream archives into a local cache directory and
// parses them into typed rows. Archives already present in the cache are
// reused, so repeated builds do not hit the upstream servers.
type Client struct {
	config Config
	http   *http.Client
	log    zerolog.Logger
}

// NewClient creates a source client with the given configuration.
func NewClient(config Config, log zerolog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.KanaURL == "" {
		config.KanaURL = defaultKanaURL
	}
	if config.RomeURL == "" {
		config.RomeURL = defaultRomeURL
	}
	if config.OazaEdition == "" {
		config.OazaEdition = defaultOazaEdition
	}
	if config.GaikuEdition == "" {
		config.GaikuEdition = defaultGaikuEdition
	}
	if config.CacheDir == "" {
		config.CacheDir = "data"
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	if config.OazaWorkers <= 0 {
		config.OazaWorkers = defaultOazaWorkers
	}
	if config.GaikuWorkers <= 0 {
		config.GaikuWorkers = defaultGaikuWorkers
	}

	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		log:    log,
	}
}

// Oaza fetches and parses one prefecture's district-level archive.
func (c *Client) Oaza(ctx context.Context, prefCode string) ([]OazaRow, error) {
	path, err := c.fetchOaza(ctx, prefCode)
	if err != nil {
		return nil, err
	}

	csv, err := OpenArchiveCSV(path)
	if err != nil {
		return nil, err
	}
	defer csv.Close()

	return ParseOaza(csv)
}

// Gaiku fetches and parses one prefecture's block-level archive.
func (c *Client) Gaiku(ctx context.Context, prefCode string) ([]GaikuRow, error) {
	path, err := c.fetchGaiku(ctx, prefCode)
	if err != nil {
		return nil, err
	}

	csv, err := OpenArchiveCSV(path)
	if err != nil {
		return nil, err
	}
	defer csv.Close()

	return ParseGaiku(csv)
}

// Kana fetches and parses the national kana postal dictionary.
func (c *Client) Kana(ctx context.Context) ([]KanaRow, error) {
	path, err := c.fetch(ctx, c.config.KanaURL, "ken_all.zip")
	if err != nil {
		return nil, err
	}

	csv, err := OpenArchiveCSV(path)
	if err != nil {
		return nil, err
	}
	defer csv.Close()

	return ParseKana(csv)
}

// Rome fetches and parses the national romaji postal dictionary.
func (c *Client) Rome(ctx context.Context) ([]RomeRow, error) {
	path, err := c.fetch(ctx, c.config.RomeURL, "ken_all_rome.zip")
	if err != nil {
		return nil, err
	}

	csv, err := OpenArchiveCSV(path)
	if err != nil {
		return nil, err
	}
	defer csv.Close()

	return ParseRome(csv)
}

// FetchAll warms the cache with every archive the given prefectures need:
// both postal dictionaries, then the district and block archives with a
// separate concurrency limit per source. Failed downloads are logged and
// the rest proceed; the first failure comes back so callers know the
// cache is incomplete.
func (c *Client) FetchAll(ctx context.Context, prefCodes []string) error {
	if _, err := c.fetch(ctx, c.config.KanaURL, "ken_all.zip"); err != nil {
		return err
	}
	if _, err := c.fetch(ctx, c.config.RomeURL, "ken_all_rome.zip"); err != nil {
		return err
	}

	var oaza, gaiku errgroup.Group
	oaza.SetLimit(c.config.OazaWorkers)
	gaiku.SetLimit(c.config.GaikuWorkers)

	for _, code := range prefCodes {
		code := code
		oaza.Go(func() error {
			if _, err := c.fetchOaza(ctx, code); err != nil {
				c.log.Warn().Err(err).Str("pref", code).Msg("district archive download failed")
				return err
			}
			return nil
		})
		gaiku.Go(func() error {
			if _, err := c.fetchGaiku(ctx, code); err != nil {
				c.log.Warn().Err(err).Str("pref", code).Msg("block archive download failed")
				return err
			}
			return nil
		})
	}

	oazaErr := oaza.Wait()
	if err := gaiku.Wait(); err != nil {
		return err
	}
	return oazaErr
}

func (c *Client) fetchOaza(ctx context.Context, prefCode string) (string, error) {
	edition := c.config.OazaEdition
	url := fmt.Sprintf("%s/%s/%s000-%s.zip", c.config.BaseURL, edition, prefCode, edition)
	return c.fetch(ctx, url, fmt.Sprintf("%s000-%s.zip", prefCode, edition))
}

func (c *Client) fetchGaiku(ctx context.Context, prefCode string) (string, error) {
	edition := c.config.GaikuEdition
	url := fmt.Sprintf("%s/%s/%s000-%s.zip", c.config.BaseURL, edition, prefCode, edition)
	return c.fetch(ctx, url, fmt.Sprintf("%s000-%s.zip", prefCode, edition))
}

// fetch downloads url into the cache directory under name and returns the
// local path. An existing cache file is reused without touching the
// network. The download goes to a temp file first so an interrupted
// transfer never leaves a truncated archive behind.
func (c *Client) fetch(ctx context.Context, url, name string) (string, error) {
	path := filepath.Join(c.config.CacheDir, name)
	if _, err := os.Stat(path); err == nil {
		c.log.Debug().Str("path", path).Msg("using cached archive")
		return path, nil
	}

	if err := os.MkdirAll(c.config.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	c.log.Info().Str("url", url).Msg("downloading archive")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download %s: status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(c.config.CacheDir, name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	c.log.Info().Str("path", path).Int64("bytes", written).Msg("downloaded archive")
	return path, nil
}
