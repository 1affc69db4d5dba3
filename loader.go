package l10n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// Options selects one configuration source for a store. Contents, FsPath and
// URI are mutually exclusive data sources; when several are set the first in
// that order wins. Formatter may accompany any source, or stand alone to swap
// the substitution function without touching the bundle. A zero Options
// resets the store to its empty fallback state.
type Options struct {
	// Contents supplies the bundle as an in-memory value: a Bundle, a
	// map[string]string, a loosely typed map from a JSON decode, raw JSON
	// bytes, or the wrapped {version, contents} shape.
	Contents any

	// FsPath names a local bundle file, read synchronously. The format is
	// picked from the extension (.json, .yaml, .yml, .toml).
	FsPath string

	// URI points at a bundle to fetch: file: URIs read the local filesystem,
	// anything else is fetched over HTTP. Only ConfigureContext accepts it.
	URI string

	// Formatter overrides the default placeholder substitution.
	Formatter FormatterFunc
}

// ErrNeedsContext is returned by Configure when Options.URI is set. Fetching
// is only available through ConfigureContext, so the synchronous entry point
// never blocks on the network.
var ErrNeedsContext = errors.New("l10n: URI source requires ConfigureContext")

// Configure replaces the store's state from a synchronous source. The swap is
// atomic: a failed load leaves the previous bundle and formatter in place,
// and readers never observe a partially decoded bundle.
func (s *Store) Configure(opts Options) error {
	switch {
	case opts.Contents != nil:
		b, err := bundleFromValue(opts.Contents)
		if err != nil {
			return err
		}
		s.replace(b, opts.Formatter)
	case opts.FsPath != "":
		b, err := ReadBundleFile(opts.FsPath)
		if err != nil {
			return err
		}
		s.replace(b, opts.Formatter)
	case opts.URI != "":
		return ErrNeedsContext
	case opts.Formatter != nil:
		s.setFormatter(opts.Formatter)
	default:
		s.reset()
	}
	return nil
}

// ConfigureContext is the fetching variant of Configure: it additionally
// accepts Options.URI and blocks until the resource has been read and
// decoded. ctx bounds the fetch; callers wanting a concurrent load run this
// in their own goroutine and own the timeout.
func (s *Store) ConfigureContext(ctx context.Context, opts Options) error {
	if opts.Contents == nil && opts.FsPath == "" && opts.URI != "" {
		data, format, err := fetchBundle(ctx, opts.URI)
		if err != nil {
			return err
		}
		b, err := DecodeBundle(data, format)
		if err != nil {
			return fmt.Errorf("fetch bundle %s: %w", opts.URI, err)
		}
		s.replace(b, opts.Formatter)
		return nil
	}
	return s.Configure(opts)
}

func fetchBundle(ctx context.Context, uri string) ([]byte, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, "", fmt.Errorf("parse uri %q: %w", uri, err)
	}
	// file: 协议直接读本地文件系统，其余协议走 HTTP
	if u.Scheme == "file" {
		data, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, "", err
		}
		return data, FormatForPath(u.Path), nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("fetch %s: unexpected status %s", uri, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", uri, err)
	}
	return data, FormatForPath(u.Path), nil
}
