// Package sde loads the New Eden stargate map from the Eve Online Static Data Export.
//
// The SDE is a zip archive of YAML files. Only the universe files are read:
//
//	sde/fsd/universe/eve/<Region>/region.staticdata
//	sde/fsd/universe/eve/<Region>/<Constellation>/constellation.staticdata
//	sde/fsd/universe/eve/<Region>/<Constellation>/<System>/solarsystem.staticdata
//
// Names come from the directory hierarchy. Files are parsed in parallel, then the map
// is assembled in a single pass by universe.Build.
package sde

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sanonone/evenav/pkg/metrics"
	"github.com/sanonone/evenav/pkg/universe"
	"golang.org/x/sync/errgroup"
)

// DefaultURL is where CCP publishes the current SDE. It is a large download.
const DefaultURL = "https://eve-static-data-export.s3-eu-west-1.amazonaws.com/tranquility/sde.zip"

var (
	// ErrNoUniverse is returned when the source contains no universe files.
	ErrNoUniverse = errors.New("no universe data found")
	// ErrMissingParent is returned when a system or constellation has no parent file.
	ErrMissingParent = errors.New("missing parent")
)

// LoadPath loads the map from a zip archive or an unpacked directory.
func LoadPath(ctx context.Context, p string) (*universe.Map, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("could not open SDE '%s': %w", p, err)
	}
	if st.IsDir() {
		return Load(ctx, os.DirFS(p))
	}

	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("could not open SDE archive '%s': %w", p, err)
	}
	defer zr.Close()
	return Load(ctx, zr)
}

// Load reads every universe file of fsys and builds the map.
func Load(ctx context.Context, fsys fs.FS) (*universe.Map, error) {
	start := time.Now()

	var entries []entry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if e, ok := classify(p); ok {
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan SDE: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoUniverse
	}

	results := make([]parsed, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, e.path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", e.path, err)
			}
			results[i], err = parse(e, data)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds, err := assemble(results)
	if err != nil {
		return nil, err
	}
	m, err := universe.Build(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to build universe: %w", err)
	}

	metrics.UniverseSystems.Set(float64(m.Len()))
	slog.Info("Universe loaded",
		"files", len(entries),
		"systems", m.Len(),
		"gates", m.Gates(),
		"duration", time.Since(start).String(),
	)
	return m, nil
}

// assemble resolves parents by directory and produces the dataset for universe.Build.
func assemble(items []parsed) (universe.Dataset, error) {
	ds := universe.Dataset{
		Constellations: make(map[uint64]string),
		Regions:        make(map[uint64]string),
	}
	regions := make(map[string]uint64)
	constellations := make(map[string]parsed)

	for _, it := range items {
		switch it.kind {
		case kindRegion:
			regions[it.key] = it.id
			ds.Regions[it.id] = it.name
		case kindConstellation:
			constellations[it.key] = it
			ds.Constellations[it.id] = it.name
		}
	}

	for _, it := range items {
		if it.kind != kindSystem {
			continue
		}
		c, ok := constellations[it.parent]
		if !ok {
			return ds, fmt.Errorf("%w: constellation %q of system %s", ErrMissingParent, it.parent, it.name)
		}
		r, ok := regions[c.parent]
		if !ok {
			return ds, fmt.Errorf("%w: region %q of system %s", ErrMissingParent, c.parent, it.name)
		}
		rec := it.system
		rec.ConstellationID = c.id
		rec.RegionID = r
		ds.Systems = append(ds.Systems, rec)
	}
	return ds, nil
}

// Download fetches the SDE archive at url into dst. The file is written under a
// temporary name and renamed once complete.
func Download(ctx context.Context, url, dst string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download SDE: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to download SDE: unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".*.part")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to write SDE: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return n, err
	}
	slog.Info("SDE downloaded", "url", url, "path", dst, "bytes", n)
	return n, nil
}
