package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/custodia-labs/zenith/data"
	"github.com/custodia-labs/zenith/internal/core/domain"
	"github.com/custodia-labs/zenith/internal/core/ports/driven"
	"github.com/custodia-labs/zenith/internal/logger"
)

// BuiltinSeries names the series tables compiled into the binary.
const BuiltinSeries = "builtin"

// Ensure Source implements the interface.
var _ driven.EphemerisSource = (*Source)(nil)

// Source reads series tables from a filesystem and an optional elements file.
type Source struct {
	series       fs.FS
	seriesName   string
	elementsPath string
}

// NewSource creates a source for a series directory and an elements file.
// Either may be empty. seriesDir may be BuiltinSeries.
func NewSource(seriesDir, elementsFile string) (*Source, error) {
	s := &Source{seriesName: seriesDir, elementsPath: elementsFile}

	switch seriesDir {
	case "":
	case BuiltinSeries:
		sub, err := fs.Sub(data.Series, "series")
		if err != nil {
			return nil, fmt.Errorf("open builtin series: %w", err)
		}
		s.series = sub
	default:
		info, err := os.Stat(seriesDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("series directory %s does not exist; using orbital elements", seriesDir)
				return s, nil
			}
			return nil, fmt.Errorf("open series directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: series path %s is not a directory", domain.ErrInvalidInput, seriesDir)
		}
		s.series = os.DirFS(seriesDir)
	}

	return s, nil
}

// NewFSSource creates a source over an arbitrary filesystem of series tables.
func NewFSSource(series fs.FS, elementsFile string) *Source {
	return &Source{series: series, seriesName: "fs", elementsPath: elementsFile}
}

// LoadSeries decodes every *.toml table in the series filesystem.
func (s *Source) LoadSeries() (map[domain.Body]*domain.SeriesTable, error) {
	if s.series == nil {
		return nil, fmt.Errorf("%w: no series directory configured", domain.ErrEphemerisDataUnavailable)
	}

	names, err := fs.Glob(s.series, "*.toml")
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no tables in %s", domain.ErrEphemerisDataUnavailable, s.seriesName)
	}
	sort.Strings(names)

	tables := make(map[domain.Body]*domain.SeriesTable, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(s.series, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		fallback := domain.Body(strings.TrimSuffix(path.Base(name), ".toml"))
		table, err := ParseSeries(raw, fallback)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, dup := tables[table.Body]; dup {
			return nil, fmt.Errorf("%s: %w: duplicate table for %s", name, domain.ErrInvalidInput, table.Body)
		}
		tables[table.Body] = table
		logger.Debug("loaded %s series from %s/%s", table.Body, s.seriesName, name)
	}

	return tables, nil
}

// LoadElements decodes the elements override file.
func (s *Source) LoadElements() (map[domain.Body]domain.OrbitalElements, error) {
	if s.elementsPath == "" {
		return nil, fmt.Errorf("%w: no elements file configured", domain.ErrEphemerisDataUnavailable)
	}

	raw, err := os.ReadFile(s.elementsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("elements file %s does not exist; using built-in catalogue", s.elementsPath)
			return nil, fmt.Errorf("%w: %s", domain.ErrEphemerisDataUnavailable, s.elementsPath)
		}
		return nil, fmt.Errorf("read elements: %w", err)
	}

	elements, err := ParseElements(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.elementsPath, err)
	}
	return elements, nil
}
