package services

import (
	"sync/atomic"

	"cashflow/internal/catalog"
	"cashflow/internal/logger"
)

// catalogService holds the catalog used for new games.
type catalogService struct {
	dir     string
	current atomic.Pointer[catalog.Catalog]
}

// NewCatalogService loads the catalog from dir, or the embedded default
// catalog when dir is empty, and returns a CatalogServicer serving it.
func NewCatalogService(dir string) (CatalogServicer, error) {
	s := &catalogService{dir: dir}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active catalog.
func (s *catalogService) Current() *catalog.Catalog {
	return s.current.Load()
}

// Reload reads the catalog again. On failure the active catalog is kept.
// Running games are unaffected since each game copies its decks at start.
func (s *catalogService) Reload() (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if s.dir == "" {
		c, err = catalog.Default()
	} else {
		c, err = catalog.Load(s.dir)
	}
	if err != nil {
		logger.Get().Errorw("failed to load catalog", "dir", s.dir, "error", err)
		return nil, err
	}

	s.current.Store(c)
	logger.Get().Infow("catalog loaded",
		"dir", s.dir,
		"roles", len(c.Roles),
		"offers", len(c.Offers),
		"events", len(c.Events),
	)
	return c, nil
}
