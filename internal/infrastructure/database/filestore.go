package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"madeireira_api/internal/domain/entities"

	"github.com/rs/zerolog"
)

const defaultStorePath = "data/madeireira.json"

// Documento is the entire durable state: one JSON document holding the
// three collections plus the monotonic product id counter.
//
// ProximoProdutoID survives deletion of the highest-id product, so ids
// are never reused. A zero counter (legacy documents) is reseeded from
// the highest existing id on load.
type Documento struct {
	Produtos         []entities.Produto   `json:"produtos"`
	Orcamentos       []entities.Orcamento `json:"orcamentos"`
	Config           entities.Config      `json:"config"`
	ProximoProdutoID int64                `json:"proximoProdutoId"`
}

// FileStore persists the Documento as a single JSON file.
//
// Every access goes through one mutex so a read-modify-write cycle
// observes and replaces a consistent document. Writes land in a temp
// file first and are renamed into place.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewFileStore creates a store over the given path. An empty path
// falls back to STORE_PATH, then to the built-in default.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	if path == "" {
		path = getenvDefault("STORE_PATH", defaultStorePath)
	}
	return &FileStore{
		path: path,
		log:  log.With().Str("component", "filestore").Str("path", path).Logger(),
	}
}

// Load returns the current document. A missing backing file yields the
// default document: empty collections and the built-in configuration.
func (s *FileStore) Load() (Documento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update runs fn on the freshly loaded document and persists the
// result, all under the store mutex. If fn returns an error nothing is
// written and the error is passed through untouched, so use cases can
// surface validation and not-found failures from inside the cycle.
func (s *FileStore) Update(fn func(doc *Documento) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *FileStore) load() (Documento, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultDocumento(), nil
	}
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read store file")
		return Documento{}, err
	}

	var doc Documento
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Error().Err(err).Msg("failed to decode store file")
		return Documento{}, err
	}
	normalize(&doc)
	return doc, nil
}

func (s *FileStore) save(doc Documento) error {
	normalize(&doc)

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode store document")
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.log.Error().Err(err).Msg("failed to create store directory")
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.log.Error().Err(err).Msg("failed to write store temp file")
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Error().Err(err).Msg("failed to replace store file")
		return err
	}
	return nil
}

func defaultDocumento() Documento {
	return Documento{
		Produtos:         []entities.Produto{},
		Orcamentos:       []entities.Orcamento{},
		Config:           entities.DefaultConfig(),
		ProximoProdutoID: 1,
	}
}

// normalize repairs documents written by hand or by older layouts:
// nil collections become empty, a zero config becomes the default and
// the id counter is reseeded past every existing product id.
func normalize(doc *Documento) {
	if doc.Produtos == nil {
		doc.Produtos = []entities.Produto{}
	}
	if doc.Orcamentos == nil {
		doc.Orcamentos = []entities.Orcamento{}
	}
	if doc.Config == (entities.Config{}) {
		doc.Config = entities.DefaultConfig()
	}
	for _, p := range doc.Produtos {
		if p.ID >= doc.ProximoProdutoID {
			doc.ProximoProdutoID = p.ID + 1
		}
	}
	if doc.ProximoProdutoID < 1 {
		doc.ProximoProdutoID = 1
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
