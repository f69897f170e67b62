package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"madeireira_api/internal/domain/entities"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	return NewFileStore(path, zerolog.Nop())
}

func TestFileStore_LoadMissingFileSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Produtos) != 0 || len(doc.Orcamentos) != 0 {
		t.Fatalf("expected empty collections, got %+v", doc)
	}
	if doc.Config != entities.DefaultConfig() {
		t.Fatalf("expected default config, got %+v", doc.Config)
	}
	if doc.ProximoProdutoID != 1 {
		t.Fatalf("expected counter 1, got %d", doc.ProximoProdutoID)
	}
}

func TestFileStore_UpdatePersistsDocument(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(func(doc *Documento) error {
		doc.Produtos = append(doc.Produtos, entities.Produto{
			ID:       doc.ProximoProdutoID,
			Nome:     "Mourão 20cm",
			Diametro: 20, Comprimento: 2.20,
			PrecoMin: 18, PrecoMax: 28,
			CriadoEm: time.Now().UTC(),
		})
		doc.ProximoProdutoID++
		return nil
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(doc.Produtos) != 1 || doc.Produtos[0].ID != 1 || doc.Produtos[0].Nome != "Mourão 20cm" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.ProximoProdutoID != 2 {
		t.Fatalf("counter not persisted: %d", doc.ProximoProdutoID)
	}
}

func TestFileStore_UpdateErrorWritesNothing(t *testing.T) {
	s := newTestStore(t)

	sentinel := errors.New("rejected")
	if err := s.Update(func(doc *Documento) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if _, err := os.Stat(s.path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("store file should not exist after failed update: %v", err)
	}
}

func TestFileStore_NormalizeLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	// Legacy layout: no counter key, nil-able collections.
	legacy := map[string]any{
		"produtos": []map[string]any{
			{"id": 7, "nome": "Mourão", "diametro": 20.0, "comprimento": 2.2, "precoMin": 18.0, "precoMax": 28.0},
		},
		"config": map[string]any{"madeira": 135.0, "tratamento": 350.0, "coef": 0.65, "comp": 2.2, "margemDesejada": 30.0},
	}
	raw, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := NewFileStore(path, zerolog.Nop())
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Orcamentos == nil {
		t.Fatalf("orcamentos should be normalized to empty slice")
	}
	if doc.ProximoProdutoID != 8 {
		t.Fatalf("counter should be reseeded past max id, got %d", doc.ProximoProdutoID)
	}
}

func TestFileStore_CorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := NewFileStore(path, zerolog.Nop())
	if _, err := s.Load(); err == nil {
		t.Fatalf("expected decode error")
	}
}
