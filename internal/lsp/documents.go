package lsp

import "sync"

// Document is one open palette file tracked by the server.
type Document struct {
	Text    string
	Version int32
}

// DocumentStore holds open document contents keyed by URI. The server
// negotiates full-document sync, so every update replaces the text.
type DocumentStore struct {
	mu   sync.RWMutex
	open map[string]*Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{open: make(map[string]*Document)}
}

func (s *DocumentStore) Open(uri, text string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[uri] = &Document{Text: text, Version: version}
}

func (s *DocumentStore) Update(uri, text string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[uri] = &Document{Text: text, Version: version}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, uri)
}

// Get returns the current text of an open document.
func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.open[uri]
	if !ok {
		return "", false
	}
	return doc.Text, true
}
