package store

import (
	"sync"

	"github.com/google/uuid"
)

// Image is an uploaded, already processed catalog image.
type Image struct {
	Data []byte
	MIME string
}

// Images holds uploaded catalog images in memory.
type Images struct {
	mu     sync.RWMutex
	images map[string]Image
}

// NewImages returns an empty image store.
func NewImages() *Images {
	return &Images{images: make(map[string]Image)}
}

// Put stores the image under a new random key and returns the key.
func (s *Images) Put(data []byte, mime string) string {
	key := uuid.NewString()
	s.mu.Lock()
	s.images[key] = Image{Data: data, MIME: mime}
	s.mu.Unlock()
	return key
}

// Get returns the image stored under key.
func (s *Images) Get(key string) (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[key]
	return img, ok
}

// URL returns the path the image is served from.
func URL(key string) string {
	return "/images/" + key
}
