package config

import (
	"errors"
	"sync/atomic"
)

// Snapshot holds the current CryptoSettings for callers that replace settings at runtime.
// Components receive a copy at construction, so a replacement only affects components built afterwards.
type Snapshot struct {
	current atomic.Pointer[CryptoSettings]
}

// NewSnapshot creates a Snapshot holding a validated copy of settings
func NewSnapshot(settings CryptoSettings) (*Snapshot, error) {
	s := &Snapshot{}
	if err := s.Override(settings); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns a copy of the held settings
func (s *Snapshot) Current() (CryptoSettings, error) {
	p := s.current.Load()
	if p == nil {
		return CryptoSettings{}, errors.New("crypto settings not loaded")
	}
	return *p, nil
}

// Override validates and swaps in new settings
func (s *Snapshot) Override(settings CryptoSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.current.Store(&settings)
	return nil
}

// Load reads settings from a file and swaps them in
func (s *Snapshot) Load(path string) error {
	settings, err := LoadCryptoSettings(path)
	if err != nil {
		return err
	}
	s.current.Store(settings)
	return nil
}
