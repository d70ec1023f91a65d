// ABOUTME: Typed snapshot accessors over the keyed blob store
// ABOUTME: Contacts, pipeline stages, interest options, and the API credential
package store

import (
	"encoding/json"
	"fmt"

	"github.com/m00n69/visicom/models"
)

// Blob keys. Each is loaded and saved independently of the others.
const (
	keyContacts  = "visicom:contacts"
	keyStages    = "visicom:pipeline"
	keyInterests = "visicom:interests"
	keyAPIKey    = "visicom:apikey"
)

// LoadContacts returns the persisted contact set. A missing key or a corrupt
// blob is treated as first run and yields an empty set; no error surfaces.
func (s *Store) LoadContacts() []models.Contact {
	data, err := s.Get([]byte(keyContacts))
	if err != nil {
		return []models.Contact{}
	}

	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return []models.Contact{}
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts
}

// SaveContacts overwrites the full contact snapshot.
func (s *Store) SaveContacts(contacts []models.Contact) error {
	data, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := s.Set([]byte(keyContacts), data); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}

// LoadStages returns the pipeline stage list, falling back to the built-in
// seed list on first run or corrupt data.
func (s *Store) LoadStages() []string {
	return s.loadStringList(keyStages, models.DefaultStages)
}

// SaveStages overwrites the pipeline stage list.
func (s *Store) SaveStages(stages []string) error {
	return s.saveStringList(keyStages, stages)
}

// LoadInterests returns the interest option list, falling back to the
// built-in seed list on first run or corrupt data.
func (s *Store) LoadInterests() []string {
	return s.loadStringList(keyInterests, models.DefaultInterests)
}

// SaveInterests overwrites the interest option list.
func (s *Store) SaveInterests(interests []string) error {
	return s.saveStringList(keyInterests, interests)
}

// APIKey returns the stored generative-text credential, or "" when absent.
// An absent key disables the AI assistant but nothing else.
func (s *Store) APIKey() string {
	data, err := s.Get([]byte(keyAPIKey))
	if err != nil {
		return ""
	}
	return string(data)
}

// SetAPIKey stores the generative-text credential.
func (s *Store) SetAPIKey(key string) error {
	if err := s.Set([]byte(keyAPIKey), []byte(key)); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the credential.
func (s *Store) DeleteAPIKey() error {
	return s.Delete([]byte(keyAPIKey))
}

func (s *Store) loadStringList(key string, fallback []string) []string {
	data, err := s.Get([]byte(key))
	if err != nil {
		return append([]string(nil), fallback...)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return append([]string(nil), fallback...)
	}
	if list == nil {
		list = []string{}
	}
	return list
}

func (s *Store) saveStringList(key string, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
