// ABOUTME: Tests for snapshot persistence
// ABOUTME: Validates round trips, first-run defaults, and corrupt blob fallback
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m00n69/visicom/models"
)

func TestContactsRoundTrip(t *testing.T) {
	s := NewTestStore(t)

	c, err := models.NewContact(models.NewContactParams{
		Company:  "AgroSaveur S.A.",
		LastName: "Dupont",
		Status:   "Lead",
	})
	require.NoError(t, err)
	c = models.AppendActivity(c, models.Activity{Type: models.ActivityCall, Description: "Premier appel"})

	require.NoError(t, s.SaveContacts([]models.Contact{c}))

	loaded := s.LoadContacts()
	require.Len(t, loaded, 1)
	assert.Equal(t, c.ID, loaded[0].ID)
	assert.Equal(t, "AgroSaveur S.A.", loaded[0].Company)
	require.Len(t, loaded[0].Activities, 1)
	assert.Equal(t, models.ActivityCall, loaded[0].Activities[0].Type)
	assert.WithinDuration(t, c.LastContact, loaded[0].LastContact, time.Second)
}

func TestLoadContactsFirstRun(t *testing.T) {
	s := NewTestStore(t)

	contacts := s.LoadContacts()
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestLoadContactsCorruptBlob(t *testing.T) {
	s := NewTestStore(t)

	// Corrupt JSON must fall back silently, as if this were a first run.
	require.NoError(t, s.Set([]byte(keyContacts), []byte("{not json")))
	contacts := s.LoadContacts()
	assert.Empty(t, contacts)
}

func TestStagesDefaultAndRoundTrip(t *testing.T) {
	s := NewTestStore(t)

	assert.Equal(t, models.DefaultStages, s.LoadStages())

	custom := []string{"Lead", "Négociation", "Signé"}
	require.NoError(t, s.SaveStages(custom))
	assert.Equal(t, custom, s.LoadStages())
}

func TestStagesCorruptBlobFallsBack(t *testing.T) {
	s := NewTestStore(t)

	require.NoError(t, s.Set([]byte(keyStages), []byte("42")))
	assert.Equal(t, models.DefaultStages, s.LoadStages())
}

func TestInterestsIndependentOfStages(t *testing.T) {
	s := NewTestStore(t)

	require.NoError(t, s.SaveStages([]string{"Only"}))
	// Interest blob untouched: still the seed list.
	assert.Equal(t, models.DefaultInterests, s.LoadInterests())

	require.NoError(t, s.SaveInterests([]string{"ISO 22000"}))
	assert.Equal(t, []string{"ISO 22000"}, s.LoadInterests())
	assert.Equal(t, []string{"Only"}, s.LoadStages())
}

func TestAPIKeyLifecycle(t *testing.T) {
	s := NewTestStore(t)

	assert.Empty(t, s.APIKey())

	require.NoError(t, s.SetAPIKey("sk-test-123"))
	assert.Equal(t, "sk-test-123", s.APIKey())

	require.NoError(t, s.DeleteAPIKey())
	assert.Empty(t, s.APIKey())
}

func TestSaveOverwritesWholeSnapshot(t *testing.T) {
	s := NewTestStore(t)

	a, err := models.NewContact(models.NewContactParams{Company: "A Corp", LastName: "Alpha"})
	require.NoError(t, err)
	b, err := models.NewContact(models.NewContactParams{Company: "B Corp", LastName: "Beta"})
	require.NoError(t, err)

	require.NoError(t, s.SaveContacts([]models.Contact{a, b}))
	require.NoError(t, s.SaveContacts([]models.Contact{b}))

	loaded := s.LoadContacts()
	require.Len(t, loaded, 1)
	assert.Equal(t, b.ID, loaded[0].ID)
}
