package domain_test

import (
	"testing"

	"linkgen-gcc-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func alert(id string, jobID *string, typ string) domain.Alert {
	return domain.Alert{ID: id, JobID: jobID, Type: typ}
}

func TestMergeAlerts(t *testing.T) {
	t.Run("Batch copy wins over an existing duplicate", func(t *testing.T) {
		existing := []domain.Alert{alert("old", strPtr("102"), domain.AlertTypeSmartMatch)}
		batch := []domain.Alert{alert("new", strPtr("102"), domain.AlertTypeSmartMatch)}

		merged := domain.MergeAlerts(batch, existing)
		assert.Len(t, merged, 1)
		assert.Equal(t, "new", merged[0].ID)
	})

	t.Run("Different types for the same job both survive", func(t *testing.T) {
		existing := []domain.Alert{alert("a", strPtr("102"), domain.AlertTypeHighMatch)}
		batch := []domain.Alert{alert("b", strPtr("102"), domain.AlertTypeSmartMatch)}

		merged := domain.MergeAlerts(batch, existing)
		assert.Len(t, merged, 2)
	})

	t.Run("Newest-first order is preserved", func(t *testing.T) {
		existing := []domain.Alert{
			alert("e1", strPtr("103"), domain.AlertTypeSystem),
			alert("e2", strPtr("104"), domain.AlertTypeSystem),
		}
		batch := []domain.Alert{alert("b1", strPtr("105"), domain.AlertTypeSmartMatch)}

		merged := domain.MergeAlerts(batch, existing)
		assert.Equal(t, []string{"b1", "e1", "e2"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
	})

	t.Run("Nil job IDs share one dedup slot per type", func(t *testing.T) {
		existing := []domain.Alert{alert("e1", nil, domain.AlertTypeSystem)}
		batch := []domain.Alert{alert("b1", nil, domain.AlertTypeSystem)}

		merged := domain.MergeAlerts(batch, existing)
		assert.Len(t, merged, 1)
		assert.Equal(t, "b1", merged[0].ID)
	})
}

func TestInteractionHistory(t *testing.T) {
	h := domain.InteractionHistory{}

	assert.True(t, h.ToggleSave("101"))
	assert.True(t, h.IsSaved("101"))
	assert.False(t, h.ToggleSave("101"))
	assert.False(t, h.IsSaved("101"))

	h.Dismiss("102")
	h.Dismiss("102")
	assert.True(t, h.IsDismissed("102"))
	assert.Len(t, h.DismissedJobIDs, 1)

	h.MarkViewed("103")
	h.MarkViewed("103")
	assert.Len(t, h.ViewedJobIDs, 1)
}
