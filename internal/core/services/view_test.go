package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func TestViewSelector_DefaultsToDashboard(t *testing.T) {
	v := NewViewSelector()
	assert.Equal(t, domain.ViewDashboard, v.ActiveView())
}

func TestViewSelector_SetActiveView(t *testing.T) {
	v := NewViewSelector()

	for _, view := range domain.AllViews() {
		require.NoError(t, v.SetActiveView(view))
		assert.Equal(t, view, v.ActiveView())
	}
}

func TestViewSelector_RejectsUnknownView(t *testing.T) {
	v := NewViewSelector()
	require.NoError(t, v.SetActiveView(domain.ViewJobs))

	err := v.SetActiveView(domain.View("calendar"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.ViewJobs, v.ActiveView())
}

func TestViewSelector_Reset(t *testing.T) {
	v := NewViewSelector()
	require.NoError(t, v.SetActiveView(domain.ViewSettings))

	v.Reset()
	assert.Equal(t, domain.ViewDashboard, v.ActiveView())
}

func TestViewSelector_NotSharedBetweenInstances(t *testing.T) {
	a := NewViewSelector()
	require.NoError(t, a.SetActiveView(domain.ViewOffers))

	assert.Equal(t, domain.ViewDashboard, NewViewSelector().ActiveView())
}

func TestViewSelector_Concurrent(t *testing.T) {
	v := NewViewSelector()
	var wg sync.WaitGroup
	for _, view := range domain.AllViews() {
		wg.Add(1)
		go func(view domain.View) {
			defer wg.Done()
			_ = v.SetActiveView(view)
			_ = v.ActiveView()
		}(view)
	}
	wg.Wait()
	assert.True(t, v.ActiveView().IsValid())
}
