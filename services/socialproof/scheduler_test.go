package socialproof

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jarvnw/website-umkm-store/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Shirt", Image: "shirt.jpg"},
		{ID: "p2", Name: "Mug", Image: "mug.jpg"},
		{ID: "p3", Name: "Hat", Image: "hat.jpg"},
	}
}

func TestParseNamePool(t *testing.T) {
	names := ParseNamePool("Budi\n\n  Sari  \nRina\n")
	assert.Equal(t, []string{"Budi", "Sari", "Rina"}, names)
	assert.Empty(t, ParseNamePool(""))
	assert.Empty(t, ParseNamePool("\n  \n"))
}

func TestEligible(t *testing.T) {
	assert.False(t, Config{Enabled: false, NamePool: "Budi"}.Eligible())
	assert.False(t, Config{Enabled: true, NamePool: ""}.Eligible())
	assert.True(t, Config{Enabled: true, NamePool: "Budi"}.Eligible())
}

func TestPickDisabledShowsNothing(t *testing.T) {
	_, ok := Pick(Config{Enabled: false, NamePool: "Budi"}, testCatalog())
	assert.False(t, ok)

	_, ok = Pick(Config{Enabled: true, NamePool: ""}, testCatalog())
	assert.False(t, ok)
}

func TestPickEmptyCatalogShowsNothing(t *testing.T) {
	_, ok := Pick(Config{Enabled: true, NamePool: "Budi"}, nil)
	assert.False(t, ok)
}

func TestPickHonorsAllowList(t *testing.T) {
	cfg := Config{Enabled: true, NamePool: "Budi", ProductIDs: []string{"p2"}}
	for i := 0; i < 20; i++ {
		n, ok := Pick(cfg, testCatalog())
		require.True(t, ok)
		assert.Equal(t, "p2", n.ProductID)
		assert.Equal(t, "Mug", n.ProductName)
	}
}

func TestPickAllowListWithNoMatchesShowsNothing(t *testing.T) {
	cfg := Config{Enabled: true, NamePool: "Budi", ProductIDs: []string{"missing"}}
	_, ok := Pick(cfg, testCatalog())
	assert.False(t, ok)
}

func TestPickFieldsPopulated(t *testing.T) {
	cfg := Config{Enabled: true, NamePool: "Budi\nSari"}
	n, ok := Pick(cfg, testCatalog())
	require.True(t, ok)
	assert.Equal(t, EventShow, n.Type)
	assert.Contains(t, []string{"Budi", "Sari"}, n.CustomerName)
	assert.NotEmpty(t, n.ProductID)
	assert.NotEmpty(t, n.TimeAgo)
	assert.False(t, n.At.IsZero())
}

func collector() (PublishFunc, func() []Notification) {
	var mu sync.Mutex
	var events []Notification
	publish := func(n Notification) {
		mu.Lock()
		events = append(events, n)
		mu.Unlock()
	}
	snapshot := func() []Notification {
		mu.Lock()
		defer mu.Unlock()
		return append([]Notification(nil), events...)
	}
	return publish, snapshot
}

func TestSchedulerPublishesShowThenHide(t *testing.T) {
	publish, events := collector()
	s := New(func() ([]models.Product, error) { return testCatalog(), nil }, publish, zap.NewNop())
	defer s.Stop()

	s.Configure(Config{
		Enabled:      true,
		NamePool:     "Budi",
		InitialDelay: 5 * time.Millisecond,
		Dwell:        5 * time.Millisecond,
		MinInterval:  time.Hour,
		MaxInterval:  time.Hour,
	})

	require.Eventually(t, func() bool { return len(events()) >= 2 }, 2*time.Second, 5*time.Millisecond)
	got := events()
	assert.Equal(t, EventShow, got[0].Type)
	assert.Equal(t, EventHide, got[1].Type)
}

func TestSchedulerIneligibleNeverTriggers(t *testing.T) {
	publish, events := collector()
	s := New(func() ([]models.Product, error) { return testCatalog(), nil }, publish, zap.NewNop())
	defer s.Stop()

	s.Configure(Config{Enabled: false, NamePool: "Budi", InitialDelay: time.Millisecond})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, events())
}

func TestSchedulerStopCancelsPendingTrigger(t *testing.T) {
	publish, events := collector()
	s := New(func() ([]models.Product, error) { return testCatalog(), nil }, publish, zap.NewNop())

	s.Configure(Config{
		Enabled:      true,
		NamePool:     "Budi",
		InitialDelay: time.Hour,
		Dwell:        time.Hour,
		MinInterval:  time.Hour,
		MaxInterval:  time.Hour,
	})
	s.Stop()
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, events())
}

func TestConfigureReplacesRunningLoop(t *testing.T) {
	publish, events := collector()
	s := New(func() ([]models.Product, error) { return testCatalog(), nil }, publish, zap.NewNop())
	defer s.Stop()

	s.Configure(Config{
		Enabled: true, NamePool: "Budi",
		InitialDelay: time.Hour, Dwell: time.Hour,
		MinInterval: time.Hour, MaxInterval: time.Hour,
	})
	// Disabling must tear the pending trigger down.
	s.Configure(Config{Enabled: false})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, events())
}

func TestConfigFromSettings(t *testing.T) {
	settings := models.SiteSettings{
		SocialProofEnabled:    true,
		SocialProofNames:      "Budi\nSari",
		SocialProofProductIDs: models.StringList{"p1"},
	}
	cfg := ConfigFromSettings(settings)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, []string{"p1"}, cfg.ProductIDs)
	assert.Greater(t, cfg.MaxInterval, cfg.MinInterval)
	assert.Positive(t, cfg.Dwell)
}
