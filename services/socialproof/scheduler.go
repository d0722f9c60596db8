// Package socialproof drives the "customer X just bought Y" popups. The
// popups are synthetic and purely cosmetic; a disabled scheduler is a fully
// supported mode.
package socialproof

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jarvnw/website-umkm-store/models"
)

// timeAgoPhrases are the canned labels attached to each popup.
var timeAgoPhrases = []string{
	"baru saja",
	"5 menit yang lalu",
	"15 menit yang lalu",
	"30 menit yang lalu",
	"1 jam yang lalu",
}

type EventType string

const (
	EventShow EventType = "show"
	EventHide EventType = "hide"
)

// Notification is one popup event as broadcast to storefront clients.
type Notification struct {
	Type         EventType `json:"type"`
	CustomerName string    `json:"customerName,omitempty"`
	ProductID    string    `json:"productId,omitempty"`
	ProductName  string    `json:"productName,omitempty"`
	ProductImage string    `json:"productImage,omitempty"`
	TimeAgo      string    `json:"timeAgo,omitempty"`
	At           time.Time `json:"at"`
}

type Config struct {
	Enabled    bool
	NamePool   string   // newline-delimited customer names
	ProductIDs []string // allow-list; empty means the whole catalog

	InitialDelay time.Duration
	Dwell        time.Duration
	MinInterval  time.Duration
	MaxInterval  time.Duration
}

// ConfigFromSettings maps the persisted settings onto the scheduler's
// fixed timing constants.
func ConfigFromSettings(settings models.SiteSettings) Config {
	return Config{
		Enabled:      settings.SocialProofEnabled,
		NamePool:     settings.SocialProofNames,
		ProductIDs:   settings.SocialProofProductIDs,
		InitialDelay: 8 * time.Second,
		Dwell:        6 * time.Second,
		MinInterval:  20 * time.Second,
		MaxInterval:  45 * time.Second,
	}
}

// ParseNamePool splits the newline-delimited pool, dropping blanks.
func ParseNamePool(pool string) []string {
	var names []string
	for _, line := range strings.Split(pool, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

// Eligible reports whether the config can ever trigger a popup.
func (c Config) Eligible() bool {
	return c.Enabled && len(ParseNamePool(c.NamePool)) > 0
}

type CatalogFunc func() ([]models.Product, error)
type PublishFunc func(Notification)

// Scheduler runs one background loop per active configuration. Configure
// replaces the loop; Stop tears it down. Neither leaks the previous timer.
type Scheduler struct {
	catalog CatalogFunc
	publish PublishFunc
	log     *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(catalog CatalogFunc, publish PublishFunc, log *zap.Logger) *Scheduler {
	return &Scheduler{catalog: catalog, publish: publish, log: log}
}

// Configure stops any running loop and starts a new one when the config is
// eligible. Called at boot and whenever the admin saves settings.
func (s *Scheduler) Configure(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if !cfg.Eligible() {
		s.log.Info("social proof disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.log.Info("social proof enabled",
		zap.Int("names", len(ParseNamePool(cfg.NamePool))),
		zap.Int("allowList", len(cfg.ProductIDs)))
	go s.run(ctx, cfg)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Scheduler) run(ctx context.Context, cfg Config) {
	if !sleep(ctx, cfg.InitialDelay) {
		return
	}
	for {
		products, err := s.catalog()
		if err != nil {
			products = nil
		}
		if n, ok := Pick(cfg, products); ok {
			s.publish(n)
			if !sleep(ctx, cfg.Dwell) {
				return
			}
			s.publish(Notification{Type: EventHide, At: time.Now()})
		}
		interval := cfg.MinInterval
		if cfg.MaxInterval > cfg.MinInterval {
			interval += time.Duration(rand.Int63n(int64(cfg.MaxInterval - cfg.MinInterval)))
		}
		if !sleep(ctx, interval) {
			return
		}
	}
}

// Pick assembles one popup from the configured pools. It reports false when
// the config or catalog cannot produce one; misconfiguration shows nothing.
func Pick(cfg Config, catalog []models.Product) (Notification, bool) {
	names := ParseNamePool(cfg.NamePool)
	if !cfg.Enabled || len(names) == 0 {
		return Notification{}, false
	}

	eligible := catalog
	if len(cfg.ProductIDs) > 0 {
		allowed := make(map[string]bool, len(cfg.ProductIDs))
		for _, id := range cfg.ProductIDs {
			allowed[id] = true
		}
		eligible = nil
		for _, p := range catalog {
			if allowed[p.ID] {
				eligible = append(eligible, p)
			}
		}
	}
	if len(eligible) == 0 {
		return Notification{}, false
	}

	product := eligible[rand.Intn(len(eligible))]
	return Notification{
		Type:         EventShow,
		CustomerName: names[rand.Intn(len(names))],
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		TimeAgo:      timeAgoPhrases[rand.Intn(len(timeAgoPhrases))],
		At:           time.Now(),
	}, true
}

// sleep waits d or until ctx is cancelled, reporting whether the full wait
// completed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
