package store

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jarvnw/website-umkm-store/models"
)

// Cache key namespace. These mirror the record types one-to-one; carts get
// one key per guest session.
const (
	ProductsKey     = "lumina_products"
	CSContactsKey   = "lumina_cs_contacts"
	TestimonialsKey = "lumina_testimonials"
	SettingsKey     = "lumina_site_settings"
	AdminCredsKey   = "lumina_admin_creds"
	cartKeyPrefix   = "lumina_cart_"
)

// Store is the two-tier repository: Postgres is authoritative, the JSON file
// cache is an optimistic mirror and the offline fallback. db may be nil, in
// which case every operation runs cache-only.
type Store struct {
	db    *gorm.DB
	cache *Cache
	log   *zap.Logger
}

func New(db *gorm.DB, cache *Cache, log *zap.Logger) *Store {
	return &Store{db: db, cache: cache, log: log}
}

// remoteWarn logs a failed remote round-trip. Remote failures degrade the
// store to cache-only operation; they are never surfaced to handlers.
func (s *Store) remoteWarn(op string, err error) {
	s.log.Warn("remote store unavailable, using local cache",
		zap.String("op", op), zap.Error(err))
}

// ---------- Products ----------

func (s *Store) GetProducts() ([]models.Product, error) {
	if s.db != nil {
		var products []models.Product
		err := s.db.Preload("Variations").Order("created_at ASC").Find(&products).Error
		if err == nil {
			_ = s.cache.Write(ProductsKey, products)
			return products, nil
		}
		s.remoteWarn("GetProducts", err)
	}
	var cached []models.Product
	if err := s.cache.Read(ProductsKey, &cached); err != nil {
		return []models.Product{}, nil
	}
	return cached, nil
}

func (s *Store) GetProduct(id string) (*models.Product, bool, error) {
	products, err := s.GetProducts()
	if err != nil {
		return nil, false, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], true, nil
		}
	}
	return nil, false, nil
}

// SaveProduct upserts: the local mirror is written first, then the remote row
// (ON CONFLICT (id) DO UPDATE). Variations are replaced wholesale since they
// cascade with the product.
func (s *Store) SaveProduct(product models.Product) error {
	products, _ := s.GetProducts()
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	if err := s.cache.Write(ProductsKey, products); err != nil {
		return err
	}

	if s.db != nil {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.Variation{}).Error; err != nil {
				return err
			}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&product).Error
		})
		if err != nil {
			s.remoteWarn("SaveProduct", err)
		}
	}
	return nil
}

func (s *Store) DeleteProduct(id string) error {
	products, _ := s.GetProducts()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.cache.Write(ProductsKey, kept); err != nil {
		return err
	}

	if s.db != nil {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", id).
				Delete(&models.Variation{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Product{}, "id = ?", id).Error
		})
		if err != nil {
			s.remoteWarn("DeleteProduct", err)
		}
	}
	return nil
}

// ---------- CS contacts ----------

func (s *Store) GetCSContacts() ([]models.CSContact, error) {
	if s.db != nil {
		var contacts []models.CSContact
		if err := s.db.Find(&contacts).Error; err == nil {
			_ = s.cache.Write(CSContactsKey, contacts)
			return contacts, nil
		} else {
			s.remoteWarn("GetCSContacts", err)
		}
	}
	var cached []models.CSContact
	if err := s.cache.Read(CSContactsKey, &cached); err != nil {
		return []models.CSContact{}, nil
	}
	return cached, nil
}

func (s *Store) SaveCSContact(contact models.CSContact) error {
	contacts, _ := s.GetCSContacts()
	replaced := false
	for i := range contacts {
		if contacts[i].ID == contact.ID {
			contacts[i] = contact
			replaced = true
			break
		}
	}
	if !replaced {
		contacts = append(contacts, contact)
	}
	if err := s.cache.Write(CSContactsKey, contacts); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&contact).Error; err != nil {
			s.remoteWarn("SaveCSContact", err)
		}
	}
	return nil
}

func (s *Store) DeleteCSContact(id string) error {
	contacts, _ := s.GetCSContacts()
	kept := contacts[:0]
	for _, c := range contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if err := s.cache.Write(CSContactsKey, kept); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Delete(&models.CSContact{}, "id = ?", id).Error; err != nil {
			s.remoteWarn("DeleteCSContact", err)
		}
	}
	return nil
}

// ---------- Testimonials ----------

func (s *Store) GetTestimonials() ([]models.Testimonial, error) {
	if s.db != nil {
		var testimonials []models.Testimonial
		if err := s.db.Find(&testimonials).Error; err == nil {
			_ = s.cache.Write(TestimonialsKey, testimonials)
			return testimonials, nil
		} else {
			s.remoteWarn("GetTestimonials", err)
		}
	}
	var cached []models.Testimonial
	if err := s.cache.Read(TestimonialsKey, &cached); err != nil {
		return []models.Testimonial{}, nil
	}
	return cached, nil
}

func (s *Store) SaveTestimonial(testimonial models.Testimonial) error {
	testimonials, _ := s.GetTestimonials()
	replaced := false
	for i := range testimonials {
		if testimonials[i].ID == testimonial.ID {
			testimonials[i] = testimonial
			replaced = true
			break
		}
	}
	if !replaced {
		testimonials = append(testimonials, testimonial)
	}
	if err := s.cache.Write(TestimonialsKey, testimonials); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&testimonial).Error; err != nil {
			s.remoteWarn("SaveTestimonial", err)
		}
	}
	return nil
}

func (s *Store) DeleteTestimonial(id string) error {
	testimonials, _ := s.GetTestimonials()
	kept := testimonials[:0]
	for _, t := range testimonials {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if err := s.cache.Write(TestimonialsKey, kept); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
			s.remoteWarn("DeleteTestimonial", err)
		}
	}
	return nil
}

// ---------- Site settings (singleton) ----------

func (s *Store) GetSiteSettings() (models.SiteSettings, error) {
	if s.db != nil {
		var settings models.SiteSettings
		err := s.db.First(&settings, "id = ?", models.SiteSettingsID).Error
		if err == nil {
			_ = s.cache.Write(SettingsKey, settings)
			return settings, nil
		}
		if err != gorm.ErrRecordNotFound {
			s.remoteWarn("GetSiteSettings", err)
		}
	}
	var cached models.SiteSettings
	if err := s.cache.Read(SettingsKey, &cached); err != nil {
		return models.DefaultSiteSettings(), nil
	}
	return cached, nil
}

func (s *Store) SaveSiteSettings(settings models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	if err := s.cache.Write(SettingsKey, settings); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&settings).Error; err != nil {
			s.remoteWarn("SaveSiteSettings", err)
		}
	}
	return nil
}

// ---------- Admin credentials (singleton) ----------

// GetAdminCredentials never returns an empty record: a fresh install gets the
// seeded default login so the back office is reachable before first setup.
func (s *Store) GetAdminCredentials() (models.AdminCredentials, error) {
	if s.db != nil {
		var creds models.AdminCredentials
		err := s.db.First(&creds, "id = ?", models.AdminCredentialsID).Error
		if err == nil {
			_ = s.cache.Write(AdminCredsKey, creds)
			return creds, nil
		}
		if err != gorm.ErrRecordNotFound {
			s.remoteWarn("GetAdminCredentials", err)
		}
	}
	var cached models.AdminCredentials
	if err := s.cache.Read(AdminCredsKey, &cached); err != nil {
		return defaultAdminCredentials(), nil
	}
	return cached, nil
}

func (s *Store) SaveAdminCredentials(creds models.AdminCredentials) error {
	creds.ID = models.AdminCredentialsID
	if err := s.cache.Write(AdminCredsKey, creds); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&creds).Error; err != nil {
			s.remoteWarn("SaveAdminCredentials", err)
		}
	}
	return nil
}

func defaultAdminCredentials() models.AdminCredentials {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return models.AdminCredentials{
		ID:           models.AdminCredentialsID,
		Username:     "admin",
		PasswordHash: string(hash),
	}
}

// ---------- Carts (cache only) ----------

func (s *Store) GetCart(sessionID string) (models.Cart, error) {
	var cart models.Cart
	if err := s.cache.Read(cartKeyPrefix+sessionID, &cart); err != nil {
		return models.Cart{SessionID: sessionID, Items: []models.CartItem{}}, nil
	}
	return cart, nil
}

func (s *Store) SaveCart(cart models.Cart) error {
	cart.UpdatedAt = time.Now()
	return s.cache.Write(cartKeyPrefix+cart.SessionID, cart)
}

func (s *Store) DeleteCart(sessionID string) error {
	return s.cache.Delete(cartKeyPrefix + sessionID)
}
