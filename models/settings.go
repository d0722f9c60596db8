package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// SiteSettingsID keys the single settings row.
const SiteSettingsID = "main_settings"

type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(StringList{})
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported column type for StringList")
	}
}

// SiteSettings is the singleton record holding branding, page copy, social
// links, the promotion window and the social-proof popup configuration.
type SiteSettings struct {
	ID                string `gorm:"primaryKey" json:"-"`
	SiteName          string `json:"siteName"`
	LogoURL           string `json:"logoUrl"`
	FaviconURL        string `json:"faviconUrl"`
	ThemeColor        string `json:"themeColor"`
	ThemeFont         string `json:"themeFont"`
	HeroImage         string `json:"heroImage"`
	HeroTitle         string `json:"heroTitle"`
	HeroSubtitle      string `json:"heroSubtitle"`
	FooterDescription string `json:"footerDescription"`

	AboutHeaderTitle  string `json:"aboutHeaderTitle"`
	AboutHeaderDesc   string `json:"aboutHeaderDesc"`
	AboutSectionTitle string `json:"aboutSectionTitle"`
	AboutSectionDesc  string `json:"aboutSectionDesc"`
	AboutSectionImage string `json:"aboutSectionImage"`

	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`
	InstagramURL   string `json:"instagramUrl"`
	TiktokURL      string `json:"tiktokUrl"`
	FacebookURL    string `json:"facebookUrl"`
	YoutubeURL     string `json:"youtubeUrl"`

	PromoLabel    string `json:"promoLabel"`
	PromoTitle    string `json:"promoTitle"`
	PromoSubtitle string `json:"promoSubtitle"`
	PromoEndAt    int64  `json:"promoEndAt"` // unix millis

	// Social-proof popups. Names is a newline-delimited pool; an empty
	// product allow-list means the whole catalog is eligible.
	SocialProofEnabled    bool       `json:"socialProofEnabled"`
	SocialProofNames      string     `json:"socialProofNames"`
	SocialProofProductIDs StringList `gorm:"type:jsonb" json:"socialProofProductIds"`
}

// DefaultSiteSettings is what a fresh install (or an unreadable settings
// record) falls back to.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                SiteSettingsID,
		SiteName:          "LuminaGoods",
		ThemeColor:        "Green",
		ThemeFont:         "Default",
		HeroImage:         "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80&w=2000",
		HeroTitle:         "Elegance in Every Detail.",
		HeroSubtitle:      "Discover premium goods curated for those who appreciate high-quality craftsmanship and modern minimalist design.",
		FooterDescription: "Crafting a seamless shopping experience for the modern aesthetic. Your one-stop shop for premium, artisanal UMKM goods.",
	}
}
