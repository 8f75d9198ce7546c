package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Setting keys persisted in the settings table.
const (
	KeySiteName        = "site_name"
	KeyTagline         = "tagline"
	KeyContactEmail    = "contact_email"
	KeyLogoURL         = "logo_url"
	KeyFaviconURL      = "favicon_url"
	KeyTwitterURL      = "twitter_url"
	KeyLinkedInURL     = "linkedin_url"
	KeyInstagramURL    = "instagram_url"
	KeyMetaTitle       = "meta_title"
	KeyMetaDescription = "meta_description"
	KeyRobotsTxt       = "robots_txt"
	KeyAnalyticsID     = "analytics_id"
)

// SettingRow is one key/value pair as stored.
type SettingRow struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// SiteSettings is the typed settings document the admin edits and the site
// consumes. Every field maps to one settings key.
type SiteSettings struct {
	SiteName        string `json:"site_name"`
	Tagline         string `json:"tagline"`
	ContactEmail    string `json:"contact_email"`
	LogoURL         string `json:"logo_url"`
	FaviconURL      string `json:"favicon_url"`
	TwitterURL      string `json:"twitter_url"`
	LinkedInURL     string `json:"linkedin_url"`
	InstagramURL    string `json:"instagram_url"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	RobotsTxt       string `json:"robots_txt"`
	AnalyticsID     string `json:"analytics_id"`
}

func (s SiteSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.SiteName, validation.Length(0, 200)),
		validation.Field(&s.ContactEmail, validation.When(s.ContactEmail != "", is.Email)),
		validation.Field(&s.LogoURL, validation.When(s.LogoURL != "", is.URL)),
		validation.Field(&s.FaviconURL, validation.When(s.FaviconURL != "", is.URL)),
		validation.Field(&s.TwitterURL, validation.When(s.TwitterURL != "", is.URL)),
		validation.Field(&s.LinkedInURL, validation.When(s.LinkedInURL != "", is.URL)),
		validation.Field(&s.InstagramURL, validation.When(s.InstagramURL != "", is.URL)),
	)
}

// FromRows maps stored rows onto the typed document. Unknown keys are
// ignored and missing keys leave the zero value, so schema drift in either
// direction is harmless.
func FromRows(rows []SettingRow) SiteSettings {
	var s SiteSettings
	for _, row := range rows {
		switch row.Key {
		case KeySiteName:
			s.SiteName = row.Value
		case KeyTagline:
			s.Tagline = row.Value
		case KeyContactEmail:
			s.ContactEmail = row.Value
		case KeyLogoURL:
			s.LogoURL = row.Value
		case KeyFaviconURL:
			s.FaviconURL = row.Value
		case KeyTwitterURL:
			s.TwitterURL = row.Value
		case KeyLinkedInURL:
			s.LinkedInURL = row.Value
		case KeyInstagramURL:
			s.InstagramURL = row.Value
		case KeyMetaTitle:
			s.MetaTitle = row.Value
		case KeyMetaDescription:
			s.MetaDescription = row.Value
		case KeyRobotsTxt:
			s.RobotsTxt = row.Value
		case KeyAnalyticsID:
			s.AnalyticsID = row.Value
		}
	}
	return s
}

// ToRows flattens the document back to key/value pairs for persistence.
func (s SiteSettings) ToRows() []SettingRow {
	return []SettingRow{
		{Key: KeySiteName, Value: s.SiteName},
		{Key: KeyTagline, Value: s.Tagline},
		{Key: KeyContactEmail, Value: s.ContactEmail},
		{Key: KeyLogoURL, Value: s.LogoURL},
		{Key: KeyFaviconURL, Value: s.FaviconURL},
		{Key: KeyTwitterURL, Value: s.TwitterURL},
		{Key: KeyLinkedInURL, Value: s.LinkedInURL},
		{Key: KeyInstagramURL, Value: s.InstagramURL},
		{Key: KeyMetaTitle, Value: s.MetaTitle},
		{Key: KeyMetaDescription, Value: s.MetaDescription},
		{Key: KeyRobotsTxt, Value: s.RobotsTxt},
		{Key: KeyAnalyticsID, Value: s.AnalyticsID},
	}
}
