package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	t.Run("maps known keys", func(t *testing.T) {
		s := FromRows([]SettingRow{
			{Key: KeySiteName, Value: "PerkPal"},
			{Key: KeyContactEmail, Value: "hello@perkpal.io"},
			{Key: KeyRobotsTxt, Value: "User-agent: *\nDisallow: /admin\n"},
		})

		assert.Equal(t, "PerkPal", s.SiteName)
		assert.Equal(t, "hello@perkpal.io", s.ContactEmail)
		assert.Equal(t, "User-agent: *\nDisallow: /admin\n", s.RobotsTxt)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		s := FromRows([]SettingRow{
			{Key: "legacy_theme_color", Value: "#ff0000"},
			{Key: KeyTagline, Value: "Perks for builders"},
		})

		assert.Equal(t, "Perks for builders", s.Tagline)
		assert.Equal(t, SiteSettings{Tagline: "Perks for builders"}, s)
	})

	t.Run("missing keys leave empty strings", func(t *testing.T) {
		s := FromRows(nil)
		assert.Equal(t, SiteSettings{}, s)
	})

	t.Run("last write wins on duplicate keys", func(t *testing.T) {
		s := FromRows([]SettingRow{
			{Key: KeySiteName, Value: "Old"},
			{Key: KeySiteName, Value: "New"},
		})
		assert.Equal(t, "New", s.SiteName)
	})
}

func TestToRowsRoundTrip(t *testing.T) {
	original := SiteSettings{
		SiteName:     "PerkPal",
		Tagline:      "Perks for builders",
		ContactEmail: "hello@perkpal.io",
		MetaTitle:    "PerkPal | Deals",
		AnalyticsID:  "G-123",
	}

	rows := original.ToRows()
	require.Len(t, rows, 12)
	assert.Equal(t, original, FromRows(rows))
}

func TestSiteSettingsValidate(t *testing.T) {
	valid := SiteSettings{ContactEmail: "team@perkpal.io", LogoURL: "https://cdn.perkpal.io/logo.svg"}
	assert.NoError(t, valid.Validate())

	// Empty values are fine; the site just renders without them.
	assert.NoError(t, SiteSettings{}.Validate())

	invalid := SiteSettings{ContactEmail: "not-an-email"}
	assert.Error(t, invalid.Validate())

	badURL := SiteSettings{TwitterURL: "not a url"}
	assert.Error(t, badURL.Validate())
}
