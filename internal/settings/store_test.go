package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

func TestStaticStoreReturnsCopies(t *testing.T) {
	s := models.DefaultSiteSettings()
	s.SiteName = "Testshop"

	store := NewStatic(s)

	got := store.Get()
	assert.Equal(t, "Testshop", got.SiteName)

	// Mutating the returned value must not leak back into the store.
	got.SiteName = "Hacked"
	assert.Equal(t, "Testshop", store.Get().SiteName)
}

func TestNewStoreStartsWithDefaults(t *testing.T) {
	store := NewStore(nil)
	got := store.Get()
	assert.Equal(t, models.DefaultSiteSettings().SiteName, got.SiteName)
	assert.NotEmpty(t, got.PrimaryColor)
}
