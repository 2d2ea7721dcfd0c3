package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsRequestValidate(t *testing.T) {
	t.Run("flat fields only", func(t *testing.T) {
		name := "Agricultural Engineering Associates"
		phone := "1-800-499-5893"
		req := &UpdateSettingsRequest{BusinessName: &name, Phone: &phone}

		fields, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, Fields{
			"businessName": name,
			"phone":        phone,
		}, fields)
	})

	t.Run("partial social links keep only provided keys", func(t *testing.T) {
		fb := "https://facebook.com/aea"
		req := &UpdateSettingsRequest{
			SocialLinks: &UpdateSocialLinksRequest{Facebook: &fb},
		}

		fields, err := req.Validate()
		require.NoError(t, err)

		links, ok := fields["socialLinks"].(Fields)
		require.True(t, ok)
		assert.Equal(t, Fields{"facebook": fb}, links)
	})

	t.Run("empty request yields empty fields", func(t *testing.T) {
		fields, err := (&UpdateSettingsRequest{}).Validate()
		require.NoError(t, err)
		assert.Empty(t, fields)
	})
}
