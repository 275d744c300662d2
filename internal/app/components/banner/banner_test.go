package banner

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	t.Run("renders message and description", func(t *testing.T) {
		var sb strings.Builder
		err := Banner(BannerProps{
			ID:          "login-invalid",
			Type:        BannerError,
			Message:     "Credenciales inválidas",
			Description: "<script>alert(1)</script>",
			Dismissable: true,
		}).Render(context.Background(), &sb)
		require.NoError(t, err)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
		require.NoError(t, err)

		alert := doc.Find("#login-invalid[role='alert']")
		require.Equal(t, 1, alert.Length())
		assert.Equal(t, "error", alert.AttrOr("data-banner", ""))
		assert.Contains(t, alert.Text(), "Credenciales inválidas")
		assert.Equal(t, 0, doc.Find("script").Length(), "description must be escaped")
		assert.Equal(t, 1, alert.Find("button").Length())
	})

	t.Run("empty message renders nothing", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Banner(BannerProps{Type: BannerError}).Render(context.Background(), &sb))
		assert.Empty(t, sb.String())
	})
}
