package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-siacom/internal/app/components/sidebar"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// LayoutPage renders the full HTML document around l.Content, with the admin
// sidebar when l.Sidebar is set.
func LayoutPage(l models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		io.WriteString(w, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(w, `<title>%s</title>`, templ.EscapeString(l.Title))
		io.WriteString(w, `<link rel="stylesheet" href="/assets/css/siacom.css">`)
		fmt.Fprintf(w, `<script src="%s" defer></script>`, htmxSrc)
		io.WriteString(w, `</head><body class="bg-gray-100">`)

		content := l.Content
		if content == nil {
			content = templ.NopComponent
		}

		if l.Sidebar {
			io.WriteString(w, `<div class="flex">`)
			if err := sidebar.Sidebar(l.Nav, l.ActiveNav, l.User).Render(ctx, w); err != nil {
				return err
			}
			io.WriteString(w, `<main class="flex-1">`)
			if err := content.Render(ctx, w); err != nil {
				return err
			}
			io.WriteString(w, `</main></div>`)
		} else {
			io.WriteString(w, `<main>`)
			if err := content.Render(ctx, w); err != nil {
				return err
			}
			io.WriteString(w, `</main>`)
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
