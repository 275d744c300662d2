package sidebar

import (
	"context"
	"fmt"
	"io"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/go-siacom/internal/app/components/button"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
)

const linkClasses = "hover:bg-indigo-600 p-2 rounded"

// Sidebar is the admin navigation: brand, one link per section and, when the
// token could be read, who is signed in.
func Sidebar(nav models.Navigation, active string, user *models.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div id="sidebar" class="bg-indigo-700 text-white w-64 min-h-screen p-6 flex flex-col">`)
		io.WriteString(w, `<h1 class="text-2xl font-bold mb-10">SIACOM</h1>`)
		io.WriteString(w, `<nav class="flex flex-col gap-4">`)
		for _, item := range nav.Items {
			class := linkClasses
			current := ""
			if item.Name == active {
				class = twmerge.Merge(linkClasses, "bg-indigo-800 font-semibold")
				current = ` aria-current="page"`
			}
			fmt.Fprintf(w, `<a href="%s" class="%s"%s>%s</a>`,
				templ.EscapeString(item.URL), templ.EscapeString(class), current, templ.EscapeString(item.Name))
		}
		io.WriteString(w, `</nav>`)

		io.WriteString(w, `<div class="mt-auto pt-10 text-sm">`)
		if user != nil {
			fmt.Fprintf(w, `<p class="font-semibold" data-user>%s</p>`, templ.EscapeString(user.Name))
			if user.Role != "" {
				fmt.Fprintf(w, `<p class="text-indigo-200" data-role>%s</p>`, templ.EscapeString(RoleLabel(user.Role)))
			}
		}
		io.WriteString(w, `<form method="post" action="/logout" class="mt-4">`)
		err := button.Button(button.Props{
			ID:        "logout",
			Type:      button.TypeSubmit,
			Label:     "Cerrar sesión",
			Variant:   button.VariantGhost,
			FullWidth: true,
		}).Render(ctx, w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `</form></div></div>`)
		return err
	})
}

// RoleLabel turns an API user type such as "administrador" into a display label.
func RoleLabel(role string) string {
	// Casers keep state and cannot be shared between requests.
	return cases.Title(language.Spanish).String(role)
}
