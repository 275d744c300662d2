package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-siacom/internal/app/components/banner"
	"github.com/FACorreiaa/go-siacom/internal/app/components/button"
)

// Element IDs the login handlers retarget htmx notices into.
const (
	LoginNoticeID       = "login-notice"
	FamilyLoginNoticeID = "family-login-notice"
)

func Landing() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<section data-page="landing" class="h-screen flex flex-col items-center justify-center gap-6 text-center">`)
		io.WriteString(w, `<h1 class="text-4xl font-bold text-gray-800">SIACOM</h1>`)
		io.WriteString(w, `<p class="text-gray-600 max-w-md">Seguimiento de pacientes quirúrgicos para el personal clínico y sus familiares.</p>`)
		io.WriteString(w, `<div class="flex gap-4">`)
		if err := button.Button(button.Props{ID: "staff-access", Href: "/", Label: "Acceso personal"}).Render(ctx, w); err != nil {
			return err
		}
		if err := button.Button(button.Props{ID: "family-access", Href: "/family/login", Label: "Acceso familiar", Variant: button.VariantOutline}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

// AdminLogin is the staff sign-in form. A non-empty notice is shown above the
// fields.
func AdminLogin(notice string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div data-page="admin_login" class="h-screen flex items-center justify-center bg-gray-100">`)
		io.WriteString(w, `<form id="login-form" method="post" action="/login" hx-post="/login" hx-target="#login-notice" hx-swap="innerHTML" class="bg-white p-8 rounded-2xl shadow-lg w-96">`)
		io.WriteString(w, `<h1 class="text-2xl font-bold text-gray-800 mb-6">SIACOM - Login</h1>`)
		io.WriteString(w, `<div id="login-notice">`)
		if err := LoginNotice(notice).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</div>`)
		io.WriteString(w, `<input type="text" name="username" placeholder="Usuario" autocomplete="username" class="w-full p-2 mb-4 border rounded">`)
		io.WriteString(w, `<input type="password" name="password" placeholder="Contraseña" autocomplete="current-password" class="w-full p-2 mb-4 border rounded">`)
		if err := button.Button(button.Props{ID: "login-submit", Type: button.TypeSubmit, Label: "Ingresar", FullWidth: true}).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `<p class="mt-4 text-center text-sm"><a href="/family/login" class="text-indigo-600 hover:underline">Acceso familiar</a></p>`)
		_, err := io.WriteString(w, `</form></div>`)
		return err
	})
}

// LoginNotice is the invalid-credentials notice on its own, used as the htmx
// swap target content.
func LoginNotice(notice string) templ.Component {
	return banner.Banner(banner.BannerProps{
		ID:          "login-invalid",
		Type:        banner.BannerError,
		Message:     notice,
		Dismissable: true,
	})
}
