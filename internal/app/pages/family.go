package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-siacom/internal/app/components/button"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
)

func FamilyLogin(notice string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div data-page="family_login" class="h-screen flex items-center justify-center bg-gray-100">`)
		io.WriteString(w, `<form id="family-login-form" method="post" action="/family/login" hx-post="/family/login" hx-target="#family-login-notice" hx-swap="innerHTML" class="bg-white p-8 rounded-2xl shadow-lg w-96">`)
		io.WriteString(w, `<h1 class="text-2xl font-bold text-gray-800 mb-2">SIACOM - Familiares</h1>`)
		io.WriteString(w, `<p class="text-sm text-gray-600 mb-6">Ingrese los códigos entregados por el hospital.</p>`)
		io.WriteString(w, `<div id="family-login-notice">`)
		if err := LoginNotice(notice).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</div>`)
		io.WriteString(w, `<input type="text" name="patient_code" placeholder="Código del paciente" class="w-full p-2 mb-4 border rounded">`)
		io.WriteString(w, `<input type="password" name="family_code" placeholder="Código familiar" class="w-full p-2 mb-4 border rounded">`)
		if err := button.Button(button.Props{ID: "family-login-submit", Type: button.TypeSubmit, Label: "Ingresar", FullWidth: true}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</form></div>`)
		return err
	})
}

// FamilyDashboard is the family portal landing. Patient details come from the
// API and are not rendered here.
func FamilyDashboard(user *models.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<section data-page="family_dashboard" class="max-w-3xl mx-auto p-8">`)
		io.WriteString(w, `<header class="flex items-center justify-between mb-8">`)
		io.WriteString(w, `<h1 class="text-2xl font-bold text-gray-800">Portal familiar</h1>`)
		io.WriteString(w, `<form method="post" action="/logout">`)
		if err := button.Button(button.Props{ID: "logout", Type: button.TypeSubmit, Label: "Cerrar sesión", Variant: button.VariantOutline}).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</form></header>`)
		if user != nil && user.PatientID != "" {
			fmt.Fprintf(w, `<p class="text-gray-600" data-patient="%s">Paciente #%s</p>`,
				templ.EscapeString(user.PatientID), templ.EscapeString(user.PatientID))
		}
		_, err := io.WriteString(w, `<p class="text-gray-600 mt-2">Aquí verá el estado de la cirugía y las notificaciones del equipo médico.</p></section>`)
		return err
	})
}
