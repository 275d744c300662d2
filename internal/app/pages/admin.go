package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// adminPage renders the heading block shared by the admin sections. Their
// tables and forms load from the API client side.
func adminPage(key, title, description string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section data-page="%s" class="p-8"><h1 class="text-2xl font-bold text-gray-800 mb-4">%s</h1><p class="text-gray-600">%s</p></section>`,
			templ.EscapeString(key), templ.EscapeString(title), templ.EscapeString(description))
		return err
	})
}

func Dashboard() templ.Component {
	return adminPage("dashboard", "Dashboard", "Pacientes activos, cirugías del día y pacientes críticos.")
}

func Patients() templ.Component {
	return adminPage("patients", "Pacientes", "Registro de pacientes activos.")
}

func Surgeries() templ.Component {
	return adminPage("surgeries", "Cirugías", "Programación y estado de las cirugías.")
}

func Contacts() templ.Component {
	return adminPage("contacts", "Contactos", "Familiares y contactos de cada paciente.")
}

func Evolution() templ.Component {
	return adminPage("evolution", "Evolución", "Evolución clínica y signos vitales.")
}
