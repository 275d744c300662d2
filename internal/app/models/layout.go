package models

import "github.com/a-h/templ"

// User is the signed-in party as shown in the chrome. It is decoded from the
// bearer token for display only and never used for access decisions.
type User struct {
	ID        string
	Name      string
	Role      string
	PatientID string
}

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title     string
	User      *User
	Nav       Navigation
	ActiveNav string
	Content   templ.Component
	// Sidebar is set for the admin shell only.
	Sidebar bool
}

var AdminNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/dashboard"},
		{Name: "Pacientes", URL: "/pacientes"},
		{Name: "Cirugías", URL: "/cirugias"},
		{Name: "Contactos", URL: "/contactos"},
		{Name: "Evolución", URL: "/evolucion"},
	},
}
