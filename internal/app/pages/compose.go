package pages

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-siacom/internal/app/domain/session"
	"github.com/FACorreiaa/go-siacom/internal/app/models"
)

type pageView struct {
	title     string
	activeNav string
	content   func(user *models.User, notice string) templ.Component
}

var views = map[session.Page]pageView{
	session.PageLanding: {
		title:   "SIACOM",
		content: func(*models.User, string) templ.Component { return Landing() },
	},
	session.PageAdminLogin: {
		title:   "SIACOM - Login",
		content: func(_ *models.User, notice string) templ.Component { return AdminLogin(notice) },
	},
	session.PageFamilyLogin: {
		title:   "SIACOM - Acceso familiar",
		content: func(_ *models.User, notice string) templ.Component { return FamilyLogin(notice) },
	},
	session.PageFamilyDashboard: {
		title:   "SIACOM - Portal familiar",
		content: func(user *models.User, _ string) templ.Component { return FamilyDashboard(user) },
	},
	session.PageDashboard: {
		title:     "Dashboard - SIACOM",
		activeNav: "Dashboard",
		content:   func(*models.User, string) templ.Component { return Dashboard() },
	},
	session.PagePatients: {
		title:     "Pacientes - SIACOM",
		activeNav: "Pacientes",
		content:   func(*models.User, string) templ.Component { return Patients() },
	},
	session.PageSurgeries: {
		title:     "Cirugías - SIACOM",
		activeNav: "Cirugías",
		content:   func(*models.User, string) templ.Component { return Surgeries() },
	},
	session.PageContacts: {
		title:     "Contactos - SIACOM",
		activeNav: "Contactos",
		content:   func(*models.User, string) templ.Component { return Contacts() },
	},
	session.PageEvolution: {
		title:     "Evolución - SIACOM",
		activeNav: "Evolución",
		content:   func(*models.User, string) templ.Component { return Evolution() },
	},
}

// Compose builds the layout for a render decision. Only the admin shell gets
// the sidebar; family and public pages stand alone.
func Compose(d session.Decision, user *models.User, notice string) models.LayoutTempl {
	view, ok := views[d.Page]
	if !ok {
		view = views[session.PageAdminLogin]
	}

	l := models.LayoutTempl{
		Title:   view.title,
		Content: view.content(user, notice),
	}
	if d.Shell == session.ShellAdmin {
		l.Sidebar = true
		l.Nav = models.AdminNav
		l.ActiveNav = view.activeNav
		l.User = user
	}
	if d.Shell == session.ShellFamily {
		l.User = user
	}
	return l
}
