package session

import (
	"path"
	"strings"
)

// Paths recognised by the resolver.
const (
	PathRoot            = "/"
	PathLanding         = "/home"
	PathDashboard       = "/dashboard"
	PathPatients        = "/pacientes"
	PathSurgeries       = "/cirugias"
	PathContacts        = "/contactos"
	PathEvolution       = "/evolucion"
	PathFamilyPrefix    = "/family"
	PathFamilyLogin     = "/family/login"
	PathFamilyDashboard = "/family/dashboard"
)

type Action int

const (
	Render Action = iota
	Redirect
)

func (a Action) String() string {
	if a == Redirect {
		return "redirect"
	}
	return "render"
}

// Shell is the chrome a page is composed with.
type Shell int

const (
	ShellPublic Shell = iota
	ShellAdmin
	ShellFamily
)

func (s Shell) String() string {
	switch s {
	case ShellAdmin:
		return "admin"
	case ShellFamily:
		return "family"
	default:
		return "public"
	}
}

type Page int

const (
	PageLanding Page = iota
	PageAdminLogin
	PageFamilyLogin
	PageFamilyDashboard
	PageDashboard
	PagePatients
	PageSurgeries
	PageContacts
	PageEvolution
)

var pageNames = map[Page]string{
	PageLanding:         "landing",
	PageAdminLogin:      "admin_login",
	PageFamilyLogin:     "family_login",
	PageFamilyDashboard: "family_dashboard",
	PageDashboard:       "dashboard",
	PagePatients:        "patients",
	PageSurgeries:       "surgeries",
	PageContacts:        "contacts",
	PageEvolution:       "evolution",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "unknown"
}

// Decision is the outcome of resolving one navigation. Location is only set
// for redirects.
type Decision struct {
	Action   Action
	Shell    Shell
	Page     Page
	Location string
}

var adminPages = map[string]Page{
	PathDashboard: PageDashboard,
	PathPatients:  PagePatients,
	PathSurgeries: PageSurgeries,
	PathContacts:  PageContacts,
	PathEvolution: PageEvolution,
}

// Resolve picks the view for requestPath under st. It is a total function:
// every path resolves, unmatched paths land on the active branch's default.
func Resolve(requestPath string, st State) Decision {
	p := normalize(requestPath)

	if p == PathLanding {
		return render(ShellPublic, PageLanding)
	}

	switch st.Kind {
	case Family:
		return resolveFamily(p)
	case Admin:
		return resolveAdmin(p)
	default:
		return resolvePublic(p)
	}
}

func resolveFamily(p string) Decision {
	switch {
	case p == PathFamilyLogin:
		return render(ShellFamily, PageFamilyLogin)
	case p == PathFamilyDashboard:
		return render(ShellFamily, PageFamilyDashboard)
	case underFamily(p):
		return render(ShellFamily, PageFamilyLogin)
	default:
		return Decision{
			Action:   Redirect,
			Shell:    ShellFamily,
			Page:     PageFamilyDashboard,
			Location: PathFamilyDashboard,
		}
	}
}

func resolvePublic(p string) Decision {
	if p == PathFamilyLogin {
		return render(ShellPublic, PageFamilyLogin)
	}
	return render(ShellPublic, PageAdminLogin)
}

func resolveAdmin(p string) Decision {
	if page, ok := adminPages[p]; ok {
		return render(ShellAdmin, page)
	}
	return render(ShellAdmin, PageDashboard)
}

func render(shell Shell, page Page) Decision {
	return Decision{Action: Render, Shell: shell, Page: page}
}

func underFamily(p string) bool {
	return p == PathFamilyPrefix || strings.HasPrefix(p, PathFamilyPrefix+"/")
}

// normalize matches paths case-insensitively and ignores duplicate or
// trailing slashes.
func normalize(p string) string {
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	return strings.ToLower(path.Clean(p))
}
