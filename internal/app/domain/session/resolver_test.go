package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	everyPath = []string{
		"/", "/home", "/dashboard", "/pacientes", "/cirugias", "/contactos", "/evolucion",
		"/family", "/family/login", "/family/dashboard", "/family/unknown", "/unknown",
		"/pacientes/42", "", "dashboard", "/DASHBOARD", "//pacientes/",
	}
	everyState = []State{
		AnonymousState(),
		AdminState("a"),
		FamilyState("f"),
		FromCredentials(Credentials{AdminToken: "a", FamilyToken: "f"}),
	}
)

func TestResolveIsDeterministic(t *testing.T) {
	for _, st := range everyState {
		for _, p := range everyPath {
			assert.Equal(t, Resolve(p, st), Resolve(p, st), "path %q state %s", p, st.Kind)
		}
	}
}

func TestResolveLandingIgnoresSession(t *testing.T) {
	want := Decision{Action: Render, Shell: ShellPublic, Page: PageLanding}
	for _, st := range everyState {
		assert.Equal(t, want, Resolve("/home", st), "state %s", st.Kind)
	}
}

func TestResolveFamilyBranch(t *testing.T) {
	for _, st := range []State{FamilyState("f"), FromCredentials(Credentials{AdminToken: "a", FamilyToken: "f"})} {
		for _, p := range everyPath {
			if p == "/home" {
				continue
			}
			assert.Equal(t, ShellFamily, Resolve(p, st).Shell, "path %q", p)
		}
	}

	st := FamilyState("f")
	assert.Equal(t, Decision{Action: Render, Shell: ShellFamily, Page: PageFamilyLogin}, Resolve("/family/login", st))
	assert.Equal(t, Decision{Action: Render, Shell: ShellFamily, Page: PageFamilyDashboard}, Resolve("/family/dashboard", st))
	assert.Equal(t, Decision{Action: Render, Shell: ShellFamily, Page: PageFamilyLogin}, Resolve("/family/anything/else", st))
	assert.Equal(t, Decision{Action: Render, Shell: ShellFamily, Page: PageFamilyLogin}, Resolve("/family", st))

	t.Run("paths outside the family prefix redirect to the family dashboard", func(t *testing.T) {
		for _, p := range []string{"/", "/dashboard", "/pacientes", "/unknown", "/familyx"} {
			d := Resolve(p, st)
			assert.Equal(t, Redirect, d.Action, "path %q", p)
			assert.Equal(t, PathFamilyDashboard, d.Location, "path %q", p)
		}
	})
}

func TestResolvePublicBranch(t *testing.T) {
	st := AnonymousState()
	for _, p := range everyPath {
		d := Resolve(p, st)
		assert.Equal(t, Render, d.Action, "path %q", p)
		assert.Equal(t, ShellPublic, d.Shell, "path %q", p)
	}

	assert.Equal(t, PageAdminLogin, Resolve("/", st).Page)
	assert.Equal(t, PageAdminLogin, Resolve("/dashboard", st).Page)
	assert.Equal(t, PageAdminLogin, Resolve("/family/dashboard", st).Page)
	assert.Equal(t, PageAdminLogin, Resolve("/unknown", st).Page)
	assert.Equal(t, PageFamilyLogin, Resolve("/family/login", st).Page)
}

func TestResolveAdminBranch(t *testing.T) {
	st := AdminState("a")
	tests := []struct {
		path string
		want Page
	}{
		{"/dashboard", PageDashboard},
		{"/pacientes", PagePatients},
		{"/cirugias", PageSurgeries},
		{"/contactos", PageContacts},
		{"/evolucion", PageEvolution},
		{"/", PageDashboard},
		{"/unknown", PageDashboard},
		{"/pacientes/42", PageDashboard},
		{"/family/login", PageDashboard},
		{"/family/dashboard", PageDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, Decision{Action: Render, Shell: ShellAdmin, Page: tt.want}, Resolve(tt.path, st))
		})
	}
}

func TestResolveNormalizesPaths(t *testing.T) {
	st := AdminState("a")
	assert.Equal(t, PagePatients, Resolve("/pacientes/", st).Page)
	assert.Equal(t, PagePatients, Resolve("//pacientes", st).Page)
	assert.Equal(t, PagePatients, Resolve("/Pacientes", st).Page)
	assert.Equal(t, PagePatients, Resolve("pacientes", st).Page)
	assert.Equal(t, PageLanding, Resolve("/HOME/", AnonymousState()).Page)
}

func TestDecisionLabels(t *testing.T) {
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect", Redirect.String())
	assert.Equal(t, "admin", ShellAdmin.String())
	assert.Equal(t, "public", ShellPublic.String())
	assert.Equal(t, "family", ShellFamily.String())
	assert.Equal(t, "patients", PagePatients.String())
	assert.Equal(t, "unknown", Page(99).String())
}
