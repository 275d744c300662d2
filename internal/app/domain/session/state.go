package session

// Kind tags which credential a navigation is evaluated under.
type Kind int

const (
	Anonymous Kind = iota
	Admin
	Family
)

func (k Kind) String() string {
	switch k {
	case Admin:
		return "admin"
	case Family:
		return "family"
	default:
		return "anonymous"
	}
}

// Credentials is a snapshot of the two entries in the credential store.
// An empty string means the entry is absent.
type Credentials struct {
	AdminToken  string
	FamilyToken string
}

func (c Credentials) HasAdmin() bool { return c.AdminToken != "" }
func (c Credentials) HasFamily() bool { return c.FamilyToken != "" }

// State is the session a request is resolved against: Anonymous, Admin{token}
// or Family{token}. Token is empty for Anonymous.
type State struct {
	Kind  Kind
	Token string
}

func AnonymousState() State { return State{Kind: Anonymous} }
func AdminState(token string) State { return State{Kind: Admin, Token: token} }
func FamilyState(token string) State { return State{Kind: Family, Token: token} }
func (s State) IsAuthenticated() bool { return s.Kind != Anonymous }

// FromCredentials collapses a credential snapshot into a State. When both
// tokens are present the family session wins.
func FromCredentials(c Credentials) State {
	switch {
	case c.HasFamily():
		return FamilyState(c.FamilyToken)
	case c.HasAdmin():
		return AdminState(c.AdminToken)
	default:
		return AnonymousState()
	}
}
