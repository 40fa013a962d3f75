package auth

// Capability names checked by admin surfaces.
const (
	CapAccessAdmin       = "admin:access"
	CapReviewSubmissions = "submissions:review"
	CapExportSubmissions = "submissions:export"
)

// Session is the caller identity resolved from a bearer token.
type Session struct {
	UserID      string
	Role        string
	Permissions []string
}

// roleCapabilities is the static role -> default capability table.
var roleCapabilities = map[string][]string{
	"admin":     {CapAccessAdmin, CapReviewSubmissions, CapExportSubmissions},
	"moderator": {CapAccessAdmin, CapReviewSubmissions},
	"vendor":    {},
}

// HasCapability resolves a capability by unioning the role's default set
// with the session's explicit per-user permission overrides.
func (s *Session) HasCapability(capability string) bool {
	for _, p := range s.Permissions {
		if p == capability {
			return true
		}
	}
	for _, c := range roleCapabilities[s.Role] {
		if c == capability {
			return true
		}
	}
	return false
}

// CanAccessAdmin reports whether the session may reach the admin review
// screens. The onboarding wizard itself is public and never consults this.
func CanAccessAdmin(s *Session) bool {
	return s != nil && s.HasCapability(CapAccessAdmin)
}
