package guard

import "strings"

// Decision is the outcome of evaluating one navigation. Exactly one of Allow
// or a redirect target is produced per evaluation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

const (
	LoginPath     = "/auth/login"
	RegisterPath  = "/auth/register"
	DashboardPath = "/dashboard"
	HomePath      = "/"
)

var protectedPaths = []string{"/dashboard", "/vehicles", "/maintenance"}

var authOnlyPaths = []string{LoginPath, RegisterPath}

func matchesAny(path string, set []string) bool {
	for _, p := range set {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// IsProtected reports whether a path requires a valid session.
func IsProtected(path string) bool {
	return matchesAny(path, protectedPaths)
}

// Evaluate decides whether a navigation may proceed. The protected-route check
// runs before the public-home check; the order is load-bearing.
func Evaluate(path string, sessionValid bool) Decision {
	switch {
	case IsProtected(path) && !sessionValid:
		return Decision{RedirectTo: LoginPath}
	case matchesAny(path, authOnlyPaths) && sessionValid:
		return Decision{RedirectTo: DashboardPath}
	case path == HomePath && sessionValid:
		return Decision{RedirectTo: DashboardPath}
	default:
		return Decision{Allow: true}
	}
}
