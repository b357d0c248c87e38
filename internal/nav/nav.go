// Package nav maps navigation tokens onto view states.
//
// Tokens are opaque strings from any source (a CLI argument, a URL fragment,
// an event stream); the mapping itself is a pure function, and Router is the
// small reactive wrapper that tracks the current view.
package nav

import "strings"

// View kinds.
type Kind int

const (
	KindHome Kind = iota
	KindProductDetail
	KindAdmin
	KindAdminLoginPrompt
)

// String returns the route name for the kind.
func (k Kind) String() string {
	switch k {
	case KindProductDetail:
		return "product-detail"
	case KindAdmin:
		return "admin"
	case KindAdminLoginPrompt:
		return "admin-login"
	default:
		return "home"
	}
}

// View is a resolved navigation state. ProductID is set only for
// KindProductDetail.
type View struct {
	Kind      Kind
	ProductID string
}

// Well-known tokens and prefixes.
const (
	TokenHome          = ""
	TokenAdmin         = "admin"
	ProductTokenPrefix = "product/"
)

// namedRoutes maps recognized non-prefixed tokens to view kinds. Tokens not
// present here fall back to home.
var namedRoutes = map[string]Kind{
	TokenHome: KindHome,
}

// ProductToken returns the navigation token for a product's detail view.
func ProductToken(id string) string {
	return ProductTokenPrefix + id
}

// Resolve maps a navigation token to a view state.
//
//	""             -> Home
//	"product/<id>" -> ProductDetail(<id>)
//	"admin"        -> Admin when authorized, AdminLoginPrompt otherwise
//	anything else  -> named route lookup, unrecognized names behave as Home
func Resolve(token string, authorized bool) View {
	if rest, ok := strings.CutPrefix(token, ProductTokenPrefix); ok {
		return View{Kind: KindProductDetail, ProductID: rest}
	}
	if token == TokenAdmin {
		if authorized {
			return View{Kind: KindAdmin}
		}
		return View{Kind: KindAdminLoginPrompt}
	}
	if kind, ok := namedRoutes[token]; ok {
		return View{Kind: kind}
	}
	return View{Kind: KindHome}
}

// Authorizer reports the current session authorization; satisfied by
// session.Gate.
type Authorizer interface {
	Authorized() bool
}

// Router tracks the current view. It recomputes synchronously on every
// Navigate call and never initiates navigation itself; side-effect
// navigation (create product, sign out) is driven by the application
// context.
type Router struct {
	auth    Authorizer
	current View
}

// NewRouter returns a router whose initial state derives from the token
// present at process start.
func NewRouter(auth Authorizer, startToken string) *Router {
	return &Router{
		auth:    auth,
		current: Resolve(startToken, auth.Authorized()),
	}
}

// Current returns the view the router last resolved.
func (r *Router) Current() View {
	return r.current
}

// Navigate resolves the token against the current authorization state and
// makes the result the current view.
func (r *Router) Navigate(token string) View {
	r.current = Resolve(token, r.auth.Authorized())
	return r.current
}
