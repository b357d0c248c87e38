// Package shop wires the storefront together: it owns the attached slot
// store, the entity repositories, the session gate, and the router, and it
// implements the cross-component side effects (login navigates to admin,
// logout navigates home, creating a product navigates to its detail view).
//
// Shop is the explicit application context handed to anything that needs
// shared state; there is no package-level mutable state anywhere in the
// module.
package shop

import (
	"fmt"

	"github.com/dukaforge/storekeep/internal/brand"
	"github.com/dukaforge/storekeep/internal/cart"
	"github.com/dukaforge/storekeep/internal/catalog"
	"github.com/dukaforge/storekeep/internal/memory"
	"github.com/dukaforge/storekeep/internal/nav"
	"github.com/dukaforge/storekeep/internal/reviews"
	"github.com/dukaforge/storekeep/internal/session"
	"github.com/dukaforge/storekeep/internal/sqlite"
	"github.com/dukaforge/storekeep/pkg/types"
)

// Options carries the non-storage knobs for Open.
type Options struct {
	// Passcode is the expected admin passcode.
	Passcode string
	// StartToken is the navigation token present at process start.
	StartToken string
}

// Shop is the application context.
type Shop struct {
	slots types.SlotStore

	Catalog *catalog.Repository
	Reviews *reviews.Repository
	Brand   *brand.Store
	Cart    *cart.Repository
	Gate    *session.Gate
	Router  *nav.Router
}

// Open attaches the backend selected by config and binds every component to
// it. The caller must Close the shop when done.
func Open(config types.Config, opts Options) (*Shop, error) {
	slots, err := newSlotStore(config)
	if err != nil {
		return nil, err
	}

	gate := session.NewGate(opts.Passcode)

	return &Shop{
		slots:   slots,
		Catalog: catalog.New(slots),
		Reviews: reviews.New(slots),
		Brand:   brand.New(slots),
		Cart:    cart.New(slots),
		Gate:    gate,
		Router:  nav.NewRouter(gate, opts.StartToken),
	}, nil
}

// newSlotStore creates and attaches the backend named in config.
func newSlotStore(config types.Config) (types.SlotStore, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var slots types.SlotStore
	switch config.Backend {
	case types.BackendSQLite:
		slots = sqlite.NewBackend()
	case types.BackendMemory:
		return memory.NewStore(), nil
	default:
		return nil, types.ErrBackendUnknown
	}

	if err := slots.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}
	return slots, nil
}

// Close detaches the backend. Idempotent.
func (s *Shop) Close() error {
	return s.slots.Detach()
}

// Login attempts the passcode against the gate. Success navigates to admin;
// failure leaves both gate and router untouched and returns ErrBadPasscode.
func (s *Shop) Login(passcode string) error {
	if err := s.Gate.AttemptLogin(passcode); err != nil {
		return err
	}
	s.Router.Navigate(nav.TokenAdmin)
	return nil
}

// Logout clears the gate and navigates home.
func (s *Shop) Logout() {
	s.Gate.Logout()
	s.Router.Navigate(nav.TokenHome)
}

// CreateProduct creates a defaulted product and navigates to its detail
// view.
func (s *Shop) CreateProduct() types.Product {
	p := s.Catalog.Create()
	s.Router.Navigate(nav.ProductToken(p.ID))
	return p
}

// DeleteProduct removes the product after asking confirm for the go-ahead.
// The decision interface replaces the original's blocking dialog: confirm
// receives the doomed product and returns whether to proceed. Returns
// ErrNotFound for a missing ID without consulting confirm.
func (s *Shop) DeleteProduct(id string, confirm func(types.Product) bool) error {
	p, err := s.Catalog.Get(id)
	if err != nil {
		return err
	}
	if confirm != nil && !confirm(p) {
		return nil
	}
	return s.Catalog.Delete(id)
}
