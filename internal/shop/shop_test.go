package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/storekeep/internal/nav"
	"github.com/dukaforge/storekeep/pkg/types"
)

func openMemory(t *testing.T, opts Options) *Shop {
	t.Helper()
	s, err := Open(types.Config{Backend: types.BackendMemory}, opts)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(types.Config{Backend: "oracle"}, Options{})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)

	_, err = Open(types.Config{}, Options{})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)
}

func TestStartTokenDrivesInitialView(t *testing.T) {
	s := openMemory(t, Options{Passcode: "odgreen", StartToken: "product/blade-001"})
	assert.Equal(t, nav.View{Kind: nav.KindProductDetail, ProductID: "blade-001"}, s.Router.Current())
}

func TestLoginNavigatesToAdmin(t *testing.T) {
	s := openMemory(t, Options{Passcode: "odgreen"})

	err := s.Login("wrong")
	assert.ErrorIs(t, err, types.ErrBadPasscode)
	assert.False(t, s.Gate.Authorized())
	assert.Equal(t, nav.KindHome, s.Router.Current().Kind, "failed login must not navigate")

	require.NoError(t, s.Login("odgreen"))
	assert.True(t, s.Gate.Authorized())
	assert.Equal(t, nav.KindAdmin, s.Router.Current().Kind)
}

func TestLogoutNavigatesHome(t *testing.T) {
	s := openMemory(t, Options{Passcode: "odgreen"})
	require.NoError(t, s.Login("odgreen"))

	s.Logout()
	assert.False(t, s.Gate.Authorized())
	assert.Equal(t, nav.KindHome, s.Router.Current().Kind)
}

func TestCreateProductNavigatesToDetail(t *testing.T) {
	s := openMemory(t, Options{Passcode: "odgreen"})

	p := s.CreateProduct()
	assert.Equal(t, nav.View{Kind: nav.KindProductDetail, ProductID: p.ID}, s.Router.Current())
}

func TestDeleteProductConsultsConfirmer(t *testing.T) {
	s := openMemory(t, Options{Passcode: "odgreen"})
	p := s.CreateProduct()

	// Declined: product stays.
	var asked types.Product
	err := s.DeleteProduct(p.ID, func(doomed types.Product) bool {
		asked = doomed
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, asked.ID)
	assert.Len(t, s.Catalog.List(), 1)

	// Confirmed: product goes.
	require.NoError(t, s.DeleteProduct(p.ID, func(types.Product) bool { return true }))
	assert.Empty(t, s.Catalog.List())

	// Missing ID surfaces before any confirmation.
	err = s.DeleteProduct("no-such-id", func(types.Product) bool {
		t.Fatal("confirm must not run for a missing product")
		return false
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSQLiteBackendPersistsAcrossOpens(t *testing.T) {
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	s, err := Open(cfg, Options{Passcode: "odgreen"})
	require.NoError(t, err)
	require.NoError(t, s.Login("odgreen"))
	p := s.CreateProduct()
	s.Cart.Add(p)
	s.Reviews.Add("M. Carter", "Great knife")
	require.NoError(t, s.Close())

	s2, err := Open(cfg, Options{Passcode: "odgreen"})
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Len(t, s2.Cart.Items(), 1)
	assert.Len(t, s2.Reviews.List(), 1)

	// The session flag is process-local and never persisted.
	assert.False(t, s2.Gate.Authorized())
}
