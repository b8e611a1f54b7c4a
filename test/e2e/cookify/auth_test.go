package cookify_test

import (
	"testing"

	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginMe walks the account flow end to end.
func TestRegisterLoginMe(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)

	user, err := client.Register(t.Context(), "  Alice@Example.com ", testPassword)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.Len(t, user.ID, 26)

	session, err := client.Login(t.Context(), "ALICE@example.com", testPassword)
	require.NoError(t, err)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, "alice@example.com", me.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)
	registerAndLogin(t, client, "dup@example.com")

	_, err := client.Register(t.Context(), "DUP@example.com", "another-pass")
	assertAPIError(t, err, cookifysdk.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)

	_, err := client.Register(t.Context(), "not-an-email", testPassword)
	assertAPIError(t, err, cookifysdk.ErrInvalidRequest)

	_, err = client.Register(t.Context(), "empty@example.com", "")
	assertAPIError(t, err, cookifysdk.ErrInvalidRequest)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)
	registerAndLogin(t, client, "bob@example.com")

	_, err := client.Login(t.Context(), "bob@example.com", "wrong-password")
	assertAPIError(t, err, cookifysdk.ErrInvalidCredentials)

	// Unknown accounts fail the same way.
	_, err = client.Login(t.Context(), "nobody@example.com", testPassword)
	assertAPIError(t, err, cookifysdk.ErrInvalidCredentials)
}

func TestProtectedRoutes_RejectBadTokens(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)

	for _, token := range []string{"", "invalid-token-12345", "a.b.c"} {
		session := client.NewSession(token)

		_, err := session.Me(t.Context())
		assertAPIError(t, err, cookifysdk.ErrInvalidToken)

		_, err = session.ListPantry(t.Context())
		assertAPIError(t, err, cookifysdk.ErrInvalidToken)
	}

}
