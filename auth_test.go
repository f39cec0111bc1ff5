package nivesh

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// stubBiometric scripts the platform collaborator.
type stubBiometric struct {
	supported bool
	confirmed bool
	err       error
	calls     int
}

func (b *stubBiometric) IsSupported() bool { return b.supported }
func (b *stubBiometric) Authenticate() (bool, error) {
	b.calls++
	return b.confirmed, b.err
}

func register(t *testing.T, s *Store, req RegisterRequest) User {
	t.Helper()
	u, err := Register(s, req)
	if err != nil {
		t.Fatalf("Register(%q) failed: %v", req.Username, err)
	}
	return u
}

func TestRegisterValidation(t *testing.T) {
	s := newTestStore(t)
	register(t, s, RegisterRequest{Username: "asha", Email: "asha@example.com", Password: "secret", PIN: "1234"})

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"duplicate username", RegisterRequest{Username: "asha", Password: "other"}},
		{"duplicate email", RegisterRequest{Username: "other", Email: "asha@example.com", Password: "x"}},
		{"invalid email", RegisterRequest{Username: "b", Email: "not-an-email", Password: "x"}},
		{"missing password", RegisterRequest{Username: "c"}},
		{"missing username", RegisterRequest{Password: "x"}},
		{"short PIN", RegisterRequest{Username: "d", Password: "x", PIN: "12"}},
		{"non numeric PIN", RegisterRequest{Username: "e", Password: "x", PIN: "12ab"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Register(s, tc.req); !errors.Is(err, ErrValidation) {
				t.Errorf("Register() = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterProvisionsItemStore(t *testing.T) {
	s := newTestStore(t)
	u := register(t, s, RegisterRequest{Username: "asha", Password: "secret"})

	path := filepath.Join(s.Config().BaseDir, "user_data", u.ID+"_data.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("item store not provisioned at %s: %v", path, err)
	}
}

func TestRegisterStoresDigestsOnly(t *testing.T) {
	s := newTestStore(t)
	u := register(t, s, RegisterRequest{Username: "asha", Password: "secret", PIN: "1234"})

	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Error("password stored in plaintext or not at all")
	}
	if u.PINHash == "1234" || u.PINHash == "" {
		t.Error("PIN stored in plaintext or not at all")
	}
	if !VerifySecret("secret", u.PasswordHash) {
		t.Error("password digest does not verify")
	}
	if VerifySecret("wrong", u.PasswordHash) {
		t.Error("wrong password verifies")
	}
}

func TestLoginBranchPriority(t *testing.T) {
	s := newTestStore(t)
	register(t, s, RegisterRequest{Username: "asha", Email: "asha@example.com", Password: "secret", PIN: "1234"})

	bio := &stubBiometric{supported: true, confirmed: true}

	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"password only", LoginRequest{Username: "asha", Password: "secret"}, false},
		{"pin only", LoginRequest{Username: "asha", PIN: "1234"}, false},
		{"located by email", LoginRequest{Username: "nobody", Email: "asha@example.com", Password: "secret"}, false},
		{"wrong password", LoginRequest{Username: "asha", Password: "nope"}, true},
		{"wrong pin", LoginRequest{Username: "asha", PIN: "0000"}, true},
		// PIN takes priority when present: a wrong PIN is not rescued by a
		// correct password.
		{"wrong pin with correct password", LoginRequest{Username: "asha", PIN: "0000", Password: "secret"}, true},
		{"no credential supplied", LoginRequest{Username: "asha"}, true},
		{"unknown user", LoginRequest{Username: "ghost", Password: "secret"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Login(s, bio, tc.req)
			if tc.wantErr && !errors.Is(err, ErrAuth) {
				t.Errorf("Login() = %v, want ErrAuth", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Login() failed: %v", err)
			}
		})
	}
}

func TestLoginBiometricBranch(t *testing.T) {
	s := newTestStore(t)
	u := register(t, s, RegisterRequest{Username: "asha", Password: "secret", PIN: "1234"})

	// Biometric requested but not enabled on the record: falls through to
	// the next applicable branch.
	bio := &stubBiometric{supported: true, confirmed: true}
	if _, err := Login(s, bio, LoginRequest{Username: "asha", UseBiometric: true, PIN: "1234"}); err != nil {
		t.Fatalf("Login() with biometric disabled should fall back to PIN: %v", err)
	}
	if bio.calls != 0 {
		t.Errorf("biometric collaborator called %d times while disabled, want 0", bio.calls)
	}

	if err := EnableBiometric(s, u.ID, true); err != nil {
		t.Fatalf("EnableBiometric() failed: %v", err)
	}

	// Enabled and confirmed: succeeds without any other credential.
	if _, err := Login(s, bio, LoginRequest{Username: "asha", UseBiometric: true}); err != nil {
		t.Fatalf("biometric Login() failed: %v", err)
	}
	if bio.calls != 1 {
		t.Errorf("biometric collaborator called %d times, want 1", bio.calls)
	}

	// Enabled but not confirmed: fails even with a correct PIN supplied,
	// because the biometric branch wins and ends the attempt.
	denied := &stubBiometric{supported: true, confirmed: false}
	if _, err := Login(s, denied, LoginRequest{Username: "asha", UseBiometric: true, PIN: "1234"}); !errors.Is(err, ErrAuth) {
		t.Errorf("Login() with denied biometric = %v, want ErrAuth", err)
	}
}

func TestLoginSurfacesRegistryReadError(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Config().BaseDir, "users.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Login(s, NoBiometric{}, LoginRequest{Username: "asha", Password: "secret"})
	if err == nil {
		t.Fatal("Login() on a corrupt registry should fail")
	}
	// A parse or IO failure is a store error, not a wrong credential.
	if errors.Is(err, ErrAuth) {
		t.Errorf("Login() = %v, want a non-ErrAuth store error", err)
	}
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	s := newTestStore(t)
	register(t, s, RegisterRequest{Username: "asha", Password: "secret"})

	u, err := Login(s, NoBiometric{}, LoginRequest{Username: "asha", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if u.LastLogin.IsZero() {
		t.Error("LastLogin not set on successful login")
	}

	users, err := ReadUsers(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range users {
		if rec.Username == "asha" && rec.LastLogin.IsZero() {
			t.Error("LastLogin not persisted to the registry")
		}
	}
}

func TestAdminBootstrap(t *testing.T) {
	s := newTestStore(t)

	// First login against an empty registry provisions the admin account.
	u, err := Login(s, NoBiometric{}, LoginRequest{Username: AdminUsername, Password: "changeme"})
	if err != nil {
		t.Fatalf("admin bootstrap Login() failed: %v", err)
	}
	if !u.IsAdmin {
		t.Error("bootstrapped account is not an admin")
	}

	// A second identical attempt must not create a duplicate.
	if _, err := Login(s, NoBiometric{}, LoginRequest{Username: AdminUsername, Password: "changeme"}); err != nil {
		t.Fatalf("second admin Login() failed: %v", err)
	}
	users, err := ReadUsers(s)
	if err != nil {
		t.Fatal(err)
	}
	admins := 0
	for _, rec := range users {
		if rec.IsAdmin {
			admins++
		}
	}
	if admins != 1 {
		t.Errorf("registry holds %d admin accounts, want exactly 1", admins)
	}

	// The wrong seed does not get in.
	if _, err := Login(s, NoBiometric{}, LoginRequest{Username: AdminUsername, Password: "wrong"}); !errors.Is(err, ErrAuth) {
		t.Errorf("Login() with wrong seed = %v, want ErrAuth", err)
	}
}

func TestNoBootstrapWithoutSeed(t *testing.T) {
	s := NewStore(Config{BaseDir: t.TempDir()})
	if _, err := Login(s, NoBiometric{}, LoginRequest{Username: AdminUsername, Password: "changeme"}); !errors.Is(err, ErrAuth) {
		t.Errorf("Login() without configured seed = %v, want ErrAuth", err)
	}
	users, err := ReadUsers(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 0 {
		t.Errorf("registry holds %d users, want 0", len(users))
	}
}
