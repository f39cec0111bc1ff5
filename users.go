package nivesh

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AdminUsername is the fixed username of the self-provisioning
// administrator account.
const AdminUsername = "admin"

// User is a record in the shared user registry. Secrets are stored as
// one-way digests only.
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email,omitempty"`
	PasswordHash     string    `json:"passwordHash"`
	PINHash          string    `json:"pinHash,omitempty"`
	BiometricEnabled bool      `json:"biometricEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
	LastLogin        time.Time `json:"lastLogin,omitzero"`
	IsAdmin          bool      `json:"isAdmin"`
}

type userRegistry struct {
	Users []User `json:"users"`
}

func newUserRegistry() userRegistry { return userRegistry{Users: []User{}} }

// loadRegistry reads the user registry, lazily provisioning the
// administrator account when it is absent and a bootstrap seed is
// configured. This guarantees the admin account becomes available even
// after the registry was wiped; the seed itself comes from configuration,
// never from the source.
func loadRegistry(s *Store) (userRegistry, error) {
	if s.cfg.AdminSeed == "" {
		return readDocument(s, s.usersPath(), newUserRegistry)
	}
	return updateDocument(s, s.usersPath(), newUserRegistry, func(reg *userRegistry) error {
		for _, u := range reg.Users {
			if u.Username == AdminUsername {
				return nil
			}
		}
		hash, err := HashSecret(s.cfg.AdminSeed)
		if err != nil {
			return fmt.Errorf("could not provision admin account: %w", err)
		}
		reg.Users = append(reg.Users, User{
			ID:           uuid.New().String(),
			Username:     AdminUsername,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
			IsAdmin:      true,
		})
		return nil
	})
}

// ReadUsers returns all users in the registry.
func ReadUsers(s *Store) ([]User, error) {
	reg, err := loadRegistry(s)
	if err != nil {
		return nil, err
	}
	return reg.Users, nil
}

// FindUser locates a user by username first, then by email when the
// username lookup fails and an email was supplied.
func FindUser(s *Store, username, email string) (User, error) {
	reg, err := loadRegistry(s)
	if err != nil {
		return User{}, err
	}
	if u, ok := reg.byUsername(username); ok {
		return u, nil
	}
	if email != "" {
		if u, ok := reg.byEmail(email); ok {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

func (reg *userRegistry) byUsername(username string) (User, bool) {
	for _, u := range reg.Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

func (reg *userRegistry) byEmail(email string) (User, bool) {
	if email == "" {
		return User{}, false
	}
	for _, u := range reg.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// saveUser replaces the registry record with the same id.
func saveUser(s *Store, user User) error {
	_, err := updateDocument(s, s.usersPath(), newUserRegistry, func(reg *userRegistry) error {
		for i := range reg.Users {
			if reg.Users[i].ID == user.ID {
				reg.Users[i] = user
				return nil
			}
		}
		return fmt.Errorf("user %q: %w", user.ID, ErrNotFound)
	})
	return err
}

// EnableBiometric flips the biometric capability flag on the user record.
// It does not itself perform any biometric verification.
func EnableBiometric(s *Store, userID string, enabled bool) error {
	_, err := updateDocument(s, s.usersPath(), newUserRegistry, func(reg *userRegistry) error {
		for i := range reg.Users {
			if reg.Users[i].ID == userID {
				reg.Users[i].BiometricEnabled = enabled
				return nil
			}
		}
		return fmt.Errorf("user %q: %w", userID, ErrNotFound)
	})
	return err
}
