package nivesh

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// LoginRequest carries zero or more credential types. The resolver picks
// one authoritative verification path; see Login.
type LoginRequest struct {
	Username     string
	Email        string
	Password     string
	PIN          string
	UseBiometric bool
}

// emailPattern is deliberately simple: something, an @, something, a dot,
// something.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// pinPattern: exactly four digits.
var pinPattern = regexp.MustCompile(`^\d{4}$`)

// Login resolves a login attempt. The user is located by username first,
// then by email. Credential branches are tried in one authoritative order,
// first applicable branch wins:
//
//  1. biometric - only if requested and the record has the capability flag;
//     delegates to the platform collaborator.
//  2. PIN - only if a PIN was supplied and the record has a PIN digest.
//  3. password - only if a password was supplied.
//
// A branch that applies but fails ends the attempt: a wrong PIN is not
// rescued by a correct password. On success LastLogin is updated and
// persisted.
func Login(s *Store, bio Biometric, req LoginRequest) (User, error) {
	user, err := FindUser(s, req.Username, req.Email)
	if errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("%w: no matching user", ErrAuth)
	}
	if err != nil {
		// a registry that cannot be read is a store problem, not a failed
		// credential check.
		return User{}, err
	}

	switch {
	case req.UseBiometric && user.BiometricEnabled:
		ok, err := bio.Authenticate()
		if err != nil {
			return User{}, fmt.Errorf("%w: biometric: %v", ErrAuth, err)
		}
		if !ok {
			return User{}, fmt.Errorf("%w: biometric not confirmed", ErrAuth)
		}
	case req.PIN != "" && user.PINHash != "":
		if !VerifySecret(req.PIN, user.PINHash) {
			return User{}, fmt.Errorf("%w: wrong PIN", ErrAuth)
		}
	case req.Password != "":
		if !VerifySecret(req.Password, user.PasswordHash) {
			return User{}, fmt.Errorf("%w: wrong password", ErrAuth)
		}
	default:
		return User{}, fmt.Errorf("%w: no authentication method provided", ErrAuth)
	}

	user.LastLogin = time.Now().UTC()
	if err := saveUser(s, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// RegisterRequest carries the fields of a new account. Email and PIN are
// optional.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	PIN      string
}

// Register creates a new user: validates uniqueness of username and email,
// email shape, and PIN shape; hashes the secrets; and provisions an empty
// item store as a side effect.
func Register(s *Store, req RegisterRequest) (User, error) {
	if req.Username == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if req.Password == "" {
		return User{}, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return User{}, fmt.Errorf("%w: invalid email %q", ErrValidation, req.Email)
	}
	if req.PIN != "" && !pinPattern.MatchString(req.PIN) {
		return User{}, fmt.Errorf("%w: PIN must be exactly 4 digits", ErrValidation)
	}

	passwordHash, err := HashSecret(req.Password)
	if err != nil {
		return User{}, err
	}
	var pinHash string
	if req.PIN != "" {
		pinHash, err = HashSecret(req.PIN)
		if err != nil {
			return User{}, err
		}
	}

	user := User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		PINHash:      pinHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = updateDocument(s, s.usersPath(), newUserRegistry, func(reg *userRegistry) error {
		if _, exists := reg.byUsername(req.Username); exists {
			return fmt.Errorf("%w: username %q already taken", ErrValidation, req.Username)
		}
		if _, exists := reg.byEmail(req.Email); exists {
			return fmt.Errorf("%w: email %q already registered", ErrValidation, req.Email)
		}
		reg.Users = append(reg.Users, user)
		return nil
	})
	if err != nil {
		return User{}, err
	}

	if err := InitItemStore(s, user.ID); err != nil {
		return User{}, err
	}
	return user, nil
}
