package nivesh

import "fmt"

// Session is the CLI current-user pointer, persisted next to the documents
// so data subcommands run as the last logged-in user.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func newSession() Session { return Session{} }

// SaveSession records the user as the current session.
func SaveSession(s *Store, user User) error {
	return replaceDocument(s, s.sessionPath(), Session{UserID: user.ID, Username: user.Username})
}

// CurrentSession returns the active session, or ErrAuth when nobody is
// logged in.
func CurrentSession(s *Store) (Session, error) {
	sess, err := readDocument(s, s.sessionPath(), newSession)
	if err != nil {
		return Session{}, err
	}
	if sess.UserID == "" {
		return Session{}, fmt.Errorf("%w: not logged in", ErrAuth)
	}
	return sess, nil
}

// ClearSession logs the current user out.
func ClearSession(s *Store) error {
	return s.removeDocument(s.sessionPath())
}
