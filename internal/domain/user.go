package domain

import (
	"encoding/json"
	"regexp"
	"unicode/utf8"

	"github.com/itchan-dev/forum-api/internal/errors"
)

const (
	EntityRegisterUser   = "REGISTER_USER"
	EntityRegisteredUser = "REGISTERED_USER"

	MaxUsernameLength = 50
)

var reUsername = regexp.MustCompile(`^[\w]+$`)

// NewUser is a registration request. The password is still in plain text here.
type NewUser struct {
	username string
	password string
	fullname string
}

func NewNewUser(payload Payload) (NewUser, error) {
	v, err := payload.requireStrings(EntityRegisterUser, "username", "password", "fullname")
	if err != nil {
		return NewUser{}, err
	}
	if utf8.RuneCountInString(v[0]) > MaxUsernameLength {
		return NewUser{}, errors.Validation(EntityRegisterUser, errors.UsernameLimitChar)
	}
	if !reUsername.MatchString(v[0]) {
		return NewUser{}, errors.Validation(EntityRegisterUser, errors.UsernameContainRestrictedChar)
	}
	return NewUser{username: v[0], password: v[1], fullname: v[2]}, nil
}

func (u NewUser) Username() string { return u.username }
func (u NewUser) Password() string { return u.password }
func (u NewUser) Fullname() string { return u.fullname }

// WithPassword returns a copy carrying the hashed password.
func (u NewUser) WithPassword(hash string) NewUser {
	u.password = hash
	return u
}

type RegisteredUser struct {
	id       string
	username string
	fullname string
}

func NewRegisteredUser(payload Payload) (RegisteredUser, error) {
	v, err := payload.requireStrings(EntityRegisteredUser, "id", "username", "fullname")
	if err != nil {
		return RegisteredUser{}, err
	}
	return RegisteredUser{id: v[0], username: v[1], fullname: v[2]}, nil
}

func (u RegisteredUser) Id() string       { return u.id }
func (u RegisteredUser) Username() string { return u.username }
func (u RegisteredUser) Fullname() string { return u.fullname }

func (u RegisteredUser) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id       string `json:"id"`
		Username string `json:"username"`
		Fullname string `json:"fullname"`
	}{u.id, u.username, u.fullname})
}
