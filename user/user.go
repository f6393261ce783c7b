// Package user provides login, logout and the profile endpoints of Proxer users.
package user

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/samber/mo"
)

const class = "user"

// ErrLoggedOut is returned by every method of a User after Logout.
var ErrLoggedOut = errors.New("user is logged out")

// User is a logged-in user. It owns a session that carries the login token.
type User struct {
	credentials Credentials
	session     *api.Session
	loggedOut   atomic.Bool
}

// Login authenticates username and returns a handle with an authenticated session derived from s.
func Login(ctx context.Context, s *api.Session, username, password string) (*User, error) {
	credentials, err := api.Call[Credentials](ctx, s, class, "login", api.Params{
		api.Required("username", username),
		api.Required("password", password),
	})
	if err != nil {
		return nil, err
	}

	s.Logger().WithField("uid", credentials.UID).Info("logged in")
	return Restore(s, credentials.UID, credentials.Avatar, credentials.Token), nil
}

// Restore rebuilds a handle from credentials of an earlier login.
func Restore(s *api.Session, uid uint64, avatar, token string) *User {
	return &User{
		credentials: Credentials{UID: uid, Avatar: avatar, Token: token},
		session:     s.WithLoginToken(token),
	}
}

func (u *User) UID() uint64 {
	return u.credentials.UID
}

func (u *User) Avatar() string {
	return u.credentials.Avatar
}

func (u *User) Token() string {
	return u.credentials.Token
}

// Credentials returns a copy of the login triple.
func (u *User) Credentials() Credentials {
	return u.credentials
}

// Session returns the authenticated session, or ErrLoggedOut once the handle was consumed.
func (u *User) Session() (*api.Session, error) {
	if u.loggedOut.Load() {
		return nil, ErrLoggedOut
	}
	return u.session, nil
}

// Logout ends the login on the server. The handle is consumed even when the request fails.
func (u *User) Logout(ctx context.Context) error {
	if u.loggedOut.Swap(true) {
		return ErrLoggedOut
	}
	return api.Exec(ctx, u.session, class, "logout", nil)
}

// Target names the user a profile request is about. With both fields absent
// the server answers for the user the session is logged in as.
type Target struct {
	UID      mo.Option[uint64]
	Username mo.Option[string]
}

// ByUID targets the user with the given id.
func ByUID(uid uint64) Target {
	return Target{UID: mo.Some(uid)}
}

// ByName targets the user with the given name.
func ByName(username string) Target {
	return Target{Username: mo.Some(username)}
}

func (t Target) params(rest ...api.Param) api.Params {
	return append(api.Params{
		api.Optional("uid", t.UID),
		api.Optional("username", t.Username),
	}, rest...)
}

// ListOptions filters and sorts a user's list.
type ListOptions struct {
	Category    mo.Option[enum.Category]
	Page        mo.Option[uint64]
	Limit       mo.Option[uint64]
	Search      mo.Option[string]
	SearchStart mo.Option[string]
	Sort        mo.Option[enum.Sort]
}

// CommentOptions filters a user's reviews. Length is the minimum review length in characters.
type CommentOptions struct {
	Category mo.Option[enum.Category]
	Page     mo.Option[uint64]
	Limit    mo.Option[uint64]
	Length   mo.Option[uint64]
}

func GetInfo(ctx context.Context, s *api.Session, target Target) (Info, error) {
	return api.Call[Info](ctx, s, class, "userinfo", target.params())
}

func GetTopTen(ctx context.Context, s *api.Session, target Target, category mo.Option[enum.Category]) ([]TopTenEntry, error) {
	return api.Call[[]TopTenEntry](ctx, s, class, "topten", target.params(
		api.Optional("kat", category),
	))
}

func GetList(ctx context.Context, s *api.Session, target Target, opts ListOptions) ([]ListEntry, error) {
	return api.Call[[]ListEntry](ctx, s, class, "list", target.params(
		api.Optional("kat", opts.Category),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
		api.Optional("search", opts.Search),
		api.Optional("search_start", opts.SearchStart),
		api.Optional("sort", opts.Sort),
	))
}

func GetComments(ctx context.Context, s *api.Session, target Target, opts CommentOptions) ([]LatestComment, error) {
	return api.Call[[]LatestComment](ctx, s, class, "comments", target.params(
		api.Optional("kat", opts.Category),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
		api.Optional("length", opts.Length),
	))
}

// Info fetches the profile of the logged-in user.
func (u *User) Info(ctx context.Context) (Info, error) {
	s, err := u.Session()
	if err != nil {
		return Info{}, err
	}
	return GetInfo(ctx, s, ByUID(u.UID()))
}

func (u *User) TopTen(ctx context.Context, category mo.Option[enum.Category]) ([]TopTenEntry, error) {
	s, err := u.Session()
	if err != nil {
		return nil, err
	}
	return GetTopTen(ctx, s, ByUID(u.UID()), category)
}

func (u *User) List(ctx context.Context, opts ListOptions) ([]ListEntry, error) {
	s, err := u.Session()
	if err != nil {
		return nil, err
	}
	return GetList(ctx, s, ByUID(u.UID()), opts)
}

func (u *User) Comments(ctx context.Context, opts CommentOptions) ([]LatestComment, error) {
	s, err := u.Session()
	if err != nil {
		return nil, err
	}
	return GetComments(ctx, s, ByUID(u.UID()), opts)
}
