package header_test

import (
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func TestWWWAuthenticate_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.WWWAuthenticate
		want string
	}{
		{
			"basic with realm",
			header.NewWWWAuthenticate(header.Challenge{Scheme: "Basic", Realm: "files"}),
			`WWW-Authenticate: Basic realm="files"`,
		},
		{
			"scheme only",
			header.NewWWWAuthenticate(header.Challenge{Scheme: "Negotiate"}),
			"WWW-Authenticate: Negotiate",
		},
		{
			"params after realm",
			header.NewWWWAuthenticate(header.Challenge{
				Scheme: "Bearer",
				Realm:  "api",
				Params: header.Params{{Name: "error", Value: "invalid_token"}},
			}),
			`WWW-Authenticate: Bearer realm="api", error=invalid_token`,
		},
		{
			"multiple challenges",
			header.NewWWWAuthenticate(
				header.Challenge{Scheme: "Basic", Realm: "files"},
				header.Challenge{Scheme: "Bearer", Realm: "api"},
			),
			`WWW-Authenticate: Basic realm="files", Bearer realm="api"`,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(); got != c.want {
				t.Errorf("hdr.Render() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAuthorization_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Authorization
		want string
	}{
		{
			"bearer token",
			header.NewAuthorization(header.GenericCredentials{Scheme: "Bearer", Token: "dGhlIHRva2Vu"}),
			"Authorization: Bearer dGhlIHRva2Vu",
		},
		{
			"basic token68",
			header.NewAuthorization(header.GenericCredentials{Scheme: "Basic", Token: "dXNlcjpwYXNz"}),
			"Authorization: Basic dXNlcjpwYXNz",
		},
		{
			"param credentials",
			header.NewAuthorization(header.GenericCredentials{
				Scheme: "Digest",
				Params: header.Params{
					{Name: "username", Value: "mufasa"},
					{Name: "realm", Value: "testrealm@host.com"},
				},
			}),
			`Authorization: Digest username=mufasa, realm="testrealm@host.com"`,
		},
		{
			"no credentials",
			&header.Authorization{},
			"Authorization: ",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(); got != c.want {
				t.Errorf("hdr.Render() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAuthorization_Equal(t *testing.T) {
	t.Parallel()

	bearer := header.GenericCredentials{Scheme: "Bearer", Token: "tok"}

	cases := []struct {
		name string
		hdr  *header.Authorization
		val  any
		want bool
	}{
		{"to nil", header.NewAuthorization(bearer), nil, false},
		{"match", header.NewAuthorization(bearer), header.NewAuthorization(bearer), true},
		{
			"scheme case-insensitive",
			header.NewAuthorization(header.GenericCredentials{Scheme: "bearer", Token: "tok"}),
			header.NewAuthorization(bearer),
			true,
		},
		{
			"token exact",
			header.NewAuthorization(header.GenericCredentials{Scheme: "Bearer", Token: "TOK"}),
			header.NewAuthorization(bearer),
			false,
		},
		{"empty both", &header.Authorization{}, &header.Authorization{}, true},
		{"empty vs set", &header.Authorization{}, header.NewAuthorization(bearer), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}
