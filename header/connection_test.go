package header_test

import (
	"testing"

	"github.com/hexborn/httpmodel/header"
)

func TestConnection_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Connection
		want string
	}{
		{"single", header.NewConnection("keep-alive"), "Connection: keep-alive"},
		{"multiple", header.NewConnection("Keep-Alive", "Upgrade"), "Connection: Keep-Alive, Upgrade"},
		{"close", header.NewConnection("close"), "Connection: close"},
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

func TestConnection_Options(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		hdr           header.Connection
		wantClose     bool
		wantKeepAlive bool
	}{
		{"empty", header.Connection{}, false, false},
		{"keep-alive", header.NewConnection("keep-alive"), false, true},
		{"mixed case keep-alive", header.NewConnection("Keep-Alive", "Upgrade"), false, true},
		{"close", header.NewConnection("close"), true, false},
		{"upper close", header.NewConnection("CLOSE"), true, false},
		{"unrelated", header.NewConnection("Upgrade"), false, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.HasClose(); got != c.wantClose {
				t.Errorf("hdr.HasClose() = %v, want %v", got, c.wantClose)
			}
			if got := c.hdr.HasKeepAlive(); got != c.wantKeepAlive {
				t.Errorf("hdr.HasKeepAlive() = %v, want %v", got, c.wantKeepAlive)
			}
		})
	}
}

func TestConnection_Options_NoAlloc(t *testing.T) {
	t.Parallel()

	hdr := header.NewConnection("Keep-Alive", "Upgrade", "close")
	allocs := testing.AllocsPerRun(100, func() {
		hdr.HasKeepAlive()
		hdr.HasClose()
	})
	if allocs != 0 {
		t.Errorf("allocs per run = %v, want 0", allocs)
	}
}
