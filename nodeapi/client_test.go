package nodeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkvoting/exovote/types"
)

func TestAccountCredentials(t *testing.T) {
	c := qt.New(t)
	addr := types.AccountAddress{0x01, 0x02}
	hexAddr := types.HexBytes(addr.Bytes())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The account address travels in the URL path, hex encoded.
		c.Assert(r.URL.Path, qt.Equals, accountsPath+hexAddr.Hex())
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"address": "0x0102",
			"credentials": [
				{"id": "0xaabbcc", "kind": "normal", "commitments": ["0x01", "0x02"]},
				{"id": "0xddeeff", "kind": "initial"}
			]
		}`))
		c.Assert(err, qt.IsNil)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	c.Assert(err, qt.IsNil)

	credentials, err := client.AccountCredentials(context.Background(), addr)
	c.Assert(err, qt.IsNil)
	c.Assert(credentials, qt.HasLen, 2)
	c.Assert(credentials[0].ID, qt.DeepEquals, types.HexBytes{0xaa, 0xbb, 0xcc})
	c.Assert(credentials[0].Kind, qt.Equals, types.CredentialKindNormal)
	c.Assert(credentials[0].Commitments, qt.DeepEquals, []types.HexBytes{{0x01}, {0x02}})
	c.Assert(credentials[1].Kind, qt.Equals, types.CredentialKindInitial)
}

func TestAccountCredentialsErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		c := qt.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "account not found", http.StatusNotFound)
		}))
		defer srv.Close()

		client, err := New(srv.URL)
		c.Assert(err, qt.IsNil)
		_, err = client.AccountCredentials(context.Background(), types.AccountAddress{})
		c.Assert(err, qt.IsNotNil)
		c.Assert(err.Error(), qt.Contains, "status 404")
	})

	t.Run("malformed body", func(t *testing.T) {
		c := qt.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"credentials": not json`))
		}))
		defer srv.Close()

		client, err := New(srv.URL)
		c.Assert(err, qt.IsNil)
		_, err = client.AccountCredentials(context.Background(), types.AccountAddress{})
		c.Assert(err, qt.IsNotNil)
		c.Assert(err.Error(), qt.Contains, "decode account info")
	})

	t.Run("unreachable node", func(t *testing.T) {
		c := qt.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // shut down before the request

		client, err := New(srv.URL)
		c.Assert(err, qt.IsNil)
		_, err = client.AccountCredentials(context.Background(), types.AccountAddress{})
		c.Assert(err, qt.IsNotNil)
		c.Assert(err.Error(), qt.Contains, "node request failed")
	})
}

func TestNewRejectsBadEndpoints(t *testing.T) {
	c := qt.New(t)

	for _, host := range []string{"", "localhost:20000", "://nope", "http://"} {
		_, err := New(host)
		c.Assert(err, qt.IsNotNil, qt.Commentf("host %q", host))
	}
}
