package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markline-io/markline/internal/client"
	"github.com/markline-io/markline/pkg/markline"
)

func newTestClient(t *testing.T, server *httptest.Server) *client.Client {
	t.Helper()

	c, err := client.New(context.Background(), &markline.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	return c
}

func TestClient_Login(t *testing.T) {
	t.Parallel()
	t.Run("success sets bearer token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/login":
				assert.Equal(t, "POST", request.Method)
				assert.Empty(t, request.Header.Get("Authorization"))
				_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"Login successful","data":{"token":"jwt-abc","user":"alice","uniqueId":"uid-1"}}`))
			case "/get-all-tags":
				// Subsequent requests carry the freshly acquired token.
				assert.Equal(t, "Bearer jwt-abc", request.Header.Get("Authorization"))
				_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"ok","data":[]}`))
			default:
				writer.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		c := newTestClient(t, server)

		authData, err := c.Login(context.Background(), "alice@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", authData.Token)
		assert.Equal(t, "alice", authData.User)
		assert.Equal(t, "uid-1", authData.UniqueID)

		token, err := c.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", token)

		_, err = c.Tags().List(context.Background())
		require.NoError(t, err)
	})

	t.Run("failure leaves token untouched", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"statusCode":401,"success":false,"message":"Unauthorized","data":{"message":"Invalid credentials","errors":"password mismatch"}}`))
		}))
		defer server.Close()

		c, err := client.New(context.Background(), &markline.Config{
			APIEndpoint: server.URL,
			AccessToken: "existing-token",
		})
		require.NoError(t, err)

		_, err = c.Login(context.Background(), "alice@example.com", "wrong")
		require.Error(t, err)

		apiErr := &markline.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 401, apiErr.StatusCode)
		assert.Equal(t, "Invalid credentials", apiErr.Data.Message)

		token, err := c.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "existing-token", token)
	})

	t.Run("repeated failures are independent", func(t *testing.T) {
		t.Parallel()

		calls := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls++

			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"statusCode":401,"success":false,"message":"Unauthorized","data":{"message":"Invalid credentials","errors":"attempt rejected"}}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, firstErr := c.Login(context.Background(), "alice@example.com", "wrong")
		_, secondErr := c.Login(context.Background(), "alice@example.com", "still wrong")

		require.Error(t, firstErr)
		require.Error(t, secondErr)
		assert.Equal(t, 2, calls)

		first := &markline.APIError{}
		second := &markline.APIError{}
		require.True(t, errors.As(firstErr, &first))
		require.True(t, errors.As(secondErr, &second))
		assert.NotSame(t, first, second)
		assert.Equal(t, first.StatusCode, second.StatusCode)

		token, err := c.GetToken(context.Background())
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestClient_Signup(t *testing.T) {
	t.Parallel()
	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/signup", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"statusCode":201,"success":true,"message":"User created","data":{"token":"jwt-new","user":"bob","uniqueId":"uid-9"}}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		authData, err := c.Signup(context.Background(), "bob", "bob@example.com", "secret", "uid-9")
		require.NoError(t, err)
		assert.Equal(t, "jwt-new", authData.Token)

		token, err := c.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jwt-new", token)
	})

	t.Run("missing unique id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request should be sent")
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Signup(context.Background(), "bob", "bob@example.com", "secret", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, markline.ErrUniqueIDRequired)
	})
}

func TestClient_Logout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := client.New(context.Background(), &markline.Config{
		APIEndpoint: server.URL,
		AccessToken: "some-token",
	})
	require.NoError(t, err)

	c.Logout()

	token, err := c.GetToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestClient_New(t *testing.T) {
	t.Parallel()

	_, err := client.New(context.Background(), &markline.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, markline.ErrAPIEndpointRequired)
}
