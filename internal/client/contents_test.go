package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markline-io/markline/pkg/markline"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestContentsClient_Create(t *testing.T) {
	t.Parallel()
	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/register-content", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "uid-new", body["uniqueId"])
			assert.Equal(t, "My Article", body["title"])
			assert.Equal(t, float64(3), body["tagId"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"statusCode":201,"success":true,"message":"Content registered","data":{"id":7,"uniqueId":"uid-new","title":"My Article","content":"notes","link":"http://example.com","userId":1,"tag":"Article"}}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		created, err := c.Contents().Create(context.Background(), &markline.ContentCreateRequest{
			UniqueID: "uid-new",
			Title:    "My Article",
			Body:     "notes",
			URL:      "http://example.com",
			TagID:    3,
		})
		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, "My Article", created.Title)

		// The caller folds the confirmed entity into local state.
		store := markline.NewContentStore()
		store.ReplacePage(&markline.ContentPage{
			TotalItems:   2,
			CurrentPage:  1,
			TotalPages:   1,
			ItemsPerPage: 10,
			Items: []markline.Content{
				{ID: 1, Title: "existing"},
				{ID: 2, Title: "another"},
			},
		})
		store.InsertCreated(*created)

		state := store.Snapshot()
		require.Len(t, state.Items, 3)
		assert.Equal(t, 7, state.Items[0].ID)
		assert.Equal(t, 3, state.TotalItems)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request should be sent")
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Contents().Create(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, markline.ErrRequestRequired)
	})

	t.Run("missing unique id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request should be sent")
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Contents().Create(context.Background(), &markline.ContentCreateRequest{Title: "no key"})
		require.Error(t, err)
		assert.ErrorIs(t, err, markline.ErrUniqueIDRequired)
	})
}

func TestContentsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/get-content-by-id/42", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"ok","data":{"id":42,"uniqueId":"u-42","title":"Found","content":"body","userId":1,"tag":"Video"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	content, err := c.Contents().Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, content.ID)
	assert.Equal(t, "Found", content.Title)
	assert.Equal(t, "body", content.Body)
}

func TestContentsClient_List(t *testing.T) {
	t.Parallel()
	t.Run("with params", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/get-all-contents-by-range-and-tag", request.URL.Path)
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			assert.Equal(t, "5", request.URL.Query().Get("limit"))
			assert.Equal(t, "3", request.URL.Query().Get("tagId"))
			_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"ok","data":{"totalLinks":11,"currentPage":2,"totalPages":3,"itemsPerPage":5,"hasNextPage":true,"hasPreviousPage":true,"contents":[{"id":6,"title":"sixth"}]}}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		tagID := 3
		page, err := c.Contents().List(context.Background(), &markline.ListContentsParams{Page: 2, Limit: 5, TagID: &tagID})
		require.NoError(t, err)
		assert.Equal(t, 11, page.TotalItems)
		assert.Equal(t, 2, page.CurrentPage)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "sixth", page.Items[0].Title)
	})

	t.Run("nil params uses defaults", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "1", request.URL.Query().Get("page"))
			assert.Equal(t, "10", request.URL.Query().Get("limit"))
			assert.Empty(t, request.URL.Query().Get("tagId"))
			_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"ok","data":{"totalLinks":0,"currentPage":1,"totalPages":0,"itemsPerPage":10,"contents":[]}}`))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		page, err := c.Contents().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})
}

func TestContentsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/update-content/5", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "renamed", body["title"])
		assert.NotContains(t, body, "link")

		_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"Content updated","data":{"id":5,"title":"renamed","userId":1}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	title := "renamed"
	updated, err := c.Contents().Update(context.Background(), 5, &markline.ContentUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
}

func TestContentsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/delete-content/5", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		_, _ = writer.Write([]byte(`{"statusCode":200,"success":true,"message":"Content deleted","data":{"message":"deleted"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	result, err := c.Contents().Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "deleted", result.Message)

	// Confirmed delete clears any matching selection in local state.
	store := markline.NewContentStore()
	store.ReplacePage(&markline.ContentPage{
		TotalItems:   2,
		CurrentPage:  1,
		TotalPages:   1,
		ItemsPerPage: 10,
		Items: []markline.Content{
			{ID: 5, Title: "doomed"},
			{ID: 6, Title: "survivor"},
		},
	})
	store.SetSelected(markline.Content{ID: 5, Title: "doomed"})
	store.ApplyDelete(5)

	state := store.Snapshot()
	assert.Nil(t, state.Selected)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 6, state.Items[0].ID)
	assert.Equal(t, 1, state.TotalItems)
}
