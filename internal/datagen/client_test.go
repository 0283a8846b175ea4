package datagen

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSendsJSONHeaders(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ProxyPath, r.URL.Path)
		gotHeaders = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	resp, err := c.Post(context.Background(), ProxyPath, map[string]string{"email": "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
	require.NotNil(t, resp.ContentType)
	assert.Equal(t, "application/json", *resp.ContentType)

	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Empty(t, gotHeaders.Get("X-Requested-With"))
	assert.Equal(t, "ada@example.com", gotBody["email"])
}

func TestPostAddsRelayHeaders(t *testing.T) {
	var gotHeaders http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := NewClient("http://form.example.com")
	require.NoError(t, err)

	_, err = c.Post(context.Background(), ts.URL+"/cors-anywhere/"+DirectURL, struct{}{})
	require.NoError(t, err)

	assert.Equal(t, "XMLHttpRequest", gotHeaders.Get("X-Requested-With"))
	assert.Equal(t, "http://form.example.com", gotHeaders.Get("Origin"))
}

func TestPostStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := NewClient("")
	require.NoError(t, err)

	_, err = c.Post(context.Background(), ts.URL, struct{}{})
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "HTTP error! status: 502 - Bad Gateway", httpErr.Error())
}

func TestPostNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c, err := NewClient("")
	require.NoError(t, err)

	_, err = c.Post(context.Background(), url, struct{}{})
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, url, netErr.Endpoint)
}

func TestPostUserAgent(t *testing.T) {
	agents := make(chan string, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.UserAgent()
	}))
	defer ts.Close()

	c, err := NewClient("")
	require.NoError(t, err)
	_, err = c.Post(context.Background(), ts.URL, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "web-data-gen/1.0.0", <-agents)

	c, err = NewClient("", WithUserAgent("webdatagen-test/2"), WithTimeout(time.Minute))
	require.NoError(t, err)
	_, err = c.Post(context.Background(), ts.URL, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "webdatagen-test/2", <-agents)
}

func TestPostRelativeWithoutOrigin(t *testing.T) {
	c, err := NewClient("")
	require.NoError(t, err)

	_, err = c.Post(context.Background(), ProxyPath, struct{}{})
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestNewClientRejectsRelativeOrigin(t *testing.T) {
	_, err := NewClient("localhost:8000")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	c, err := NewClient("http://localhost:8000/")
	require.NoError(t, err)

	got, err := c.Resolve(ProxyPath)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000"+ProxyPath, got)

	got, err = c.Resolve(DirectURL)
	require.NoError(t, err)
	assert.Equal(t, DirectURL, got)
}

func TestDefaultEndpointsOrder(t *testing.T) {
	require.Len(t, DefaultEndpoints, 3)
	assert.Equal(t, ProxyPath, DefaultEndpoints[0])
	assert.Equal(t, DirectURL, DefaultEndpoints[1])
	assert.True(t, IsRelay(DefaultEndpoints[2]))
	assert.Equal(t, DefaultEndpoints[:2], WithoutRelay(DefaultEndpoints))
}
