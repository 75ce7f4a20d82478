package copilot

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateURLs(t *testing.T) {
	tests := []struct {
		name     string
		hosts    []string
		ports    []int
		expected []string
	}{
		{
			name:     "empty inputs use defaults",
			hosts:    []string{""},
			ports:    []int{0},
			expected: []string{"http://127.0.0.1:3741", "http://localhost:3741"},
		},
		{
			name:  "custom hosts and ports",
			hosts: []string{"bridge.local", "10.0.0.2"},
			ports: []int{3741, 8080},
			expected: []string{
				"http://bridge.local:3741",
				"http://bridge.local:8080",
				"http://10.0.0.2:3741",
				"http://10.0.0.2:8080",
			},
		},
		{
			name:     "ipv6 hosts are bracketed",
			hosts:    []string{"::1"},
			ports:    []int{3741},
			expected: []string{"http://[::1]:3741"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, candidateURLs(tt.hosts, tt.ports))
		})
	}
}

func splitHostPort(t *testing.T, rawURL string) (string, int) {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, port
}

func TestDiscoverBridgeServer(t *testing.T) {
	mock := NewMockBridgeService(t, nil)
	host, port := splitHostPort(t, mock.URL)

	found, err := DiscoverBridgeServer(context.Background(), host, port, nil)
	require.NoError(t, err)
	assert.Equal(t, mock.URL, found)

	req, ok := mock.LastRequest()
	require.True(t, ok)
	assert.Equal(t, StatusEndpoint, req.Path)
}

func TestIsBridgeRunning(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "running bridge",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, StatusResponse{Status: "running"})
			},
			want: true,
		},
		{
			name: "bridge not ready",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, StatusResponse{Status: "starting"})
			},
			want: false,
		},
		{
			name: "other service on the port",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: false,
		},
		{
			name: "non json status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newRawServer(t, tt.handler)
			assert.Equal(t, tt.want, isBridgeRunning(context.Background(), server.URL, NewLogger(LogLevelError)))
		})
	}
}

func TestDiscoverBridgeServerNotFound(t *testing.T) {
	server := newRawServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	host, port := splitHostPort(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := DiscoverBridgeServer(ctx, host, port, nil)
	assert.Error(t, err)
}
