package copilot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const probeTimeout = 2 * time.Second

// ErrBridgeNotFound is returned by DiscoverBridgeServer when no candidate answered
var ErrBridgeNotFound = errors.New("no Copilot Bridge server found")

func candidateURLs(hosts []string, ports []int) (urls []string) {
	if len(hosts) == 0 || hosts[0] == "" {
		hosts = BridgeHosts
	}
	if len(ports) == 0 || ports[0] == 0 {
		ports = BridgePorts
	}

	for _, host := range hosts {
		for _, port := range ports {
			urls = append(urls, fmt.Sprintf("http://%s", net.JoinHostPort(host, fmt.Sprint(port))))
		}
	}
	return urls
}

// DiscoverBridgeServer looks for a running bridge. It probes GET /status on
// host:port first (empty values fall back to BridgeHosts and BridgePorts)
// and then on the same port of every non-loopback IPv4 interface address.
// The base URL of the first bridge reporting "running" is returned.
func DiscoverBridgeServer(ctx context.Context, host string, port int, logger Logger) (string, error) {
	if logger == nil {
		logger = NewLogger(LogLevelInfo)
	}

	logger.Debug("Attempting to discover Copilot Bridge server...")

	for _, url := range candidateURLs([]string{host}, []int{port}) {
		if isBridgeRunning(ctx, url, logger) {
			logger.Debug("Copilot Bridge server found at %s", url)
			return url, nil
		}
	}

	netAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", fmt.Errorf("failed to get network interfaces: %w", err)
	}

	var ipaddrs []string
	for _, netAddr := range netAddrs {
		if ipnet, ok := netAddr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			ipaddrs = append(ipaddrs, ipnet.IP.String())
		}
	}
	if len(ipaddrs) == 0 {
		return "", ErrBridgeNotFound
	}

	for _, url := range candidateURLs(ipaddrs, []int{port}) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if isBridgeRunning(ctx, url, logger) {
			logger.Info("Copilot Bridge server found at %s", url)
			return url, nil
		}
	}

	return "", ErrBridgeNotFound
}

// isBridgeRunning reports whether GET <url>/status answers 200 with status "running"
func isBridgeRunning(ctx context.Context, url string, logger Logger) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	logger.Debug("Checking if Copilot Bridge server is running at %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+StatusEndpoint, nil)
	if err != nil {
		logger.Debug("Bad probe URL %s: %v", url, err)
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Debug("Failed to connect to %s: %v", url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("Received unexpected status code %d from %s", resp.StatusCode, url)
		return false
	}

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		logger.Debug("Unexpected status body from %s: %v", url, err)
		return false
	}
	return status.Status == "running"
}
