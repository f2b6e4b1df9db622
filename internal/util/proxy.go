package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds the proxy selector used for outbound provider
// calls. With no explicit proxy configured it defers to the standard
// environment variables. Hosts listed in noProxy (comma separated, a
// leading dot matches subdomains) bypass the proxy entirely.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := splitHostList(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if hostBypassed(bypass, req.URL.Hostname()) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func splitHostList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	hosts := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			hosts = append(hosts, part)
		}
	}
	return hosts
}

func hostBypassed(bypass []string, host string) bool {
	host = strings.ToLower(host)
	for _, entry := range bypass {
		trimmed := strings.TrimPrefix(entry, ".")
		if host == trimmed || strings.HasSuffix(host, "."+trimmed) {
			return true
		}
	}
	return false
}
