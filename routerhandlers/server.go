package routerhandlers

import (
	"os"

	"github.com/vitalvas/waypoint/router"
)

// ServerConfig configures the Server node.
type ServerConfig struct {
	// Hostname is the value written to the X-Server-Hostname response
	// header. Resolution order: Hostname field, then HostnameEnv
	// environment variable, then os.Hostname.
	Hostname string

	// HostnameEnv is a list of environment variable names checked in
	// order (e.g. ["POD_NAME", "HOSTNAME"]). The first non-empty
	// value is used. Only consulted when Hostname is empty.
	HostnameEnv []string
}

type server struct {
	router.Link
	hostname string
}

// Server returns a node that sets the X-Server-Hostname response header.
// The hostname is resolved once when the node is created. It returns an
// error if the hostname cannot be determined.
func Server(cfg ServerConfig) (router.Middleware, error) {
	hostname := cfg.Hostname

	if hostname == "" {
		for _, env := range cfg.HostnameEnv {
			if v, ok := os.LookupEnv(env); ok && v != "" {
				hostname = v
				break
			}
		}
	}

	if hostname == "" {
		h, err := os.Hostname()
		if err != nil {
			return nil, err
		}

		hostname = h
	}

	return &server{hostname: hostname}, nil
}

func (m *server) Call(c *router.Context) error {
	if c.Writer != nil {
		c.Writer.Header().Set("X-Server-Hostname", m.hostname)
	}

	return m.CallNext(c)
}
