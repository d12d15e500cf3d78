// Package discovery advertises the MCP HTTP endpoint on the local network
// over multicast DNS.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strings"

	"github.com/hashicorp/mdns"
	"github.com/rs/zerolog"
)

// ServiceType is the DNS-SD service the endpoint is published under.
const ServiceType = "_mcp._tcp"

// Advertisement describes the endpoint to publish.
type Advertisement struct {
	// Instance defaults to the host name.
	Instance string
	Port     int
	Endpoint string
	Tools    []string
	Version  string
	// IPs restricts the advertised addresses. Empty means every address the
	// host name resolves to.
	IPs []net.IP
}

func (a Advertisement) txt() []string {
	txt := []string{
		"path=" + a.Endpoint,
		"tools=" + strings.Join(a.Tools, ","),
	}
	if a.Version != "" {
		txt = append(txt, "version="+a.Version)
	}
	return txt
}

// NewService builds the mDNS zone for ad.
func NewService(ad Advertisement) (*mdns.MDNSService, error) {
	if ad.Port < 1 || ad.Port > 65535 {
		return nil, fmt.Errorf("invalid advertised port: %d", ad.Port)
	}
	if ad.Endpoint == "" {
		return nil, errors.New("advertised endpoint path is required")
	}

	instance := ad.Instance
	if instance == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to determine host name: %w", err)
		}
		instance = host
	}

	service, err := mdns.NewMDNSService(instance, ServiceType, "", "", ad.Port, ad.IPs, ad.txt())
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	return service, nil
}

// Advertise answers mDNS queries for service until ctx is done.
func Advertise(ctx context.Context, service *mdns.MDNSService, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "mdns").Logger()

	server, err := mdns.NewServer(&mdns.Config{
		Zone:   service,
		Logger: log.New(logger, "", 0),
	})
	if err != nil {
		return fmt.Errorf("failed to start mDNS responder: %w", err)
	}

	logger.Info().
		Str("instance", service.Instance).
		Str("service", service.Service).
		Int("port", service.Port).
		Msg("advertising MCP endpoint")

	<-ctx.Done()
	if err := server.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop mDNS responder: %w", err)
	}
	return nil
}

// PortOf extracts the numeric port from a listener address.
func PortOf(addr net.Addr) (int, error) {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.Port, nil
	}
	return 0, fmt.Errorf("not a TCP address: %s", addr)
}
