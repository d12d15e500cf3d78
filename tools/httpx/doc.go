// Package httpx exposes ProjectDiscovery's httpx prober as a preview MCP
// tool that renders the scan command for a set of targets.
//
// Targets are joined into a single comma-separated -u value, so a target may
// not contain commas or whitespace. Probes map one to one onto httpx flags.
package httpx
