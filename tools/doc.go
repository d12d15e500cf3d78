/*
Package tools collects the reconnaissance tools exposed over MCP.

Each subpackage owns one tool:

  - amass: subdomain enumeration and intelligence gathering (executes)
  - arjun: hidden HTTP parameter discovery (preview only)
  - httpx: HTTP service probing (preview only)
  - subfinder, waybackurls: passive subdomain and URL discovery (executes)
  - sslscan, masscan: TLS and port scanning (executes)
  - nuclei, katana, ffuf, gobuster, wpscan: web scanning (executes)
  - crtsh, headers and nuclei's tag lister: HTTP lookups made in-process

Executing tools spawn the binary and return its combined output. Preview
tools only return the shell-quoted command line they would run, prefixed
with "Command: ". In-process tools have no binary and are always healthy.
*/
package tools
