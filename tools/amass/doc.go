/*
Package amass exposes the amass attack-surface mapper as an MCP tool.

The tool runs amass as a subprocess and returns its combined output. Two
modes are supported:

  - enum: subdomain enumeration of a single domain, optionally passive and
    optionally with brute forcing from a wordlist.
  - intel: intelligence gathering by domain and/or organization, optionally
    including WHOIS data.

Request parameters are validated and translated into a literal argument
vector by BuildArgs before anything is spawned:

	args, err := amass.BuildArgs(amass.Request{Mode: amass.ModeEnum, Domain: "example.com"})
	// args == []string{"enum", "-d", "example.com"}
*/
package amass
