// Package arjun exposes the Arjun HTTP parameter discovery tool as a preview
// MCP tool. Calls never spawn a process; they return the command line that
// would run Arjun for the given request, prefixed with "Command: ".
package arjun
