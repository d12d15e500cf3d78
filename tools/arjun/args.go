package arjun

import (
	"strconv"

	"github.com/R167/reconmcp/internal/security"
)

// Method is the request method Arjun uses for discovery.
type Method string

const (
	MethodGET     Method = "GET"
	MethodPOST    Method = "POST"
	MethodJSON    Method = "JSON"
	MethodHeaders Method = "HEADERS"
)

var methods = []Method{MethodGET, MethodPOST, MethodJSON, MethodHeaders}

// Request holds the parameters of one Arjun call. Numeric options are
// pointers so that an explicit zero can be told apart from an absent value.
// Every string ends up in a previewed command line, so none may contain
// whitespace.
type Request struct {
	URL         string `json:"url" validate:"required,token,http_url"`
	URLListFile string `json:"textFile,omitempty" validate:"omitempty,token"`
	Wordlist    string `json:"wordlist,omitempty" validate:"omitempty,token"`
	Method      Method `json:"method,omitempty" validate:"omitempty,oneof=GET POST JSON HEADERS"`
	RateLimit   *int   `json:"rateLimit,omitempty" validate:"omitempty,min=1"`
	ChunkSize   *int   `json:"chunkSize,omitempty" validate:"omitempty,min=1"`
}

// BuildArgs translates req into the Arjun argument vector. Flags always come
// in the order -u, -f, -w, -m, --rate-limit, --chunk-size; absent options are
// omitted.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	args := []string{"-u", req.URL}
	if req.URLListFile != "" {
		args = append(args, "-f", req.URLListFile)
	}
	if req.Wordlist != "" {
		args = append(args, "-w", req.Wordlist)
	}
	if req.Method != "" {
		args = append(args, "-m", string(req.Method))
	}
	if req.RateLimit != nil {
		args = append(args, "--rate-limit", strconv.Itoa(*req.RateLimit))
	}
	if req.ChunkSize != nil {
		args = append(args, "--chunk-size", strconv.Itoa(*req.ChunkSize))
	}

	return args, nil
}
