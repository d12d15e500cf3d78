package amass

import (
	"slices"

	"github.com/R167/reconmcp/internal/security"
)

// Mode selects the amass subcommand.
type Mode string

const (
	ModeEnum  Mode = "enum"
	ModeIntel Mode = "intel"
)

// Approach selects how enumeration interacts with the target.
type Approach string

const (
	ApproachActive  Approach = "active"
	ApproachPassive Approach = "passive"
)

const (
	flagDomain   = "-d"
	flagPassive  = "-passive"
	flagBrute    = "-brute"
	flagWordlist = "-w"
	flagOrg      = "-org"
	flagWhois    = "-whois"
)

// Request holds the parameters of one amass call. Field rules are checked
// by security.Check; which fields a mode needs is checked by BuildArgs.
type Request struct {
	Mode         Mode     `json:"subcommand" validate:"required,oneof=enum intel"`
	Domain       string   `json:"domain,omitempty" validate:"omitempty,arg,max=253,fqdn"`
	IncludeWhois bool     `json:"intel_whois,omitempty"`
	Organization string   `json:"intel_organization,omitempty" validate:"omitempty,arg"`
	Approach     Approach `json:"enum_type,omitempty" validate:"omitempty,oneof=active passive"`
	BruteForce   bool     `json:"enum_brute,omitempty"`
	// Wordlist is only used together with BruteForce.
	Wordlist string `json:"enum_brute_wordlist,omitempty" validate:"omitempty,arg"`
}

// BuildArgs translates req into the amass argument vector. The subcommand is
// always the first element.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	if req.Mode == ModeIntel {
		return buildIntel(req)
	}
	return buildEnum(req)
}

func buildEnum(req Request) ([]string, error) {
	if req.Domain == "" {
		return nil, security.Invalid("domain", "domain is required for enumeration")
	}

	args := []string{string(ModeEnum), flagDomain, req.Domain}
	if req.Approach == ApproachPassive {
		args = append(args, flagPassive)
	}
	if req.BruteForce {
		args = append(args, flagBrute)
		if req.Wordlist != "" {
			args = append(args, flagWordlist, req.Wordlist)
		}
	}
	return args, nil
}

func buildIntel(req Request) ([]string, error) {
	if req.Domain == "" && req.Organization == "" {
		return nil, security.Invalid("domain", "provide domain or organization")
	}

	args := []string{string(ModeIntel)}
	if req.Domain != "" {
		args = append(args, flagDomain, req.Domain)
		if req.IncludeWhois {
			args = append(args, flagWhois)
		}
	}
	if req.Organization != "" {
		args = append(args, flagOrg, req.Organization)
	}
	if req.IncludeWhois && !slices.Contains(args, flagWhois) {
		args = append(args, flagWhois)
	}
	return args, nil
}
