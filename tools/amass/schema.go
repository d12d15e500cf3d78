package amass

import "github.com/google/jsonschema-go/jsonschema"

func inputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"subcommand": {
				Type:        "string",
				Enum:        []any{string(ModeEnum), string(ModeIntel)},
				Description: "Amass operation mode: 'intel' gathers intelligence, 'enum' performs subdomain enumeration",
			},
			"domain": {
				Type:        "string",
				Description: "Target domain (e.g., example.com)",
			},
			"intel_whois": {
				Type:        "boolean",
				Description: "Include WHOIS data when gathering intelligence",
			},
			"intel_organization": {
				Type:        "string",
				Description: "Organization name to search during intelligence gathering",
			},
			"enum_type": {
				Type:        "string",
				Enum:        []any{string(ApproachActive), string(ApproachPassive)},
				Description: "Enumeration approach; passive avoids direct interaction",
			},
			"enum_brute": {
				Type:        "boolean",
				Description: "Enable brute force subdomain discovery",
			},
			"enum_brute_wordlist": {
				Type:        "string",
				Description: "Path to custom wordlist for brute force",
			},
		},
		Required:             []string{"subcommand"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}
