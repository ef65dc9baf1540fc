package autouser

import (
	"os"

	"github.com/enfabrica/enkit/proxy/nss/confparse"
)

// DefaultConfigPath is the location GetpwnamR's real NSS entry point
// reads from; the operator CLI and tests load other paths explicitly.
const DefaultConfigPath = "/etc/nss-autouser.conf"

// suffixTable is reached either directly under a Match record (default
// fields, no explicit Suffix keyword) or repeatedly, once per Suffix
// block, under the same Match record. Every field here mutates the
// Rule currently being built.
var suffixTable = []confparse.Statement[Rule]{
	{
		MatchName: "Suffix",
		Options:   confparse.OptStart,
		Parse:     confparse.String[Rule](func(r *Rule) *string { return &r.Suffix }),
	},
	{MatchName: "Shell", Parse: confparse.String[Rule](func(r *Rule) *string { return &r.Shell })},
	{MatchName: "Home", Parse: confparse.String[Rule](func(r *Rule) *string { return &r.Home })},
	{MatchName: "Gecos", Parse: confparse.String[Rule](func(r *Rule) *string { return &r.Gecos })},
	{MatchName: "MinUid", Parse: confparse.Uint32[Rule](func(r *Rule) *uint32 { return &r.MinUID })},
	{MatchName: "MaxUid", Parse: confparse.Uint32[Rule](func(r *Rule) *uint32 { return &r.MaxUID })},
	{MatchName: "Gid", Parse: confparse.Uint32[Rule](func(r *Rule) *uint32 { return &r.GID })},
	{
		MatchName: "PropagatePassword",
		Parse: confparse.Bool32[Rule](func(r *Rule) *uint32 { return (*uint32)(&r.Flags) },
			uint32(SetPassword), uint32(UsePassword)),
	},
	{
		MatchName: "FullHomePath",
		Parse: confparse.Bool32[Rule](func(r *Rule) *uint32 { return (*uint32)(&r.Flags) },
			uint32(SetFullHome), uint32(UseFullHome)),
	},
}

// matchTable recognizes the literal "Match <glob>" header, then hands
// off every subsequent field to suffixTable acting on the same record —
// whether or not it is wrapped in an explicit Suffix block.
var matchTable = []confparse.Statement[Rule]{
	{
		MatchName: "Match",
		Options:   confparse.OptStart,
		Parse:     confparse.String[Rule](func(r *Rule) *string { return &r.Argv }),
	},
	{Parse: confparse.Subsection(suffixTable)},
}

// rootTable is the top-level grammar: Seed and DebugLog are simple
// fields, and any other token starts a new Rule. addRule carries the
// previous rule's Argv glob forward, so a single "Match <glob>" can
// introduce several Suffix blocks without repeating the glob on each.
var rootTable = []confparse.Statement[Config]{
	{MatchName: "Seed", Parse: confparse.String[Config](func(c *Config) *string { return &c.Seed })},
	{MatchName: "DebugLog", Parse: confparse.String[Config](func(c *Config) *string { return &c.Debug })},
	{Options: confparse.OptMulti, Parse: confparse.Record(matchTable, addRule)},
}

func addRule(c *Config) *Rule {
	var argv string
	if n := len(c.Rules); n > 0 {
		argv = c.Rules[n-1].Argv
	}
	c.Rules = append(c.Rules, Rule{Argv: argv})
	return &c.Rules[len(c.Rules)-1]
}

// ParseConfig parses a complete nss-autouser configuration file already
// read into memory. Reading the file itself is the caller's
// responsibility (see confparse.ParseBuffer's doc comment).
func ParseConfig(buf []byte) (*Config, error) {
	return confparse.ParseBuffer(buf, rootTable)
}

// LoadConfig reads path and parses it, wrapping any failure (including
// the read itself) in a *ConfigErrors naming path, for callers that want
// a single error type regardless of whether the file was missing or
// merely malformed.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigErrors{Path: path, Errors: []error{err}}
	}
	cfg, err := ParseConfig(buf)
	if err != nil {
		return nil, &ConfigErrors{Path: path, Errors: []error{err}}
	}
	return cfg, nil
}
