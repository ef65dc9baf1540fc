package autouser

import "path"

// Resolved is the outcome of matching a process/name pair against a
// Config: the merged rule and, if the name matched a suffix bucket, the
// byte offset within name at which that suffix begins.
type Resolved struct {
	Rule         Rule
	SuffixOffset int
}

// suffixIndex returns the byte offset at which suffix begins within
// name, or -1 if name does not end with suffix.
func suffixIndex(name, suffix string) int {
	if len(suffix) > len(name) {
		return -1
	}
	offset := len(name) - len(suffix)
	if name[offset:] != suffix {
		return -1
	}
	return offset
}

// Resolve classifies every rule in cfg into one of four (process ×
// name) buckets, merges the rules of each bucket in configuration order
// (a later rule's non-empty/non-zero fields override an earlier one's,
// see mergeRule), and merges the four bucket results in the fixed
// precedence order: default-process × default-user, default-process ×
// set-user, set-process × default-user, set-process × set-user. It
// returns the merged rule and the suffix offset of the most specific
// bucket that matched, or -1 if none did.
func Resolve(cfg *Config, process, name string) Resolved {
	var defProcDefUser, defProcSetUser, setProcDefUser, setProcSetUser Rule
	defSuffixOffset, setSuffixOffset := -1, -1

	for i := range cfg.Rules {
		r := &cfg.Rules[i]

		setProcess := r.Argv != ""
		if setProcess {
			if ok, _ := path.Match(r.Argv, process); !ok {
				continue
			}
		}

		if r.Suffix == "" {
			if setProcess {
				mergeRule(&setProcDefUser, r)
			} else {
				mergeRule(&defProcDefUser, r)
			}
			continue
		}

		offset := suffixIndex(name, r.Suffix)
		if offset < 0 {
			continue
		}
		if setProcess {
			mergeRule(&setProcSetUser, r)
			setSuffixOffset = offset
		} else {
			mergeRule(&defProcSetUser, r)
			defSuffixOffset = offset
		}
	}

	var result Rule
	mergeRule(&result, &defProcDefUser)
	mergeRule(&result, &defProcSetUser)
	mergeRule(&result, &setProcDefUser)
	mergeRule(&result, &setProcSetUser)

	offset := defSuffixOffset
	if setSuffixOffset >= 0 {
		offset = setSuffixOffset
	}
	return Resolved{Rule: result, SuffixOffset: offset}
}

// mergeRule copies every non-empty/non-zero field of source into dest.
// Flag pairs are copied as a unit: if SetX is set in source, both UseX
// and SetX are copied into dest, overriding whatever dest had.
func mergeRule(dest, source *Rule) {
	if source == nil {
		return
	}

	if source.Argv != "" {
		dest.Argv = source.Argv
	}
	if source.Suffix != "" {
		dest.Suffix = source.Suffix
	}
	if source.Shell != "" {
		dest.Shell = source.Shell
	}
	if source.Home != "" {
		dest.Home = source.Home
	}
	if source.Gecos != "" {
		dest.Gecos = source.Gecos
	}

	if source.MinUID > 0 {
		dest.MinUID = source.MinUID
	}
	if source.MaxUID > 0 {
		dest.MaxUID = source.MaxUID
	}
	if source.GID > 0 {
		dest.GID = source.GID
	}

	if source.Flags&SetPassword != 0 {
		dest.Flags = assignFlagBits(dest.Flags, source.Flags, SetPassword|UsePassword)
	}
	if source.Flags&SetFullHome != 0 {
		dest.Flags = assignFlagBits(dest.Flags, source.Flags, SetFullHome|UseFullHome)
	}
}

func assignFlagBits(dest, source, mask Flags) Flags {
	return dest ^ ((dest ^ source) & mask)
}
