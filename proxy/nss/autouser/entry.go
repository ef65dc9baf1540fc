package autouser

import (
	"context"

	"github.com/gofrs/uuid"
	"golang.org/x/sys/unix"
)

type reentryKey struct{}

// withReentryGuard marks ctx as "already inside a lookup", so a nested
// Directory.Lookup call that ends up revisiting GetpwnamR (the original
// module's getpwnam_r-calls-getpwnam_r case, when this module is wired
// into nsswitch.conf ahead of the source it decorates from) bails out
// immediately instead of recursing. Because the marker lives on a
// derived context rather than a package-level flag, it can never leak
// back out to a sibling call or survive past the call that set it.
func withReentryGuard(ctx context.Context) context.Context {
	return context.WithValue(ctx, reentryKey{}, true)
}

func reentered(ctx context.Context) bool {
	v, _ := ctx.Value(reentryKey{}).(bool)
	return v
}

// GetpwnamR resolves name as seen by the process named argv0, following
// the seven-step flow: re-entry guard, configuration sanity, policy
// resolution, suffix decoration, and UID synthesis, in that order. cfg
// must already be parsed (see ParseConfig) — loading it from disk, and
// deciding how stale a cached copy may be, is the caller's concern.
func GetpwnamR(ctx context.Context, name, argv0 string, cfg *Config, dir Directory, log *Logger, buf []byte, env EnvSink) (Status, unix.Errno, *Passwd) {
	if reentered(ctx) {
		return StatusNotFound, 0, nil
	}

	id, err := uuid.NewV4()
	var requestID string
	if err == nil {
		requestID = id.String()
	}
	log = log.WithField("request_id", requestID)

	if cfg == nil || len(cfg.Rules) == 0 {
		log.Errorf("no rules configured - disabled")
		return StatusUnavail, unix.ENOENT, nil
	}
	if argv0 == "" {
		log.Errorf("argv could not be detected - disabled - this often indicates a host/runtime incompatibility")
		return StatusUnavail, unix.ENOENT, nil
	}

	original := name
	resolved := Resolve(cfg, argv0, name)
	rule := resolved.Rule

	log.Debugf("computed configuration for user:%q process:%q", name, argv0)

	if resolved.SuffixOffset >= 0 {
		if rule.MinUID == 0 && rule.MaxUID == 0 && rule.GID == 0 {
			log.Warnf("user:%s has a policy that does not specify MinUid, MaxUid, nor Gid - ignoring", name)
			return StatusNotFound, unix.EINVAL, nil
		}

		stripped := name[:resolved.SuffixOffset]

		guardedCtx := withReentryGuard(ctx)
		existing, found, lookupErr := dir.Lookup(guardedCtx, stripped)
		if lookupErr != nil {
			log.Errorf("user:%s - directory lookup failed: %s", stripped, lookupErr)
			found = false
		}

		if found {
			if ((rule.MinUID != 0 || rule.MaxUID != 0) && (existing.UID < rule.MinUID || existing.UID > rule.MaxUID)) ||
				(rule.GID != 0 && existing.GID != rule.GID) {
				log.Infof("user:%s - refusing to apply policy - uid:%d or gid:%d not allowed", stripped, existing.UID, existing.GID)
				return StatusNotFound, unix.EINVAL, nil
			}

			rule.GID = existing.GID
			p, werr := WriteRecord(buf, original, stripped, existing.UID, &rule, existing, true, false, env)
			if werr != nil {
				log.Debugf("user:%s - in suffix handler - buffer too small, could not store result", stripped)
				return StatusTryAgain, unix.ERANGE, nil
			}
			return StatusSuccess, 0, p
		}

		// No decoration target: fall through to synthesis, but from
		// here on the stripped name is the one being resolved.
		name = stripped
	}

	if rule.MinUID == 0 || rule.MaxUID == 0 {
		log.Debugf("%s - no uid set - ignoring", name)
		return StatusNotFound, 0, nil
	}

	seed := cfg.Seed
	if seed == "" {
		seed = "default-seed"
	}
	uid, hashErr := HashUID(ctx, dir, seed, name, rule.MinUID, rule.MaxUID, DefaultHashAttempts)
	if hashErr != nil {
		log.Errorf("user:%s - directory existence check failed: %s", name, hashErr)
		return StatusNotFound, unix.ENOENT, nil
	}
	if uid == 0 {
		log.Errorf("hashing '%s' generated clashing uids %d times", name, DefaultHashAttempts)
		return StatusNotFound, unix.ENOENT, nil
	}

	fullHome := rule.Flags&UseFullHome != 0
	p, werr := WriteRecord(buf, original, name, uid, &rule, nil, fullHome, true, env)
	if werr != nil {
		log.Debugf("in auto handler - could not store result for %s", name)
		return StatusTryAgain, unix.ERANGE, nil
	}
	return StatusSuccess, 0, p
}
