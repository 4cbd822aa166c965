package model

import "strings"

// LockIdentity is a string of the form "TYPE:SITE" where TYPE is an
// identifier and SITE is either a 1-origin declaration line rendered as
// text or the sentinel GroundSite. An unresolved monitor expression is
// represented by the raw expression text with no ":" separator — it is a
// degraded identity used only for equality.
//
// A lightweight string newtype with constructor helpers, rather than a
// struct threaded everywhere pointer-identity would do.
type LockIdentity string

// NewLockIdentity builds a fully-qualified lock identity from a declared
// type and declaration-site tag.
func NewLockIdentity(declaredType, site string) LockIdentity {
	if site == "" {
		site = GroundSite
	}
	return LockIdentity(declaredType + ":" + site)
}

// Type returns the TYPE portion of the identity: the substring preceding
// the first ":", or the whole string when there is no ":" (a degraded,
// unresolved identity).
func (id LockIdentity) Type() string {
	if idx := strings.IndexByte(string(id), ':'); idx >= 0 {
		return string(id)[:idx]
	}
	return string(id)
}

// Site returns the SITE portion of the identity, or "" for a degraded
// identity that carries no declaration site.
func (id LockIdentity) Site() string {
	if idx := strings.IndexByte(string(id), ':'); idx >= 0 {
		return string(id)[idx+1:]
	}
	return ""
}

// Canonical collapses a fully-qualified identity to its TYPE portion, the
// node identity used inside the merged global graph.
func (id LockIdentity) Canonical() LockIdentity {
	return LockIdentity(id.Type())
}

// IsGround reports whether the identity's site is the ground sentinel.
func (id LockIdentity) IsGround() bool {
	return id.Site() == GroundSite
}
