package model

import "testing"

import "github.com/stretchr/testify/assert"

func TestLockIdentity_TypeAndSite(t *testing.T) {
	id := NewLockIdentity("Account", "12")
	assert.Equal(t, "Account", id.Type())
	assert.Equal(t, "12", id.Site())
	assert.Equal(t, LockIdentity("Account"), id.Canonical())
	assert.False(t, id.IsGround())
}

func TestLockIdentity_Ground(t *testing.T) {
	id := NewLockIdentity("Account", GroundSite)
	assert.True(t, id.IsGround())
	assert.Equal(t, "ground", id.Site())
}

func TestLockIdentity_DegradedFallsBackToRawText(t *testing.T) {
	id := LockIdentity("getLock()")
	assert.Equal(t, "getLock()", id.Type())
	assert.Equal(t, "", id.Site())
	assert.Equal(t, LockIdentity("getLock()"), id.Canonical())
}
