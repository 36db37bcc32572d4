package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedStub struct {
	owner string
}

func (s *ownedStub) OwnerID() string { return s.owner }

func TestAuthorize_OwnerProceeds(t *testing.T) {
	res := &ownedStub{owner: "user-1"}

	decision := Authorize("user-1", res)

	assert.True(t, decision.Allowed())
	assert.Equal(t, Proceed, decision)
}

func TestAuthorize_NonOwnerForbidden(t *testing.T) {
	res := &ownedStub{owner: "user-1"}

	decision := Authorize("user-2", res)

	assert.False(t, decision.Allowed())
	assert.Equal(t, Forbidden, decision)
}

func TestAuthorize_EmptyRequesterForbidden(t *testing.T) {
	res := &ownedStub{owner: "user-1"}

	assert.False(t, Authorize("", res).Allowed())
}

func TestAuthorize_EmptyOwnerForbidden(t *testing.T) {
	// Ресурс без владельца не должен открываться никому
	res := &ownedStub{owner: ""}

	assert.False(t, Authorize("user-1", res).Allowed())
	assert.False(t, Authorize("", res).Allowed())
}
