package ownership_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mrodrig/grana/internal/ownership"
)

type ownedResource struct {
	owner *uuid.UUID
}

func (r ownedResource) OwnerID() (uuid.UUID, bool) {
	if r.owner == nil {
		return uuid.Nil, false
	}

	return *r.owner, true
}

type sharedResource struct {
	ownedResource
	shared bool
}

func (r sharedResource) Shared() bool { return r.shared }

func TestIsOwned(t *testing.T) {
	user := uuid.New()
	other := uuid.New()

	type testCase struct {
		name string
		res  ownership.Resource
		want bool
	}

	tests := []testCase{
		{
			name: "SameOwner",
			res:  ownedResource{owner: &user},
			want: true,
		},
		{
			name: "DifferentOwner",
			res:  ownedResource{owner: &other},
			want: false,
		},
		{
			name: "NoOwner",
			res:  ownedResource{},
			want: false,
		},
		{
			name: "SharedOwnedByAnyone",
			res:  sharedResource{ownedResource: ownedResource{owner: &other}, shared: true},
			want: true,
		},
		{
			name: "NotSharedFallsBackToOwner",
			res:  sharedResource{ownedResource: ownedResource{owner: &other}, shared: false},
			want: false,
		},
		{
			name: "SharedWithoutOwner",
			res:  sharedResource{shared: true},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ownership.IsOwned(tt.res, user))
		})
	}
}

func TestAssert(t *testing.T) {
	user := uuid.New()
	other := uuid.New()

	assert.NoError(t, ownership.Assert(ownedResource{owner: &user}, user))

	err := ownership.Assert(ownedResource{owner: &other}, user)
	assert.ErrorIs(t, err, ownership.ErrAccessDenied)
}
