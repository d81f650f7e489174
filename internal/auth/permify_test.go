package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermifyTuple(t *testing.T) {
	ngo := Entity{Type: "ngo", ID: "42"}
	owner := Subject{Type: "user", ID: "7"}

	assert.Equal(t, "ngo:42#owner@user:7", tupleString(ngo, "owner", owner))

	tp := tuple(ngo, "owner", owner)
	assert.Equal(t, "ngo", tp.GetEntity().GetType())
	assert.Equal(t, "42", tp.GetEntity().GetId())
	assert.Equal(t, "owner", tp.GetRelation())
	assert.Equal(t, "user", tp.GetSubject().GetType())
	assert.Equal(t, "7", tp.GetSubject().GetId())

	f := deleteFilter(ngo, "publisher", owner)
	assert.Equal(t, []string{"42"}, f.GetEntity().GetIds())
	assert.Equal(t, "publisher", f.GetRelation())
	assert.Equal(t, []string{"7"}, f.GetSubject().GetIds())
}
