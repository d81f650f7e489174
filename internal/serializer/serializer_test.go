package serializer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/serializer"
)

type ExampleModal struct {
	Name  string `json:"name" szlr:"always"`
	Email string `json:"email" szlr:"scope:admin"`
	Phone string `json:"phone" szlr:"scope:admin,self"`
	Note  string `json:"note"`
	Child *ExampleModal
}

func TestParseScopes(t *testing.T) {
	assert.Equal(t, []string{"admin", "self"}, serializer.ParseScopes("scope:admin, self"))
	assert.Equal(t, []string{"always"}, serializer.ParseScopes("always"))
	assert.Nil(t, serializer.ParseScopes("bogus"))
}

func TestCanViewField(t *testing.T) {
	assert.True(t, serializer.CanViewField("", nil))
	assert.True(t, serializer.CanViewField("always", nil))
	assert.True(t, serializer.CanViewField("scope:admin,self", []string{"self"}))
	assert.False(t, serializer.CanViewField("scope:admin", []string{"self", "owner"}))
	assert.False(t, serializer.CanViewField("scope:admin", nil))
}

func TestRedact(t *testing.T) {
	m := &ExampleModal{
		Name:  "John Doe",
		Email: "johndo@example.com",
		Phone: "123-456-7890",
		Note:  "hi",
		Child: &ExampleModal{Email: "child@example.com", Phone: "1"},
	}

	serializer.Redact(m, serializer.ScopeSelf)

	assert.Equal(t, "John Doe", m.Name)
	assert.Empty(t, m.Email)
	assert.Equal(t, "123-456-7890", m.Phone)
	assert.Equal(t, "hi", m.Note)
	assert.Empty(t, m.Child.Email)
	assert.Equal(t, "1", m.Child.Phone)
}

func TestRedactDonations(t *testing.T) {
	donor := uuid.New()
	donations := []*model.Donation{
		{ID: uuid.New(), Amount: 500, DonorID: &donor, DonorName: "Asha", DonorEmail: "asha@example.org"},
		{ID: uuid.New(), Amount: 50, DonorName: "Ravi", DonorEmail: "ravi@example.org"},
	}

	serializer.Redact(donations)

	for _, d := range donations {
		assert.Empty(t, d.DonorName)
		assert.Empty(t, d.DonorEmail)
		assert.NotZero(t, d.Amount)
	}
	assert.Equal(t, donor, *donations[0].DonorID)
}
