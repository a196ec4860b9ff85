package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_IsIdempotent(t *testing.T) {
	inputs := []struct {
		kind  EntityKind
		value any
	}{
		{KindOrganization, &Organization{IntegrationID: "o", Name: "Org"}},
		{KindCoworker, &Coworker{IntegrationID: "c", FirstName: "Co", LastName: "Worker"}},
		{KindPerson, &Person{IntegrationID: "p", FirstName: "Per", LastName: "Son"}},
		{KindOrganization, &OrganizationReference{IntegrationID: "o", Heading: "Org"}},
	}

	for _, in := range inputs {
		once, err := Normalize(in.value, in.kind)
		require.NoError(t, err)
		twice, err := Normalize(once, in.kind)
		require.NoError(t, err)

		assert.Same(t, once, twice, "kind %s", in.kind)
		assert.Equal(t, in.kind, once.Kind())
	}
}

func TestNormalize_NilPropagates(t *testing.T) {
	for _, kind := range []EntityKind{KindOrganization, KindCoworker, KindPerson} {
		ref, err := Normalize(nil, kind)
		require.NoError(t, err)
		assert.Nil(t, ref, "kind %s", kind)
	}

	var typedNil *PersonReference
	ref, err := Normalize(typedNil, KindPerson)
	require.NoError(t, err)
	assert.Nil(t, ref, "a typed nil reference must come back as a nil interface")
}

func TestFrom_NilForEveryKind(t *testing.T) {
	org, err := FromOrganization(nil)
	require.NoError(t, err)
	assert.Nil(t, org)

	cw, err := FromCoworker(nil)
	require.NoError(t, err)
	assert.Nil(t, cw)

	p, err := FromPerson(nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNormalize_HeadingUsesDisplayField(t *testing.T) {
	cw, err := FromCoworker(&Coworker{IntegrationID: "c-1", FirstName: "Billy"})
	require.NoError(t, err)
	assert.Equal(t, "Billy", cw.Heading)

	p, err := FromPerson(&Person{ID: "9", IntegrationID: "p-1", FirstName: "Ann", LastName: "Lee"})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", p.Heading)
	assert.Equal(t, "9", p.ID)
}

func TestNormalize_TypeMismatch(t *testing.T) {
	_, err := Normalize(&CoworkerReference{}, KindPerson)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, KindPerson, mismatch.Expected)
	assert.Equal(t, "coworker reference", mismatch.Actual)
	assert.Contains(t, err.Error(), "expected person")

	_, err = Normalize(42, KindOrganization)
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "int", mismatch.Actual)
}

func TestNormalize_UnknownKind(t *testing.T) {
	_, err := Normalize(&Organization{}, EntityKind("deal"))
	require.Error(t, err)
}

func TestEntityReferenceShortcuts(t *testing.T) {
	org := &Organization{IntegrationID: "o-1", Name: "Acme"}
	assert.Equal(t, "Acme", org.Reference().Heading)

	var none *Organization
	assert.Nil(t, none.Reference())
}
