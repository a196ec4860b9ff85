package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTag_KeepsDuplicates(t *testing.T) {
	org := &Organization{}

	org.AddTag("vip")
	org.AddTag("vip")

	assert.Len(t, org.Tags(), 2)
	assert.True(t, org.HasTag("vip"))
	assert.False(t, org.HasTag("other"))
}

func TestAddTag_AcceptsEmptyLabel(t *testing.T) {
	deal := &Deal{}

	deal.AddTag("")

	assert.Equal(t, []Tag{{Value: ""}}, deal.Tags())
}

func TestTags_ReturnsCopy(t *testing.T) {
	p := &Person{}
	p.AddTag("a")

	tags := p.Tags()
	tags[0].Value = "changed"

	assert.Equal(t, "a", p.Tags()[0].Value)
}

func TestAddCustomValue_AppendsWithoutField(t *testing.T) {
	org := &Organization{}
	assert.Empty(t, org.CustomValues())

	cv := org.AddCustomValue("42")

	assert.Nil(t, cv.Field)
	assert.Equal(t, "42", cv.Value)
	assert.Equal(t, []*CustomValue{cv}, org.CustomValues())
}

func TestAddCustomField_BindsReferenceToNewValue(t *testing.T) {
	deal := &Deal{}
	def := CustomField{ID: "1", IntegrationID: "cf-1", Title: "Campaign", Type: "string", Value: "spring"}

	ref := deal.AddCustomField(def)
	dup := deal.AddCustomField(def)

	require.Len(t, deal.CustomValues(), 2)
	assert.Same(t, ref, deal.CustomValues()[0].Field)
	assert.Same(t, dup, deal.CustomValues()[1].Field)
	assert.Equal(t, "spring", deal.CustomValues()[1].Value)
	assert.Equal(t, &CustomFieldReference{ID: "1", IntegrationID: "cf-1", Title: "Campaign", Type: "string"}, ref)
}

func TestEnumSet(t *testing.T) {
	assert.Equal(t, NoRelation, Relations.Default())
	assert.Equal(t, "relation", Relations.Attribute())
	assert.Len(t, Relations.Members(), 6)
	assert.Equal(t, IsACustomer, Relations.Or(IsACustomer))
	assert.Equal(t, NoRelation, Relations.Or(""))

	_, err := ParseRelation("")
	var invalidRelation *InvalidRelationError
	assert.True(t, errors.As(err, &invalidRelation))

	r, err := ParseRelation("BeenInTouch")
	require.NoError(t, err)
	assert.Equal(t, BeenInTouch, r)

	assert.Panics(t, func() {
		NewEnumSet("size", "huge", func(v string) error { return nil }, "small", "large")
	})
}

func TestMapDealStatus(t *testing.T) {
	mappings := []StatusMapping{
		{SourceStatus: "closed-won", DestStatus: "Won"},
		{SourceStatus: "dead", DestStatus: "Buried"},
	}

	s, err := MapDealStatus("closed-won", mappings)
	require.NoError(t, err)
	assert.Equal(t, DealStatusWon, s)

	s, err = MapDealStatus("Negotiation", mappings)
	require.NoError(t, err)
	assert.Equal(t, DealStatusNegotiation, s)

	_, err = MapDealStatus("dead", mappings)
	var invalid *InvalidDealStatusError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, DealStatus("Buried"), invalid.Value)
}

func TestValidate_Dispatch(t *testing.T) {
	assert.NotEmpty(t, Validate(&Coworker{}))
	assert.Equal(t, "", Validate(&Coworker{LastName: "Bob"}))
	assert.NotEmpty(t, Validate(&Person{}))
	assert.Equal(t, "", Validate(&OrganizationReference{}))
}

func TestDecodeOptions_IgnoresUnknownKeys(t *testing.T) {
	opts, err := DecodeOptions[CoworkerOptions](map[string]any{
		"integration_id": "456",
		"first_name":     "Billy",
		"last_name":      "Bob",
		"shoe_size":      44,
	})
	require.NoError(t, err)

	coworker := NewCoworker(opts)
	assert.Equal(t, "456", coworker.IntegrationID)
	assert.Equal(t, "Billy Bob", coworker.FullName())
}
