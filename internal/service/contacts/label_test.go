package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelResolverCustomWins(t *testing.T) {
	r := NewLabelResolver(nil)
	for _, c := range []LabelCategory{LabelPhone, LabelEmail, LabelAddress, LabelEvent, LabelRelation, LabelIM} {
		assert.Equal(t, "Cottage", r.Resolve(c, 1, "Cottage"))
	}
}

func TestLabelResolverSystemLabels(t *testing.T) {
	r := NewLabelResolver(nil)
	tests := []struct {
		category LabelCategory
		id       int
		want     string
	}{
		{LabelPhone, 1, "Home"},
		{LabelPhone, 2, "Mobile"},
		{LabelPhone, 20, "MMS"},
		{LabelPhone, 0, "Other"},
		{LabelEmail, 4, "Mobile"},
		{LabelEmail, 42, "Other"},
		{LabelAddress, 1, "Home"},
		{LabelEvent, 3, "Birthday"},
		{LabelEvent, 0, "Other"},
		{LabelRelation, 14, "Spouse"},
		{LabelRelation, 0, "Custom"},
		{LabelIM, 0, "AIM"},
		{LabelIM, 4, "QQ"},
		{LabelIM, -1, "Custom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve(tt.category, tt.id, ""), "category %d id %d", tt.category, tt.id)
	}
}

func TestLabelResolverCustomLookup(t *testing.T) {
	r := NewLabelResolver(func(c LabelCategory, id int) (string, bool) {
		return "家", c == LabelAddress && id == 1
	})
	assert.Equal(t, "家", r.Resolve(LabelAddress, 1, ""))
	assert.Equal(t, "Other", r.Resolve(LabelAddress, 2, ""))
}
