package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/gofood/internal/pkg/validator"
)

func TestErrors_Empty(t *testing.T) {
	errs := validator.NewErrors()

	require.NotNil(t, errs)
	assert.True(t, errs.IsEmpty())
	assert.Equal(t, 0, errs.Count())
	assert.Empty(t, errs.Fields())
	assert.Equal(t, "validation error", errs.Error())
}

func TestErrors_AddKeepsOrder(t *testing.T) {
	errs := validator.NewErrors()
	errs.Add("Name", "first")
	errs.Add("Name", "second")

	assert.Equal(t, []string{"first", "second"}, errs.Get("Name"))
	assert.Equal(t, "first", errs.First("Name"))
	assert.Equal(t, 2, errs.Count())
}

func TestErrors_CollectSkipsEmpty(t *testing.T) {
	errs := validator.NewErrors()
	errs.Collect("Name", "")
	errs.Collect("Phone", "Phone is invalid")

	assert.False(t, errs.Has("Name"))
	assert.True(t, errs.Has("Phone"))
	assert.Equal(t, []string{"Phone"}, errs.Fields())
	assert.Equal(t, "", errs.First("Name"))
}

func TestErrors_Merge(t *testing.T) {
	errs := validator.NewErrors()
	errs.Add("Name", "a")

	other := validator.NewErrors()
	other.Add("Name", "b")
	other.Add("Email", "c")

	errs.Merge(other)

	assert.Equal(t, []string{"a", "b"}, errs.Get("Name"))
	assert.Equal(t, []string{"c"}, errs.Get("Email"))
	assert.Equal(t, []string{"Email", "Name"}, errs.Fields())
}

func TestErrors_ErrorIsDeterministic(t *testing.T) {
	errs := validator.NewErrors()
	errs.Add("b", "second")
	errs.Add("a", "first")

	assert.Equal(t, `{"a":["first"],"b":["second"]}`, errs.Error())
	assert.Equal(t, errs.Error(), errs.Error())
}

func TestPath(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "flat", parts: []string{"Name"}, want: "Name"},
		{name: "nested", parts: []string{"CurrentLocation", "Lat"}, want: "CurrentLocation.Lat"},
		{name: "empty prefix", parts: []string{"", "Lat"}, want: "Lat"},
		{name: "indexed", parts: []string{validator.Index("Menu", 2), "Price"}, want: "Menu[2].Price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Path(tt.parts...))
		})
	}
}
