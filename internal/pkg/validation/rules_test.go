package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"jane.doe@campus.edu", true},
		{"Jane.Doe@Campus.EDU", true},
		{" jane.doe@campus.edu ", true},
		{"jane.doe", false},
		{"@campus.edu", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidEmail(tc.value), "value %q", tc.value)
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Jane"))
	assert.True(t, ValidName(" Li "))
	assert.False(t, ValidName("J"))
	assert.False(t, ValidName(""))
}

func TestValidCourseCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"CS101", true},
		{"MATH2", true},
		{"cs101", false},
		{"CS-101", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidCourseCode(tc.code), "code %q", tc.code)
	}
}
