package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNames(t *testing.T) {
	for _, name := range []string{
		"foo", "bar", "work",
		"foo-bar", "my-project", "a-b-c",
		"foo_bar", "my_project", "a_b_c",
		"f7-bar8", "f8-3", "f80-3_x", "project2024",
		"my-project_2024", "foo_bar-baz",
	} {
		assert.NoError(t, ValidateName(name), name)
	}
}

func TestEmptyName(t *testing.T) {
	err := ValidateName("")
	assert.EqualError(t, err, "tag name cannot be empty")
}

func TestInvalidStart(t *testing.T) {
	for _, name := range []string{"-foo", "_foo", "7foo", "123"} {
		assert.Error(t, ValidateName(name), name)
	}
}

func TestEndsWithHyphen(t *testing.T) {
	assert.EqualError(t, ValidateName("foo-"), "tag name cannot end with a hyphen")
	assert.EqualError(t, ValidateName("bar-baz-"), "tag name cannot end with a hyphen")
}

func TestConsecutiveHyphens(t *testing.T) {
	assert.EqualError(t, ValidateName("foo--bar"), "tag name cannot contain consecutive hyphens")
	assert.EqualError(t, ValidateName("a---b"), "tag name cannot contain consecutive hyphens")
}

func TestInvalidCharacters(t *testing.T) {
	for _, name := range []string{"foo bar", "foo.bar", "foo@bar", "foo#bar"} {
		err := ValidateName(name)
		assert.Error(t, err, name)
		assert.Contains(t, err.Error(), "invalid character")
	}
}
