package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelize(t *testing.T) {
	assert.Equal(t, "myProp", Camelize("my-prop"))
	assert.Equal(t, "myLongPropName", Camelize("my-long-prop-name"))
	assert.Equal(t, "already", Camelize("already"))
	assert.Equal(t, "alreadyCamel", Camelize("alreadyCamel"))
	assert.Equal(t, "", Camelize(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Foo", Capitalize("foo"))
	assert.Equal(t, "Foo", Capitalize("Foo"))
	assert.Equal(t, "", Capitalize(""))
}

func TestHyphenate(t *testing.T) {
	assert.Equal(t, "my-prop", Hyphenate("myProp"))
	assert.Equal(t, "plain", Hyphenate("plain"))
	assert.Equal(t, "my-component", Hyphenate("MyComponent"))
}

func TestHyphenateRoundTrip(t *testing.T) {
	assert.Equal(t, "myLongPropName", Camelize(Hyphenate("myLongPropName")))
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{"my-button", "myButton", "MyButton"}, Variants("my-button"))
	assert.Equal(t, []string{"myButton", "MyButton"}, Variants("myButton"))
	assert.Equal(t, []string{"MyButton"}, Variants("MyButton"))
	assert.Equal(t, []string{"plain", "Plain"}, Variants("plain"))
}
