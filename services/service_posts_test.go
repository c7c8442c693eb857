package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBody(t *testing.T) {
	assert.NoError(t, validateBody("Lord, give me patience."))
	assert.NoError(t, validateBody(strings.Repeat("a", 1000)))

	var ve ValidationError
	assert.ErrorAs(t, validateBody(""), &ve)
	assert.ErrorAs(t, validateBody("   \n\t"), &ve)
	assert.ErrorAs(t, validateBody(strings.Repeat("a", 1001)), &ve)
}
