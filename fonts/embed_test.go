package fonts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	regular, err := Load(Regular)
	require.NoError(t, err)
	assert.NotEmpty(t, regular)

	bold, err := Load("BOLD")
	require.NoError(t, err)
	assert.False(t, bytes.Equal(regular, bold), "bold and regular should differ")

	_, err = Load("italic")
	assert.Error(t, err)
}
