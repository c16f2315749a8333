package install_test

import (
	"testing"

	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/stretchr/testify/require"
)

func mustSyntax(t *testing.T) markers.Syntax {
	t.Helper()
	syntax, err := markers.SyntaxByName("labels")
	require.NoError(t, err)
	return syntax
}
