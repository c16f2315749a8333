// Test Type: Unit Test
// Description: Tests for ordered operation plans and replay stability

package sections_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/arthur-debert/wpconf/pkg/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plan() []sections.Operation {
	return []sections.Operation{
		sections.Append("AUTOLOAD", "bootstrap();"),
		sections.Prepend("ENV_VARIABLES", "require 'all.php';"),
		sections.Append("AUTOLOAD", "second();"),
		sections.DeleteIfPresent("THEMES_REGISTER"),
		sections.DeleteIfPresent("ADMIN_COLOR"),
	}
}

func TestApply_MatchesDirectCalls(t *testing.T) {
	viaPlan := load(t, template)
	require.NoError(t, viaPlan.Apply(plan()...))

	direct := load(t, template)
	require.NoError(t, direct.Append("AUTOLOAD", "bootstrap();"))
	require.NoError(t, direct.Prepend("ENV_VARIABLES", "require 'all.php';"))
	require.NoError(t, direct.Append("AUTOLOAD", "second();"))
	_, err := direct.DeleteIfPresent("THEMES_REGISTER")
	require.NoError(t, err)
	_, err = direct.DeleteIfPresent("ADMIN_COLOR")
	require.NoError(t, err)

	assert.Equal(t, direct.Render(), viaPlan.Render())
	assert.Equal(t, plan(), viaPlan.Operations())
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	e := load(t, template)

	err := e.Apply(
		sections.Append("AUTOLOAD", "a();"),
		sections.Delete("THEMES_REGISTER"),
		sections.Append("THEMES_REGISTER", "b();"),
		sections.Append("AUTOLOAD", "c();"),
	)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownSection))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 2, details["operation"])
	assert.Equal(t, "append(THEMES_REGISTER)", details["op"])

	assert.NotContains(t, e.Render(), "c();")
	assert.Len(t, e.Operations(), 2)
}

func TestApply_UnknownKind(t *testing.T) {
	e := load(t, template)
	err := e.Apply(sections.Operation{Kind: sections.Kind(42), Section: "AUTOLOAD"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestReplay_StableAgainstOwnOutput(t *testing.T) {
	first := load(t, template)
	require.NoError(t, first.Apply(plan()...))
	out := first.Render()

	second, err := sections.Load(out, markers.Labels)
	require.NoError(t, err)
	require.NoError(t, second.Apply(plan()...))

	assert.Equal(t, out, second.Render())
	assert.False(t, second.Changed())
	assert.Equal(t, 3, second.Stats().Skipped)
}

func TestReplay_OperationLog(t *testing.T) {
	first := load(t, template)
	require.NoError(t, first.Apply(plan()...))

	replayed := load(t, template)
	require.NoError(t, replayed.Apply(first.Operations()...))

	assert.Equal(t, first.Render(), replayed.Render())
}

func TestReplay_FromJSONLog(t *testing.T) {
	first := load(t, template)
	require.NoError(t, first.Apply(plan()...))

	logged, err := json.Marshal(first.Operations())
	require.NoError(t, err)
	assert.Contains(t, string(logged), `"kind":"delete-if-present"`)

	var ops []sections.Operation
	require.NoError(t, json.Unmarshal(logged, &ops))

	replayed := load(t, template)
	require.NoError(t, replayed.Apply(ops...))
	assert.Equal(t, first.Render(), replayed.Render())

	err = json.Unmarshal([]byte(`[{"kind":"rename","section":"X"}]`), &ops)
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "append", sections.KindAppend.String())
	assert.Equal(t, "prepend", sections.KindPrepend.String())
	assert.Equal(t, "delete", sections.KindDelete.String())
	assert.Equal(t, "delete-if-present", sections.KindDeleteIfPresent.String())
	assert.Equal(t, "unknown", sections.Kind(9).String())
	assert.Equal(t, "delete(ADMIN_COLOR)", sections.Delete("ADMIN_COLOR").String())
}
