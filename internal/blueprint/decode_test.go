package blueprint_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solgen/internal/blueprint"
	"solgen/internal/errors"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, blueprint.FormatYAML, blueprint.FormatFromPath("token.yaml"))
	assert.Equal(t, blueprint.FormatYAML, blueprint.FormatFromPath("dir/Token.YML"))
	assert.Equal(t, blueprint.FormatJSON, blueprint.FormatFromPath("token.json"))
	assert.Equal(t, blueprint.FormatJSON, blueprint.FormatFromPath("token"))
}

func TestDecodeYAML(t *testing.T) {
	source := `name: Token
parents:
  - name: ERC20
    path: erc20.sol
    params: Token, TKN
functions:
  - name: burn
    kind: external
    code: |
      _burn(msg.sender, amount);
`
	bp, err := blueprint.Decode([]byte(source), blueprint.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Token", bp.Name)
	require.Len(t, bp.Parents, 1)
	assert.Equal(t, "Token, TKN", bp.Parents[0].Params)
	require.Len(t, bp.Functions, 1)
	assert.Equal(t, "external", bp.Functions[0].Kind)
	assert.Equal(t, "_burn(msg.sender, amount);\n", bp.Functions[0].Code)
}

func TestDecodeJSONSyntaxError(t *testing.T) {
	source := "{\n  \"name\": \"A\",\n  \"parents\": [}\n}"

	_, err := blueprint.Decode([]byte(source), blueprint.FormatJSON)
	var genErr *errors.GenerationError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, errors.ErrorBlueprintSyntax, genErr.Code)
	assert.Equal(t, errors.Position{Line: 3, Column: 15}, genErr.Position)
}

func TestDecodeJSONTypeError(t *testing.T) {
	_, err := blueprint.Decode([]byte(`{"name": 5}`), blueprint.FormatJSON)
	var genErr *errors.GenerationError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, errors.ErrorBlueprintSyntax, genErr.Code)
	assert.Equal(t, 1, genErr.Position.Line)
}

func TestDecodeYAMLTypeError(t *testing.T) {
	_, err := blueprint.Decode([]byte("parents: []\nname: [a]\n"), blueprint.FormatYAML)
	var genErr *errors.GenerationError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, errors.ErrorBlueprintSyntax, genErr.Code)
	assert.Equal(t, 2, genErr.Position.Line)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: Token\n"), 0o600))

	bp, source, err := blueprint.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Token", bp.Name)
	assert.Equal(t, "name: Token\n", source)

	_, _, err = blueprint.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
