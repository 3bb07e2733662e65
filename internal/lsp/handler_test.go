package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solgen/internal/lsp"
)

const tokenURI = "file:///work/token.json"

const validBlueprint = `{
  "name": "Token",
  "parents": [{"name": "ERC20", "path": "erc20.sol", "params": "Token, TKN"}]
}`

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published)
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.BlueprintHandler, ctx *glsp.Context, uri, text string) {
	t.Helper()
	require.NoError(t, h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "json", Version: 1, Text: text},
	}))
}

func TestInitialize(t *testing.T) {
	h := lsp.NewBlueprintHandler("solgen", "1.0.0")
	trace := protocol.TraceValueMessage

	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{Trace: &trace})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, initResult.Capabilities.HoverProvider)
	assert.Equal(t, "solgen", initResult.ServerInfo.Name)
	assert.Equal(t, protocol.TraceValueMessage, h.Trace())

	require.NoError(t, h.SetTrace(&glsp.Context{}, &protocol.SetTraceParams{Value: protocol.TraceValueOff}))
	assert.Equal(t, protocol.TraceValueOff, h.Trace())
	require.NoError(t, h.Shutdown(&glsp.Context{}))
}

func TestValidBlueprintClearsDiagnostics(t *testing.T) {
	h := lsp.NewBlueprintHandler("solgen", "1.0.0")
	r := &recorder{}

	open(t, h, r.context(), tokenURI, validBlueprint)

	published := r.last(t)
	assert.Equal(t, tokenURI, published.URI)
	assert.Empty(t, published.Diagnostics)

	source, ok := h.Source(tokenURI)
	require.True(t, ok)
	assert.Contains(t, source, `constructor() ERC20("Token", "TKN") {}`)
}

func TestInvalidBlueprintPublishesDiagnostic(t *testing.T) {
	h := lsp.NewBlueprintHandler("solgen", "1.0.0")
	r := &recorder{}

	open(t, h, r.context(), tokenURI, validBlueprint)
	require.NoError(t, h.TextDocumentDidChange(r.context(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: tokenURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "{\n  \"name\": }"},
		},
	}))

	published := r.last(t)
	require.Len(t, published.Diagnostics, 1)
	diagnostic := published.Diagnostics[0]
	assert.Equal(t, "E0101", diagnostic.Code.Value)
	assert.Equal(t, "solgen", *diagnostic.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diagnostic.Severity)
	assert.Equal(t, uint32(1), diagnostic.Range.Start.Line)
	assert.Equal(t, uint32(10), diagnostic.Range.Start.Character)

	_, ok := h.Source(tokenURI)
	assert.False(t, ok)

	hover, err := h.TextDocumentHover(r.context(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: tokenURI},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover)
}

func TestSparseParamsKeepEmptyPieces(t *testing.T) {
	h := lsp.NewBlueprintHandler("solgen", "1.0.0")
	r := &recorder{}
	uri := "file:///work/token.yaml"

	open(t, h, r.context(), uri, "name: A\nparents:\n  - name: P\n    path: p.sol\n    params: 'a,,b'\n")

	assert.Empty(t, r.last(t).Diagnostics)
	source, ok := h.Source(uri)
	require.True(t, ok)
	assert.Contains(t, source, `constructor() P("a", "", "b") {}`)
}

func TestHoverShowsContract(t *testing.T) {
	h := lsp.NewBlueprintHandler("solgen", "1.0.0")
	r := &recorder{}
	open(t, h, r.context(), tokenURI, validBlueprint)

	hover, err := h.TextDocumentHover(r.context(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: tokenURI},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Contains(t, content.Value, "```solidity\npragma solidity ^0.8.9;")
	assert.Contains(t, content.Value, "contract Token is ERC20 {")
}

func TestDidCloseForgetsDocument(t *testing.T) {
	h := lsp.NewBlueprintHandler("solgen", "1.0.0")
	r := &recorder{}
	open(t, h, r.context(), tokenURI, validBlueprint)

	require.NoError(t, h.TextDocumentDidClose(r.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: tokenURI},
	}))

	_, ok := h.Source(tokenURI)
	assert.False(t, ok)
	assert.Empty(t, r.last(t).Diagnostics)
}
