package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solgen/internal/blueprint"
	"solgen/internal/builder"
)

var log = commonlog.GetLogger("solgen.lsp")

// BlueprintHandler implements the LSP server handlers for contract blueprints
type BlueprintHandler struct {
	name    string
	version string
	options []builder.Option

	mu      sync.RWMutex
	sources map[protocol.DocumentUri]string
	trace   protocol.TraceValue
}

// NewBlueprintHandler creates and returns a new BlueprintHandler instance
func NewBlueprintHandler(name, version string, opts ...builder.Option) *BlueprintHandler {
	return &BlueprintHandler{
		name:    name,
		version: version,
		options: opts,
		sources: make(map[protocol.DocumentUri]string),
		trace:   protocol.TraceValueOff,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *BlueprintHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize called")

	if params.Trace != nil {
		h.setTrace(*params.Trace)
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    h.name,
			Version: &h.version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *BlueprintHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *BlueprintHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *BlueprintHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	h.setTrace(params.Value)
	return nil
}

func (h *BlueprintHandler) setTrace(value protocol.TraceValue) {
	h.mu.Lock()
	h.trace = value
	h.mu.Unlock()
	protocol.SetTraceValue(value)
}

// Trace returns the trace level requested by the client
func (h *BlueprintHandler) Trace() protocol.TraceValue {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.trace
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *BlueprintHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened file: %s", params.TextDocument.URI)
	return h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full document sync is advertised, so the last change holds the whole text.
func (h *BlueprintHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed file: %s", params.TextDocument.URI)

	var text string
	found := false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, found = c.Text, true
			}
		}
	}
	if !found {
		return fmt.Errorf("no full content change for %s", params.TextDocument.URI)
	}

	return h.update(ctx, params.TextDocument.URI, text)
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *BlueprintHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.sources, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentHover shows the contract generated from the blueprint
func (h *BlueprintHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	h.mu.RLock()
	source, ok := h.sources[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```solidity\n" + source + "```",
		},
	}, nil
}

// Source returns the contract rendered from the last valid version of the document
func (h *BlueprintHandler) Source(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	source, ok := h.sources[uri]
	return source, ok
}

func (h *BlueprintHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	source, err := h.render(path, text)

	h.mu.Lock()
	if err == nil {
		h.sources[uri] = source
	} else {
		delete(h.sources, uri)
	}
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, ConvertError(err))
	return nil
}

func (h *BlueprintHandler) render(path, text string) (string, error) {
	bp, err := blueprint.Decode([]byte(text), blueprint.FormatFromPath(path))
	if err != nil {
		return "", err
	}
	c, err := blueprint.Build(bp)
	if err != nil {
		return "", err
	}
	return builder.Render(c, h.options...)
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
