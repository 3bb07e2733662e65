package lsp

import (
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solgen/internal/errors"
)

const diagnosticSource = "solgen"

// ConvertError transforms a generation failure into LSP diagnostics.
// A nil error gives an empty list, which clears previous diagnostics.
func ConvertError(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var genErr *errors.GenerationError
	if !stderrors.As(err, &genErr) {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  err.Error(),
		}}
	}

	var start protocol.Position
	if genErr.Position.IsValid() {
		// Convert to 0-based indexing
		start = protocol.Position{
			Line:      uint32(genErr.Position.Line - 1),
			Character: uint32(max(0, genErr.Position.Column-1)),
		}
	}
	end := start
	end.Character += uint32(max(1, genErr.Length))

	message := []string{genErr.Message}
	for _, s := range genErr.Suggestions {
		message = append(message, "help: "+s.Message)
	}
	for _, note := range genErr.Notes {
		message = append(message, "note: "+note)
	}
	message = append(message, genErr.Code+": "+errors.GetErrorDescription(genErr.Code))

	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(severity(genErr.Level)),
		Code:     &protocol.IntegerOrString{Value: genErr.Code},
		Source:   ptrString(diagnosticSource),
		Message:  strings.Join(message, "\n"),
	}}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		log.Errorf("failed to marshal diagnostics: %s", err)
		return
	}

	log.Debugf("sending diagnostics: %s", diagnosticsJSON)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
