// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"solgen/internal/lsp"
	"solgen/internal/options"
)

const lsName = "solgen" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("solgen.lsp")

	// Renderer options come from SOLGEN_* variables and the .env file
	opts := &options.Options{}
	flags := pflag.NewFlagSet(lsName, pflag.ContinueOnError)
	opts.BindFlags(flags)
	if err := opts.Load(flags); err != nil {
		log.Errorf("failed to load options: %s", err)
		os.Exit(1)
	}

	blueprintHandler := lsp.NewBlueprintHandler(lsName, version, opts.BuilderOptions()...)

	handler = protocol.Handler{
		Initialize:            blueprintHandler.Initialize,
		Initialized:           blueprintHandler.Initialized,
		Shutdown:              blueprintHandler.Shutdown,
		SetTrace:              blueprintHandler.SetTrace,
		TextDocumentDidOpen:   blueprintHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  blueprintHandler.TextDocumentDidClose,
		TextDocumentDidChange: blueprintHandler.TextDocumentDidChange,
		TextDocumentHover:     blueprintHandler.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting solgen LSP server")

	// Serve over standard input/output
	if err := s.RunStdio(); err != nil {
		log.Errorf("error running solgen LSP server: %s", err)
		os.Exit(1)
	}
}
