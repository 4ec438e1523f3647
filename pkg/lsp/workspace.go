package lsp

import (
	"sync"

	"go.lsp.dev/protocol"

	"github.com/dnaka91/mabo/pkg/util"
)

// Workspace tracks every document currently open in the editor.
type Workspace struct {
	mu   sync.Mutex
	docs map[protocol.DocumentURI]*Document
}

// NewWorkspace constructs an empty Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{docs: map[protocol.DocumentURI]*Document{}}
}

// Open analyzes text as uri's contents and records it, mirroring
// textDocument/didOpen.
func (w *Workspace) Open(uri protocol.DocumentURI, text string) *Document {
	doc := analyze(uri, text)

	w.mu.Lock()
	w.docs[uri] = doc
	w.mu.Unlock()

	return doc
}

// Update re-analyzes uri's full text, mirroring textDocument/didChange with
// a full-document sync kind (spec doesn't need incremental sync: schemas
// are small, and re-parsing is cheap relative to editor round-trip time).
func (w *Workspace) Update(uri protocol.DocumentURI, text string) *Document {
	return w.Open(uri, text)
}

// Close drops uri from the workspace, mirroring textDocument/didClose.
func (w *Workspace) Close(uri protocol.DocumentURI) {
	w.mu.Lock()
	delete(w.docs, uri)
	w.mu.Unlock()
}

// Snapshot returns a shallow clone of every currently open document, keyed
// by URI. Cloning under the lock lets a caller iterate (e.g. to close every
// document on shutdown) without holding w.mu for the duration — Close
// itself takes the lock, so iterating the live map and calling Close per
// entry would deadlock on a non-reentrant mutex.
func (w *Workspace) Snapshot() map[protocol.DocumentURI]*Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	return util.ShallowCloneMap(w.docs)
}

// CloseAll closes every document currently open in the workspace,
// mirroring the cleanup an editor's shutdown/exit sequence expects.
func (w *Workspace) CloseAll() {
	for uri := range w.Snapshot() {
		w.Close(uri)
	}
}

// Get returns the last analyzed Document for uri, if open.
func (w *Workspace) Get(uri protocol.DocumentURI) (*Document, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, ok := w.docs[uri]

	return doc, ok
}

// PublishDiagnostics builds the textDocument/publishDiagnostics
// notification params for uri's current analysis.
func (w *Workspace) PublishDiagnostics(uri protocol.DocumentURI) protocol.PublishDiagnosticsParams {
	doc, ok := w.Get(uri)
	if !ok {
		return protocol.PublishDiagnosticsParams{URI: uri}
	}

	return protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: ToProtocolDiagnostics(doc.File, doc.Diagnostics),
	}
}
