package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Server dispatches JSON-RPC requests from an editor client to a
// Workspace, publishing diagnostics after every document change.
type Server struct {
	ws   *Workspace
	conn jsonrpc2.Conn
}

// Serve runs the LSP server loop over rwc (stdin/stdout for a stdio
// transport), blocking until the connection is closed by the client or by
// ctx's cancellation.
func Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	s := &Server{ws: NewWorkspace()}

	stream := jsonrpc2.NewStream(rwc)
	s.conn = jsonrpc2.NewConn(stream)

	s.conn.Go(ctx, s.handle)

	<-s.conn.Done()

	return s.conn.Err()
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case "initialize":
		return reply(ctx, protocol.InitializeResult{
			Capabilities: protocol.ServerCapabilities{
				HoverProvider: true,
			},
		}, nil)
	case "textDocument/didOpen":
		var params didOpenParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		doc := s.ws.Open(params.TextDocument.URI, params.TextDocument.Text)

		return s.publish(ctx, doc.URI)
	case "textDocument/didChange":
		var params didChangeParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		if len(params.ContentChanges) == 0 {
			return nil
		}

		doc := s.ws.Update(params.TextDocument.URI, params.ContentChanges[len(params.ContentChanges)-1].Text)

		return s.publish(ctx, doc.URI)
	case "textDocument/didClose":
		var params didCloseParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		s.ws.Close(params.TextDocument.URI)

		return nil
	case "textDocument/hover":
		var params protocol.TextDocumentPositionParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		doc, ok := s.ws.Get(params.TextDocument.URI)
		if !ok {
			return reply(ctx, nil, nil)
		}

		hover, ok := Hover(doc, params.Position)
		if !ok {
			return reply(ctx, nil, nil)
		}

		return reply(ctx, hover, nil)
	case "textDocument/semanticTokens/full":
		var params protocol.SemanticTokensParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		doc, ok := s.ws.Get(params.TextDocument.URI)
		if !ok {
			return reply(ctx, nil, nil)
		}

		return reply(ctx, SemanticTokens(doc), nil)
	case "shutdown":
		s.ws.CloseAll()

		return reply(ctx, nil, nil)
	default:
		return reply(ctx, nil, fmt.Errorf("lsp: unhandled method %q", req.Method()))
	}
}

func (s *Server) publish(ctx context.Context, uri protocol.DocumentURI) error {
	return s.conn.Notify(ctx, "textDocument/publishDiagnostics", s.ws.PublishDiagnostics(uri))
}

type textDocumentItem struct {
	URI  protocol.DocumentURI `json:"uri"`
	Text string               `json:"text"`
}

type textDocumentID struct {
	URI protocol.DocumentURI `json:"uri"`
}

type didOpenParams struct {
	TextDocument textDocumentItem `json:"textDocument"`
}

type didChangeParams struct {
	TextDocument   textDocumentID `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

type didCloseParams struct {
	TextDocument textDocumentID `json:"textDocument"`
}
