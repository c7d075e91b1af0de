package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"devmcp/internal/core"
	"devmcp/internal/prompts"
	"devmcp/internal/resources"
	"devmcp/internal/transports/common"
)

// subjectID идентифицирует клиента в аудите; у stdio-сервера клиент один.
const subjectID = "mcp-client"

// BuildServer собирает MCP-сервер: инструменты из реестра, prompt-каталог
// и ресурсы. Вызовы инструментов идут через общий сервисный пайплайн.
func BuildServer(name, version string, svc *common.Service) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	for _, binding := range svc.Registry.Tools() {
		spec := binding.Spec
		s.AddTool(toolFromSpec(spec), toolHandler(svc, spec.Name))
	}

	for _, p := range prompts.Catalog() {
		p := p
		s.AddPrompt(
			mcp.NewPrompt(p.Name, mcp.WithPromptDescription(p.Description)),
			func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return mcp.NewGetPromptResult(p.Description, []mcp.PromptMessage{
					mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(p.Text)),
				}), nil
			},
		)
	}

	for _, r := range resources.All() {
		r := r
		s.AddResource(
			mcp.NewResource(r.URI, r.Name,
				mcp.WithResourceDescription(r.Description),
				mcp.WithMIMEType(r.MIMEType),
			),
			func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				text, err := r.Read(ctx)
				if err != nil {
					return nil, err
				}
				return []mcp.ResourceContents{
					mcp.TextResourceContents{URI: r.URI, MIMEType: r.MIMEType, Text: text},
				}, nil
			},
		)
	}

	return s
}

func toolFromSpec(spec core.CommandSpec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(spec.Description)}
	for _, p := range spec.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(spec.Name, opts...)
}

func paramOption(p core.ParamSpec) mcp.ToolOption {
	switch p.Type {
	case "number", "integer":
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if def, ok := numericDefault(p.Default); ok {
			propOpts = append(propOpts, mcp.DefaultNumber(def))
		}
		return mcp.WithNumber(p.Name, propOpts...)
	case "boolean":
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if def, ok := p.Default.(bool); ok {
			propOpts = append(propOpts, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(p.Name, propOpts...)
	default:
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if def, ok := p.Default.(string); ok {
			propOpts = append(propOpts, mcp.DefaultString(def))
		}
		return mcp.WithString(p.Name, propOpts...)
	}
}

func numericDefault(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func toolHandler(svc *common.Service, tool string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := svc.ExecuteTool(ctx, subjectID, tool, core.Args(req.GetArguments()))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return resultFromResponse(resp)
	}
}

// resultFromResponse сериализует данные ответа для клиента. Ответы со
// статусом error без ошибки исполнения (исход run_command) тоже уходят
// как обычный результат: клиент разбирает поля самого результата.
func resultFromResponse(resp core.Response) (*mcp.CallToolResult, error) {
	if resp.Data == nil {
		return mcp.NewToolResultText(""), nil
	}
	if s, ok := resp.Data.(string); ok {
		return mcp.NewToolResultText(s), nil
	}
	data, err := json.Marshal(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
