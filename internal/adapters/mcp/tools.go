package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"indexdeck/internal/domain"
	"indexdeck/internal/ports"
)

// RegisterTools adds the read-only indexer tools to the MCP server. The
// bridge never mutates directory configuration; that stays in the
// interactive surfaces.
func RegisterTools(s *server.MCPServer, svc ports.Indexer) {
	s.AddTool(statusTool(), statusHandler(svc))
	s.AddTool(searchTool(), searchHandler(svc))
	s.AddTool(browseTool(), browseHandler(svc))
	s.AddTool(listDirectoriesTool(), listDirectoriesHandler(svc))
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report the indexing service's current status: file counts, entity/chunk totals, and whether indexing is in progress."),
	)
}

func statusHandler(svc ports.Indexer) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snapshot, err := svc.Status(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "state: %s\n", snapshot.ConnState())
		fmt.Fprintf(&sb, "files: %d/%d indexed (%d pending)\n", snapshot.IndexedFiles, snapshot.TotalFiles, snapshot.PendingFiles)
		fmt.Fprintf(&sb, "entities: %d, relationships: %d, chunks: %d\n", snapshot.EntitiesCount, snapshot.RelationshipsCount, snapshot.ChunksCount)
		if snapshot.IsIndexing && snapshot.CurrentFile != "" {
			fmt.Fprintf(&sb, "currently indexing: %s\n", snapshot.CurrentFile)
		}
		if snapshot.LastIndexed != "" {
			fmt.Fprintf(&sb, "last indexed: %s\n", snapshot.LastIndexed)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search_code ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_code",
		mcp.WithDescription("Semantic search over the indexed codebase. Returns ranked code snippets with file locations."),
		mcp.WithString("query",
			mcp.Description("Natural-language or code query"),
			mcp.Required(),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results (default 10)"),
		),
	)
}

func searchHandler(svc ports.Indexer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := strings.TrimSpace(req.GetString("query", ""))
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		maxResults := req.GetInt("max_results", 10)

		results, err := svc.Search(ctx, query, maxResults)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			entity := r.Entity
			if entity == "" {
				entity = "(file chunk)"
			}
			fmt.Fprintf(&sb, "%s  %s  %s:%s\n%s\n\n",
				entity, domain.FormatSimilarity(r.Similarity), r.File, r.Lines, r.Content)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- browse ---

func browseTool() mcp.Tool {
	return mcp.NewTool("browse",
		mcp.WithDescription("List the subdirectories of a path on the indexing server's filesystem."),
		mcp.WithString("path",
			mcp.Description("Absolute path to list"),
			mcp.Required(),
		),
	)
}

func browseHandler(svc ports.Indexer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		listing, err := svc.Browse(ctx, path)
		if err != nil {
			return toolError(err)
		}
		dirs := domain.DirectoriesOnly(listing.Items)
		if len(dirs) == 0 {
			return mcp.NewToolResultText("No subdirectories."), nil
		}
		var sb strings.Builder
		for _, d := range dirs {
			if d.CppFiles > 0 {
				fmt.Fprintf(&sb, "%s  (%d C++ files)\n", d.Path, d.CppFiles)
			} else {
				fmt.Fprintf(&sb, "%s\n", d.Path)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_directories ---

func listDirectoriesTool() mcp.Tool {
	return mcp.NewTool("list_directories",
		mcp.WithDescription("List the directories the indexing service is configured to monitor."),
	)
}

func listDirectoriesHandler(svc ports.Indexer) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		paths, _, err := svc.Directories(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(paths) == 0 {
			return mcp.NewToolResultText("No directories are monitored."), nil
		}
		return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
