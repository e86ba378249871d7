// ABOUTME: MCP tool definitions and registration for the carenotes server
// ABOUTME: Exposes profiles, diary, chat, theme, navigation, and modules as MCP tools
package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/carenotes/internal/core"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, controller *core.Controller, chat *core.Chat, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = log.Default()
	}
	handlers := &Handlers{
		controller: controller,
		chat:       chat,
		logger:     logger.With("component", "mcp"),
	}

	server.AddTool(mcp.Tool{
		Name:        "get_state",
		Description: "Get the full application state: current page, profiles, active profile, the active profile's diary, chat history, and theme.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetState)

	server.AddTool(mcp.Tool{
		Name:        "list_profiles",
		Description: "List all child profiles in creation order, marking the active one.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListProfiles)

	server.AddTool(mcp.Tool{
		Name:        "create_profile",
		Description: "Create a child profile and make it active. Name, age (1-18) and date of birth are required.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Child's name",
				},
				"age": map[string]interface{}{
					"type":        "number",
					"description": "Age in years, 1 to 18",
				},
				"date_of_birth": map[string]interface{}{
					"type":        "string",
					"description": "Date of birth as YYYY-MM-DD",
				},
				"gender": map[string]interface{}{
					"type":        "string",
					"description": "Gender",
					"enum":        []string{"masculino", "feminino", "outro", "nao_informado"},
				},
				"diagnoses": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Diagnoses (e.g., 'Transtorno do Espectro Autista (TEA)')",
				},
				"sensitivities": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Sensitivities (e.g., 'Sensibilidade a ruídos altos')",
				},
				"preferences": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Preferences (e.g., 'Música calma')",
				},
			},
			Required: []string{"name", "age", "date_of_birth"},
		},
	}, handlers.CreateProfile)

	server.AddTool(mcp.Tool{
		Name:        "select_profile",
		Description: "Make a profile active and open its dashboard.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"profile_id": map[string]interface{}{
					"type":        "string",
					"description": "Profile ID to select",
				},
			},
			Required: []string{"profile_id"},
		},
	}, handlers.SelectProfile)

	server.AddTool(mcp.Tool{
		Name:        "add_diary_entry",
		Description: "Add a diary entry for a child. Defaults: the active profile, today's date, category 'cotidiano', mood 3.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Entry title",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "What happened",
				},
				"child_id": map[string]interface{}{
					"type":        "string",
					"description": "Profile ID (default: the active profile)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category",
					"enum":        []string{"escola", "terapia", "medico", "cotidiano"},
				},
				"mood": map[string]interface{}{
					"type":        "number",
					"description": "Mood from 1 (very hard) to 5 (excellent)",
				},
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Date as YYYY-MM-DD (default: today)",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Free-form tags",
				},
			},
			Required: []string{"title"},
		},
	}, handlers.AddDiaryEntry)

	server.AddTool(mcp.Tool{
		Name:        "list_diary_entries",
		Description: "List the active profile's diary entries, newest first, with optional text search and category filter, plus summary statistics.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Case-insensitive text to find in title or content",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category filter, or 'all'",
				},
			},
		},
	}, handlers.ListDiaryEntries)

	server.AddTool(mcp.Tool{
		Name:        "send_message",
		Description: "Send a message to the virtual assistant and wait for its reply.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Message text",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.SendMessage)

	server.AddTool(mcp.Tool{
		Name:        "get_chat",
		Description: "Get the assistant conversation history in order.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Only return the last N messages (default: all)",
				},
			},
		},
	}, handlers.GetChat)

	server.AddTool(mcp.Tool{
		Name:        "toggle_theme",
		Description: "Switch between light and dark mode.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ToggleTheme)

	server.AddTool(mcp.Tool{
		Name:        "navigate",
		Description: "Open a page: profiles, dashboard, diario, assistente, or any module name.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "string",
					"description": "Page name",
				},
			},
			Required: []string{"page"},
		},
	}, handlers.Navigate)

	server.AddTool(mcp.Tool{
		Name:        "list_modules",
		Description: "List the dashboard modules in display order, marking which have a view, plus the assistant's quick prompts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListModules)

	server.AddTool(mcp.Tool{
		Name:        "back",
		Description: "Go back: from a module to the dashboard, or from the dashboard to the profile picker when there are several profiles.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.Back)

	return handlers
}
