// ABOUTME: MCP tool handler implementations for the carenotes server
// ABOUTME: User errors come back as tool errors; results are JSON text
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/carenotes/internal/core"
	"github.com/harper/carenotes/internal/intake"
	"github.com/harper/carenotes/internal/models"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	controller *core.Controller
	chat       *core.Chat
	logger     *log.Logger
}

// GetState handles the get_state tool
func (h *Handlers) GetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.controller.State())
}

// ListProfiles handles the list_profiles tool
func (h *Handlers) ListProfiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	activeID := ""
	if p := h.controller.ActiveProfile(); p != nil {
		activeID = p.ID
	}
	return jsonResult(map[string]interface{}{
		"profiles":          h.controller.Profiles(),
		"active_profile_id": activeID,
	})
}

// CreateProfile handles the create_profile tool
func (h *Handlers) CreateProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	form := intake.NewForm()
	fields := map[string]string{
		intake.FieldName:        request.GetString("name", ""),
		intake.FieldAge:         strconv.Itoa(request.GetInt("age", 0)),
		intake.FieldDateOfBirth: request.GetString("date_of_birth", ""),
		intake.FieldGender:      request.GetString("gender", ""),
	}
	for field, value := range fields {
		if err := form.Set(field, value); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	lists := map[string]string{
		intake.ListDiagnoses:     "diagnoses",
		intake.ListSensitivities: "sensitivities",
		intake.ListPreferences:   "preferences",
	}
	for list, arg := range lists {
		for _, label := range request.GetStringSlice(arg, nil) {
			if _, err := form.AddLabel(list, label); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
	}

	in, err := form.Submit()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid profile: %v", err)), nil
	}

	profile := h.controller.CreateProfile(in)
	h.logger.Info("profile created", "id", profile.ID)
	return jsonResult(map[string]interface{}{
		"success": true,
		"profile": profile,
	})
}

// SelectProfile handles the select_profile tool
func (h *Handlers) SelectProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("profile_id")
	if err != nil {
		return mcp.NewToolResultError("profile_id argument is required and must be a string"), nil
	}
	if err := h.controller.SelectProfile(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]interface{}{
		"success": true,
		"profile": h.controller.ActiveProfile(),
		"page":    h.controller.Page(),
	})
}

// AddDiaryEntry handles the add_diary_entry tool
func (h *Handlers) AddDiaryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}

	childID := request.GetString("child_id", "")
	if childID == "" {
		active := h.controller.ActiveProfile()
		if active == nil {
			return mcp.NewToolResultError("no active profile; pass child_id or select a profile first"), nil
		}
		childID = active.ID
	}

	var category models.Category
	if raw := request.GetString("category", ""); raw != "" {
		category, err = models.ParseCategory(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	entry, err := h.controller.AddDiaryEntry(models.DiaryEntryInput{
		ChildID:  childID,
		Title:    title,
		Content:  request.GetString("content", ""),
		Category: category,
		Mood:     models.Mood(request.GetInt("mood", 0)),
		Date:     request.GetString("date", ""),
		Tags:     request.GetStringSlice("tags", nil),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add entry: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"entry":   entry,
	})
}

// ListDiaryEntries handles the list_diary_entries tool
func (h *Handlers) ListDiaryEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.controller.ActiveProfile() == nil {
		return mcp.NewToolResultError("no active profile; select a profile first"), nil
	}

	category := request.GetString("category", "")
	if category != "" && category != "all" {
		c, err := models.ParseCategory(category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		category = string(c)
	}

	return jsonResult(map[string]interface{}{
		"entries": h.controller.SearchDiary(request.GetString("query", ""), category),
		"stats":   h.controller.Stats(),
	})
}

// SendMessage handles the send_message tool
func (h *Handlers) SendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	appended, err := h.chat.Exchange(ctx, message)
	if err != nil {
		if errors.Is(err, core.ErrEmptyMessage) {
			return mcp.NewToolResultError("message cannot be empty"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to send message: %v", err)), nil
	}

	response := map[string]interface{}{
		"messages": appended,
	}
	if len(appended) > 1 {
		response["reply"] = appended[len(appended)-1].Content
	}
	return jsonResult(response)
}

// GetChat handles the get_chat tool
func (h *Handlers) GetChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messages := h.controller.ChatMessages()
	if limit := request.GetInt("limit", 0); limit > 0 && limit < len(messages) {
		messages = messages[len(messages)-limit:]
	}
	return jsonResult(map[string]interface{}{
		"messages": messages,
	})
}

// ToggleTheme handles the toggle_theme tool
func (h *Handlers) ToggleTheme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"isDarkMode": h.controller.ToggleTheme(),
	})
}

// Navigate handles the navigate tool
func (h *Handlers) Navigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := request.RequireString("page")
	if err != nil || page == "" {
		return mcp.NewToolResultError("page argument is required and must be a string"), nil
	}
	h.controller.Navigate(core.Page(page))
	return h.pageResult()
}

// Back handles the back tool
func (h *Handlers) Back(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.controller.Back()
	return h.pageResult()
}

// ListModules handles the list_modules tool
func (h *Handlers) ListModules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"modules":     core.Modules(),
		"suggestions": core.AssistantSuggestions(),
	})
}

func (h *Handlers) pageResult() (*mcp.CallToolResult, error) {
	page := h.controller.Page()
	return jsonResult(map[string]interface{}{
		"page":        page,
		"title":       page.Title(),
		"can_go_back": h.controller.CanGoBack(),
	})
}

// Shutdown drops any pending assistant reply and waits for delivery goroutines
func (h *Handlers) Shutdown() {
	h.logger.Debug("waiting for pending assistant replies")
	h.chat.Responder().Close()
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
