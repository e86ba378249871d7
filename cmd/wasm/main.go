//go:build js && wasm

// ABOUTME: Browser bridge exposing the carenotes controller to JavaScript
// ABOUTME: Data lives in IndexedDB; every call resolves to a JSON string
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"syscall/js"
	"time"

	"github.com/hack-pad/hackpadfs/indexeddb"

	"github.com/harper/carenotes/internal/core"
	"github.com/harper/carenotes/internal/intake"
	"github.com/harper/carenotes/internal/kv"
	"github.com/harper/carenotes/internal/logging"
	"github.com/harper/carenotes/internal/models"
	"github.com/harper/carenotes/internal/storage"
)

// Version info
const Version = "0.1.0"

const (
	databaseName = "carenotes"
	namespace    = "carenotes-data"
	replyDelay   = 1500 * time.Millisecond
)

var (
	controller *core.Controller
	chat       *core.Chat
	onMessage  js.Value
)

func main() {
	logger := logging.New("info", os.Stderr)

	fs, err := indexeddb.NewFS(context.Background(), databaseName, indexeddb.Options{})
	if err != nil {
		println("[Carenotes] FATAL: failed to open IndexedDB:", err.Error())
		return
	}

	store := storage.New(kv.NewFSBackend(fs, ""), "indexeddb", namespace, logger)
	controller = core.NewController(store, core.WithLogger(logger))
	if err := controller.Load(); err != nil {
		println("[Carenotes] FATAL: failed to load state:", err.Error())
		return
	}

	responder := core.NewResponder(controller, nil, replyDelay, logger)
	responder.OnReply(func(m models.ChatMessage) {
		if onMessage.Type() == js.TypeFunction {
			onMessage.Invoke(mustJSON(m))
		}
	})
	chat = core.NewChat(controller, responder)

	js.Global().Set("Carenotes", js.ValueOf(map[string]interface{}{
		"version":          js.FuncOf(getVersion),
		"state":            async(getState),
		"profiles":         async(listProfiles),
		"createProfile":    async(createProfile),
		"selectProfile":    async(selectProfile),
		"addDiaryEntry":    async(addDiaryEntry),
		"searchDiary":      async(searchDiary),
		"stats":            async(getStats),
		"sendMessage":      async(sendMessage),
		"cancelReply":      async(cancelReply),
		"onMessage":        js.FuncOf(setOnMessage),
		"toggleTheme":      async(toggleTheme),
		"navigate":         async(navigate),
		"back":             async(back),
		"modules":          js.FuncOf(listModules),
		"suggestions":      js.FuncOf(assistantSuggestions),
		"labelSuggestions": js.FuncOf(labelSuggestions),
	}))
	println("[Carenotes] WASM Ready v" + Version)

	select {}
}

// async wraps fn in a JS Promise that resolves on a goroutine.
// IndexedDB calls block, so they must not run on the event loop.
func async(fn func(args []js.Value) (any, error)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		handler := js.FuncOf(func(this js.Value, p []js.Value) interface{} {
			resolve := p[0]
			go func() {
				result, err := fn(args)
				if err != nil {
					resolve.Invoke(errorResult(err))
					return
				}
				resolve.Invoke(mustJSON(result))
			}()
			return nil
		})
		defer handler.Release()
		return js.Global().Get("Promise").New(handler)
	})
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

func getState(args []js.Value) (any, error) {
	return controller.State(), nil
}

func listProfiles(args []js.Value) (any, error) {
	return controller.Profiles(), nil
}

type profileRequest struct {
	Name               string                     `json:"name"`
	Age                int                        `json:"age"`
	DateOfBirth        string                     `json:"dateOfBirth"`
	Gender             string                     `json:"gender"`
	Diagnoses          []string                   `json:"diagnoses"`
	Sensitivities      []string                   `json:"sensitivities"`
	Preferences        []string                   `json:"preferences"`
	SensoryProfile     *models.SensoryProfile     `json:"sensoryProfile"`
	CommunicationLevel *models.CommunicationLevel `json:"communicationLevel"`
}

// createProfile: [profileJSON string]
func createProfile(args []js.Value) (any, error) {
	if len(args) < 1 {
		return nil, errors.New("requires 1 arg: profileJSON (string)")
	}
	var req profileRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return nil, errors.New("invalid profile json: " + err.Error())
	}

	form := intake.NewForm()
	age := ""
	if req.Age != 0 {
		age = strconv.Itoa(req.Age)
	}
	for field, value := range map[string]string{
		intake.FieldName:        req.Name,
		intake.FieldAge:         age,
		intake.FieldDateOfBirth: req.DateOfBirth,
		intake.FieldGender:      req.Gender,
	} {
		if err := form.Set(field, value); err != nil {
			return nil, err
		}
	}
	for list, labels := range map[string][]string{
		intake.ListDiagnoses:     req.Diagnoses,
		intake.ListSensitivities: req.Sensitivities,
		intake.ListPreferences:   req.Preferences,
	} {
		for _, label := range labels {
			if _, err := form.AddLabel(list, label); err != nil {
				return nil, err
			}
		}
	}

	in, err := form.Submit()
	if err != nil {
		var fields intake.FieldErrors
		if errors.As(err, &fields) {
			return map[string]any{"error": "invalid profile", "fields": fields}, nil
		}
		return nil, err
	}
	in.SensoryProfile = req.SensoryProfile
	in.CommunicationLevel = req.CommunicationLevel

	return controller.CreateProfile(in), nil
}

// selectProfile: [profileID string]
func selectProfile(args []js.Value) (any, error) {
	if len(args) < 1 {
		return nil, errors.New("requires 1 arg: profileID (string)")
	}
	if err := controller.SelectProfile(args[0].String()); err != nil {
		return nil, err
	}
	return controller.ActiveProfile(), nil
}

type diaryRequest struct {
	ChildID  string   `json:"childId"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Mood     int      `json:"mood"`
	Tags     []string `json:"tags"`
}

// addDiaryEntry: [entryJSON string]; childId defaults to the active profile
func addDiaryEntry(args []js.Value) (any, error) {
	if len(args) < 1 {
		return nil, errors.New("requires 1 arg: entryJSON (string)")
	}
	var req diaryRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return nil, errors.New("invalid entry json: " + err.Error())
	}

	if req.ChildID == "" {
		p := controller.ActiveProfile()
		if p == nil {
			return nil, errors.New("no active profile")
		}
		req.ChildID = p.ID
	}

	var category models.Category
	if req.Category != "" {
		c, err := models.ParseCategory(req.Category)
		if err != nil {
			return nil, err
		}
		category = c
	}

	return controller.AddDiaryEntry(models.DiaryEntryInput{
		ChildID:  req.ChildID,
		Date:     req.Date,
		Category: category,
		Title:    req.Title,
		Content:  req.Content,
		Mood:     models.Mood(req.Mood),
		Tags:     req.Tags,
	})
}

// searchDiary: [query string, category string]
func searchDiary(args []js.Value) (any, error) {
	query, category := "", ""
	if len(args) > 0 {
		query = args[0].String()
	}
	if len(args) > 1 {
		category = args[1].String()
	}
	return controller.SearchDiary(query, category), nil
}

func getStats(args []js.Value) (any, error) {
	return controller.Stats(), nil
}

// sendMessage: [content string]
// Resolves with the stored user message; the reply arrives through onMessage.
func sendMessage(args []js.Value) (any, error) {
	if len(args) < 1 {
		return nil, errors.New("requires 1 arg: content (string)")
	}
	return chat.Send(context.Background(), args[0].String())
}

func cancelReply(args []js.Value) (any, error) {
	chat.Responder().Cancel()
	return map[string]bool{"cancelled": true}, nil
}

// onMessage: [callback function(messageJSON string)]
func setOnMessage(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return errorResult(errors.New("requires 1 arg: callback (function)"))
	}
	onMessage = args[0]
	return successResult("registered")
}

func toggleTheme(args []js.Value) (any, error) {
	return map[string]bool{"isDarkMode": controller.ToggleTheme()}, nil
}

type pageResult struct {
	Page      core.Page `json:"page"`
	Title     string    `json:"title"`
	CanGoBack bool      `json:"canGoBack"`
}

func currentPage() pageResult {
	p := controller.Page()
	return pageResult{Page: p, Title: p.Title(), CanGoBack: controller.CanGoBack()}
}

// navigate: [page string]
func navigate(args []js.Value) (any, error) {
	if len(args) < 1 {
		return nil, errors.New("requires 1 arg: page (string)")
	}
	controller.Navigate(core.Page(args[0].String()))
	return currentPage(), nil
}

func back(args []js.Value) (any, error) {
	controller.Back()
	return currentPage(), nil
}

func listModules(this js.Value, args []js.Value) interface{} {
	return mustJSON(core.Modules())
}

func assistantSuggestions(this js.Value, args []js.Value) interface{} {
	return mustJSON(core.AssistantSuggestions())
}

// labelSuggestions: [list string]
func labelSuggestions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult(errors.New("requires 1 arg: list (string)"))
	}
	return mustJSON(intake.Suggestions(args[0].String()))
}

func mustJSON(v any) string {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	return string(jsonBytes)
}

// Helper: Create error result
func errorResult(err error) string {
	jsonBytes, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(jsonBytes)
}

// Helper: Create success result
func successResult(msg string) string {
	jsonBytes, _ := json.Marshal(map[string]string{"success": msg})
	return string(jsonBytes)
}
