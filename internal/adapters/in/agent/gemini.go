// Package agent drives the tool registry through Gemini function calling.
// It is an out-of-core adapter: the domain and the command/query handlers
// never import it, and everything it knows about the operations comes from
// the registry's declared schemas.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/pkg/errs"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const systemPrompt = `You are PizzaBot, a friendly and efficient pizza ordering assistant.

You must:
- Help the user explore the menu, answer questions, and recommend items.
- Take an order end-to-end: delivery/pickup, address if delivery, items, quantities, sizes, extras, notes.
- Confirm the order summary and total before placing.
- Provide order status updates when asked.

Tooling rules:
- Use tools to read menu, create/update orders, and fetch status.
- Never invent prices; always use the menu/tool results.
- Ask short clarifying questions when required (size/qty/address).

Status flow suggestion:
- draft -> placed -> preparing -> baking -> out_for_delivery -> delivered (or ready_for_pickup)`

// maxToolRounds bounds a single turn: the model gets this many tool calls
// before the turn is aborted, so a confused model cannot loop forever.
const maxToolRounds = 12

// Assistant owns the Gemini client and the per-conversation chat sessions.
// Sessions are in-memory only; a restart forgets all conversations.
type Assistant struct {
	client   *genai.Client
	registry *tools.Registry
	model    string
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*genai.ChatSession
}

// NewAssistant creates the Gemini-backed assistant over the given registry.
func NewAssistant(
	ctx context.Context, apiKey, model string, registry *tools.Registry, logger *slog.Logger,
) (*Assistant, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if model == "" {
		return nil, errs.NewValueIsRequiredError("model")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Assistant{
		client:   client,
		registry: registry,
		model:    model,
		logger:   logger,
		sessions: make(map[string]*genai.ChatSession),
	}, nil
}

// Close releases the underlying Gemini client.
func (a *Assistant) Close() error {
	return a.client.Close()
}

// StartSession opens a fresh conversation and returns its id.
func (a *Assistant) StartSession() string {
	model := a.client.GenerativeModel(a.model)
	model.Tools = []*genai.Tool{{FunctionDeclarations: a.declarations()}}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	sessionID := uuid.NewString()

	a.mu.Lock()
	a.sessions[sessionID] = model.StartChat()
	a.mu.Unlock()

	return sessionID
}

// EndSession drops a conversation. Unknown ids are ignored.
func (a *Assistant) EndSession(sessionID string) {
	a.mu.Lock()
	delete(a.sessions, sessionID)
	a.mu.Unlock()
}

// SendMessage runs one user turn: the message goes to the model, every
// function call the model makes is dispatched through the registry with the
// result fed back, and the model's final text is returned.
//
// Tool failures are not turn failures: the error text goes back to the model
// so it can correct itself or apologize to the user.
func (a *Assistant) SendMessage(ctx context.Context, sessionID, userMessage string) (string, error) {
	a.mu.Lock()
	session, found := a.sessions[sessionID]
	a.mu.Unlock()
	if !found {
		return "", errs.NewObjectNotFoundError("session", sessionID)
	}

	res, err := session.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("error sending message: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		call, text, extractErr := extractPart(res)
		if extractErr != nil {
			return "", extractErr
		}
		if call == nil {
			return text, nil
		}

		a.logger.Info("dispatching tool call",
			"session", sessionID, "tool", call.Name)

		response := a.dispatch(ctx, call)
		res, err = session.SendMessage(ctx, genai.FunctionResponse{
			Name:     call.Name,
			Response: response,
		})
		if err != nil {
			return "", fmt.Errorf("tool response error: %w", err)
		}
	}

	return "", fmt.Errorf("turn aborted after %d tool rounds", maxToolRounds)
}

// dispatch runs one function call against the registry and renders the
// result (or the error) as the response map Gemini expects.
func (a *Assistant) dispatch(ctx context.Context, call *genai.FunctionCall) map[string]any {
	result, err := a.registry.Dispatch(ctx, call.Name, tools.Args(call.Args))
	if err != nil {
		a.logger.Warn("tool call failed",
			"tool", call.Name, "error", err)
		return map[string]any{"error": err.Error()}
	}

	payload, err := toResponseMap(result)
	if err != nil {
		a.logger.Error("tool result not serializable",
			"tool", call.Name, "error", err)
		return map[string]any{"error": "internal error rendering tool result"}
	}

	return payload
}

// extractPart picks the function call or the text out of a model response.
func extractPart(res *genai.GenerateContentResponse) (*genai.FunctionCall, string, error) {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil ||
		len(res.Candidates[0].Content.Parts) == 0 {
		return nil, "", nil
	}

	var text string
	for _, part := range res.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.FunctionCall:
			return &v, "", nil
		case genai.Text:
			text += string(v)
		}
	}

	return nil, text, nil
}

// declarations translates the registry schemas into Gemini function
// declarations.
func (a *Assistant) declarations() []*genai.FunctionDeclaration {
	registered := a.registry.Tools()
	decls := make([]*genai.FunctionDeclaration, 0, len(registered))

	for _, tool := range registered {
		decl := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}

		if len(tool.Parameters) > 0 {
			properties := make(map[string]*genai.Schema, len(tool.Parameters))
			var required []string

			for _, p := range tool.Parameters {
				properties[p.Name] = &genai.Schema{
					Type:        schemaType(p.Type),
					Description: p.Description,
					Enum:        p.Enum,
				}
				if p.Required {
					required = append(required, p.Name)
				}
			}

			decl.Parameters = &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   required,
			}
		}

		decls = append(decls, decl)
	}

	return decls
}

func schemaType(t string) genai.Type {
	switch t {
	case tools.TypeInteger:
		return genai.TypeInteger
	default:
		return genai.TypeString
	}
}

// toResponseMap renders a tool result as the map Gemini's FunctionResponse
// wants, going through JSON so the declared tags shape the payload.
func toResponseMap(result any) (map[string]any, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err = json.Unmarshal(raw, &payload); err != nil {
		// Tool results that are not JSON objects get wrapped.
		var generic any
		if uerr := json.Unmarshal(raw, &generic); uerr != nil {
			return nil, uerr
		}
		return map[string]any{"result": generic}, nil
	}

	return payload, nil
}
