package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"searchscout/internal/clients/ollama"
	"searchscout/internal/common/logger"
)

const intentSchema = `{
	"type": "object",
	"properties": {
		"location":        {"type": ["string", "null"]},
		"cuisine":         {"type": ["string", "null"]},
		"category":        {"type": ["string", "null"]},
		"budget":          {"type": ["string", "null"]},
		"party_size":      {"type": ["integer", "string", "null"]},
		"time_preference": {"type": ["string", "null"]}
	},
	"additionalProperties": true
}`

// Interpreter is the model-backed fallback for restaurant queries.
// Unlike the book variant, every failure path yields an all-null intent;
// there is no literal-title equivalent to fall back to.
type Interpreter struct {
	client *ollama.Client
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewInterpreter(client *ollama.Client, log logger.Logger) (*Interpreter, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(intentSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile intent schema: %w", err)
	}
	return &Interpreter{client: client, schema: schema, logger: log}, nil
}

func (i *Interpreter) Interpret(ctx context.Context, query string) Intent {
	raw, err := i.client.Generate(ctx, buildPrompt(query))
	if err != nil {
		i.logger.Warn("Model interpretation failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return Intent{}
	}

	parsed, ok := i.parseModelOutput(raw)
	if !ok {
		return Intent{}
	}
	return parsed
}

func buildPrompt(query string) string {
	return fmt.Sprintf(`あなたは飲食店検索の専門アシスタントです。ユーザーの自然言語クエリから検索条件を抽出してください。

ユーザークエリ: "%s"

以下のJSON形式で回答してください：
{
    "location": "エリア名（推測しないでください）",
    "cuisine": "料理ジャンル（推測しないでください）",
    "category": "利用シーン（デート、接待等）",
    "budget": "low / medium / high のいずれか",
    "party_size": null,
    "time_preference": "breakfast / lunch / dinner のいずれか"
}

重要な注意点：
- 確実でない情報は推測せずnullを返してください
- クエリに現れていない条件を作らないでください`, query)
}

func (i *Interpreter) parseModelOutput(raw string) (Intent, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		i.logger.Warn("No JSON object in model output", nil)
		return Intent{}, false
	}
	jsonStr := raw[start : end+1]

	result, err := i.schema.Validate(gojsonschema.NewStringLoader(jsonStr))
	if err != nil || !result.Valid() {
		i.logger.Warn("Model output failed schema validation", map[string]interface{}{
			"output": jsonStr,
		})
		return Intent{}, false
	}

	var fields struct {
		Location       *string     `json:"location"`
		Cuisine        *string     `json:"cuisine"`
		Category       *string     `json:"category"`
		Budget         *string     `json:"budget"`
		PartySize      interface{} `json:"party_size"`
		TimePreference *string     `json:"time_preference"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return Intent{}, false
	}

	return Intent{
		Location:       denull(fields.Location),
		Cuisine:        denull(fields.Cuisine),
		Category:       denull(fields.Category),
		Budget:         denull(fields.Budget),
		PartySize:      parsePartySize(fields.PartySize),
		TimePreference: denull(fields.TimePreference),
	}, true
}

func denull(v *string) string {
	if v == nil || *v == "null" {
		return ""
	}
	return *v
}

func parsePartySize(v interface{}) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case string:
		var size int
		if _, err := fmt.Sscanf(n, "%d", &size); err == nil && size > 0 {
			return size
		}
	}
	return 0
}
