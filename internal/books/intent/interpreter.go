package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"

	"searchscout/internal/clients/ollama"
	"searchscout/internal/common/logger"
)

// intentSchema constrains the model output. Fields may be string or null;
// anything else is rejected and the raw query is used as a literal title.
const intentSchema = `{
	"type": "object",
	"properties": {
		"title":    {"type": ["string", "null"]},
		"author":   {"type": ["string", "null"]},
		"isbn":     {"type": ["string", "null"]},
		"category": {"type": ["string", "null"]}
	},
	"additionalProperties": true
}`

// Interpreter is the model-backed fallback used when rule extraction
// yields an empty intent.
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
	return &Interpreter{
		client: client,
		schema: schema,
		logger: log,
	}, nil
}

// Interpret asks the model for a structured intent. Every failure path
// degrades to treating the raw query as a literal title; the request is
// never failed from here.
func (i *Interpreter) Interpret(ctx context.Context, query string) Intent {
	prompt := buildPrompt(query)

	raw, err := i.client.Generate(ctx, prompt)
	if err != nil {
		i.logger.Warn("Model interpretation failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return Intent{Title: query}
	}

	parsed, ok := i.parseModelOutput(raw)
	if !ok {
		if utf8.RuneCountInString(query) > 2 {
			return Intent{Title: query}
		}
		return Intent{}
	}

	i.logger.Info("Model interpretation succeeded", map[string]interface{}{
		"query":  query,
		"title":  parsed.Title,
		"author": parsed.Author,
	})
	return parsed
}

func buildPrompt(query string) string {
	return fmt.Sprintf(`あなたは書籍検索の専門アシスタントです。ユーザーの自然言語クエリから書籍情報を抽出してください。

ユーザークエリ: "%s"

以下のJSON形式で回答してください：
{
    "title": "書籍タイトル（推測しないでください）",
    "author": "著者名（推測しないでください）",
    "isbn": null,
    "category": "カテゴリ（programming, tech, novel等）"
}

重要な注意点：
- 確実でない情報は推測せずnullを返してください
- 著者名は実在する人物のみ答えてください
- プログラミング言語や技術用語の場合はcategoryを設定してください
- 日本語の書籍を優先してください`, query)
}

// parseModelOutput locates a JSON object between the first '{' and the
// last '}' so that leading or trailing model commentary is tolerated.
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
		Title    *string `json:"title"`
		Author   *string `json:"author"`
		ISBN     *string `json:"isbn"`
		Category *string `json:"category"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return Intent{}, false
	}

	return Intent{
		Title:    denull(fields.Title),
		Author:   denull(fields.Author),
		ISBN:     denull(fields.ISBN),
		Category: denull(fields.Category),
	}, true
}

// denull treats both JSON null and the literal string "null" as absent.
func denull(v *string) string {
	if v == nil || *v == "null" {
		return ""
	}
	return *v
}
