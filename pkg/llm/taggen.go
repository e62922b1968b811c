package llm

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"DevHub/pkg/log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

var client openai.Client

func init() {
	client = openai.NewClient(
		option.WithAPIKey(os.Getenv("DEVHUB_LLM_KEY")),
		option.WithBaseURL("https://dashscope.aliyuncs.com/compatible-mode/v1"),
	)
}

// GenSnippetTags suggests tags for a code snippet. Best effort: any failure
// returns an empty slice and the snippet is saved untagged.
func GenSnippetTags(ctx context.Context, title, language, code string) []string {
	if len(code) > 4000 {
		code = code[:4000]
	}
	prompt := fmt.Sprintf(
		"You label code snippets for a developer community. Output exactly 5 topic tags, "+
			"each starting with #, separated by spaces, nothing else.\n\nTitle: %s\nLanguage: %s\n\n%s",
		title, language, code,
	)
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(prompt),
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: "qwen3-coder-plus",
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}
	startTime := time.Now()
	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen tags", zap.Error(err))
		return make([]string, 0)
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("gen tags", zap.String("tags", content), zap.Duration("gen time", time.Since(startTime)))
	return ParseTags(content)
}

func ParseTags(input string) []string {
	re := regexp.MustCompile(`#[^\s#]+`)
	matches := re.FindAllString(input, -1)

	var tags []string
	for _, tag := range matches {
		cleanTag := strings.TrimPrefix(tag, "#")
		tags = append(tags, cleanTag)
	}
	return tags
}
