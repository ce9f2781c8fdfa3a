package prompt

import (
	"strings"
	"testing"

	"github.com/BalaAmavasai/databricks-agentic-ai/llm"
)

func TestBuildLeadsWithSystemMessage(t *testing.T) {
	messages := Build("You answer from context only.", "Some context.", "A question?", nil)

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want system", messages[0].Role)
	}
	if messages[0].Content != "You answer from context only." {
		t.Errorf("persona not carried: %q", messages[0].Content)
	}
	if messages[1].Role != llm.RoleUser {
		t.Errorf("last message role = %q, want user", messages[1].Role)
	}
}

func TestBuildUserMessageTemplate(t *testing.T) {
	messages := Build("persona", "Planet Xylar is a gas giant.", "Does Xylar have moons?", nil)

	want := "Context from the document:\n" +
		"---\n" +
		"Planet Xylar is a gas giant.\n" +
		"---\n" +
		"User Question: Does Xylar have moons?"
	if got := messages[1].Content; got != want {
		t.Errorf("user message:\n got %q\nwant %q", got, want)
	}
}

func TestBuildEmptyContextPlaceholder(t *testing.T) {
	messages := Build("persona", "", "What is the capital of France?", nil)

	content := messages[1].Content
	if !strings.Contains(content, EmptyContextPlaceholder) {
		t.Errorf("placeholder missing from %q", content)
	}
	if strings.Contains(content, "---\n\n---") {
		t.Errorf("empty context block sent silently: %q", content)
	}
}

func TestBuildSplicesHistoryBetweenSystemAndQuestion(t *testing.T) {
	history := []llm.ChatMessage{
		llm.UserMessage("first question"),
		llm.AssistantMessage("first answer"),
		llm.UserMessage("second question"),
		llm.AssistantMessage("second answer"),
	}

	messages := Build("persona", "ctx", "third question", history)

	if len(messages) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(messages))
	}
	if messages[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q", messages[0].Role)
	}
	// Oldest first, in between system and the new user message.
	if messages[1].Content != "first question" || messages[4].Content != "second answer" {
		t.Errorf("history order broken: %+v", messages[1:5])
	}
	if !strings.Contains(messages[5].Content, "third question") {
		t.Errorf("new question not last: %q", messages[5].Content)
	}
}

func TestUserContentExactPlaceholderText(t *testing.T) {
	got := UserContent("", "q")
	want := "Context from the document:\n" +
		"---\n" +
		"No relevant context found in the document.\n" +
		"---\n" +
		"User Question: q"
	if got != want {
		t.Errorf("placeholder rendering:\n got %q\nwant %q", got, want)
	}
}
