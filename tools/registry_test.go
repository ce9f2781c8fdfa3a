package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/BalaAmavasai/databricks-agentic-ai/corpus"
)

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(NewCalculateTool()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	err := registry.Register(NewCalculateTool())
	if err == nil {
		t.Fatal("second Register succeeded, want duplicate error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("error = %v, want it to mention already registered", err)
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("nothing")
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Resolve error = %v, want ErrUnknownTool", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := NewRegistry()
	for _, tool := range []Tool{silentTool{}, echoTool{}, NewCalculateTool()} {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	names := registry.Names()
	want := []string{"calculate", "echo", "silent"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWithDefaults(t *testing.T) {
	store := corpus.NewStore()

	registry, err := WithDefaults(store)
	if err != nil {
		t.Fatalf("WithDefaults failed: %v", err)
	}

	for _, name := range []string{"calculate", "search_document"} {
		if !registry.Has(name) {
			t.Errorf("default registry is missing %q", name)
		}
	}
	if registry.Has("fetch") {
		t.Error("fetch should not be registered by default")
	}
}

func TestRegistrySchemas(t *testing.T) {
	store := corpus.NewStore()
	registry, err := WithDefaults(store)
	if err != nil {
		t.Fatalf("WithDefaults failed: %v", err)
	}

	schemas := registry.Schemas()
	if len(schemas) != 2 {
		t.Fatalf("Schemas() returned %d definitions, want 2", len(schemas))
	}
	if schemas[0].Name != "calculate" || schemas[1].Name != "search_document" {
		t.Errorf("schema order = [%s %s], want sorted by name", schemas[0].Name, schemas[1].Name)
	}

	params := schemas[0].Parameters
	if params["type"] != "object" {
		t.Errorf(`parameters "type" = %v, want "object"`, params["type"])
	}
	properties, ok := params["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("properties has type %T, want map", params["properties"])
	}
	if _, ok := properties["expression"]; !ok {
		t.Error(`calculate schema is missing the "expression" property`)
	}
	required, ok := params["required"].([]string)
	if !ok {
		t.Fatalf("required has type %T, want []string", params["required"])
	}
	if len(required) != 1 || required[0] != "expression" {
		t.Errorf("required = %v, want [expression]", required)
	}
}

func TestMetadataDefinition(t *testing.T) {
	meta := ToolMetadata{
		Name:        "demo",
		Description: "A demo tool",
		Parameters: []ToolParameter{
			{Name: "needed", ParamType: "string", Description: "Must be set", Required: true},
			{Name: "extra", ParamType: "number", Description: "May be set", Required: false},
		},
	}

	def := meta.Definition()
	if def.Name != "demo" || def.Description != "A demo tool" {
		t.Errorf("Definition() = %s / %s, want demo / A demo tool", def.Name, def.Description)
	}

	properties := def.Parameters["properties"].(map[string]interface{})
	if len(properties) != 2 {
		t.Errorf("properties has %d entries, want 2", len(properties))
	}
	needed := properties["needed"].(map[string]interface{})
	if needed["type"] != "string" || needed["description"] != "Must be set" {
		t.Errorf("needed property = %v", needed)
	}

	required := def.Parameters["required"].([]string)
	if len(required) != 1 || required[0] != "needed" {
		t.Errorf("required = %v, want [needed]", required)
	}
}

func TestRegistryDescription(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(NewCalculateTool()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	desc := registry.Description()
	if !strings.Contains(desc, "Tool: calculate") {
		t.Errorf("Description() = %q, want it to name the tool", desc)
	}
	if !strings.Contains(desc, "[required]") {
		t.Errorf("Description() = %q, want it to flag required parameters", desc)
	}
}
