package config

import (
	"context"
	"testing"

	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/pipeline"
)

type noopNode struct{}

func (n *noopNode) Name() string        { return "test.noop" }
func (n *noopNode) Kind() pipeline.Kind { return pipeline.KindEncode }

func (n *noopNode) Process(_ context.Context, _ *core.Estimation) error { return nil }

func TestRegisterAndDefaultFactory(t *testing.T) {
	Register("test.noop", func(cfg map[string]interface{}) (pipeline.Node, error) {
		return &noopNode{}, nil
	})

	found := false
	for _, typ := range SupportedTypes() {
		if typ == "test.noop" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered type not in SupportedTypes()")
	}

	node, err := DefaultFactory().Build("test.noop", nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if node.Name() != "test.noop" {
		t.Errorf("Name() = %q", node.Name())
	}

	// 空类型名与空构建器被忽略
	Register("", func(cfg map[string]interface{}) (pipeline.Node, error) { return nil, nil })
	Register("test.nil", nil)
	for _, typ := range SupportedTypes() {
		if typ == "" || typ == "test.nil" {
			t.Errorf("invalid registration accepted: %q", typ)
		}
	}
}

func TestValidatePipelineConfig(t *testing.T) {
	Register("test.noop", func(cfg map[string]interface{}) (pipeline.Node, error) {
		return &noopNode{}, nil
	})

	cfg := &pipeline.Config{}
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{{Type: "test.noop"}}
	if err := ValidatePipelineConfig(cfg); err != nil {
		t.Errorf("ValidatePipelineConfig() error = %v", err)
	}

	cfg.Pipeline.Nodes = append(cfg.Pipeline.Nodes, pipeline.NodeConfig{Type: "test.unknown"})
	if err := ValidatePipelineConfig(cfg); err == nil {
		t.Error("expected error for unregistered node type")
	}

	if err := ValidatePipelineConfig(nil); err != nil {
		t.Errorf("nil config should pass, got %v", err)
	}
}
