package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/pricekit/core"
)

type recordNode struct {
	name string
	err  error
	log  *[]string
}

func (n *recordNode) Name() string { return n.name }
func (n *recordNode) Kind() Kind   { return KindEncode }

func (n *recordNode) Process(_ context.Context, est *core.Estimation) error {
	*n.log = append(*n.log, n.name)
	return n.err
}

func TestPipelineRun(t *testing.T) {
	var log []string
	p := &Pipeline{Nodes: []Node{
		&recordNode{name: "a", log: &log},
		&recordNode{name: "b", log: &log},
	}}

	if err := p.Run(context.Background(), core.NewEstimation(nil)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("execution order = %v", log)
	}
}

func TestPipelineRunStopsOnError(t *testing.T) {
	var log []string
	wantErr := errors.New("boom")
	p := &Pipeline{Nodes: []Node{
		&recordNode{name: "a", log: &log},
		&recordNode{name: "b", err: wantErr, log: &log},
		&recordNode{name: "c", log: &log},
	}}

	if err := p.Run(context.Background(), core.NewEstimation(nil)); !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}
	// 失败节点之后的节点不再执行
	if len(log) != 2 {
		t.Errorf("execution log = %v", log)
	}
}

func TestNodeFactoryBuild(t *testing.T) {
	var log []string
	f := NewNodeFactory()
	f.Register("test.record", func(cfg map[string]interface{}) (Node, error) {
		name, _ := cfg["name"].(string)
		return &recordNode{name: name, log: &log}, nil
	})

	node, err := f.Build("test.record", map[string]interface{}{"name": "x"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if node.Name() != "x" {
		t.Errorf("Name() = %q", node.Name())
	}

	if _, err := f.Build("unknown", nil); err == nil {
		t.Error("expected error for unknown node type")
	}
}
