package pipeline

import (
	"context"

	"github.com/rushteam/pricekit/core"
)

// Pipeline 是 pricekit 的核心抽象：把估价逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(ctx context.Context, est *core.Estimation) error {
	for _, node := range p.Nodes {
		if err := node.Process(ctx, est); err != nil {
			return err
		}
	}
	return nil
}
