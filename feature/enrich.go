package feature

import (
	"context"
	"time"

	"github.com/rushteam/pricekit/feast"
)

// Enricher 在编码前用 Feast 在线特征补齐缺失的房产属性。
//
// 典型用法：以小区（Neighborhood）为实体，从特征库取该小区的
// 典型属性值（如 OverallQual、YearBuilt 的中位数），只填补调用方
// 没有提供的属性，调用方提供的值永远优先。
//
// 补全是尽力而为的：特征库不可用或查询失败时原样返回输入，
// 估价流程继续走默认值路径。
type Enricher struct {
	// Client Feast 客户端
	Client feast.Client

	// FeatureView 特征视图名称，例如 "neighborhood_stats"
	FeatureView string

	// EntityKey 实体键名，例如 "neighborhood"
	EntityKey string

	// EntityAttr 从输入属性表中取实体值的属性名，例如 "Neighborhood"
	EntityAttr string

	// Attributes 允许补齐的属性名列表
	Attributes []string

	// Timeout 单次查询超时
	Timeout time.Duration
}

// Enrich 返回补全后的属性表（新 map，不修改输入）。
func (e *Enricher) Enrich(ctx context.Context, raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	if e.Client == nil || e.FeatureView == "" || e.EntityKey == "" {
		return out
	}

	entity, ok := raw[e.EntityAttr]
	if !ok {
		return out
	}

	// 只查缺失的属性
	missing := make([]string, 0, len(e.Attributes))
	for _, attr := range e.Attributes {
		if _, ok := raw[attr]; !ok {
			missing = append(missing, e.FeatureView+":"+attr)
		}
	}
	if len(missing) == 0 {
		return out
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	resp, err := e.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   missing,
		EntityRows: []map[string]interface{}{{e.EntityKey: entity}},
	})
	if err != nil || len(resp.FeatureVectors) == 0 {
		return out
	}

	values := resp.FeatureVectors[0].Values
	for name, v := range values {
		// 特征名可能带 view 前缀，取末段作为属性名
		attr := name
		if idx := lastColon(name); idx >= 0 {
			attr = name[idx+1:]
		}
		if _, exists := out[attr]; !exists && v != nil {
			out[attr] = v
		}
	}
	return out
}

func lastColon(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return i
		}
	}
	return -1
}
