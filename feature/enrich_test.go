package feature

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/pricekit/feast"
)

type fakeFeastClient struct {
	values  map[string]interface{}
	err     error
	lastReq *feast.GetOnlineFeaturesRequest
}

func (c *fakeFeastClient) GetOnlineFeatures(_ context.Context, req *feast.GetOnlineFeaturesRequest) (*feast.GetOnlineFeaturesResponse, error) {
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return &feast.GetOnlineFeaturesResponse{
		FeatureVectors: []feast.FeatureVector{{Values: c.values}},
	}, nil
}

func (c *fakeFeastClient) Close() error { return nil }

func TestEnricherFillsMissingOnly(t *testing.T) {
	client := &fakeFeastClient{values: map[string]interface{}{
		"neighborhood_stats:OverallQual": 6.0,
		"neighborhood_stats:YearBuilt":   1995.0,
	}}
	enricher := &Enricher{
		Client:      client,
		FeatureView: "neighborhood_stats",
		EntityKey:   "neighborhood",
		EntityAttr:  "Neighborhood",
		Attributes:  []string{"OverallQual", "YearBuilt"},
	}

	raw := map[string]any{
		"Neighborhood": "CollgCr",
		"OverallQual":  7, // 调用方给了，不允许覆盖
	}
	out := enricher.Enrich(context.Background(), raw)

	if out["OverallQual"] != 7 {
		t.Errorf("caller value overwritten: %v", out["OverallQual"])
	}
	if out["YearBuilt"] != 1995.0 {
		t.Errorf("missing attribute not filled: %v", out["YearBuilt"])
	}

	// 只查缺失的属性
	if len(client.lastReq.Features) != 1 || client.lastReq.Features[0] != "neighborhood_stats:YearBuilt" {
		t.Errorf("requested features = %v", client.lastReq.Features)
	}

	// 不修改输入
	if _, ok := raw["YearBuilt"]; ok {
		t.Error("input map was mutated")
	}
}

func TestEnricherBestEffort(t *testing.T) {
	enricher := &Enricher{
		Client:      &fakeFeastClient{err: errors.New("feast down")},
		FeatureView: "neighborhood_stats",
		EntityKey:   "neighborhood",
		EntityAttr:  "Neighborhood",
		Attributes:  []string{"OverallQual"},
	}

	raw := map[string]any{"Neighborhood": "CollgCr"}
	out := enricher.Enrich(context.Background(), raw)

	// 特征库失败时原样返回输入
	if len(out) != 1 || out["Neighborhood"] != "CollgCr" {
		t.Errorf("Enrich() = %v", out)
	}
}

func TestEnricherSkipsWithoutEntity(t *testing.T) {
	client := &fakeFeastClient{values: map[string]interface{}{}}
	enricher := &Enricher{
		Client:      client,
		FeatureView: "neighborhood_stats",
		EntityKey:   "neighborhood",
		EntityAttr:  "Neighborhood",
		Attributes:  []string{"OverallQual"},
	}

	// 实体属性缺失时不发起查询
	enricher.Enrich(context.Background(), map[string]any{"GrLivArea": 1710})
	if client.lastReq != nil {
		t.Error("expected no feast query without entity attribute")
	}
}
