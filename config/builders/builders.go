// Package builders 注册内置估价 Node 的配置构建器。
// 入口处 import _ 本包即可让 pipeline 配置文件中的 predict.* 类型生效。
package builders

import (
	"fmt"
	"strings"
	"time"

	"github.com/rushteam/pricekit/config"
	"github.com/rushteam/pricekit/core"
	"github.com/rushteam/pricekit/feast"
	"github.com/rushteam/pricekit/feature"
	"github.com/rushteam/pricekit/model"
	"github.com/rushteam/pricekit/pipeline"
	"github.com/rushteam/pricekit/pkg/conv"
	"github.com/rushteam/pricekit/predict"
	"github.com/rushteam/pricekit/schema"
)

func init() {
	config.Register("predict.enrich", BuildEnrichNode)
	config.Register("predict.encode", BuildEncodeNode)
	config.Register("predict.assemble", BuildAssembleNode)
	config.Register("predict.normalize", BuildNormalizeNode)
	config.Register("predict.infer", BuildInferNode)
	config.Register("predict.postprocess", BuildPostProcessNode)
}

func BuildEnrichNode(cfg map[string]interface{}) (pipeline.Node, error) {
	host := conv.ConfigGet(cfg, "host", "")
	if host == "" {
		return nil, fmt.Errorf("host not found")
	}
	port := int(conv.ConfigGetInt64(cfg, "port", 6565))
	project := conv.ConfigGet(cfg, "project", "")

	client, err := feast.NewGrpcClient(host, port, project)
	if err != nil {
		return nil, fmt.Errorf("feast client: %w", err)
	}

	enricher := &feature.Enricher{
		Client:      client,
		FeatureView: conv.ConfigGet(cfg, "feature_view", ""),
		EntityKey:   conv.ConfigGet(cfg, "entity_key", ""),
		EntityAttr:  conv.ConfigGet(cfg, "entity_attr", ""),
		Attributes:  configStrings(cfg, "attributes"),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		enricher.Timeout = time.Duration(sec) * time.Second
	}
	return &predict.EnrichNode{Enricher: enricher}, nil
}

func BuildEncodeNode(cfg map[string]interface{}) (pipeline.Node, error) {
	path := conv.ConfigGet(cfg, "catalog_path", "")
	if path == "" {
		return &predict.EncodeNode{Encoder: feature.NewEncoder(nil)}, nil
	}

	catalog, err := loadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &predict.EncodeNode{Encoder: feature.NewEncoder(catalog)}, nil
}

func BuildAssembleNode(cfg map[string]interface{}) (pipeline.Node, error) {
	scaler, err := configScaler(cfg)
	if err != nil {
		return nil, err
	}
	return &predict.AssembleNode{Scaler: scaler}, nil
}

func BuildNormalizeNode(cfg map[string]interface{}) (pipeline.Node, error) {
	scaler, err := configScaler(cfg)
	if err != nil {
		return nil, err
	}

	features := configStrings(cfg, "features")
	if len(features) == 0 {
		features = feature.ResolveModelFeatures(nil, configStrings(cfg, "feature_paths")...)
	}
	if scaler != nil {
		if err := feature.ValidateSubset(features, scaler.FeatureColumns); err != nil {
			return nil, err
		}
	}
	return &predict.NormalizeNode{Scaler: scaler, ModelFeatures: features}, nil
}

func BuildInferNode(cfg map[string]interface{}) (pipeline.Node, error) {
	m, err := configModel(cfg)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("model_path or endpoint required")
	}
	return &predict.InferNode{Model: m}, nil
}

func BuildPostProcessNode(cfg map[string]interface{}) (pipeline.Node, error) {
	// model_path 可选：不给时仍然计算置信度与档位，只是没有区间
	m, err := configModel(cfg)
	if err != nil {
		return nil, err
	}

	features := configStrings(cfg, "features")
	if len(features) == 0 {
		features = feature.ResolveModelFeatures(m, configStrings(cfg, "feature_paths")...)
	}

	node := &predict.PostProcessNode{
		Model:         m,
		ModelFeatures: features,
		MaxConcurrent: int(conv.ConfigGetInt64(cfg, "max_concurrent", 0)),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		node.Timeout = time.Duration(sec) * time.Second
	}
	return node, nil
}

// configModel 按配置构建模型：本地工件（model_path）或远程打分服务（endpoint）。
// 两者都没有时返回 (nil, nil)。
func configModel(cfg map[string]interface{}) (core.RegressionModel, error) {
	if path := conv.ConfigGet(cfg, "model_path", ""); path != "" {
		return model.LoadModel(path)
	}
	if endpoint := conv.ConfigGet(cfg, "endpoint", ""); endpoint != "" {
		name := conv.ConfigGet(cfg, "name", "rpc")
		var timeout time.Duration
		if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
			timeout = time.Duration(sec) * time.Second
		}
		return model.NewRPCModel(name, endpoint, timeout), nil
	}
	return nil, nil
}

func configScaler(cfg map[string]interface{}) (*feature.FeatureScaler, error) {
	path := conv.ConfigGet(cfg, "scaler_path", "")
	if path == "" {
		return nil, nil
	}
	scaler, err := feature.LoadFeatureScaler(path)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	return scaler, nil
}

func configStrings(cfg map[string]interface{}, key string) []string {
	list, ok := cfg[key].([]interface{})
	if !ok {
		return nil
	}
	return conv.ConvertSlice(list, conv.ToString)
}

func loadCatalog(path string) (*schema.Catalog, error) {
	if strings.HasSuffix(path, ".json") {
		return schema.LoadCatalogFromJSON(path)
	}
	return schema.LoadCatalogFromYAML(path)
}
