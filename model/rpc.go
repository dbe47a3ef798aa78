package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rushteam/pricekit/core"
)

// RPCModel 是通过 RPC/HTTP 调用外部打分服务的 RegressionModel 实现。
// 支持 TensorFlow Serving、TorchServe 及自建回归服务等。
// 服务返回的是对数价格，与本地模型保持同一输出空间。
type RPCModel struct {
	name     string
	Endpoint string // 例如 "http://localhost:8080/predict"
	Timeout  time.Duration
	Client   *http.Client
}

func NewRPCModel(name, endpoint string, timeout time.Duration) *RPCModel {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &RPCModel{
		name:     name,
		Endpoint: endpoint,
		Timeout:  timeout,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (m *RPCModel) Name() string {
	return m.name
}

// Predict 调用远程打分服务进行预测（单个向量，内部调用批量接口）。
func (m *RPCModel) Predict(vector []float64) (float64, error) {
	scores, err := m.PredictBatch([][]float64{vector})
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 0, fmt.Errorf("empty response")
	}
	return scores[0], nil
}

// PredictBatch 调用远程打分服务进行批量预测。
// 请求格式（JSON）：
//
//	{"instances": [[0.42, 0.1, ...], ...]}
//
// 响应格式（JSON）：
//
//	{"predictions": [12.02, 11.85, ...]}
func (m *RPCModel) PredictBatch(instances [][]float64) ([]float64, error) {
	if m.Client == nil {
		m.Client = &http.Client{Timeout: m.Timeout}
	}

	if len(instances) == 0 {
		return []float64{}, nil
	}

	// 构建请求
	reqBody := map[string]any{
		"instances": instances,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", m.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// 发送请求
	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("rpc error: status=%d, read body failed: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("rpc error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	// 解析响应
	var result struct {
		Predictions []float64 `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(result.Predictions) != len(instances) {
		return nil, fmt.Errorf("response predictions count mismatch: expected %d, got %d", len(instances), len(result.Predictions))
	}

	return result.Predictions, nil
}

var _ core.RegressionModel = (*RPCModel)(nil)
