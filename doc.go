// Package pricekit 是一个房价估算工具包（Price Kit）。
//
// 设计要点：
// - Pipeline-first: 估价逻辑通过 Node 串联（Enrich → Encode → Assemble → Normalize → Infer → PostProcess）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Node 可扩展: 自定义 Node 即可插拔扩展（本地工件或 RPC 模型均可）
package pricekit

import "github.com/rushteam/pricekit/pipeline"

// 轻量 facade：便于用户直接 import "pricekit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindEncode      = pipeline.KindEncode
	KindEnrich      = pipeline.KindEnrich
	KindAssemble    = pipeline.KindAssemble
	KindNormalize   = pipeline.KindNormalize
	KindInfer       = pipeline.KindInfer
	KindPostProcess = pipeline.KindPostProcess
)
