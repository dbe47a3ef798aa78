package predict

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/pricekit/core"
)

// zScore95 对应 95% 置信水平的正态分位数。
const zScore95 = 1.96

// ensembleSpread 并发收集集成模型各子估计器的预测（指数还原到
// 价格空间），返回价格样本。支持整体截止时间与限流。
//
// 单个子估计器失败只会让该样本缺席，不中断其余子估计器；
// 样本数不足 2 时无法计算离散度，返回 nil。
func ensembleSpread(ctx context.Context, ensemble core.Ensemble, input []float64, maxConcurrent int, timeout time.Duration) []float64 {
	estimators := ensemble.Estimators()
	if len(estimators) < 2 {
		return nil
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var (
		mu       sync.Mutex
		out      = make([]float64, 0, len(estimators))
		eg, ctx2 = errgroup.WithContext(ctx)
	)

	// 限流：使用 semaphore 控制并发数，非正数一律视为无限制
	if maxConcurrent < 0 {
		maxConcurrent = 0
	}
	sem := make(chan struct{}, maxConcurrent)
	if maxConcurrent == 0 {
		close(sem) // 无限制时直接关闭，避免阻塞
	}

	for _, est := range estimators {
		m := est

		eg.Go(func() error {
			if maxConcurrent > 0 {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			// 已超过截止时间时放弃剩余样本
			if ctx2.Err() != nil {
				return nil
			}

			raw, err := m.Predict(input)
			if err != nil {
				// 子估计器失败不中断整体，丢弃该样本
				return nil
			}

			mu.Lock()
			out = append(out, math.Exp(raw))
			mu.Unlock()
			return nil
		})
	}

	_ = eg.Wait()

	if len(out) < 2 {
		return nil
	}
	return out
}

// sampleStdDev 计算样本标准差（分母 n-1）。
func sampleStdDev(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}

// confidenceInterval 由价格与子估计器离散度给出 95% 置信区间，
// 下界不低于 0。
func confidenceInterval(price, stdDev float64) *core.Interval {
	lower := price - zScore95*stdDev
	if lower < 0 {
		lower = 0
	}
	return &core.Interval{
		Lower: lower,
		Upper: price + zScore95*stdDev,
	}
}
