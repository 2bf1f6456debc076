package utils

import (
	"golang.org/x/sync/errgroup"
)

// ParallelMap 用最多 workers 个协程并发执行 fn，结果顺序与 input 一致。
// fn 必须自行处理 panic 和错误，这里不做任何拦截。
func ParallelMap[T any, R any](input []T, workers int, fn func(T) R) []R {
	out := make([]R, len(input))
	if len(input) == 0 {
		return out
	}

	// 单元素或单 worker 直接串行处理
	if workers <= 1 || len(input) == 1 {
		for i, v := range input {
			out[i] = fn(v)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range input {
		i := i // go 1.21 directive: keep per-iteration loop variable semantics
		g.Go(func() error {
			out[i] = fn(input[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}
