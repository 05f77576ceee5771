// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package normalize

import (
	"context"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/scout/ai"
)

// Pool runs normalization work on a bounded set of goroutines.
// A nil *Pool runs everything on the calling goroutine.
type Pool struct {
	pool *ants.Pool
}

// NewPool creates a pool of the given size.
// Sizes below 1 default to runtime.NumCPU() / 2, with a minimum of 1.
func NewPool(size int) (*Pool, error) {
	if size < 1 {
		size = runtime.NumCPU() / 2
		if size < 1 {
			size = 1
		}
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: pool}, nil
}

// Release stops the pool's workers.
func (p *Pool) Release() {
	if p != nil && p.pool != nil {
		p.pool.Release()
	}
}

// MapFunc maps the index-th raw result. Returning false drops the result.
type MapFunc[T any] func(index int, raw ai.RawResult) (T, bool)

// Batch applies fn to every result and returns the kept outputs in input
// order. It stops submitting work once ctx is done and returns ctx.Err().
func Batch[T any](ctx context.Context, p *Pool, raws []ai.RawResult, fn MapFunc[T]) ([]T, error) {
	outs := make([]T, len(raws))
	kept := make([]bool, len(raws))

	var wg sync.WaitGroup
	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		work := func() {
			defer wg.Done()
			outs[i], kept[i] = fn(i, raw)
		}

		wg.Add(1)
		if p == nil || p.pool == nil {
			work()
			continue
		}
		if err := p.pool.Submit(work); err != nil {
			// Pool closed or overloaded; do the work here.
			work()
		}
	}
	wg.Wait()

	result := make([]T, 0, len(raws))
	for i, ok := range kept {
		if ok {
			result = append(result, outs[i])
		}
	}
	return result, nil
}
