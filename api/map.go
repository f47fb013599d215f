// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"

	"github.com/stockparfait/iterator"
)

// Result of applying a call to a single argument.
type Result[R any] struct {
	Value R
	Err   error
}

// Map lazily applies f to each argument in order. Each f call happens when the
// corresponding result is requested from the iterator, one at a time. The
// iterator yields exactly one result per argument and cannot be restarted.
//
// Example:
//
//   it := api.Map(ctx, []string{"GNPCA", "UNRATE"}, api.SeriesTagNames)
func Map[A, R any](ctx context.Context, args []A, f func(context.Context, A) (R, error)) iterator.Iterator[Result[R]] {
	return iterator.Map(iterator.FromSlice(args), func(a A) Result[R] {
		v, err := f(ctx, a)
		return Result[R]{Value: v, Err: err}
	})
}

// Collect all the results of the iterator in order.
func Collect[R any](it iterator.Iterator[Result[R]]) []Result[R] {
	return iterator.Reduce[Result[R], []Result[R]](it, []Result[R]{}, func(r Result[R], acc []Result[R]) []Result[R] {
		return append(acc, r)
	})
}
