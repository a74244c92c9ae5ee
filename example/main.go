// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fpkit/neseq/pkg/neseq"
	"github.com/fpkit/neseq/pkg/seq"
	"github.com/fpkit/neseq/pkg/task"
)

func main() {
	// ---------------------------
	// Construction
	// ---------------------------
	nums := neseq.Of(1, 2, 3)
	fmt.Println("nums:", nums)               // NonEmptySeq(1, 2, 3)
	fmt.Println("head:", nums.Head())        // 1, total: no error path
	fmt.Println("appended:", nums.Append(4)) // NonEmptySeq(1, 2, 3, 4)

	// The only fallible entry point: converting a general sequence.
	if _, ok := neseq.FromSeq(seq.Empty[int]()).Get(); !ok {
		fmt.Println("empty general sequence has no non-empty view")
	}
	proven := neseq.FromSeq(seq.Of(5)).MustGet()
	fmt.Println("proven:", proven)

	// ---------------------------
	// Transformations
	// ---------------------------
	doubled := neseq.Map(nums, func(n int) int { return n * 2 })
	fmt.Println("doubled:", doubled)

	words := neseq.FlatMap(neseq.Of("a"), func(s string) neseq.NonEmptySeq[string] {
		return neseq.Of(s, s+s)
	})
	fmt.Println("words:", words) // NonEmptySeq(a, aa)

	total, running := neseq.MapAccum(nums, 0, func(acc, n int) (int, int) {
		acc += n
		return acc, acc
	})
	fmt.Println("running sums:", running, "total:", total)

	// Reduction needs no seed: non-emptiness makes it total.
	fmt.Println("sum:", neseq.Sum(nums), "max:", neseq.Max(nums))

	// ---------------------------
	// Zipping
	// ---------------------------
	padded := neseq.ZipAllWith(neseq.Of(1, 2), seq.Of(10, 20, 30),
		func(a int) int { return a },
		func(b int) int { return b },
		func(a, b int) int { return a + b },
	)
	fmt.Println("zipAll:", padded) // NonEmptySeq(11, 22, 30)

	// ---------------------------
	// Effectful traversal
	// ---------------------------
	ctx := context.Background()
	upper := func(s string) task.Task[string] {
		return task.Of(strings.ToUpper(s))
	}
	seqRes, err := neseq.MapTask(ctx, neseq.Of("x", "y", "z"), upper)
	if err != nil {
		fmt.Println("sequential error:", err)
	} else {
		fmt.Println("sequential:", seqRes)
	}

	parRes, err := neseq.MapTaskParallel(ctx, neseq.Of("a", "b", "c"), upper)
	if err != nil {
		fmt.Println("parallel error:", err)
	} else {
		fmt.Println("parallel:", parRes) // order preserved
	}

	failing := func(s string) task.Task[string] {
		if s == "b" {
			return task.Fail[string](errors.New("element b refused"))
		}
		return task.Of(s)
	}
	if _, err := neseq.MapTask(ctx, neseq.Of("a", "b", "c"), failing); err != nil {
		fmt.Println("short-circuited:", err)
	}
}
