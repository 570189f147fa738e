// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package future_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/lilBunnyRabbit/optional/future"
)

func ExampleResolved() {
	f := future.Resolved("hello, world")

	v, err := f.Await(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)

	// Output: hello, world
}

func ExampleRejected() {
	f := future.Rejected[string](errors.New("nothing here"))

	_, err := f.Await(context.Background())
	fmt.Println(err)

	// Output: nothing here
}

func ExampleGo() {
	f := future.Go(func() (int, error) {
		return 21 * 2, nil
	})

	v, err := f.Await(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)

	// Output: 42
}
