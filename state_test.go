// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption_State(t *testing.T) {
	t.Run("will return Present with the value", func(t *testing.T) {
		t.Run("if the Option holds a value", func(t *testing.T) {
			s := Of(42).State()

			p, ok := s.(Present[int])
			require.True(t, ok)
			require.Equal(t, 42, p.Value)
		})
	})

	t.Run("will return Empty", func(t *testing.T) {
		t.Run("if the Option holds nothing", func(t *testing.T) {
			s := None[int]().State()

			_, ok := s.(Empty[int])
			require.True(t, ok)
		})
	})

	t.Run("will agree with IsPresent and IsEmpty", func(t *testing.T) {
		for _, o := range []Option[int]{Of(42), Of(0), None[int]()} {
			switch o.State().(type) {
			case Present[int]:
				require.True(t, o.IsPresent())
				require.False(t, o.IsEmpty())
			case Empty[int]:
				require.True(t, o.IsEmpty())
				require.False(t, o.IsPresent())
			default:
				t.Fatalf("unexpected state: %T", o.State())
			}
		}
	})
}
