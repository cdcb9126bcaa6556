package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	cases := []struct {
		input     []int
		predicate func(val int) bool
		expected  int
	}{
		{
			input: []int{1, 2, 3},
			predicate: func(val int) bool {
				return val == 2
			},
			expected: 2,
		},
		{
			input: []int{1, 2, 3},
			predicate: func(val int) bool {
				return val == 99
			},
			expected: 0,
		},
	}
	for _, testCase := range cases {
		assert.Equal(t, testCase.expected, Find(testCase.input, testCase.predicate))
	}
}

func TestFindIndex(t *testing.T) {
	assert.Equal(t, 1, FindIndex([]string{"a", "b"}, func(val string) bool { return val == "b" }))
	assert.Equal(t, -1, FindIndex([]string{"a", "b"}, func(val string) bool { return val == "c" }))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal([]byte{1, 2}, []byte{1, 2}))
	assert.False(t, Equal([]byte{1, 2}, []byte{1, 2, 3}))
	assert.False(t, Equal([]byte{1, 2}, []byte{2, 1}))
}

func TestContain(t *testing.T) {
	assert.True(t, Contain([]string{"int", "str"}, "int"))
	assert.False(t, Contain([]string{"int", "str"}, "bool"))
}

func TestIsUnique(t *testing.T) {
	assert.True(t, IsUnique([]int{1, 2, 3}))
	assert.False(t, IsUnique([]int{1, 2, 1}))
	assert.True(t, IsUnique([]string{}))
}
