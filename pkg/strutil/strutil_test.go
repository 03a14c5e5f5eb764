package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/angularize/pkg/strutil"
)

func TestToPascalCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"todo-list", "TodoList"},
		{"todo_list", "TodoList"},
		{"todo list", "TodoList"},
		{"Counter", "Counter"},
		{"counter", "Counter"},
		{"", ""},
		{"a1 b2", "A1B2"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, strutil.ToPascalCase(tc.in), "input %q", tc.in)
	}
}

func TestToCamelCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "todoList", strutil.ToCamelCase("TodoList"))
	assert.Equal(t, "todoList", strutil.ToCamelCase("todo-list"))
	assert.Equal(t, "counter", strutil.ToCamelCase("Counter"))
	assert.Empty(t, strutil.ToCamelCase(""))
}

func TestToKebabCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "todo-list", strutil.ToKebabCase("TodoList"))
	assert.Equal(t, "counter", strutil.ToKebabCase("Counter"))
	assert.Equal(t, "already-kebab", strutil.ToKebabCase("already-kebab"))
}

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "todo_list", strutil.ToSnakeCase("TodoList"))
	assert.Equal(t, "counter", strutil.ToSnakeCase("Counter"))
}
