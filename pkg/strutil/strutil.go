// Package strutil provides the case conversion helpers used when deriving
// Angular class names, selectors, and file names from component names.
package strutil

import (
	"strings"
	"unicode"
)

// ToPascalCase converts text to PascalCase, splitting on any non-alphanumeric
// runs. "todo-list" becomes "TodoList".
func ToPascalCase(text string) string {
	var builder strings.Builder

	upperNext := true

	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true

			continue
		}

		if upperNext {
			builder.WriteRune(unicode.ToUpper(r))

			upperNext = false

			continue
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

// ToCamelCase converts text to camelCase. "TodoList" becomes "todoList".
func ToCamelCase(text string) string {
	pascal := ToPascalCase(text)
	if pascal == "" {
		return ""
	}

	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ToKebabCase converts text to kebab-case by inserting hyphens before
// interior uppercase letters. "TodoList" becomes "todo-list".
func ToKebabCase(text string) string {
	var builder strings.Builder

	for idx, r := range text {
		if unicode.IsUpper(r) && idx > 0 {
			builder.WriteByte('-')
		}

		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}

// ToSnakeCase converts text to snake_case. "TodoList" becomes "todo_list".
func ToSnakeCase(text string) string {
	var builder strings.Builder

	for idx, r := range text {
		if unicode.IsUpper(r) && idx > 0 {
			builder.WriteByte('_')
		}

		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
