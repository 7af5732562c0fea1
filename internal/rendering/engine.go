package rendering

import (
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Template token patterns. The triple-brace variable delimiter avoids
// colliding with LaTeX's own brace conventions; the exact spellings are a
// compatibility contract with existing template files.
var (
	variablePattern    = regexp.MustCompile(`\{\{\{([^}]+)\}\}\}`)
	loopPattern        = regexp.MustCompile(`(?s)\{% for (\w+) in (\w+) %\}(.*?)\{% endfor %\}`)
	conditionalPattern = regexp.MustCompile(`(?s)\{% if (\w+) %\}(.*?)\{% endif %\}`)
)

// Engine renders dynamic templates against a prepared data context.
// It is stateless; a zero value is ready to use.
//
// Processing order is significant and fixed: loops are expanded first,
// then conditionals are pruned, then variables are substituted. Loop and
// conditional bodies may contain variables that only resolve correctly
// after the surrounding construct has been expanded or removed.
type Engine struct{}

// Render expands loops, prunes conditionals, and substitutes variables in
// the template. Unresolvable references become visible bracketed
// placeholders rather than failing the render.
func (e *Engine) Render(template string, data map[string]any) string {
	rendered := e.processLoops(template, data)
	rendered = e.processConditionals(rendered, data)
	return e.processVariables(rendered, data)
}

// processLoops expands every {% for item in collection %} block. A missing,
// non-sequence, or empty collection expands to nothing.
func (e *Engine) processLoops(template string, data map[string]any) string {
	return loopPattern.ReplaceAllStringFunc(template, func(block string) string {
		m := loopPattern.FindStringSubmatch(block)
		itemVar, collectionVar, body := m[1], m[2], m[3]

		value, exists := data[collectionVar]
		if !exists {
			return ""
		}
		items, ok := asSequence(value)
		if !ok || len(items) == 0 {
			return ""
		}

		rendered := make([]string, 0, len(items))
		for _, item := range items {
			if isRecord(item) {
				rendered = append(rendered, e.replaceNested(body, itemVar, item))
			} else {
				placeholder := "{{{" + itemVar + "}}}"
				rendered = append(rendered, strings.ReplaceAll(body, placeholder, stringify(item)))
			}
		}
		return strings.Join(rendered, "\n")
	})
}

// replaceNested resolves dotted references like {{{item.field.0.sub}}}
// against one loop element. Each path segment descends through mapping
// keys, then sequence indices, then named struct fields, in that order.
func (e *Engine) replaceNested(body, itemVar string, item any) string {
	nested := regexp.MustCompile(`\{\{\{` + regexp.QuoteMeta(itemVar) + `\.([^}]+)\}\}\}`)

	return nested.ReplaceAllStringFunc(body, func(token string) string {
		path := nested.FindStringSubmatch(token)[1]
		value, ok := resolvePath(item, strings.Split(path, "."))
		if !ok {
			return fmt.Sprintf("[%s.%s]", itemVar, path)
		}
		return stringify(value)
	})
}

// resolvePath walks one segment at a time; any unresolvable segment aborts.
func resolvePath(value any, segments []string) (any, bool) {
	for _, segment := range segments {
		switch {
		case isMapping(value):
			next, ok := mappingKey(value, segment)
			if !ok {
				return nil, false
			}
			value = next
		case isSliceValue(value):
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, false
			}
			rv := reflect.ValueOf(value)
			if index < 0 || index >= rv.Len() {
				return nil, false
			}
			value = rv.Index(index).Interface()
		default:
			next, ok := structField(value, segment)
			if !ok {
				return nil, false
			}
			value = next
		}
	}
	return value, true
}

// processConditionals keeps or deletes each {% if name %} block based on
// truthiness of the named context value. The kept body is not evaluated
// further at this stage.
func (e *Engine) processConditionals(template string, data map[string]any) string {
	return conditionalPattern.ReplaceAllStringFunc(template, func(block string) string {
		m := conditionalPattern.FindStringSubmatch(block)
		name, body := m[1], m[2]

		value, exists := data[name]
		if exists && isTruthy(value) {
			return body
		}
		return ""
	})
}

// isTruthy implements the conditional truth table: non-empty sequences,
// non-blank strings, boolean true, and any other non-nil value whose
// string form is non-blank are truthy. Numeric zero stringifies to "0",
// which is non-blank, so zero is truthy.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	default:
		if items, ok := asSequence(value); ok {
			return len(items) > 0
		}
		return strings.TrimSpace(fmt.Sprint(value)) != ""
	}
}

// processVariables substitutes flat {{{name}}} lookups. A missing key
// yields a visible bracketed placeholder and a logged warning; a nil value
// renders as the empty string.
func (e *Engine) processVariables(template string, data map[string]any) string {
	return variablePattern.ReplaceAllStringFunc(template, func(token string) string {
		name := strings.TrimSpace(variablePattern.FindStringSubmatch(token)[1])

		value, exists := data[name]
		if !exists {
			slog.Warn("template variable not found in data", "variable", name)
			return "[" + name + "]"
		}
		return stringify(value)
	})
}

// Validate statically scans a template against a data context and returns
// every problem found. It never mutates anything and is not part of the
// normal render path.
func (e *Engine) Validate(template string, data map[string]any) []string {
	var problems []string

	for _, m := range variablePattern.FindAllStringSubmatch(template, -1) {
		name := strings.TrimSpace(m[1])
		if _, exists := data[name]; !exists {
			problems = append(problems, "Missing data for template variable: "+name)
		}
	}

	for _, m := range loopPattern.FindAllStringSubmatch(template, -1) {
		collection := m[2]
		value, exists := data[collection]
		if !exists {
			problems = append(problems, "Missing data for loop collection: "+collection)
		} else if _, ok := asSequence(value); !ok {
			problems = append(problems, fmt.Sprintf("Loop collection '%s' is not a list", collection))
		}
	}

	for _, m := range conditionalPattern.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if _, exists := data[name]; !exists {
			problems = append(problems, "Missing data for conditional: "+name)
		}
	}

	return problems
}

// asSequence coerces any slice or array value into []any.
func asSequence(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func isSliceValue(value any) bool {
	if value == nil {
		return false
	}
	kind := reflect.ValueOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func isMapping(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func mappingKey(value any, key string) (any, bool) {
	rv := reflect.ValueOf(value)
	item := rv.MapIndex(reflect.ValueOf(key))
	if !item.IsValid() {
		return nil, false
	}
	return item.Interface(), true
}

// isRecord reports whether a loop element supports dotted field access.
func isRecord(value any) bool {
	if value == nil {
		return false
	}
	if isMapping(value) {
		return true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

// structField resolves a named attribute on a struct, matching the
// exported field name case-insensitively.
func structField(value any, name string) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	field := rv.FieldByNameFunc(func(candidate string) bool {
		return strings.EqualFold(candidate, name)
	})
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}

// stringify renders a context value for output; nil becomes empty.
func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
