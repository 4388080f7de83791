package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将标题或正文中的 ${path.to.value} 替换为 data 中的值，
// data 通常来自 JSON 解码（map[string]any / []any）。
// 无法解析的占位符原样保留。
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		if val, ok := lookup(data, match); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Unresolved 返回 text 中无法从 data 解析的占位符路径（去重，按出现顺序）。
func Unresolved(text string, data any) []string {
	var out []string
	seen := map[string]bool{}
	for _, match := range placeholderPattern.FindAllString(text, -1) {
		if _, ok := lookup(data, match); ok {
			continue
		}
		path := strings.TrimSpace(match[2 : len(match)-1])
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}
	return out
}

func lookup(data any, match string) (any, bool) {
	if data == nil {
		return nil, false
	}
	groups := placeholderPattern.FindStringSubmatch(match)
	if len(groups) < 2 {
		return nil, false
	}
	path := strings.TrimSpace(groups[1])
	if path == "" {
		return nil, false
	}
	return resolvePath(data, path)
}

// resolvePath 支持 a.b.c 与 a.items[0].name 两种写法。
func resolvePath(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := parseSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, isArr := current.([]any)
			if !isArr || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []int, bool) {
	i := strings.IndexByte(segment, '[')
	if i == -1 {
		return segment, nil, true
	}
	name, rest := segment[:i], segment[i:]
	var indexes []int
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if rest[0] != '[' || end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}
