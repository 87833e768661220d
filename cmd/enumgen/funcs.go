package main

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"deedles.dev/enum"
	"deedles.dev/enum/schema"
)

// Context carries everything a single generator run needs.
type Context struct {
	Package string
	Schema  schema.Schema
}

// Generate renders the schema as gofmt-formatted Go source.
func (ctx Context) Generate() ([]byte, error) {
	t := template.New("enumgen").Funcs(template.FuncMap{
		"camel":   ctx.camel,
		"comment": ctx.comment,
		"consts":  ctx.consts,
		"quote":   strconv.Quote,
		"storage": ctx.storage,
	})
	t, err := t.Parse(output)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, ctx)
	if err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

func (ctx Context) camel(v string) string {
	var buf strings.Builder
	buf.Grow(len(v))
	shift := true
	for _, c := range strings.ToLower(v) {
		if c == '_' {
			shift = true
			continue
		}

		if shift {
			c = unicode.ToUpper(c)
		}
		buf.WriteRune(c)
		shift = false
	}
	return buf.String()
}

func (ctx Context) comment(v string) string {
	if len(v) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(v, "\n") {
		sb.WriteString("// ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// storage maps a schema storage name to the enum package's constant
// for it.
func (ctx Context) storage(v string) (string, error) {
	s, err := enum.ParseStorage(v)
	if err != nil {
		return "", err
	}
	return ctx.camel(s.String()), nil
}

type constant struct {
	Name  string
	Value int64
}

// consts resolves the value of every entry by replaying the running
// counter, for emitting plain Go constants alongside the type.
// Duplicate names keep the last declaration, matching the lookup
// table the type itself builds.
func (ctx Context) consts(e schema.Enum) ([]constant, error) {
	def, err := e.Def()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(def.Members))
	consts := make([]constant, 0, len(def.Members))
	cur := def.Start
	for _, m := range def.Members {
		if m.Explicit {
			cur = m.Value
		}

		if i, ok := index[m.Name]; ok {
			consts[i].Value = cur
		} else {
			index[m.Name] = len(consts)
			consts = append(consts, constant{Name: m.Name, Value: cur})
		}
		cur++
	}
	return consts, nil
}
