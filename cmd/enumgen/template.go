package main

const output = `// Code generated by enumgen; DO NOT EDIT.

package {{.Package}}

import "deedles.dev/enum"

{{range .Schema.Enums}}
{{comment .Summary}}var {{camel .Name}} = enum.New(enum.Def{
	Name:    {{quote .Name}},
	Storage: enum.{{storage .Type}},
	{{- if .Start}}
	Start:   {{.Start}},
	{{- end}}
	Members: []enum.Member{
		{{- range .Entries}}
		{{- if .Value}}
		enum.MV({{quote .Name}}, {{.Value}}),
		{{- else}}
		enum.M({{quote .Name}}),
		{{- end}}
		{{- end}}
	},
})

const (
	{{- range consts .}}
	{{camel .Name}} int64 = {{.Value}}
	{{- end}}
)
{{end}}
`
