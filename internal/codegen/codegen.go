// Package codegen renders the service description into Go source.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"path"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/pricofy/comprehend-go/internal/schema"
)

// ModulePath is the import path prefix of generated imports.
const ModulePath = "github.com/pricofy/comprehend-go"

// commentWidth is the maximum comment text width, excluding the "// " prefix.
const commentWidth = 72

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"comment":    comment,
	"lcfirst":    lcfirst,
	"join":       strings.Join,
	"trimSuffix": strings.TrimSuffix,
}).ParseFS(templateFS, "templates/*.tmpl"))

// File is one generated source file, Path relative to the module root.
type File struct {
	Path    string
	Content []byte
}

type shapeView struct {
	schema.Shape
	Validated bool
	Fields    []fieldView
}

type fieldView struct {
	schema.Field
	StructTag string
}

type shapesFile struct {
	Imports []string
	Shapes  []shapeView
}

type errorView struct {
	schema.Error
	Server bool
}

// Generate renders every generated file of the module.
func Generate(doc *schema.Document) ([]File, error) {
	var files []File

	f, err := render("model/enums.go", "enums.go.tmpl", doc)
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	for _, group := range doc.Groups() {
		data := shapesFile{}
		var hasList, hasTime, hasRequest bool
		for _, s := range doc.ShapesInGroup(group) {
			v := shapeView{Shape: s, Validated: doc.Validated(s.Name)}
			for _, fld := range s.Fields {
				v.Fields = append(v.Fields, fieldView{Field: fld, StructTag: fld.Tag(v.Validated)})
			}
			hasList = hasList || s.HasList()
			hasTime = hasTime || s.HasTimestamp()
			hasRequest = hasRequest || s.Kind == schema.KindRequest
			data.Shapes = append(data.Shapes, v)
		}
		if hasList {
			data.Imports = append(data.Imports, "slices")
		}
		if hasTime {
			data.Imports = append(data.Imports, "time")
		}
		data.Imports = append(data.Imports, "", path.Join(ModulePath, "internal/shapeutil"))
		if hasRequest {
			data.Imports = append(data.Imports, path.Join(ModulePath, "internal/validate"))
		}
		if data.Imports[0] == "" {
			data.Imports = data.Imports[1:]
		}

		f, err := render("model/shapes_"+group+".go", "shapes.go.tmpl", data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	f, err = render("comprehend/api_operations.go", "operations.go.tmpl", doc)
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	f, err = render("comprehend/api_paginators.go", "paginators.go.tmpl", doc.PaginatedOperations())
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	errs := make([]errorView, 0, len(doc.Errors))
	for _, e := range doc.Errors {
		errs = append(errs, errorView{Error: e, Server: e.Fault == "server"})
	}
	f, err = render("comprehend/api_errors.go", "errors.go.tmpl", errs)
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	return files, nil
}

func render(file, tmpl string, data any) (File, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return File{}, fmt.Errorf("render %s: %w", file, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("format %s: %w\n%s", file, err, buf.Bytes())
	}
	return File{Path: file, Content: src}, nil
}

// comment wraps text into "// " lines at commentWidth, indented by indent.
func comment(indent, text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > commentWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return indent + "// " + strings.Join(lines, "\n"+indent+"// ")
}

func lcfirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
