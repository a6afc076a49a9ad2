package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/blogicum/internal/constants"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile   = "templates/base.html"
	partialsGlob = "templates/includes/*.html"
	layoutName   = "base"
)

// pages 需要与布局组合渲染的页面模板
var pages = []string{
	constants.TemplateIndex,
	constants.TemplateDetail,
	constants.TemplateCategory,
	constants.TemplateNotFound,
	constants.TemplateInternal,
	constants.TemplateTooManyRequests,
}

// Renderer gin 的 HTMLRender 实现，每个页面模板与布局单独组合
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New 从内嵌文件系统解析全部页面模板
func New() (*Renderer, error) {
	return newFromFS(templateFS)
}

func newFromFS(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	partials, err := fs.Glob(fsys, partialsGlob)
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	for _, name := range pages {
		files := append([]string{layoutFile}, partials...)
		files = append(files, path.Join("templates", name))
		tmpl, err := template.New(path.Base(layoutFile)).Funcs(FuncMap()).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Instance 实现 render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		tmpl = template.Must(template.New(name).Parse(`template "` + template.HTMLEscapeString(name) + `" not found`))
		return render.HTML{Template: tmpl, Data: data}
	}
	return render.HTML{Template: tmpl, Name: layoutName, Data: data}
}

// Has 判断模板是否存在
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// FuncMap 模板函数
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": func(source string) template.HTML {
			out, err := Markdown(source)
			if err != nil {
				return template.HTML(template.HTMLEscapeString(source))
			}
			return out
		},
		"date":      FormatDate,
		"plain":     PlainText,
		"truncate":  TruncateWords,
		"excerpt":   Excerpt,
		"year":      func() int { return time.Now().Year() },
		"hasPrefix": strings.HasPrefix,
	}
}

// FormatDate 文章日期展示格式
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("02.01.2006 15:04")
}

// TruncateWords 截取前 n 个词，超出时以省略号结尾
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if n <= 0 || len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + " …"
}

// Excerpt 按字符数截取纯文本摘要
func Excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
