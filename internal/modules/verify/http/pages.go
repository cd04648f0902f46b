package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Product Authenticity Checker</title>
</head>
<body>
<div class="container">{{template "content" .}}</div>
</body>
</html>{{end}}`

const entryHTML = `{{define "content"}}
<form id="verificationForm" method="post" action="/verify">
  <label for="productCode">Product code</label>
  <input type="text" id="productCode" name="code" value="{{.Code}}"
         minlength="{{.Min}}" maxlength="{{.Max}}" pattern="[A-Za-z0-9]+"
         autocomplete="off" autocapitalize="characters" spellcheck="false"{{if .Error}} class="error"{{end}}>
  {{if .Error}}<div id="codeError" class="code-error">{{.Error}}</div>{{end}}
  <button type="submit" id="submitBtn" class="submit-btn">VERIFY PRODUCT</button>
</form>
{{end}}`

const resultHTML = `{{define "content"}}
<div class="result-container fade-in">
  <div class="result-icon {{.View.Class}}"><span class="icon-symbol">{{.View.Icon}}</span></div>
  <h1 class="result-title {{.View.Class}}-title">{{.View.Title}}</h1>
  <div class="result-details">
    <p>Product code: <span id="productCodeDisplay">{{.View.Code}}</span></p>
    <p>Status: <span id="productStatus" class="status-{{.View.Class}}">{{.View.Label}}</span></p>
  </div>
  <p class="result-message">{{.View.Message}}</p>
  <form method="post" action="/home" class="result-actions">
    <button type="submit" class="back-btn">Verify another product</button>
  </form>
</div>
{{end}}`

var (
	entryPage  = template.Must(template.Must(template.New("entry").Parse(layoutHTML)).Parse(entryHTML))
	resultPage = template.Must(template.Must(template.New("result").Parse(layoutHTML)).Parse(resultHTML))
)

type entryData struct {
	Code  string
	Error string
	Min   int
	Max   int
}

type resultData struct {
	View ResultView
}

func renderPage(c *fiber.Ctx, status int, page *template.Template, data any) error {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
