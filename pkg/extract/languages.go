package extract

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	tsc "github.com/alexaandru/go-sitter-forest/c"
	tscpp "github.com/alexaandru/go-sitter-forest/cpp"
	tsgo "github.com/alexaandru/go-sitter-forest/go"
	tsjavascript "github.com/alexaandru/go-sitter-forest/javascript"
	tsmarkdown "github.com/alexaandru/go-sitter-forest/markdown"
	tsmarkdowninline "github.com/alexaandru/go-sitter-forest/markdown_inline"
	tspython "github.com/alexaandru/go-sitter-forest/python"
	tsrust "github.com/alexaandru/go-sitter-forest/rust"
	tstypescript "github.com/alexaandru/go-sitter-forest/typescript"
)

func languageMarkdown() sitter.Language       { return sitter.NewLanguage(tsmarkdown.GetLanguage()) }
func languageMarkdownInline() sitter.Language { return sitter.NewLanguage(tsmarkdowninline.GetLanguage()) }
func languageRust() sitter.Language           { return sitter.NewLanguage(tsrust.GetLanguage()) }
func languagePython() sitter.Language         { return sitter.NewLanguage(tspython.GetLanguage()) }
func languageTypeScript() sitter.Language     { return sitter.NewLanguage(tstypescript.GetLanguage()) }
func languageJavaScript() sitter.Language     { return sitter.NewLanguage(tsjavascript.GetLanguage()) }
func languageC() sitter.Language              { return sitter.NewLanguage(tsc.GetLanguage()) }
func languageCpp() sitter.Language            { return sitter.NewLanguage(tscpp.GetLanguage()) }
func languageGo() sitter.Language             { return sitter.NewLanguage(tsgo.GetLanguage()) }
