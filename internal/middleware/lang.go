package middleware

import (
	"strings"

	"github.com/haierkeys/note-folder-service/pkg/app"
	"github.com/haierkeys/note-folder-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// The language is stored per request; unsupported values fall back to the global default.
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {

	return func(c *gin.Context) {

		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			lang = s
		} else if s = c.GetHeader("Accept-Language"); len(s) != 0 {
			lang = strings.SplitN(strings.SplitN(s, ",", 2)[0], ";", 2)[0]
		}

		lang = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "-", "_"))
		if !code.IsSupportedLang(lang) {
			lang = code.GetGlobalDefaultLang()
		}
		c.Set(app.LangKey, lang)

		if uni != nil {
			trans, found := uni.GetTranslator(app.TranslatorLocale(lang))
			if !found {
				trans, _ = uni.GetTranslator("en")
			}
			c.Set(app.TransKey, trans)
		}

		c.Next()
	}
}
