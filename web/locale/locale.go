package locale

import (
	"io/fs"
	"strings"

	"hamlog/logger"

	"github.com/gin-gonic/gin"
	i18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var (
	i18nBundle   *i18n.Bundle
	webLocalizer *i18n.Localizer
)

const (
	localizerKey = "localizer"
	cookieName   = "lang"
)

// InitLocalizer loads every embedded translation/*.toml into the bundle.
// English is the fallback; Korean is the original product language.
func InitLocalizer(i18nFS fs.FS) error {
	i18nBundle = i18n.NewBundle(language.English)
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err := fs.WalkDir(i18nFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".toml") {
			return nil
		}
		_, err = i18nBundle.LoadMessageFileFS(i18nFS, path)
		return err
	})
	if err != nil {
		return err
	}

	webLocalizer = i18n.NewLocalizer(i18nBundle, "en")
	return nil
}

// LocalizerMiddleware picks a localizer from the lang cookie or the
// Accept-Language header and stashes it on the request.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, err := c.Cookie(cookieName)
		if err != nil {
			lang = c.GetHeader("Accept-Language")
		}
		c.Set(localizerKey, i18n.NewLocalizer(i18nBundle, lang, "en"))
		c.Next()
	}
}

// I18n resolves a message for the request's localizer. Params are key/value
// pairs substituted into the message template.
func I18n(c *gin.Context, key string, params ...string) string {
	var localizer *i18n.Localizer
	if c != nil {
		if obj, ok := c.Get(localizerKey); ok {
			localizer, _ = obj.(*i18n.Localizer)
		}
	}
	if localizer == nil {
		localizer = webLocalizer
	}
	if localizer == nil {
		return key
	}

	templateData := map[string]any{}
	for i := 0; i+1 < len(params); i += 2 {
		templateData[params[i]] = params[i+1]
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		logger.Debugf("i18n: missing message %q: %v", key, err)
		return key
	}
	return msg
}

// I18nWeb resolves a message against the default (English) localizer, for
// places with no request at hand such as templates parsed at boot.
func I18nWeb(key string, params ...string) string {
	return I18n(nil, key, params...)
}
