package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagesComplete(t *testing.T) {
	for _, lang := range []string{"en", "zh"} {
		v := reflect.ValueOf(Get(lang))
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(), "%s: %s", lang, v.Type().Field(i).Name)
		}
	}
	assert.Equal(t, Get("en"), Get("fr"), "unknown languages fall back to English")
}
