// ABOUTME: libc-backed locale initialisation and wcwidth for the system strategy
// ABOUTME: Locale is set once per process and forced to UTF-8 when the environment is not

//go:build cgo && unix

package width

/*
#define _XOPEN_SOURCE 700
#include <locale.h>
#include <stdlib.h>
#include <wchar.h>
*/
import "C"

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/mauromedda/boxwidth/internal/log"
)

const fallbackLocale = "en_US.UTF-8"

var (
	localeOnce sync.Once
	localeName string
)

// InitLocale sets the process locale from the environment exactly once. When
// the result is not a UTF-8 locale it switches to en_US.UTF-8 so that wcwidth
// understands multibyte text. It returns the locale in effect.
func InitLocale() string {
	localeOnce.Do(func() {
		empty := C.CString("")
		defer C.free(unsafe.Pointer(empty))
		C.setlocale(C.LC_ALL, empty)

		cur := currentLocale()
		lower := strings.ToLower(cur)
		if !strings.Contains(lower, "utf-8") && !strings.Contains(lower, "utf8") {
			fb := C.CString(fallbackLocale)
			defer C.free(unsafe.Pointer(fb))
			if C.setlocale(C.LC_ALL, fb) == nil {
				log.Warn("locale %q is not UTF-8 and %s is unavailable", cur, fallbackLocale)
			}
			cur = currentLocale()
		}
		localeName = cur
		log.Debug("locale: %s", localeName)
	})
	return localeName
}

func currentLocale() string {
	p := C.setlocale(C.LC_ALL, nil)
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func platformWcwidth(r rune) int {
	return int(C.wcwidth(C.wchar_t(r)))
}
