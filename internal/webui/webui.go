// Пакет webui — статические страницы админ-панели, встроенные в бинарник.
package webui

import "embed"

// Assets — встроенные HTML-страницы админ-панели.
//
//go:embed admin/*.html
var Assets embed.FS
