//go:build windows

package catalog

import "github.com/atomicstack/single-mode-shortcuts/internal/keymap"

const chrome = `C:\Program Files\Google\Chrome\Application\chrome.exe`

func builtin() *keymap.Node {
	apps := mode("apps",
		keymap.Bind("c", launch("chrome", chrome)),
		keymap.Bind("e", launch("explorer", "explorer.exe")),
		keymap.Bind("t", launch("terminal", "wt.exe")),
	)
	goTo := mode("go to",
		keymap.Bind("g", launch("gmail", chrome, "--app=https://mail.google.com")),
		keymap.Bind("c", launch("calendar", chrome, "--app=https://calendar.google.com")),
		keymap.Bind("t", launch("texts", chrome, "--app=https://messages.google.com")),
		keymap.Bind("m", launch("messenger", chrome, "--app=https://messenger.com")),
	)
	return mode("",
		keymap.Bind("a", apps),
		keymap.Bind("g", goTo),
	)
}
