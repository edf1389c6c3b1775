//go:build linux

package catalog

import "github.com/atomicstack/single-mode-shortcuts/internal/keymap"

const chrome = "google-chrome-stable"

func builtin() *keymap.Node {
	apps := mode("apps",
		keymap.Bind("c", launch("chrome", chrome)),
		keymap.Bind("f", launch("files", "thunar")),
	)

	goTo := mode("go_to",
		keymap.Bind("a", goToOrLaunch("anki", `^anki$`, "anki", "anki")),
		keymap.Bind("d", goToOrLaunch("discord", `^discord$`, "discord", "discord")),
		keymap.Bind("i", goToOrLaunch("signal", `^signal$`, "signal", "signal-desktop")),
		keymap.Bind("s", goToOrLaunch("spotify", `^spotify$`, "spotify", "spotify")),
		keymap.Bind("t", goToOrLaunch("texts", `^messages\\.google\\.com$`, "texts", chrome, "--app=https://messages.google.com")),
		keymap.Bind("c", goToOrLaunch("calendar", `^calendar\\.google\\.com$`, "calendar", chrome, "--app=https://calendar.google.com")),
		keymap.Bind("g", goToOrLaunch("mail", `^mail\\.google\\.com$`, "gmail", chrome, "--app=https://mail.google.com")),
		keymap.Bind("m", goToOrLaunch("messenger", `^messenger\\.com$`, "messenger", chrome, "--app=https://messenger.com")),
	)

	admin := mode("admin",
		keymap.Bind("l", launch("lock", "i3lock", "-c", "002b36")),
		keymap.Bind("e", launch("reload", "i3-msg", "reload")),
		keymap.Bind("r", launch("restart", "i3-msg", "restart")),
		keymap.Bind("x", mode("logout",
			keymap.Bind("x", launch("logout", "i3-msg", "exit")),
		)),
	)

	sound := mode("sound",
		keymap.Bind("a", launch("mixer", "alacritty", "--class", "float", "-e", "pulsemixer")),
		keymap.Bind("k", launchNoQuit("louder", "pactl", "set-sink-volume", "@DEFAULT_SINK@", "+5%")),
		keymap.Bind("j", launchNoQuit("quieter", "pactl", "set-sink-volume", "@DEFAULT_SINK@", "-5%")),
		keymap.Bind("m", launch("mute", "pactl", "set-sink-mute", "@DEFAULT_SINK@", "toggle")),
	)

	toggle := mode("toggle",
		keymap.Bind("b", launch("bar", "i3-msg", "bar mode toggle")),
		keymap.Bind("B", launch("border", "i3-msg", "border toggle")),
		keymap.Bind("f", launch("floating", "i3-msg", "floating toggle")),
		keymap.Bind("s", launch("mpv float", "i3-msg", "[class=mpv] floating toggle, sticky toggle; [class=mpv floating] resize set 30ppt, move position 69ppt 73ppt, border none")),
	)

	window := mode("window",
		keymap.Bind("f", launch("toggle floating", "i3-msg", "floating toggle")),
		keymap.Bind("0", launchNoQuit("move to 0", "i3-msg", "move container to workspace 0; workspace 0")),
		keymap.Bind("1", launchNoQuit("move to 1", "i3-msg", "move container to workspace 1; workspace 1")),
	)

	framework := mode("framework",
		keymap.Bind("b", mode("brightness",
			keymap.Bind("n", launch("night", "xbacklight", "-set", "1")),
			keymap.Bind("d", launch("day", "xbacklight", "-set", "19")),
			keymap.Bind("k", launchNoQuit("increase", "xbacklight", "-inc", "1")),
			keymap.Bind("j", launchNoQuit("decrease", "xbacklight", "-dec", "1")),
		)),
		keymap.Bind("s", mode("screenshots",
			keymap.Bind("u", launch("full screen", "screenshot")),
			keymap.Bind("a", launch("select area", "screenshot", "-sD")),
			keymap.Bind("d", launch("full screen delay", "screenshot", "-d", "2")),
			keymap.Bind("c", launch("current window", "screenshot", "-s")),
		)),
	)

	return mode("",
		keymap.Bind("a", apps),
		keymap.Bind("g", goTo),
		keymap.Bind("i", admin),
		keymap.Bind("s", sound),
		keymap.Bind("c", toggle),
		keymap.Bind("w", window),
		keymap.Bind(" ", launch("rofi", "rofi", "-show", "run")),
		keymap.Bind("f", framework),
	)
}
