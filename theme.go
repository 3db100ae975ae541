package main

import (
	"fmt"
	"log"
	"strings"

	dark "github.com/thiagokokada/dark-mode-go"
)

// osDarkMode probes the desktop color scheme.
var osDarkMode = dark.IsDarkMode

// resolveTheme maps the -theme flag to a starting mode. "auto" asks the OS
// and falls back to light when the probe fails.
func resolveTheme(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "dark":
		return true, nil
	case "light":
		return false, nil
	case "auto", "":
		isDark, err := osDarkMode()
		if err != nil {
			log.Printf("Dark mode probe failed, using light theme: %v", err)
			return false, nil
		}
		return isDark, nil
	default:
		return false, fmt.Errorf("unknown theme %q (want auto, dark or light)", mode)
	}
}
