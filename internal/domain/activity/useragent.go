package activity

import (
	"strings"
)

// ParseUserAgent грубо классифицирует User-Agent по устройству, ОС и
// браузеру. Этого достаточно для журнала посетителей.
func ParseUserAgent(ua string) (device, os, browser string) {
	if ua == "" {
		return "Unknown", "Unknown", "Unknown"
	}
	l := strings.ToLower(ua)

	device = "Desktop"
	if strings.Contains(l, "tablet") {
		device = "Tablet"
	} else if strings.Contains(l, "mobile") {
		device = "Mobile"
	}

	switch {
	case strings.Contains(l, "windows"):
		os = "Windows"
	case strings.Contains(l, "android"):
		os = "Android"
	case strings.Contains(l, "iphone"), strings.Contains(l, "ipad"), strings.Contains(l, "ipod"):
		os = "iOS"
	case strings.Contains(l, "mac"):
		os = "MacOS"
	case strings.Contains(l, "linux"):
		os = "Linux"
	default:
		os = "Unknown"
	}

	switch {
	case strings.Contains(l, "edge"):
		browser = "Edge"
	case strings.Contains(l, "opera"), strings.Contains(l, "opr"):
		browser = "Opera"
	case strings.Contains(l, "chrome"):
		browser = "Chrome"
	case strings.Contains(l, "firefox"):
		browser = "Firefox"
	case strings.Contains(l, "safari"):
		browser = "Safari"
	default:
		browser = "Unknown"
	}

	return device, os, browser
}
