package stats

import "strings"

// PlatformGrouping selects how free-text platform descriptors are bucketed.
type PlatformGrouping string

const (
	// GroupingPlatform maps descriptors to named platforms, with an "Other"
	// bucket for anything unrecognized.
	GroupingPlatform PlatformGrouping = "platform"

	// GroupingSpecificWithOther keeps unrecognized descriptors verbatim
	// instead of lumping them into "Other".
	GroupingSpecificWithOther PlatformGrouping = "specific-with-other"

	// GroupingDeviceType maps descriptors to broad device classes.
	GroupingDeviceType PlatformGrouping = "device-type"
)

// Valid reports whether g is a recognized grouping mode.
func (g PlatformGrouping) Valid() bool {
	switch g {
	case GroupingPlatform, GroupingSpecificWithOther, GroupingDeviceType:
		return true
	}
	return false
}

// GroupPlatform buckets a raw platform descriptor. A missing descriptor is
// "Unknown" in every mode.
func GroupPlatform(platform string, grouping PlatformGrouping) string {
	if grouping == GroupingDeviceType {
		return groupPlatformByType(platform)
	}

	if platform == "" {
		return "Unknown"
	}
	p := strings.ToLower(platform)
	switch {
	case strings.Contains(p, "android-tablet os"):
		return "Android Tablet"
	case strings.Contains(p, "android os"):
		return "Android"
	case strings.Contains(p, "android_tv"):
		return "Android TV"
	case strings.Contains(p, "ios"):
		return "iOS"
	case strings.Contains(p, "windows phone"):
		return "Windows Phone"
	case strings.Contains(p, "windows 7"):
		return "Windows 7"
	case strings.Contains(p, "windows 8"):
		return "Windows 8"
	case strings.Contains(p, "windows 10"):
		return "Windows 10"
	case strings.Contains(p, "windows xp"):
		return "Windows XP"
	case strings.Contains(p, "xbox"):
		return "Xbox"
	case strings.Contains(p, "os x"):
		return "Mac OS"
	case strings.Contains(p, "applewatch"):
		return "Apple Watch"
	case strings.Contains(p, "sonos"):
		return "Sonos"
	case strings.Contains(p, "echo_dot"):
		return "Alexa"
	}

	if grouping == GroupingSpecificWithOther {
		return platform
	}
	return "Other"
}

func groupPlatformByType(platform string) string {
	if platform == "" {
		return "Unknown"
	}
	p := strings.ToLower(platform)
	switch {
	case strings.Contains(p, "windows phone"),
		strings.Contains(p, "android os"),
		strings.Contains(p, "android-tablet os"),
		strings.Contains(p, "ios"):
		return "Mobile"
	case strings.Contains(p, "tv"), strings.Contains(p, "xbox"):
		return "TV"
	case strings.Contains(p, "windows"), strings.Contains(p, "os x"):
		return "Desktop"
	case strings.Contains(p, "applewatch"):
		return "Smart Watch"
	case strings.Contains(p, "sonos"),
		strings.Contains(p, "echo_dot"),
		strings.Contains(p, "denon"),
		strings.Contains(p, "yamaha"):
		return "Speaker/HiFi"
	}
	return "Other"
}
