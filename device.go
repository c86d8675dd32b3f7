package pushwoosh

import (
	"fmt"
	"strconv"
)

// DeviceType is the platform code Pushwoosh uses for a device. Unknown codes
// are passed through and left for the API to reject.
type DeviceType int

const (
	DeviceIPhone       DeviceType = 1
	DeviceBlackBerry   DeviceType = 2
	DeviceAndroid      DeviceType = 3
	DeviceNokia        DeviceType = 4
	DeviceWindowsPhone DeviceType = 5
	DeviceMac          DeviceType = 7
)

// DefaultLanguage is sent on registration when no language is given.
const DefaultLanguage = "en"

var deviceTypeNames = map[DeviceType]string{
	DeviceIPhone:       "iphone",
	DeviceBlackBerry:   "blackberry",
	DeviceAndroid:      "android",
	DeviceNokia:        "nokia",
	DeviceWindowsPhone: "wp7",
	DeviceMac:          "mac",
}

func (d DeviceType) String() string {
	if name, ok := deviceTypeNames[d]; ok {
		return name
	}
	return "device(" + strconv.Itoa(int(d)) + ")"
}

// ParseDeviceType accepts either a platform name or its numeric code.
func ParseDeviceType(s string) (DeviceType, error) {
	for d, name := range deviceTypeNames {
		if name == s {
			return d, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown device type %q: %w", s, err)
	}
	return DeviceType(n), nil
}
