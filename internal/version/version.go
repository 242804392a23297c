package version

import (
	"fmt"
	"strconv"
	"time"
)

// Version is the application version. Can be overridden at build time via:
//
//	go build -ldflags "-X winsbygroup.com/lunchly/internal/version.Version=1.2.3"
var Version = "0.1"

// Banner prints identifying information about the server.
func Banner() string {
	y := strconv.Itoa(time.Now().Year())
	return fmt.Sprintf("%s\nLunchly (v%s)\nCopyright 2026-%s Winsby Group LLC.\n", product(), Version, y)
}

func product() string {
	// figlet Standard font
	const s = `
  _                      _     _       
 | |   _   _ _ __   ___ | |__ | |_   _ 
 | |  | | | | '_ \ / __|| '_ \| | | | |
 | |__| |_| | | | | (__ | | | | | |_| |
 |_____\__,_|_| |_|\___||_| |_|_|\__, |
                                 |___/ 
`
	return s
}
