// Ukiyo - a resolution and HDR-aware wallpaper rotator
//
// Ukiyo picks a themed wallpaper matching the detected display and
// applies it through the first usable external setter.
package main

import "ukiyo/internal/cli"

func main() {
	cli.Execute()
}
