package setter

// newFeh applies wallpapers with feh, the usual choice on standalone
// X11 window managers.
func newFeh() Setter {
	return &cmdSetter{
		name: Feh,
		tool: "feh",
		commands: func(path string) [][]string {
			return [][]string{
				{"feh", "--bg-fill", path},
			}
		},
	}
}

// newNitrogen applies wallpapers with nitrogen. --save persists the
// choice so nitrogen --restore picks it up on the next login.
func newNitrogen() Setter {
	return &cmdSetter{
		name: Nitrogen,
		tool: "nitrogen",
		commands: func(path string) [][]string {
			return [][]string{
				{"nitrogen", "--set-zoom-fill", "--save", path},
			}
		},
	}
}
