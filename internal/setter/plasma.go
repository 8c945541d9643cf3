package setter

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// plasmaScript is the desktop scripting snippet that points every
// Plasma containment at the new image. The image path is passed in as
// a separate argument to keep it out of string interpolation.
const plasmaScript = `
var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
    var d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", "file://" + wallpaperPath);
}
`

// plasmaSetter applies wallpapers on KDE Plasma through the
// org.kde.PlasmaShell D-Bus scripting interface. Plasma has no
// standalone setter binary, so presence means a running plasmashell.
type plasmaSetter struct {
	// connect is swapped by tests.
	connect func() (*dbus.Conn, error)
}

func newPlasma() Setter {
	return &plasmaSetter{connect: dbus.SessionBus}
}

func (p *plasmaSetter) Name() Name { return Plasma }

func (p *plasmaSetter) Installed() bool {
	return processRunning("plasmashell")
}

func (p *plasmaSetter) Available() bool {
	return p.Installed()
}

func (p *plasmaSetter) Describe(path string) string {
	return fmt.Sprintf("dbus call org.kde.plasmashell /PlasmaShell org.kde.PlasmaShell.evaluateScript (image: %s)", path)
}

func (p *plasmaSetter) Apply(ctx context.Context, path string) error {
	conn, err := p.connect()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	// Inject the path as a quoted JS string literal built via %q so
	// quotes and backslashes in filenames cannot break the script.
	script := fmt.Sprintf("var wallpaperPath = %q;\n%s", path, plasmaScript)

	obj := conn.Object("org.kde.plasmashell", "/PlasmaShell")
	call := obj.CallWithContext(ctx, "org.kde.PlasmaShell.evaluateScript", 0, script)
	if call.Err != nil {
		return fmt.Errorf("plasmashell evaluateScript failed: %w", call.Err)
	}
	return nil
}
