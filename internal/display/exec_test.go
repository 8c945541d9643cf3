package display

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
)

const xrandrDual = `Screen 0: minimum 320 x 200, current 5760 x 2160, maximum 16384 x 16384
HDMI-1 connected 1920x1080+3840+0 (normal left inverted right x axis y axis) 527mm x 296mm
   1920x1080     60.00*+
DP-1 connected primary 3840x2160+0+0 (normal left inverted right x axis y axis) 600mm x 340mm
   3840x2160     60.00*+
DP-2 disconnected (normal left inverted right x axis y axis)
`

const xrandrNoPrimary = `Screen 0: minimum 320 x 200, current 2560 x 1440, maximum 16384 x 16384
DP-1 connected 2560x1440+0+0 (normal left inverted right x axis y axis) 600mm x 340mm
   2560x1440     144.00*+
`

const xrandrInactive = `Screen 0: minimum 320 x 200, current 0 x 0, maximum 16384 x 16384
DP-1 connected (normal left inverted right x axis y axis)
`

func TestParseXrandr(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{
			name:  "primary wins over other connected outputs",
			out:   xrandrDual,
			wantW: 3840,
			wantH: 2160,
		},
		{
			name:  "first connected output without primary",
			out:   xrandrNoPrimary,
			wantW: 2560,
			wantH: 1440,
		},
		{
			name:    "connected but inactive output",
			out:     xrandrInactive,
			wantErr: true,
		},
		{
			name:    "empty output",
			out:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseXrandr(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseXrandr() expected error, got %dx%d", w, h)
				}
				if !errors.Is(err, ErrNoDisplay) {
					t.Errorf("parseXrandr() error = %v, want ErrNoDisplay", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseXrandr() unexpected error: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("parseXrandr() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestParseXdpyinfo(t *testing.T) {
	out := `name of display:    :0
screen #0:
  dimensions:    1920x1080 pixels (508x285 millimeters)
  resolution:    96x96 dots per inch
`
	w, h, err := parseXdpyinfo(out)
	if err != nil {
		t.Fatalf("parseXdpyinfo() unexpected error: %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("parseXdpyinfo() = %dx%d, want 1920x1080", w, h)
	}

	if _, _, err := parseXdpyinfo("no dimensions here"); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("parseXdpyinfo() error = %v, want ErrNoDisplay", err)
	}
}

func TestParseKScreenHDR(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want bool
	}{
		{
			name: "enabled",
			out:  "Output: 1 DP-1\n\tHDR: enabled\n\tWide Color Gamut: enabled\n",
			want: true,
		},
		{
			name: "enabled with ansi colour codes",
			out:  "Output: 1 DP-1\n\t\x1b[32mHDR: enabled\x1b[0m\n",
			want: true,
		},
		{
			name: "disabled",
			out:  "Output: 1 DP-1\n\tHDR: disabled\n",
			want: false,
		},
		{
			name: "empty",
			out:  "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseKScreenHDR(tt.out); got != tt.want {
				t.Errorf("parseKScreenHDR() = %v, want %v", got, tt.want)
			}
		})
	}
}

// stubRunner returns canned output per command name and records calls.
func stubRunner(outputs map[string]string) runFunc {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		out, ok := outputs[name]
		if !ok {
			return nil, errors.New("command not found")
		}
		return []byte(out), nil
	}
}

func TestExecProviderDetect(t *testing.T) {
	t.Setenv("UKIYO_HDR", "")

	p := NewExecProvider(hclog.NewNullLogger(), "auto")
	p.run = stubRunner(map[string]string{
		"xrandr":         xrandrDual,
		"kscreen-doctor": "Output: 1 DP-1\n\tHDR: enabled\n",
	})

	info, err := p.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() unexpected error: %v", err)
	}
	if info.Width != 3840 || info.Height != 2160 {
		t.Errorf("Detect() resolution = %dx%d, want 3840x2160", info.Width, info.Height)
	}
	if !info.HDR {
		t.Error("Detect() HDR = false, want true")
	}
}

func TestExecProviderXdpyinfoFallback(t *testing.T) {
	t.Setenv("UKIYO_HDR", "")

	p := NewExecProvider(hclog.NewNullLogger(), "off")
	p.run = stubRunner(map[string]string{
		"xdpyinfo": "  dimensions:    1280x1024 pixels (376x301 millimeters)\n",
	})

	info, err := p.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() unexpected error: %v", err)
	}
	if info.Width != 1280 || info.Height != 1024 {
		t.Errorf("Detect() resolution = %dx%d, want 1280x1024", info.Width, info.Height)
	}
	if info.HDR {
		t.Error("Detect() HDR = true with hdr mode off")
	}
}

func TestExecProviderNoDisplay(t *testing.T) {
	p := NewExecProvider(hclog.NewNullLogger(), "off")
	p.run = stubRunner(nil)

	if _, err := p.Detect(context.Background()); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("Detect() error = %v, want ErrNoDisplay", err)
	}
}

func TestHDRModeOverrides(t *testing.T) {
	tests := []struct {
		name string
		mode string
		env  string
		want bool
	}{
		{name: "mode on", mode: "on", want: true},
		{name: "mode off beats env", mode: "off", env: "1", want: false},
		{name: "env on in auto mode", mode: "auto", env: "true", want: true},
		{name: "env off in auto mode", mode: "auto", env: "0", want: false},
		{name: "auto without probe tool", mode: "auto", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("UKIYO_HDR", tt.env)

			p := NewExecProvider(hclog.NewNullLogger(), tt.mode)
			p.run = stubRunner(nil)

			if got := p.hdrCapable(context.Background()); got != tt.want {
				t.Errorf("hdrCapable() = %v, want %v", got, tt.want)
			}
		})
	}
}
