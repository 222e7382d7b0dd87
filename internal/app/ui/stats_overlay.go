package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/raging-sea/internal/app"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// StatsOverlay renders frame timing in the top-left corner.
type StatsOverlay struct {
	Enabled bool

	message     string
	messageTime time.Time
}

// NewStatsOverlay creates the overlay.
func NewStatsOverlay(enabled bool) *StatsOverlay {
	return &StatsOverlay{Enabled: enabled}
}

// Notify shows msg at the bottom of the screen for a few seconds.
func (o *StatsOverlay) Notify(msg string) {
	o.message = msg
	o.messageTime = time.Now()
}

// Render draws the overlay and any pending notification. probe is the
// surface under the cursor, nil when there is none.
func (o *StatsOverlay) Render(stats *app.Stats, frame ocean.Frame, vertices int, probe *app.Probe, viewportWidth, viewportHeight float32) {
	if o.Enabled {
		o.renderStats(stats, frame, vertices, probe)
	}
	if o.message != "" && time.Since(o.messageTime) < 3*time.Second {
		o.renderMessage(viewportWidth, viewportHeight)
	}
}

func (o *StatsOverlay) renderStats(stats *app.Stats, frame ocean.Frame, vertices int, probe *app.Probe) {
	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(230, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##Stats", nil, flags) {
		fps := stats.FPS()
		fpsColor := imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
		if fps < 30 {
			fpsColor = imgui.NewVec4(1.0, 0.2, 0.2, 1.0)
		} else if fps < 60 {
			fpsColor = imgui.NewVec4(1.0, 1.0, 0.2, 1.0)
		}
		imgui.TextColored(fpsColor, fmt.Sprintf("FPS: %.1f", fps))
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", ms(stats.FrameTime())))

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Time: %.2f s", frame.Params.ElapsedTime))
		imgui.Text(fmt.Sprintf("Frame: %d", frame.Number))
		imgui.Text(fmt.Sprintf("Displace: %.2f ms", ms(stats.DisplaceTime())))
		imgui.Text(fmt.Sprintf("Vertices: %d", vertices))
		imgui.Text(fmt.Sprintf("Heap: %s", formatBytes(stats.HeapAlloc())))

		if probe != nil {
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Cursor: (%.3f, %.3f)", probe.X, probe.Z))
			imgui.Text(fmt.Sprintf("Elevation: %.4f", probe.Elevation))
			imgui.Text(fmt.Sprintf("Mix: %.3f", probe.Mix))
			c := probe.Color
			imgui.TextColored(imgui.NewVec4(c[0], c[1], c[2], 1), ocean.HexColor(c))
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

func (o *StatsOverlay) renderMessage(width, height float32) {
	msgWidth := float32(360)
	imgui.SetNextWindowPos(imgui.NewVec2((width-msgWidth)/2, height-60))
	imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV("##Message", nil, flags) {
		imgui.TextColored(imgui.NewVec4(0.2, 1.0, 0.2, 1.0), o.message)
	}
	imgui.End()
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
