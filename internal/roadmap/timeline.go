package roadmap

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
)

const (
	timelineWidth    = 1200
	timelineRowH     = 64
	timelinePadding  = 48
	timelineAxisX    = 140.0
	timelineDotR     = 9.0
	timelineMaxTopic = 80
)

// RenderTimeline draws the roadmap as a vertical month-by-month timeline
// and returns it as an encoded PNG.
func RenderTimeline(plan Roadmap) ([]byte, error) {
	if len(plan.Months) == 0 {
		return nil, fmt.Errorf("cannot render empty roadmap")
	}

	height := timelinePadding*2 + timelineRowH*len(plan.Months)
	dc := gg.NewContext(timelineWidth, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	top := float64(timelinePadding)
	bottom := float64(height - timelinePadding)
	dc.SetRGB(0.25, 0.35, 0.85)
	dc.SetLineWidth(3)
	dc.DrawLine(timelineAxisX, top, timelineAxisX, bottom)
	dc.Stroke()

	for i, month := range plan.Months {
		y := top + float64(i)*timelineRowH + timelineRowH/2

		dc.SetRGB(0.25, 0.35, 0.85)
		dc.DrawCircle(timelineAxisX, y, timelineDotR)
		dc.Fill()

		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(fmt.Sprintf("Month %d", month.Month), timelineAxisX-24, y, 1, 0.5)

		dc.DrawString(month.Focus, timelineAxisX+28, y-6)

		if len(month.Topics) > 0 {
			dc.SetRGB(0.4, 0.4, 0.4)
			dc.DrawString(truncate(joinTopics(month.Topics), timelineMaxTopic), timelineAxisX+28, y+14)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode timeline png: %w", err)
	}
	return buf.Bytes(), nil
}

func joinTopics(topics []string) string {
	out := ""
	for i, t := range topics {
		if i > 0 {
			out += " / "
		}
		out += t
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
