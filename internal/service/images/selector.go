// Package images selects the best display image from the raw candidate list
// attached to an upstream event record.
package images

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"eventpulse/internal/domain/event"
)

// imagePriorities ranks upstream size labels, lower is better. Labels not in
// the table rank 10. The landscape variants carry the ranks that survive the
// upstream config's duplicate entries.
var imagePriorities = map[string]int{
	"TABLET_LANDSCAPE_LARGE_16_9": 1,
	"TABLET_PORTRAIT_LARGE_16_9":  4,
	"SOURCE":                      5,
	"TABLET_LANDSCAPE_16_9":       6,
	"TABLET_PORTRAIT_16_9":        7,
	"TABLET_LANDSCAPE_SMALL_16_9": 8,
	"TABLET_PORTRAIT_SMALL_16_9":  9,
}

const defaultPriority = 10

// Quality thresholds in pixels.
const (
	highQualityPixels   = 2048 * 1152
	mediumQualityPixels = 1024 * 576
	lowQualityPixels    = 512 * 288
)

// Selector picks the best image for an event.
type Selector struct {
	logger zerolog.Logger
}

// NewSelector creates a new image selector.
func NewSelector(logger zerolog.Logger) *Selector {
	return &Selector{
		logger: logger.With().Str("component", "images").Logger(),
	}
}

type scoredImage struct {
	candidate event.ImageCandidate
	priority  int
	pixels    int
	aspect    float64
	quality   string
	fileSize  string
}

// SelectBest filters, scores and ranks the candidates and returns the single
// best image. It never returns an empty result: when no valid candidate
// exists a placeholder embedding the context label is substituted.
func (s *Selector) SelectBest(candidates []event.ImageCandidate, contextLabel string) event.ImageResult {
	valid := filterValid(candidates)
	if len(valid) == 0 {
		s.logger.Debug().Str("event", contextLabel).Msg("no valid images, using placeholder")
		return placeholderResult(contextLabel)
	}

	scored := make([]scoredImage, 0, len(valid))
	for _, c := range valid {
		scored = append(scored, score(c))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].priority != scored[j].priority {
			return scored[i].priority < scored[j].priority
		}
		return scored[i].pixels > scored[j].pixels
	})

	best := pick(scored)
	s.logger.Debug().
		Str("event", contextLabel).
		Str("url", best.candidate.URL).
		Str("quality", best.quality).
		Msg("selected image")

	return toResult(best)
}

func filterValid(candidates []event.ImageCandidate) []event.ImageCandidate {
	var valid []event.ImageCandidate
	for _, c := range candidates {
		url := strings.TrimSpace(c.URL)
		if url == "" || !strings.HasPrefix(url, "http") {
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

func score(c event.ImageCandidate) scoredImage {
	img := scoredImage{candidate: c, priority: defaultPriority}
	if p, ok := imagePriorities[c.Size]; ok {
		img.priority = p
	}
	if c.Width > 0 && c.Height > 0 {
		img.pixels = c.Width * c.Height
		img.aspect = float64(c.Width) / float64(c.Height)
		img.quality = qualityFor(img.pixels)
		img.fileSize = estimateFileSize(img.pixels)
	}
	return img
}

// pick prefers a 16:9 landscape image, then any 16:9 image, then the first
// image in priority order.
func pick(sorted []scoredImage) scoredImage {
	for _, img := range sorted {
		if img.candidate.Ratio == "16_9" && img.aspect > 1.0 {
			return img
		}
	}
	for _, img := range sorted {
		if img.candidate.Ratio == "16_9" {
			return img
		}
	}
	return sorted[0]
}

func toResult(img scoredImage) event.ImageResult {
	return event.ImageResult{
		URL:         img.candidate.URL,
		Width:       img.candidate.Width,
		Height:      img.candidate.Height,
		Ratio:       img.candidate.Ratio,
		Size:        img.candidate.Size,
		Priority:    img.priority,
		Quality:     img.quality,
		FileSize:    img.fileSize,
		AspectRatio: img.aspect,
		Metadata: event.ImageMetadata{
			Quality:     img.quality,
			FileSize:    img.fileSize,
			AspectRatio: img.aspect,
			Pixels:      img.pixels,
			Priority:    img.priority,
		},
	}
}

func qualityFor(pixels int) string {
	switch {
	case pixels >= highQualityPixels:
		return "High"
	case pixels >= mediumQualityPixels:
		return "Medium"
	case pixels >= lowQualityPixels:
		return "Low"
	default:
		return "Very Low"
	}
}

// estimateFileSize assumes 3 bytes per pixel (RGB).
func estimateFileSize(pixels int) string {
	bytes := pixels * 3
	if bytes < 1024*1024 {
		return fmt.Sprintf("%dKB", int(math.Round(float64(bytes)/1024)))
	}
	return fmt.Sprintf("%dMB", int(math.Round(float64(bytes)/(1024*1024))))
}

func placeholderResult(contextLabel string) event.ImageResult {
	const aspect = 16.0 / 9.0
	return event.ImageResult{
		URL:         placeholderURL(contextLabel),
		Width:       400,
		Height:      225,
		Ratio:       "16_9",
		Size:        "PLACEHOLDER",
		Priority:    999,
		Quality:     "Placeholder",
		FileSize:    "1KB",
		AspectRatio: aspect,
		Metadata: event.ImageMetadata{
			Quality:     "Placeholder",
			FileSize:    "1KB",
			AspectRatio: aspect,
			Pixels:      400 * 225,
			Priority:    999,
		},
	}
}

// placeholderURL renders an inline SVG data URI with the context label as
// visible text, truncated to 30 characters.
func placeholderURL(contextLabel string) string {
	label := contextLabel
	if runes := []rune(label); len(runes) > 30 {
		label = string(runes[:30]) + "..."
	}

	svg := fmt.Sprintf(
		"<svg width='400' height='225' viewBox='0 0 400 225' xmlns='http://www.w3.org/2000/svg'>"+
			"<defs><linearGradient id='grad' x1='0%%' y1='0%%' x2='100%%' y2='100%%'>"+
			"<stop offset='0%%' style='stop-color:#6366f1;stop-opacity:1' />"+
			"<stop offset='100%%' style='stop-color:#8b5cf6;stop-opacity:1' />"+
			"</linearGradient></defs>"+
			"<rect width='400' height='225' fill='url(#grad)'/>"+
			"<text x='200' y='100' font-family='Arial, sans-serif' font-size='16' fill='white' text-anchor='middle'>%s</text>"+
			"<text x='200' y='125' font-family='Arial, sans-serif' font-size='12' fill='white' text-anchor='middle' opacity='0.8'>Event</text>"+
			"</svg>",
		label,
	)

	return "data:image/svg+xml," + url.QueryEscape(svg)
}
