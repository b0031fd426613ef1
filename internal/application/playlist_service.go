package application

import (
	"bytes"
	"fmt"
	"time"

	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/m3u"
)

// PlaylistService renders accepted channels as an extended M3U document.
type PlaylistService struct {
	epgURL       string
	groupTitle   string
	logoTemplate string
}

// NewPlaylistService creates a new PlaylistService.
// logoTemplate is expanded per channel by replacing {name} with the channel name.
func NewPlaylistService(epgURL, groupTitle, logoTemplate string) *PlaylistService {
	return &PlaylistService{
		epgURL:       epgURL,
		groupTitle:   groupTitle,
		logoTemplate: logoTemplate,
	}
}

// GenerateM3U encodes channels in the given order into a complete playlist.
// The same channels and timestamp always produce identical bytes.
func (p *PlaylistService) GenerateM3U(channels []channel.Channel, generatedAt time.Time) ([]byte, error) {
	enc := m3u.NewEncoder(p.epgURL, generatedAt)

	for _, ch := range channels {
		// Format: #EXTINF:-1 group-title="Hong Kong" tvg-logo="https://.../logo/Name.png",Name
		enc.AddChannel(&m3u.Channel{
			Title:    ch.Name(),
			URI:      ch.Address(),
			Duration: -1,
			TVGTags: &m3u.TVGTags{
				GroupTitle: p.groupTitle,
				Logo:       m3u.LogoURL(p.logoTemplate, ch.Name()),
			},
		})
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode playlist: %w", err)
	}
	return buf.Bytes(), nil
}
