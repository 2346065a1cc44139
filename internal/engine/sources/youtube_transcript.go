package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcript"
)

// YouTube transcript fetching.
// Primary:  scrape watch page ytInitialPlayerResponse → captionTracks  (works from any IP)
// Fallback: ANDROID Innertube /player → captionTracks                  (works from non-blocked IPs)
// The selected track's timedtext XML is parsed into timed snippets.

// fetchPlayerResponseWatchPage scrapes the YouTube watch page HTML and
// extracts ytInitialPlayerResponse.
func fetchPlayerResponseWatchPage(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	engine.IncrWatchPageRequests()
	if err := engine.WaitYouTube(ctx); err != nil {
		return nil, err
	}
	ctx, cancel := engine.FetchContext(ctx)
	defer cancel()

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ytWatchURL+videoID, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentChrome)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &playerResp, nil
}

// fetchPlayerResponseAndroid uses the ANDROID Innertube /player endpoint.
// Works from non-blocked (residential/cloud) IP addresses.
func fetchPlayerResponseAndroid(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	engine.IncrPlayerRequests()
	if err := engine.WaitYouTube(ctx); err != nil {
		return nil, err
	}
	ctx, cancel := engine.FetchContext(ctx)
	defer cancel()

	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, ytPlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", ytAndroidUA)
		req.Header.Set("X-Youtube-Client-Name", "3")
		req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("android innertube: HTTP %d: %s", resp.StatusCode, engine.Truncate(string(snippet), 200))
	}

	var playerResp innertubePlayerResp
	if err := json.NewDecoder(resp.Body).Decode(&playerResp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &playerResp, nil
}

// captionTracksOf validates a player response and returns its caption tracks.
func captionTracksOf(resp *innertubePlayerResp) ([]captionTrack, error) {
	if resp.Captions == nil {
		reason := ""
		if resp.PlayabilityStatus != nil {
			reason = resp.PlayabilityStatus.Reason
		}
		if reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", reason)
		}
		return nil, errors.New("no captions in player response")
	}
	tracks := resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks")
	}
	return tracks, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken
// (browser-only). Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the given language
// preferences. Skips tracks that require PoToken — those only work in a browser.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return tracks[0], false
	}
	// 1. Manual track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && !t.generated() {
				return t, true
			}
		}
	}
	// 2. Auto-generated track in preferred language
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	// 3. Any English track
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchTimedText fetches a caption track's timedtext XML and parses it into
// timed snippets. Empty cues are dropped; start/duration come straight from
// the XML attributes.
func fetchTimedText(ctx context.Context, baseURL string) ([]transcript.Snippet, error) {
	engine.IncrTimedTextRequests()
	if err := engine.WaitYouTube(ctx); err != nil {
		return nil, err
	}
	ctx, cancel := engine.FetchContext(ctx)
	defer cancel()

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentChrome)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

func parseTimedText(body []byte) ([]transcript.Snippet, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	snippets := make([]transcript.Snippet, 0, len(tt.Cues))
	for _, cue := range tt.Cues {
		text := engine.CleanCaptionText(cue.Text)
		if text == "" {
			continue
		}
		snippets = append(snippets, transcript.Snippet{
			Text:     text,
			Start:    cue.Start,
			Duration: cue.Dur,
		})
	}
	if len(snippets) == 0 {
		return nil, errors.New("empty transcript")
	}
	return snippets, nil
}

// playerResponse tries the watch page first, then the ANDROID player.
func playerResponse(ctx context.Context, videoID string) (*innertubePlayerResp, error) {
	resp, err := fetchPlayerResponseWatchPage(ctx, videoID)
	if err == nil {
		if _, terr := captionTracksOf(resp); terr == nil {
			return resp, nil
		} else {
			err = terr
		}
	}
	slog.Warn("youtube: watch page scrape failed, trying android player",
		slog.String("id", videoID), slog.Any("err", err))

	resp, aerr := fetchPlayerResponseAndroid(ctx, videoID)
	if aerr != nil {
		engine.IncrFetchErrors()
		return nil, aerr
	}
	if _, terr := captionTracksOf(resp); terr != nil {
		engine.IncrFetchErrors()
		return nil, terr
	}
	return resp, nil
}

// FetchTranscript fetches the transcript of a YouTube video in the most
// preferred available language and returns it with track metadata attached.
func FetchTranscript(ctx context.Context, videoID string, langs []string) (*transcript.Transcript, error) {
	resp, err := playerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}
	tracks, err := captionTracksOf(resp)
	if err != nil {
		return nil, err
	}

	track, ok := pickBestTrack(tracks, langs)
	if !ok {
		return nil, errors.New("all caption tracks require PoToken")
	}

	snippets, err := fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		engine.IncrFetchErrors()
		return nil, err
	}

	return &transcript.Transcript{
		VideoID:      videoID,
		Language:     track.Name.String(),
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.generated(),
		Snippets:     snippets,
	}, nil
}

// ListTranscripts returns metadata for every caption track of a video, in
// YouTube's order, without downloading any of them.
func ListTranscripts(ctx context.Context, videoID string) ([]engine.TrackInfo, error) {
	resp, err := playerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}
	tracks, err := captionTracksOf(resp)
	if err != nil {
		return nil, err
	}

	infos := make([]engine.TrackInfo, 0, len(tracks))
	for _, t := range tracks {
		infos = append(infos, engine.TrackInfo{
			Language:       t.Name.String(),
			LanguageCode:   t.LanguageCode,
			IsGenerated:    t.generated(),
			IsTranslatable: t.IsTranslatable,
		})
	}
	return infos, nil
}
