package repository

import (
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/sirupsen/logrus"
)

var video_base_url = "https://www.youtube.com/watch?v=%s"

var consentRegex = regexp.MustCompile(`action="https://consent\.youtube\.com/s`)
var consentValueRegex = regexp.MustCompile(`name="v" value="(.*?)"`)

type HTMLFetcherType interface {
	Fetch(url string, cookie *http.Cookie) ([]byte, error)
	FetchVideo(videoID string) ([]byte, error)
}

type HTMLFetcher struct{}

func NewHTMLFetcher() *HTMLFetcher {
	return &HTMLFetcher{}
}

func (f *HTMLFetcher) Fetch(url string, cookie *http.Cookie) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept-Language", "en-US")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func (f *HTMLFetcher) FetchVideo(videoID string) ([]byte, error) {
	video_url := fmt.Sprintf(video_base_url, videoID)

	body, err := f.Fetch(video_url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video page: %w", err)
	}

	if consentRequired(body) {
		logrus.WithField("video_id", videoID).Debug("consent required, setting cookie and retrying")
		cookie, err := createConsentCookie(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create consent cookie: %w", err)
		}

		body, err = f.Fetch(video_url, cookie)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch video page after setting consent: %w", err)
		}
	}

	return body, nil
}

func createConsentCookie(body []byte) (*http.Cookie, error) {
	match := consentValueRegex.FindSubmatch(body)
	if len(match) < 2 {
		return nil, fmt.Errorf("failed to find consent value in HTML")
	}

	return &http.Cookie{
		Name:   "CONSENT",
		Value:  "YES+" + string(match[1]),
		Domain: ".youtube.com",
	}, nil
}

func consentRequired(body []byte) bool {
	return consentRegex.Match(body)
}
